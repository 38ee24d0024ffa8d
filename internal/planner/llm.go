package planner

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// LLMStrategy asks a single language model for a plan. Used as the primary
// strategy with a Gemini-backed model.
type LLMStrategy struct {
	name  string
	model llms.Model
}

func NewLLMStrategy(name string, model llms.Model) *LLMStrategy {
	return &LLMStrategy{
		name:  name,
		model: model,
	}
}

func (s *LLMStrategy) Name() string { return s.name }

func (s *LLMStrategy) Plan(ctx context.Context, req Request) (*Plan, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(buildPrompt(req))},
		},
	}

	resp, err := s.model.GenerateContent(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", s.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%v: empty response", s.name)
	}

	return parsePlan(resp.Choices[0].Content)
}
