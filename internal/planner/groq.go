package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

const groqCandidateTimeout = 30 * time.Second

// GroqStrategy is the secondary strategy: it walks an ordered list of
// candidate models on one OpenAI-compatible endpoint until one returns a
// parseable plan. A call failure, a parse failure, or a missing required
// field advances to the next candidate.
type GroqStrategy struct {
	model      llms.Model
	candidates []string
	timeout    time.Duration
}

func NewGroqStrategy(model llms.Model, candidates []string) *GroqStrategy {
	return &GroqStrategy{
		model:      model,
		candidates: candidates,
		timeout:    groqCandidateTimeout,
	}
}

func (s *GroqStrategy) Name() string { return "groq" }

func (s *GroqStrategy) Plan(ctx context.Context, req Request) (*Plan, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart("You are a routing agent. Always respond with valid JSON only. No markdown, no explanations, just JSON.")},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(buildPrompt(req))},
		},
	}

	var lastErr error
	for _, candidate := range s.candidates {
		plan, err := s.tryModel(ctx, candidate, messages)
		if err != nil {
			lastErr = fmt.Errorf("model %v: %w", candidate, err)
			continue
		}
		return plan, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no candidate models configured")
	}
	return nil, fmt.Errorf("all candidates failed: %w", lastErr)
}

func (s *GroqStrategy) tryModel(ctx context.Context, model string, messages []llms.MessageContent) (*Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, messages,
		llms.WithModel(model),
		llms.WithTemperature(0.3),
		llms.WithMaxTokens(200),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	return parsePlan(resp.Choices[0].Content)
}
