package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Plan is the chosen purchase quantity and cost for a task.
type Plan struct {
	Quantity     int     `json:"quantity"`
	Reason       string  `json:"reason"`
	TotalCostUSD float64 `json:"total_cost_usd"`
}

// Request carries the inputs a strategy plans against.
type Request struct {
	Task         string
	MaxUSD       float64
	UnitPriceUSD float64
}

// Strategy produces a Plan for a request, or an error to advance the chain.
type Strategy interface {
	Name() string
	Plan(ctx context.Context, req Request) (*Plan, error)
}

// Selector tries an ordered list of strategies and falls back to a
// deterministic calculation when every one of them fails.
type Selector struct {
	strategies []Strategy
	fallback   CalcStrategy
}

func NewSelector(strategies ...Strategy) *Selector {
	return &Selector{
		strategies: strategies,
	}
}

// Choose returns a usable Plan. It never fails: the calculation fallback
// terminates the chain and cannot error.
func (s *Selector) Choose(ctx context.Context, req Request) *Plan {
	for _, strategy := range s.strategies {
		plan, err := strategy.Plan(ctx, req)
		if err != nil {
			log.Printf("planner: %v failed: %v", strategy.Name(), err)
			continue
		}
		return plan
	}

	plan, _ := s.fallback.Plan(ctx, req)
	return plan
}

func buildPrompt(req Request) string {
	return fmt.Sprintf(`You are a routing agent. Convert the user request into a quantity integer.
Task: %s
Max budget USD: %v
Provider price per unit USD: %v

Return ONLY JSON with:
quantity (int), reason (string), total_cost_usd (float)

Example: {"quantity": 3, "reason": "Task requires 3 images", "total_cost_usd": 0.03}`,
		req.Task, req.MaxUSD, req.UnitPriceUSD)
}

var codeFence = regexp.MustCompile("```(?:json)?")

// parsePlan parses a model response as strict JSON, tolerating markdown
// code-fence wrapping. quantity and total_cost_usd are required.
func parsePlan(text string) (*Plan, error) {
	text = strings.TrimSpace(codeFence.ReplaceAllString(text, ""))

	var raw struct {
		Quantity     *int     `json:"quantity"`
		Reason       string   `json:"reason"`
		TotalCostUSD *float64 `json:"total_cost_usd"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if raw.Quantity == nil || raw.TotalCostUSD == nil {
		return nil, fmt.Errorf("plan missing quantity or total_cost_usd")
	}

	return &Plan{
		Quantity:     *raw.Quantity,
		Reason:       raw.Reason,
		TotalCostUSD: *raw.TotalCostUSD,
	}, nil
}
