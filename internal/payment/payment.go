package payment

import (
	"context"
	"fmt"

	"github.com/samarth/walletagent/internal/planner"
)

// Result is what the settlement collaborator reports back. Its fields are
// attached to the outgoing receipt verbatim.
type Result struct {
	Status string `json:"status"`
	TxHash string `json:"txHash"`
}

const (
	StatusSimulated = "simulated"
	StatusFailed    = "failed"
)

type sender interface {
	Send(ctx context.Context, toAddress string, amountUSD float64) (*Result, error)
}

func New(s sender) (*Service, error) {
	return &Service{
		sender: s,
	}, nil
}

type Service struct {
	sender sender
}

// Pay authorizes the plan against the budget ceiling and, if authorized,
// executes the payment. The sole authorization rule is the strict budget
// comparison: a plan costing exactly the ceiling is authorized.
func (s *Service) Pay(ctx context.Context, wallet string, plan planner.Plan, maxUSD float64) (*Result, error) {
	if plan.TotalCostUSD > maxUSD {
		return nil, ErrBudgetExceeded
	}

	result, err := s.sender.Send(ctx, wallet, plan.TotalCostUSD)
	if err != nil {
		return nil, fmt.Errorf("sender.Send: %w", err)
	}

	return result, nil
}
