package agent

import (
	"fmt"

	"github.com/samarth/walletagent/internal/planner"
)

// DiscoveryError means the provider's metadata could not be fetched. Nothing
// was planned or paid.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("failed to fetch provider metadata: %v", e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// PlanError means no plan could be produced. The fallback chain is designed
// to make this unreachable.
type PlanError struct {
	Err error
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("failed to generate payment plan: %v", e.Err)
}

func (e *PlanError) Unwrap() error { return e.Err }

// BudgetError carries the rejected plan so callers can echo it back.
type BudgetError struct {
	Plan   planner.Plan
	MaxUSD float64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("budget exceeded: plan costs %v, budget is %v", e.Plan.TotalCostUSD, e.MaxUSD)
}

// PaymentError means the settlement collaborator failed after authorization.
type PaymentError struct {
	Err error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed: %v", e.Err)
}

func (e *PaymentError) Unwrap() error { return e.Err }

// StoreError means the payment executed but the receipt append failed.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to record receipt: %v", e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
