package planner

import (
	"context"
)

type mockStrategy struct {
	PlanPlan *Plan
	PlanErr  error

	calls int
}

func (m *mockStrategy) Name() string { return "mock" }

func (m *mockStrategy) Plan(ctx context.Context, req Request) (*Plan, error) {
	m.calls++
	return m.PlanPlan, m.PlanErr
}
