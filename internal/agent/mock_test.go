package agent

import (
	"context"

	"github.com/samarth/walletagent/internal/discovery"
	"github.com/samarth/walletagent/internal/payment"
	"github.com/samarth/walletagent/internal/planner"
	"github.com/samarth/walletagent/internal/receipts"
)

type mockDiscovery struct {
	FetchDoc *discovery.Document
	FetchErr error
}

func (m *mockDiscovery) Fetch(ctx context.Context, providerBaseURL string) (*discovery.Document, error) {
	return m.FetchDoc, m.FetchErr
}

type mockPlanner struct {
	ChoosePlan *planner.Plan

	gotRequest planner.Request
}

func (m *mockPlanner) Choose(ctx context.Context, req planner.Request) *planner.Plan {
	m.gotRequest = req
	return m.ChoosePlan
}

type mockPayments struct {
	PayResult *payment.Result
	PayErr    error

	calls int
}

func (m *mockPayments) Pay(ctx context.Context, wallet string, plan planner.Plan, maxUSD float64) (*payment.Result, error) {
	m.calls++
	return m.PayResult, m.PayErr
}

type failingStore struct {
	AddErr error
}

func (f *failingStore) Add(ctx context.Context, r receipts.Receipt) (*receipts.Receipt, error) {
	return nil, f.AddErr
}

func (f *failingStore) List(ctx context.Context) ([]receipts.Receipt, error) {
	return nil, nil
}
