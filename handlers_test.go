package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samarth/walletagent/internal/agent"
	"github.com/samarth/walletagent/internal/planner"
	"github.com/samarth/walletagent/internal/receipts"
)

type mockAgent struct {
	PayReceipt *receipts.Receipt
	PayErr     error
	ListOut    []receipts.Receipt
	ListErr    error
}

func (m *mockAgent) PayForTask(ctx context.Context, req agent.PayRequest) (*receipts.Receipt, error) {
	return m.PayReceipt, m.PayErr
}

func (m *mockAgent) ListPayments(ctx context.Context) ([]receipts.Receipt, error) {
	return m.ListOut, m.ListErr
}

func TestHandlePayAPI(t *testing.T) {
	var tests = []struct {
		name       string
		body       string
		svc        *mockAgent
		status     int
		wantOK     bool
		wantSubstr string
	}{
		{
			name: "success",
			body: `{"task": "generate 3 images", "max_usd": 1.00, "provider_url": "http://localhost:8001"}`,
			svc: &mockAgent{
				PayReceipt: &receipts.Receipt{
					InvoiceID:    "inv_abc",
					Quantity:     3,
					TotalCostUSD: 0.03,
					TxHash:       "0xSIMULATED_abc",
					Status:       "simulated",
				},
			},
			status: http.StatusOK,
			wantOK: true,
		},
		{
			name:       "invalid body",
			body:       "not json",
			svc:        &mockAgent{},
			status:     http.StatusBadRequest,
			wantSubstr: "expected JSON payload",
		},
		{
			name:       "missing task",
			body:       `{"max_usd": 1.00, "provider_url": "http://localhost:8001"}`,
			svc:        &mockAgent{},
			status:     http.StatusBadRequest,
			wantSubstr: "must provide task",
		},
		{
			name:       "non-positive budget",
			body:       `{"task": "x", "max_usd": 0, "provider_url": "http://localhost:8001"}`,
			svc:        &mockAgent{},
			status:     http.StatusBadRequest,
			wantSubstr: "max_usd must be positive",
		},
		{
			name: "discovery failure",
			body: `{"task": "x", "max_usd": 1.00, "provider_url": "http://localhost:8001"}`,
			svc: &mockAgent{
				PayErr: &agent.DiscoveryError{Err: assert.AnError},
			},
			status:     http.StatusBadRequest,
			wantSubstr: "failed to fetch provider metadata",
		},
		{
			name: "payment failure",
			body: `{"task": "x", "max_usd": 1.00, "provider_url": "http://localhost:8001"}`,
			svc: &mockAgent{
				PayErr: &agent.PaymentError{Err: assert.AnError},
			},
			status:     http.StatusInternalServerError,
			wantSubstr: "payment failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handlers{svc: tt.svc}

			req := httptest.NewRequest(http.MethodPost, "/pay-api", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.handlePayAPI(w, req)

			assert.Equal(t, tt.status, w.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantOK, resp["ok"])

			if tt.wantSubstr != "" {
				assert.Contains(t, resp["error"], tt.wantSubstr)
			}
		})
	}
}

func TestHandlePayAPIBudgetExceeded(t *testing.T) {
	h := handlers{svc: &mockAgent{
		PayErr: &agent.BudgetError{
			Plan:   planner.Plan{Quantity: 500, Reason: "overshot", TotalCostUSD: 5.00},
			MaxUSD: 1.00,
		},
	}}

	req := httptest.NewRequest(http.MethodPost, "/pay-api",
		strings.NewReader(`{"task": "generate 500 images", "max_usd": 1.00, "provider_url": "http://localhost:8001"}`))
	w := httptest.NewRecorder()
	h.handlePayAPI(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		OK        bool         `json:"ok"`
		Error     string       `json:"error"`
		Plan      planner.Plan `json:"plan"`
		TotalCost float64      `json:"total_cost"`
		MaxBudget float64      `json:"max_budget"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "Budget exceeded", resp.Error)
	assert.Equal(t, 500, resp.Plan.Quantity)
	assert.Equal(t, 5.00, resp.TotalCost)
	assert.Equal(t, 1.00, resp.MaxBudget)
}

func TestHandleListPayments(t *testing.T) {
	h := handlers{svc: &mockAgent{
		ListOut: []receipts.Receipt{
			{InvoiceID: "inv_2"},
			{InvoiceID: "inv_1"},
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	w := httptest.NewRecorder()
	h.handleListPayments(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Payments []receipts.Receipt `json:"payments"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Payments, 2)
	assert.Equal(t, "inv_2", resp.Payments[0].InvoiceID)
}

func TestHandleListPaymentsEmpty(t *testing.T) {
	h := handlers{svc: &mockAgent{}}

	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	w := httptest.NewRecorder()
	h.handleListPayments(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"payments": []}`, w.Body.String())
}

func TestHandleHealth(t *testing.T) {
	h := handlers{svc: &mockAgent{}}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
