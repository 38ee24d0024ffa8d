package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/samarth/walletagent/internal/agent"
	"github.com/samarth/walletagent/internal/receipts"
)

type handlers struct {
	config Config
	svc    agentService
}

type agentService interface {
	PayForTask(ctx context.Context, req agent.PayRequest) (*receipts.Receipt, error)
	ListPayments(ctx context.Context) ([]receipts.Receipt, error)
}

type payRequest struct {
	Task        string  `json:"task"`
	MaxUSD      float64 `json:"max_usd"`
	ProviderURL string  `json:"provider_url"`
}

// handlePayAPI runs the full request lifecycle and maps each stage failure
// onto a distinct structured error response.
func (h *handlers) handlePayAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "expected JSON payload")
		return
	}
	if req.Task == "" {
		writeError(w, http.StatusBadRequest, "must provide task")
		return
	}
	if req.MaxUSD <= 0 {
		writeError(w, http.StatusBadRequest, "max_usd must be positive")
		return
	}
	if req.ProviderURL == "" {
		writeError(w, http.StatusBadRequest, "must provide provider_url")
		return
	}

	receipt, err := h.svc.PayForTask(ctx, agent.PayRequest{
		Task:        req.Task,
		MaxUSD:      req.MaxUSD,
		ProviderURL: req.ProviderURL,
	})
	if err != nil {
		var (
			discErr   *agent.DiscoveryError
			budgetErr *agent.BudgetError
		)
		switch {
		case errors.As(err, &discErr):
			log.Printf("pay-api: discovery: %v", discErr)
			paymentFailureCounter.WithLabelValues("discovery").Inc()
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"ok":    false,
				"error": discErr.Error(),
			})
		case errors.As(err, &budgetErr):
			log.Printf("pay-api: budget: %v", budgetErr)
			paymentFailureCounter.WithLabelValues("budget").Inc()
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"ok":         false,
				"error":      "Budget exceeded",
				"plan":       budgetErr.Plan,
				"total_cost": budgetErr.Plan.TotalCostUSD,
				"max_budget": budgetErr.MaxUSD,
			})
		default:
			log.Printf("pay-api: %v", err)
			paymentFailureCounter.WithLabelValues(failureStage(err)).Inc()
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"ok":    false,
				"error": err.Error(),
			})
		}
		return
	}

	paymentCounter.Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"receipt": receipt,
		"result": map[string]any{
			"message": fmt.Sprintf("Paid %v USDC for %d unit(s). Provider can now execute task.", receipt.TotalCostUSD, receipt.Quantity),
		},
	})
}

// handleListPayments returns recorded receipts, most recent first.
func (h *handlers) handleListPayments(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListPayments(r.Context())
	if err != nil {
		log.Printf("err: svc.ListPayments: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []receipts.Receipt{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"payments": list,
	})
}

func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "API Wallet Agent",
		"version": "1.0.0",
		"endpoints": map[string]any{
			"health":   "GET /health",
			"payments": "GET /payments",
			"pay_api":  "POST /pay-api",
			"metrics":  "GET /metrics",
		},
	})
}

func failureStage(err error) string {
	var (
		planErr  *agent.PlanError
		payErr   *agent.PaymentError
		storeErr *agent.StoreError
	)
	switch {
	case errors.As(err, &planErr):
		return "plan"
	case errors.As(err, &payErr):
		return "payment"
	case errors.As(err, &storeErr):
		return "store"
	default:
		return "internal"
	}
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	jsonb, err := json.Marshal(body)
	if err != nil {
		log.Printf("failed to marshal resp: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonb)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"ok":    false,
		"error": msg,
	})
}
