package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
)

type handlers struct {
	config Config
}

// handleDiscovery serves the x402 discovery document clients use to learn
// the unit price and payment address.
func (h *handlers) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":            h.config.Name,
		"price_usd":       h.config.PriceUSD,
		"provider_wallet": h.config.Wallet,
		"currency":        h.config.Currency,
		"chain":           h.config.Chain,
		"endpoint":        "/generate",
	})
}

type generateRequest struct {
	Prompt    string `json:"prompt"`
	Quantity  int    `json:"quantity"`
	ReceiptTx string `json:"receipt_tx"`
}

// handleGenerate fulfills a paid task with placeholder image URLs.
func (h *handlers) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "expected JSON payload", http.StatusBadRequest)
		return
	}

	images := make([]string, 0, req.Quantity)
	for i := 0; i < req.Quantity; i++ {
		images = append(images, fmt.Sprintf("https://dummy.image/%d?prompt=%s", i, url.QueryEscape(req.Prompt)))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"images":     images,
		"receipt_tx": req.ReceiptTx,
	})
}

func (h *handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "Mock Provider",
		"version": "1.0.0",
		"endpoints": map[string]any{
			"x402_metadata": "GET /.well-known/x402",
			"generate":      "POST /generate",
		},
	})
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
