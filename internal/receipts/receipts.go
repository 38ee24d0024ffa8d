package receipts

import (
	"context"
	"time"
)

// Receipt is an immutable record of an authorized and executed payment.
type Receipt struct {
	InvoiceID       string    `json:"invoiceId" db:"invoice_id"`
	Provider        string    `json:"provider" db:"provider"`
	ProviderURL     string    `json:"provider_url" db:"provider_url"`
	ProviderWallet  string    `json:"provider_wallet" db:"provider_wallet"`
	PriceUSDPerUnit float64   `json:"price_usd_per_unit" db:"price_usd_per_unit"`
	Quantity        int       `json:"quantity" db:"quantity"`
	TotalCostUSD    float64   `json:"total_cost_usd" db:"total_cost_usd"`
	TxHash          string    `json:"txHash" db:"tx_hash"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Store is an append-only receipt log. Add stamps CreatedAt at append time;
// List returns receipts most-recently-added first.
type Store interface {
	Add(ctx context.Context, r Receipt) (*Receipt, error)
	List(ctx context.Context) ([]Receipt, error)
}
