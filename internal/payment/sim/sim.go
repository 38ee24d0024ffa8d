package sim

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/samarth/walletagent/internal/payment"
)

func New() *Client {
	return &Client{}
}

// Client fabricates settlement results instead of contacting a network.
// The synthetic tx hash is distinguishable from a real one on sight.
type Client struct {
}

func (c *Client) Send(ctx context.Context, toAddress string, amountUSD float64) (*payment.Result, error) {
	return &payment.Result{
		Status: payment.StatusSimulated,
		TxHash: "0xSIMULATED_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
	}, nil
}
