package circle

import (
	"context"
	"errors"

	"github.com/samarth/walletagent/internal/payment"
)

// ErrLiveTransfersNotWired is returned for every send: real USDC settlement
// through Circle is out of scope for this demo, and this client only marks
// the seam where it would plug in.
var ErrLiveTransfersNotWired = errors.New("circle live transfer not wired")

func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("must set circle_api_key")
	}

	return &Client{
		apiKey: apiKey,
	}, nil
}

type Client struct {
	apiKey string
}

func (c *Client) Send(ctx context.Context, toAddress string, amountUSD float64) (*payment.Result, error) {
	return nil, ErrLiveTransfersNotWired
}
