package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Document is what a provider publishes at its x402 well-known endpoint.
type Document struct {
	Name           string  `json:"name"`
	PriceUSD       float64 `json:"price_usd"`
	ProviderWallet string  `json:"provider_wallet"`
	Currency       string  `json:"currency"`
	Chain          string  `json:"chain"`
	Endpoint       string  `json:"endpoint"`
}

func New() *Client {
	return &Client{
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type Client struct {
	http *http.Client
}

// Fetch loads the discovery document from {base}/.well-known/x402.
// Any non-2xx response is a hard discovery failure.
func (c *Client) Fetch(ctx context.Context, providerBaseURL string) (*Document, error) {
	url := strings.TrimRight(providerBaseURL, "/") + "/.well-known/x402"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %v: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %v: unexpected status %v", url, resp.StatusCode)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}

	if doc.ProviderWallet == "" {
		return nil, fmt.Errorf("metadata missing provider_wallet")
	}
	if doc.PriceUSD < 0 {
		return nil, fmt.Errorf("metadata has negative price_usd")
	}

	return &doc, nil
}
