package payment

import (
	"context"
)

type mockSender struct {
	SendResult *Result
	SendErr    error

	sentTo     string
	sentAmount float64
	calls      int
}

func (m *mockSender) Send(ctx context.Context, toAddress string, amountUSD float64) (*Result, error) {
	m.calls++
	m.sentTo = toAddress
	m.sentAmount = amountUSD
	return m.SendResult, m.SendErr
}
