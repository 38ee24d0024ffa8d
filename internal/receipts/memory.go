package receipts

import (
	"context"
	"sync"
	"time"
)

func NewMemory() *Memory {
	return &Memory{}
}

// Memory keeps receipts for the process lifetime. The mutex makes concurrent
// appends from multiple in-flight requests safe.
type Memory struct {
	mu       sync.Mutex
	receipts []Receipt
}

func (m *Memory) Add(ctx context.Context, r Receipt) (*Receipt, error) {
	r.CreatedAt = time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.receipts = append(m.receipts, r)
	return &r, nil
}

func (m *Memory) List(ctx context.Context) ([]Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Receipt, 0, len(m.receipts))
	for i := len(m.receipts) - 1; i >= 0; i-- {
		out = append(out, m.receipts[i])
	}

	return out, nil
}
