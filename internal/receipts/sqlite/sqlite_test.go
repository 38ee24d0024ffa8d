package sqlite

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samarth/walletagent/internal/receipts"
)

func TestNewStore(t *testing.T) {
	const testDB = "./tmp.db"
	defer os.Remove(testDB)

	s, err := New(testDB)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()
}

func TestAddReceipt(t *testing.T) {
	const testDB = "./tmp.db"
	defer os.Remove(testDB)

	s, err := New(testDB)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	r, err := s.Add(context.TODO(), receipts.Receipt{
		InvoiceID:       "inv_1",
		Provider:        "Image API Provider",
		ProviderURL:     "http://localhost:8001",
		ProviderWallet:  "0xPROVIDER",
		PriceUSDPerUnit: 0.01,
		Quantity:        3,
		TotalCostUSD:    0.03,
		TxHash:          "0xSIMULATED_abc",
		Status:          "simulated",
	})

	assert.Nil(t, err)
	assert.Equal(t, "inv_1", r.InvoiceID)
	assert.NotEmpty(t, r.CreatedAt)
}

func TestListReceipts(t *testing.T) {
	const testDB = "./tmp.db"
	defer os.Remove(testDB)

	s, err := New(testDB)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	const n = 3
	for i := 0; i < n; i++ {
		_, err := s.Add(context.TODO(), receipts.Receipt{
			InvoiceID:      fmt.Sprintf("inv_%d", i),
			Provider:       "test",
			ProviderURL:    "http://localhost:8001",
			ProviderWallet: "0xPROVIDER",
			Quantity:       1,
			TxHash:         "0xabc",
			Status:         "simulated",
		})
		assert.Nil(t, err)
	}

	list, err := s.List(context.TODO())
	assert.Nil(t, err)
	assert.Len(t, list, n)

	for i, r := range list {
		assert.Equal(t, fmt.Sprintf("inv_%d", n-1-i), r.InvoiceID)
	}
}
