package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/samarth/walletagent/internal/receipts"
)

func New(dbConnStr string) (*Store, error) {
	db, err := sqlx.Connect("postgres", dbConnStr)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Connect: %w", err)
	}

	// sqlx default is 0 (unlimited), while postgresql by default accepts up to 100 connections
	db.SetMaxOpenConns(80)

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS receipts (
	id SERIAL PRIMARY KEY,
	invoice_id TEXT NOT NULL,
	provider TEXT NOT NULL,
	provider_url TEXT NOT NULL,
	provider_wallet TEXT NOT NULL,
	price_usd_per_unit DOUBLE PRECISION NOT NULL,
	quantity INTEGER NOT NULL,
	total_cost_usd DOUBLE PRECISION NOT NULL,
	tx_hash TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS invoiceidx ON receipts(invoice_id);
    `)
	if err != nil {
		return nil, fmt.Errorf("db.Exec schema: %w", err)
	}

	return &Store{
		db: db,
	}, nil
}

type Store struct {
	db *sqlx.DB
}

func (s *Store) Add(ctx context.Context, r receipts.Receipt) (*receipts.Receipt, error) {
	r.CreatedAt = time.Now().UTC()

	query, args, err := sqlx.Named(`INSERT INTO receipts (invoice_id, provider, provider_url, provider_wallet, price_usd_per_unit, quantity, total_cost_usd, tx_hash, status, created_at)
VALUES (:invoice_id, :provider, :provider_url, :provider_wallet, :price_usd_per_unit, :quantity, :total_cost_usd, :tx_hash, :status, :created_at);`, r)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Named addReceipt: %w", err)
	}
	query = s.db.Rebind(query)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("db.Exec addReceipt: %w", err)
	}

	return &r, nil
}

func (s *Store) List(ctx context.Context) ([]receipts.Receipt, error) {
	const query = `SELECT invoice_id, provider, provider_url, provider_wallet, price_usd_per_unit, quantity, total_cost_usd, tx_hash, status, created_at FROM receipts ORDER BY id DESC;`

	var out []receipts.Receipt
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("db.Select listReceipts: %w", err)
	}

	return out, nil
}
