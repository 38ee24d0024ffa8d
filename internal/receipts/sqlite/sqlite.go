package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"

	"github.com/samarth/walletagent/internal/receipts"
)

func New(dbFile string) (*Store, error) {
	if dbFile == "" {
		return nil, fmt.Errorf("must set receipt_db_file")
	}
	if _, err := os.Stat(dbFile); errors.Is(err, os.ErrNotExist) {
		f, err := os.Create(dbFile)
		if err != nil {
			return nil, err
		}
		f.Close()
	}

	db, err := sqlx.Open("sqlite3", dbFile)
	if err != nil {
		return nil, err
	}

	s := Store{
		dbFile: dbFile,
		db:     db,
	}

	if err := s.createSchema(); err != nil {
		return nil, err
	}

	return &s, nil
}

type Store struct {
	dbFile string
	db     *sqlx.DB
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS receipts (
    invoice_id TEXT NOT NULL,
    provider TEXT NOT NULL,
    provider_url TEXT NOT NULL,
    provider_wallet TEXT NOT NULL,
    price_usd_per_unit REAL NOT NULL,
    quantity INTEGER NOT NULL,
    total_cost_usd REAL NOT NULL,
    tx_hash TEXT NOT NULL,
    status TEXT NOT NULL,
    created_at DATETIME NOT NULL
);
	CREATE INDEX IF NOT EXISTS idx_receipts_invoice_id ON receipts(invoice_id);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	return nil
}

func (s *Store) Add(ctx context.Context, r receipts.Receipt) (*receipts.Receipt, error) {
	r.CreatedAt = time.Now().UTC()

	const query = `INSERT INTO receipts (invoice_id, provider, provider_url, provider_wallet, price_usd_per_unit, quantity, total_cost_usd, tx_hash, status, created_at)
VALUES (:invoice_id, :provider, :provider_url, :provider_wallet, :price_usd_per_unit, :quantity, :total_cost_usd, :tx_hash, :status, :created_at);`

	if _, err := s.db.NamedExecContext(ctx, query, r); err != nil {
		return nil, fmt.Errorf("db.NamedExec addReceipt: %w", err)
	}

	return &r, nil
}

// List returns receipts in reverse insertion order. rowid keeps the ordering
// strict even when two appends land on the same timestamp.
func (s *Store) List(ctx context.Context) ([]receipts.Receipt, error) {
	const query = `SELECT invoice_id, provider, provider_url, provider_wallet, price_usd_per_unit, quantity, total_cost_usd, tx_hash, status, created_at FROM receipts ORDER BY rowid DESC;`

	var out []receipts.Receipt
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("db.Select listReceipts: %w", err)
	}

	return out, nil
}
