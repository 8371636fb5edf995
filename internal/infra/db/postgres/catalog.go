package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"iq-home/quickquote/internal/domain/catalog"
)

// CatalogSchema creates the table CatalogRepo reads from.
const CatalogSchema = `
CREATE TABLE IF NOT EXISTS catalog_products (
	name       text PRIMARY KEY,
	unit_price numeric(12,2) NOT NULL CHECK (unit_price >= 0),
	cost_rate  numeric(4,3)  NOT NULL CHECK (cost_rate >= 0 AND cost_rate <= 1),
	position   integer       NOT NULL DEFAULT 0
)`

const selectCatalog = `
SELECT name, unit_price::text, cost_rate::text
FROM catalog_products
ORDER BY position, name`

// CatalogRepo serves the catalog from Postgres. Numerics travel as text so
// they keep their exact decimal value.
type CatalogRepo struct {
	DB *DB
}

func NewCatalogRepo(db *DB) *CatalogRepo { return &CatalogRepo{DB: db} }

func (r *CatalogRepo) Entries(ctx context.Context) ([]catalog.Entry, error) {
	rows, err := r.DB.Pool.Query(ctx, selectCatalog)
	if err != nil {
		return nil, fmt.Errorf("catalog: query: %w", err)
	}
	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("catalog: scan: %w", err)
	}
	return entries, nil
}

func scanEntry(row pgx.CollectableRow) (catalog.Entry, error) {
	var name, price, costRate string
	if err := row.Scan(&name, &price, &costRate); err != nil {
		return catalog.Entry{}, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return catalog.Entry{}, fmt.Errorf("unit_price of %q: %w", name, err)
	}
	c, err := decimal.NewFromString(costRate)
	if err != nil {
		return catalog.Entry{}, fmt.Errorf("cost_rate of %q: %w", name, err)
	}
	return catalog.Entry{Name: name, UnitPrice: p, CostRate: c}, nil
}

// Seed inserts entries in order, replacing rows with the same name.
func (r *CatalogRepo) Seed(ctx context.Context, entries []catalog.Entry) error {
	if _, err := r.DB.Pool.Exec(ctx, CatalogSchema); err != nil {
		return fmt.Errorf("catalog: create table: %w", err)
	}
	batch := &pgx.Batch{}
	for i, e := range entries {
		batch.Queue(`
INSERT INTO catalog_products (name, unit_price, cost_rate, position)
VALUES ($1, $2::numeric, $3::numeric, $4)
ON CONFLICT (name) DO UPDATE
SET unit_price = EXCLUDED.unit_price, cost_rate = EXCLUDED.cost_rate, position = EXCLUDED.position`,
			e.Name, e.UnitPrice.String(), e.CostRate.String(), i)
	}
	if err := r.DB.Pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("catalog: seed: %w", err)
	}
	return nil
}
