// Package journal keeps a local SQLite log of every order the CLI has
// submitted, so past trades can be reviewed without a brokerage call.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"alpacacli/internal/domain"
)

// Entry is one journaled order.
type Entry struct {
	OrderID    string
	Symbol     string
	Side       string
	Type       string
	Qty        string
	LimitPrice string
	StopPrice  string
	Status     string
	CreatedAt  time.Time
}

// Journal is an append-only order log backed by SQLite.
type Journal struct {
	db *sql.DB
}

// Open opens (or creates) the journal database at dbPath.
func Open(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", dbPath, err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS orders (
			order_id    TEXT PRIMARY KEY,
			symbol      TEXT NOT NULL,
			side        TEXT NOT NULL,
			type        TEXT NOT NULL,
			qty         TEXT NOT NULL,
			limit_price TEXT NOT NULL DEFAULT '',
			stop_price  TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL,
			created_at  TEXT NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Append records an acknowledged order.
func (j *Journal) Append(ctx context.Context, order *domain.Order) error {
	limitPrice := ""
	if order.LimitPrice != nil {
		limitPrice = order.LimitPrice.String()
	}
	stopPrice := ""
	if order.StopPrice != nil {
		stopPrice = order.StopPrice.String()
	}
	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := j.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO orders
			(order_id, symbol, side, type, qty, limit_price, stop_price, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.Symbol, string(order.Side), string(order.Type),
		order.Qty.String(), limitPrice, stopPrice, order.Status,
		createdAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("appending order %s: %w", order.ID, err)
	}
	return nil
}

// List returns up to limit entries, most recent first.
func (j *Journal) List(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT order_id, symbol, side, type, qty, limit_price, stop_price, status, created_at
		 FROM orders ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.OrderID, &e.Symbol, &e.Side, &e.Type, &e.Qty,
			&e.LimitPrice, &e.StopPrice, &e.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
