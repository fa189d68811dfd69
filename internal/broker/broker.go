// Package broker defines the Broker interface over the remote brokerage and
// provides the Alpaca implementation plus an in-memory simulator for tests.
package broker

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"alpacacli/internal/domain"
)

// ErrNotConfigured is returned when a command needs brokerage credentials
// that have not been stored yet.
var ErrNotConfigured = errors.New(
	`brokerage credentials are not set; run "alpaca configure --id=<key> --secret=<key>" first`)

// Broker abstracts the brokerage operations the CLI needs. Each call is a
// single blocking request; failures propagate to the caller with no retry.
type Broker interface {
	// Name returns the broker identifier (e.g. "alpaca", "simulator").
	Name() string

	// SubmitOrder sends an order to the brokerage for execution.
	SubmitOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)

	// GetPositions returns all current positions held at the brokerage.
	GetPositions(ctx context.Context) ([]domain.Position, error)

	// LatestMinuteClose returns the close of the most recent minute bar for
	// symbol, used as an indicative display price for market orders.
	LatestMinuteClose(ctx context.Context, symbol string) (decimal.Decimal, error)
}
