package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"alpacacli/internal/domain"
)

// Compile-time interface check.
var _ Broker = (*SimulatorBroker)(nil)

// SimulatorBroker implements the Broker interface in memory, without any
// external API calls. It backs the command tests.
type SimulatorBroker struct {
	Positions []domain.Position
	Closes    map[string]decimal.Decimal
	Err       error // returned from every call when set

	Submitted []domain.OrderRequest
	nextID    int
}

// NewSimulatorBroker creates an empty SimulatorBroker.
func NewSimulatorBroker() *SimulatorBroker {
	return &SimulatorBroker{Closes: make(map[string]decimal.Decimal)}
}

// Name returns "simulator".
func (b *SimulatorBroker) Name() string {
	return "simulator"
}

// SubmitOrder records the request and acknowledges it with a generated ID.
func (b *SimulatorBroker) SubmitOrder(_ context.Context, req domain.OrderRequest) (*domain.Order, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	b.Submitted = append(b.Submitted, req)
	b.nextID++
	return &domain.Order{
		ID:            fmt.Sprintf("sim-%d", b.nextID),
		ClientOrderID: req.ClientOrderID,
		Symbol:        req.Symbol,
		Qty:           req.Qty,
		Side:          req.Side,
		Type:          req.Type,
		TimeInForce:   req.TimeInForce,
		LimitPrice:    req.LimitPrice,
		StopPrice:     req.StopPrice,
		Status:        "accepted",
		CreatedAt:     time.Now(),
	}, nil
}

// GetPositions returns the configured positions.
func (b *SimulatorBroker) GetPositions(_ context.Context) ([]domain.Position, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	return b.Positions, nil
}

// LatestMinuteClose returns the configured close for symbol.
func (b *SimulatorBroker) LatestMinuteClose(_ context.Context, symbol string) (decimal.Decimal, error) {
	if b.Err != nil {
		return decimal.Zero, b.Err
	}
	close, ok := b.Closes[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("no recent bars for %s", symbol)
	}
	return close, nil
}
