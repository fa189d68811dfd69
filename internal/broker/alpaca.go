package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"

	"alpacacli/internal/config"
	"alpacacli/internal/domain"
)

// Compile-time interface check.
var _ Broker = (*AlpacaBroker)(nil)

// AlpacaBroker implements the Broker interface using the Alpaca trading and
// market-data APIs.
type AlpacaBroker struct {
	trading *alpaca.Client
	data    *marketdata.Client
}

// NewAlpacaBroker builds a broker from the stored credentials. It fails
// with ErrNotConfigured when the key or secret is missing; credential
// correctness is not checked here and surfaces on the first API call.
func NewAlpacaBroker(store *config.Store) (*AlpacaBroker, error) {
	keyID := store.Get(config.KeyID)
	secret := store.Get(config.KeySecret)
	if keyID == "" || secret == "" {
		return nil, ErrNotConfigured
	}

	baseURL := ResolveBaseURL(store.Get(config.KeyBaseURL), store.Get(config.KeyMode))

	return &AlpacaBroker{
		trading: alpaca.NewClient(alpaca.ClientOpts{
			APIKey:    keyID,
			APISecret: secret,
			BaseURL:   baseURL,
		}),
		data: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    keyID,
			APISecret: secret,
		}),
	}, nil
}

// ResolveBaseURL picks the trading endpoint: an explicit baseUrl wins,
// otherwise the mode selects the live or paper endpoint. Paper is the
// default when no mode is configured.
func ResolveBaseURL(baseURL, mode string) string {
	if baseURL != "" {
		return baseURL
	}
	if mode == "live" {
		return domain.LiveBaseURL
	}
	return domain.PaperBaseURL
}

// Name returns "alpaca".
func (b *AlpacaBroker) Name() string {
	return "alpaca"
}

// SubmitOrder places the order via the Alpaca trading API.
func (b *AlpacaBroker) SubmitOrder(_ context.Context, req domain.OrderRequest) (*domain.Order, error) {
	qty := req.Qty
	placed, err := b.trading.PlaceOrder(alpaca.PlaceOrderRequest{
		Symbol:        req.Symbol,
		Qty:           &qty,
		Side:          alpaca.Side(req.Side),
		Type:          alpaca.OrderType(req.Type),
		TimeInForce:   alpaca.TimeInForce(req.TimeInForce),
		LimitPrice:    req.LimitPrice,
		StopPrice:     req.StopPrice,
		ClientOrderID: req.ClientOrderID,
	})
	if err != nil {
		return nil, fmt.Errorf("placing order: %w", err)
	}

	order := &domain.Order{
		ID:            placed.ID,
		ClientOrderID: placed.ClientOrderID,
		Symbol:        placed.Symbol,
		Side:          domain.Side(placed.Side),
		Type:          domain.OrderType(placed.Type),
		TimeInForce:   domain.TimeInForce(placed.TimeInForce),
		LimitPrice:    placed.LimitPrice,
		StopPrice:     placed.StopPrice,
		Status:        string(placed.Status),
		CreatedAt:     placed.CreatedAt,
	}
	if placed.Qty != nil {
		order.Qty = *placed.Qty
	}
	return order, nil
}

// GetPositions returns all open positions in the account.
func (b *AlpacaBroker) GetPositions(_ context.Context) ([]domain.Position, error) {
	raw, err := b.trading.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("fetching positions: %w", err)
	}

	positions := make([]domain.Position, 0, len(raw))
	for _, p := range raw {
		pos := domain.Position{
			Symbol:    p.Symbol,
			Qty:       p.Qty,
			CostBasis: p.CostBasis,
		}
		if p.MarketValue != nil {
			pos.MarketValue = *p.MarketValue
		}
		if p.UnrealizedPL != nil {
			pos.UnrealizedPL = *p.UnrealizedPL
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// LatestMinuteClose fetches the most recent minute bar for symbol from the
// market-data API and returns its close.
func (b *AlpacaBroker) LatestMinuteClose(_ context.Context, symbol string) (decimal.Decimal, error) {
	bars, err := b.data.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneMin,
		Start:      time.Now().Add(-24 * time.Hour),
		TotalLimit: 1,
		Sort:       marketdata.SortDesc,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetching bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return decimal.Zero, fmt.Errorf("no recent bars for %s", symbol)
	}
	return decimal.NewFromFloat(bars[0].Close), nil
}
