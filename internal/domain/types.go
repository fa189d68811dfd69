// Package domain defines the order and position types shared by the CLI
// commands and the broker layer.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side is the direction of an order.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// OrderType is the order execution type accepted by the brokerage.
type OrderType string

const (
	OrderTypeMarket    OrderType = "market"
	OrderTypeLimit     OrderType = "limit"
	OrderTypeStop      OrderType = "stop"
	OrderTypeStopLimit OrderType = "stop_limit"
)

// TimeInForce is how long an order remains active at the brokerage.
type TimeInForce string

const (
	TIFDay TimeInForce = "day"
	TIFGTC TimeInForce = "gtc"
	TIFOPG TimeInForce = "opg"
	TIFIOC TimeInForce = "ioc"
)

// Default Alpaca trading endpoints, selected by the configured mode unless
// an explicit baseUrl is stored.
const (
	PaperBaseURL = "https://paper-api.alpaca.markets"
	LiveBaseURL  = "https://api.alpaca.markets"
)

// OrderRequest is a fully resolved order ready for submission.
type OrderRequest struct {
	Symbol        string
	Qty           decimal.Decimal
	Side          Side
	Type          OrderType
	TimeInForce   TimeInForce
	LimitPrice    *decimal.Decimal
	StopPrice     *decimal.Decimal
	ClientOrderID string
}

// Order is an order as acknowledged by the brokerage.
type Order struct {
	ID            string
	ClientOrderID string
	Symbol        string
	Qty           decimal.Decimal
	Side          Side
	Type          OrderType
	TimeInForce   TimeInForce
	LimitPrice    *decimal.Decimal
	StopPrice     *decimal.Decimal
	Status        string
	CreatedAt     time.Time
}

// Position is an open position held at the brokerage.
type Position struct {
	Symbol       string
	Qty          decimal.Decimal
	CostBasis    decimal.Decimal
	MarketValue  decimal.Decimal
	UnrealizedPL decimal.Decimal
}
