package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"alpacacli/internal/cli"
	"alpacacli/internal/domain"
)

const (
	buyUsage  = "alpaca buy [quantity] <symbol> [--type=market|limit|stop|stop_limit] [--time-in-force=day|gtc|opg|ioc] [--limit-price=<number>] [--stop-price=<number>] [--client-order-id=<string>]"
	sellUsage = "alpaca sell [quantity] <symbol> [--type=market|limit|stop|stop_limit] [--time-in-force=day|gtc|opg|ioc] [--limit-price=<number>] [--stop-price=<number>] [--client-order-id=<string>]"
)

func tradeOptions() []cli.OptionDecl {
	return []cli.OptionDecl{
		{Name: "type", Type: cli.TypeString, Default: "market", HasDefault: true},
		{Name: "time-in-force", Type: cli.TypeString, Default: "gtc", HasDefault: true},
		{Name: "limit-price", Type: cli.TypeNumber},
		{Name: "stop-price", Type: cli.TypeNumber},
		{Name: "client-order-id", Type: cli.TypeString},
	}
}

func tradeRules() []cli.Rule {
	return []cli.Rule{
		{Field: "type", Kind: cli.RuleOneOf, Allowed: []string{"market", "limit", "stop", "stop_limit"}},
		{Field: "time-in-force", Kind: cli.RuleOneOf, Allowed: []string{"day", "gtc", "opg", "ioc"}},
		{Field: "limit-price", Kind: cli.RuleOptional},
		{Field: "stop-price", Kind: cli.RuleOptional},
		{Field: "client-order-id", Kind: cli.RuleOptional},
	}
}

// resolveQtySymbol turns positional tokens into (qty, symbol). A single
// non-numeric token is the symbol with an implied quantity of one; two
// tokens are quantity then symbol. Anything else is a usage error.
func resolveQtySymbol(positional []string) (decimal.Decimal, string, error) {
	switch {
	case len(positional) == 0:
		return decimal.Zero, "", errors.New("missing symbol")
	case len(positional) == 1:
		tok := positional[0]
		if looksNumeric(tok) {
			return decimal.Zero, "", errors.New("missing symbol")
		}
		return decimal.NewFromInt(1), strings.ToUpper(tok), nil
	default:
		qty, err := decimal.NewFromString(positional[0])
		if err != nil {
			return decimal.Zero, "", fmt.Errorf("invalid quantity %q", positional[0])
		}
		return qty, strings.ToUpper(positional[1]), nil
	}
}

func looksNumeric(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

func (a *App) runTrade(ctx context.Context, inv *cli.Invocation, side domain.Side, usage string) error {
	qty, symbol, err := resolveQtySymbol(inv.Positional)
	if err != nil {
		return fmt.Errorf("%w\nusage: %s", err, usage)
	}

	req := domain.OrderRequest{
		Symbol:        symbol,
		Qty:           qty,
		Side:          side,
		Type:          domain.OrderType(inv.String("type")),
		TimeInForce:   domain.TimeInForce(inv.String("time-in-force")),
		ClientOrderID: inv.String("client-order-id"),
	}
	if inv.Has("limit-price") {
		p := decimal.NewFromFloat(inv.Number("limit-price"))
		req.LimitPrice = &p
	}
	if inv.Has("stop-price") {
		p := decimal.NewFromFloat(inv.Number("stop-price"))
		req.StopPrice = &p
	}

	b, err := a.NewBroker(a.Store)
	if err != nil {
		return err
	}

	order, err := b.SubmitOrder(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Order accepted: %s %s %s (%s, %s)\n",
		order.Side, order.Qty, order.Symbol, req.Type, req.TimeInForce)
	fmt.Fprintf(a.Out, "Order ID: %s\n", order.ID)

	// Best-effort display price for market orders; this is the latest
	// minute close, not the fill price.
	if req.Type == domain.OrderTypeMarket {
		if close, err := b.LatestMinuteClose(ctx, symbol); err != nil {
			a.Log.Warn("indicative price unavailable", "symbol", symbol, "error", err)
		} else {
			fmt.Fprintf(a.Out, "Indicative price: $%s (latest minute close)\n", close.StringFixed(2))
		}
	}

	if a.Journal != nil {
		if err := a.Journal.Append(ctx, order); err != nil {
			a.Log.Warn("journaling order failed", "orderID", order.ID, "error", err)
		}
	}

	return nil
}
