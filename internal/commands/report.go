package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"alpacacli/internal/cli"
)

func (a *App) runReport(ctx context.Context, _ *cli.Invocation) error {
	b, err := a.NewBroker(a.Store)
	if err != nil {
		return err
	}

	positions, err := b.GetPositions(ctx)
	if err != nil {
		return err
	}

	if len(positions) == 0 {
		fmt.Fprintln(a.Out, "No open positions.")
		return nil
	}

	table := tablewriter.NewTable(a.Out,
		tablewriter.WithHeader([]string{"Symbol", "Qty", "Cost Basis", "Market Value", "Unrealized P/L"}),
	)

	total := decimal.Zero
	for _, p := range positions {
		table.Append([]string{
			p.Symbol,
			p.Qty.String(),
			money(p.CostBasis),
			money(p.MarketValue),
			signedMoney(p.UnrealizedPL),
		})
		total = total.Add(p.UnrealizedPL)
	}
	table.Render()

	fmt.Fprintf(a.Out, "\nTotal unrealized P/L: %s\n", signedMoney(total))
	return nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// signedMoney always carries a sign, e.g. +$100.00 or -$12.34.
func signedMoney(d decimal.Decimal) string {
	if d.Sign() < 0 {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "+$" + d.StringFixed(2)
}
