package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"alpacacli/internal/cli"
)

const defaultHistoryLimit = 20

func historyOptions() []cli.OptionDecl {
	return []cli.OptionDecl{
		{Name: "limit", Type: cli.TypeNumber, Default: float64(defaultHistoryLimit), HasDefault: true},
	}
}

func historyRules() []cli.Rule {
	return []cli.Rule{
		{Field: "limit", Kind: cli.RuleOptional},
	}
}

func (a *App) runHistory(ctx context.Context, inv *cli.Invocation) error {
	if a.Journal == nil {
		return errors.New("order journal unavailable")
	}

	limit := int(inv.Number("limit"))
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := a.Journal.List(ctx, limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.Out, "No journaled orders.")
		return nil
	}

	table := tablewriter.NewTable(a.Out,
		tablewriter.WithHeader([]string{"Time", "Side", "Qty", "Symbol", "Type", "Status", "Order ID"}),
	)
	for _, e := range entries {
		table.Append([]string{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Side,
			e.Qty,
			e.Symbol,
			e.Type,
			e.Status,
			e.OrderID,
		})
	}
	table.Render()
	return nil
}
