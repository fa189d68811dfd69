// Package commands implements the CLI command handlers (configure, buy,
// sell, report, history, help) on top of the dispatch core, with all
// collaborators injected so handlers stay testable.
package commands

import (
	"context"
	"io"
	"log/slog"

	"alpacacli/internal/broker"
	"alpacacli/internal/cli"
	"alpacacli/internal/config"
	"alpacacli/internal/domain"
	"alpacacli/internal/journal"
)

// App carries the collaborators every handler may need. NewBroker is called
// lazily so commands that never talk to the brokerage work without
// credentials.
type App struct {
	Store     *config.Store
	Journal   *journal.Journal // may be nil; journaling is then skipped
	Out       io.Writer
	Log       *slog.Logger
	NewBroker func(*config.Store) (broker.Broker, error)
}

// Registry builds the full command table. Specs are constructed once and
// read-only afterward; unrecognized command names fall back to help.
func (a *App) Registry() *cli.Registry {
	reg := cli.NewRegistry()

	reg.Register(&cli.CommandSpec{
		Name:        "configure",
		Usage:       configureUsage,
		Description: "Save brokerage credentials, trading mode, and base URL",
		Options:     configureOptions(),
		Rules:       configureRules(),
		Run:         a.runConfigure,
	})

	reg.Register(&cli.CommandSpec{
		Name:        "buy",
		Usage:       buyUsage,
		Description: "Place a buy order for a symbol",
		Options:     tradeOptions(),
		Rules:       tradeRules(),
		Run: func(ctx context.Context, inv *cli.Invocation) error {
			return a.runTrade(ctx, inv, domain.SideBuy, buyUsage)
		},
	})

	reg.Register(&cli.CommandSpec{
		Name:        "sell",
		Usage:       sellUsage,
		Description: "Place a sell order for a symbol",
		Options:     tradeOptions(),
		Rules:       tradeRules(),
		Run: func(ctx context.Context, inv *cli.Invocation) error {
			return a.runTrade(ctx, inv, domain.SideSell, sellUsage)
		},
	})

	reg.Register(&cli.CommandSpec{
		Name:        "report",
		Usage:       "alpaca report",
		Description: "Show open positions and unrealized profit/loss",
		Run:         a.runReport,
	})

	reg.Register(&cli.CommandSpec{
		Name:        "history",
		Usage:       "alpaca history [--limit=<number>]",
		Description: "List orders previously submitted from this machine",
		Options:     historyOptions(),
		Rules:       historyRules(),
		Run:         a.runHistory,
	})

	reg.Register(&cli.CommandSpec{
		Name:        "help",
		Usage:       "alpaca help [command]",
		Description: "Show the command list or one command's usage",
		Run:         a.helpHandler(reg),
	})

	return reg
}
