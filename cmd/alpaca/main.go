package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"alpacacli/internal/broker"
	"alpacacli/internal/commands"
	"alpacacli/internal/config"
	"alpacacli/internal/journal"
	"alpacacli/internal/util"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	log := util.NewLogger(os.Getenv("LOG_LEVEL"))

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	store, err := config.Open(cfgPath)
	if err != nil {
		return err
	}

	// The journal is best-effort: trading still works when it can't open.
	var jnl *journal.Journal
	jnlPath := filepath.Join(filepath.Dir(cfgPath), "orders.db")
	if err := os.MkdirAll(filepath.Dir(jnlPath), 0o755); err != nil {
		log.Warn("creating journal directory failed", "path", jnlPath, "error", err)
	} else if jnl, err = journal.Open(jnlPath); err != nil {
		log.Warn("opening order journal failed", "path", jnlPath, "error", err)
		jnl = nil
	}
	if jnl != nil {
		defer jnl.Close()
	}

	app := &commands.App{
		Store:   store,
		Journal: jnl,
		Out:     os.Stdout,
		Log:     log,
		NewBroker: func(s *config.Store) (broker.Broker, error) {
			return broker.NewAlpacaBroker(s)
		},
	}

	return app.Registry().Dispatch(context.Background(), args)
}
