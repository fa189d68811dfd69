package commands

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"alpacacli/internal/broker"
	"alpacacli/internal/config"
)

// newTestApp wires an App against a temp config store, a simulator broker,
// and an in-memory output buffer.
func newTestApp(t *testing.T) (*App, *broker.SimulatorBroker, *bytes.Buffer) {
	t.Helper()
	t.Setenv("APCA_API_KEY_ID", "")
	t.Setenv("APCA_API_SECRET_KEY", "")
	t.Setenv("ALPACA_BASE_URL", "")

	store, err := config.Open(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	sim := broker.NewSimulatorBroker()
	out := &bytes.Buffer{}

	app := &App{
		Store: store,
		Out:   out,
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		NewBroker: func(_ *config.Store) (broker.Broker, error) {
			return sim, nil
		},
	}
	return app, sim, out
}
