package commands

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"alpacacli/internal/domain"
	"alpacacli/internal/journal"
)

func withTestJournal(t *testing.T, app *App) *journal.Journal {
	t.Helper()
	j, err := journal.Open(filepath.Join(t.TempDir(), "orders.db"))
	if err != nil {
		t.Fatalf("opening journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	app.Journal = j
	return j
}

func TestHistoryListsJournaledOrders(t *testing.T) {
	app, sim, out := newTestApp(t)
	withTestJournal(t, app)
	sim.Closes["AAPL"] = decimal.RequireFromString("150")
	ctx := context.Background()
	reg := app.Registry()

	if err := reg.Dispatch(ctx, []string{"buy", "3", "AAPL"}); err != nil {
		t.Fatalf("Dispatch(buy) returned error: %v", err)
	}
	out.Reset()

	if err := reg.Dispatch(ctx, []string{"history"}); err != nil {
		t.Fatalf("Dispatch(history) returned error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "AAPL") {
		t.Errorf("history should list the journaled order:\n%s", output)
	}
	if !strings.Contains(output, "sim-1") {
		t.Errorf("history should include the order ID:\n%s", output)
	}
}

func TestHistoryEmptyJournal(t *testing.T) {
	app, _, out := newTestApp(t)
	withTestJournal(t, app)

	if err := app.Registry().Dispatch(context.Background(), []string{"history"}); err != nil {
		t.Fatalf("Dispatch(history) returned error: %v", err)
	}
	if !strings.Contains(out.String(), "No journaled orders.") {
		t.Errorf("output = %q, want empty-journal notice", out.String())
	}
}

func TestHistoryLimitFlag(t *testing.T) {
	app, _, out := newTestApp(t)
	j := withTestJournal(t, app)
	ctx := context.Background()

	for i, id := range []string{"a", "b", "c"} {
		order := &domain.Order{
			ID:        id,
			Symbol:    "AAPL",
			Qty:       decimal.NewFromInt(int64(i + 1)),
			Side:      domain.SideBuy,
			Type:      domain.OrderTypeMarket,
			Status:    "accepted",
			CreatedAt: time.Date(2026, 8, 28, 10, i, 0, 0, time.UTC),
		}
		if err := j.Append(ctx, order); err != nil {
			t.Fatalf("Append(%s) returned error: %v", id, err)
		}
	}

	if err := app.Registry().Dispatch(ctx, []string{"history", "--limit=1"}); err != nil {
		t.Fatalf("Dispatch(history --limit=1) returned error: %v", err)
	}
	// Exactly one of the three order IDs should appear.
	output := out.String()
	count := 0
	for _, id := range []string{"a", "b", "c"} {
		if strings.Contains(output, " "+id+" ") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("history --limit=1 rendered %d orders, want 1:\n%s", count, output)
	}
}

func TestHistoryWithoutJournalFails(t *testing.T) {
	app, _, _ := newTestApp(t)

	if err := app.Registry().Dispatch(context.Background(), []string{"history"}); err == nil {
		t.Error("Dispatch(history) = nil without a journal, want error")
	}
}
