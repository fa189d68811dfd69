package broker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"alpacacli/internal/config"
	"alpacacli/internal/domain"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		mode    string
		want    string
	}{
		{"explicit wins", "http://localhost:9000", "live", "http://localhost:9000"},
		{"live mode", "", "live", domain.LiveBaseURL},
		{"paper mode", "", "paper", domain.PaperBaseURL},
		{"default is paper", "", "", domain.PaperBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveBaseURL(tt.baseURL, tt.mode); got != tt.want {
				t.Errorf("ResolveBaseURL(%q, %q) = %q, want %q", tt.baseURL, tt.mode, got, tt.want)
			}
		})
	}
}

func TestNewAlpacaBrokerRequiresCredentials(t *testing.T) {
	t.Setenv("APCA_API_KEY_ID", "")
	t.Setenv("APCA_API_SECRET_KEY", "")
	t.Setenv("ALPACA_BASE_URL", "")

	store, err := config.Open(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	_, err = NewAlpacaBroker(store)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("NewAlpacaBroker() error = %v, want ErrNotConfigured", err)
	}
}

func TestSimulatorSubmitOrder(t *testing.T) {
	sim := NewSimulatorBroker()

	order, err := sim.SubmitOrder(context.Background(), domain.OrderRequest{
		Symbol:      "AAPL",
		Qty:         decimal.NewFromInt(5),
		Side:        domain.SideBuy,
		Type:        domain.OrderTypeMarket,
		TimeInForce: domain.TIFGTC,
	})
	if err != nil {
		t.Fatalf("SubmitOrder() returned error: %v", err)
	}
	if order.ID == "" {
		t.Error("SubmitOrder() returned empty order ID")
	}
	if order.Status != "accepted" {
		t.Errorf("Status = %q, want %q", order.Status, "accepted")
	}
	if len(sim.Submitted) != 1 {
		t.Fatalf("Submitted has %d requests, want 1", len(sim.Submitted))
	}
	if got := sim.Submitted[0].Symbol; got != "AAPL" {
		t.Errorf("Submitted symbol = %q, want %q", got, "AAPL")
	}
}

func TestSimulatorErrPropagates(t *testing.T) {
	sim := NewSimulatorBroker()
	sim.Err = errors.New("rejected")

	if _, err := sim.SubmitOrder(context.Background(), domain.OrderRequest{}); err == nil {
		t.Error("SubmitOrder() = nil error, want propagated failure")
	}
	if _, err := sim.GetPositions(context.Background()); err == nil {
		t.Error("GetPositions() = nil error, want propagated failure")
	}
}

func TestSimulatorLatestMinuteClose(t *testing.T) {
	sim := NewSimulatorBroker()
	sim.Closes["AAPL"] = decimal.RequireFromString("150.25")

	close, err := sim.LatestMinuteClose(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("LatestMinuteClose() returned error: %v", err)
	}
	if close.StringFixed(2) != "150.25" {
		t.Errorf("close = %s, want 150.25", close)
	}

	if _, err := sim.LatestMinuteClose(context.Background(), "MSFT"); err == nil {
		t.Error("LatestMinuteClose() = nil error for unknown symbol, want error")
	}
}
