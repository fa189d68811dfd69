package cli

import (
	"context"
	"testing"
)

func testRegistry(t *testing.T) (*Registry, *[]string) {
	t.Helper()
	var calls []string

	reg := NewRegistry()
	reg.Register(&CommandSpec{
		Name:    "trade",
		Options: testDecls(),
		Rules:   testRules(),
		Run: func(_ context.Context, _ *Invocation) error {
			calls = append(calls, "trade")
			return nil
		},
	})
	reg.Register(&CommandSpec{
		Name: "help",
		Run: func(_ context.Context, _ *Invocation) error {
			calls = append(calls, "help")
			return nil
		},
	})
	return reg, &calls
}

func TestDispatchRunsHandler(t *testing.T) {
	reg, calls := testRegistry(t)

	if err := reg.Dispatch(context.Background(), []string{"trade", "AAPL"}); err != nil {
		t.Fatalf("Dispatch() = %v, want nil", err)
	}
	if len(*calls) != 1 || (*calls)[0] != "trade" {
		t.Errorf("calls = %v, want [trade]", *calls)
	}
}

func TestDispatchUnknownFallsBackToHelp(t *testing.T) {
	reg, calls := testRegistry(t)

	if err := reg.Dispatch(context.Background(), []string{"frobnicate"}); err != nil {
		t.Fatalf("Dispatch() = %v, want nil (fallback to help)", err)
	}
	if len(*calls) != 1 || (*calls)[0] != "help" {
		t.Errorf("calls = %v, want [help]", *calls)
	}
}

func TestDispatchNoArgsRunsHelp(t *testing.T) {
	reg, calls := testRegistry(t)

	if err := reg.Dispatch(context.Background(), nil); err != nil {
		t.Fatalf("Dispatch() = %v, want nil", err)
	}
	if len(*calls) != 1 || (*calls)[0] != "help" {
		t.Errorf("calls = %v, want [help]", *calls)
	}
}

func TestDispatchValidationFailureAbortsHandler(t *testing.T) {
	reg, calls := testRegistry(t)

	err := reg.Dispatch(context.Background(), []string{"trade", "AAPL", "--type=bogus"})
	if err == nil {
		t.Fatal("Dispatch() = nil, want validation error")
	}
	if len(*calls) != 0 {
		t.Errorf("handler ran despite validation failure: calls = %v", *calls)
	}
}
