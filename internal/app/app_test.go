package app_test

import (
	"context"
	"testing"

	"partnerline/internal/app"
	"partnerline/internal/repo"
	"partnerline/internal/sample"
)

func newApp(t *testing.T) (*app.App, context.Context) {
	t.Helper()
	ctx := context.Background()
	a, err := app.Open(ctx, t.TempDir())
	if err != nil {
		t.Fatalf("open app: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a, ctx
}

func TestClearThenRegenerate(t *testing.T) {
	a, ctx := newApp(t)
	if _, err := a.Coordinator.Generate(ctx, sample.Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := a.ClearData(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	counts, err := a.Repos.Counts(ctx)
	if err != nil {
		t.Fatalf("counts after clear: %v", err)
	}
	if counts != (repo.DataCounts{}) {
		t.Fatalf("expected empty store after clear, got %+v", counts)
	}

	// The store must be ready for a fresh run without reopening.
	if _, err := a.Coordinator.Generate(ctx, sample.Request{}); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	counts, err = a.Repos.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.Projects == 0 || counts.SitReps == 0 {
		t.Fatalf("regeneration persisted nothing: %+v", counts)
	}
}

func TestClearIsRecorded(t *testing.T) {
	a, ctx := newApp(t)
	if err := a.ClearData(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	events, err := a.Events.Latest(ctx, 5)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 1 || events[0].Type != "data.cleared" {
		t.Fatalf("expected single data.cleared event, got %+v", events)
	}
}
