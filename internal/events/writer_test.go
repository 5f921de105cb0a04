package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"partnerline/internal/db"
	"partnerline/internal/events"
)

func newWriter(t *testing.T) (events.Writer, context.Context) {
	t.Helper()
	store, err := db.Open(db.Config{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	return events.Writer{Store: store, Now: func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}}, ctx
}

func TestAppendBeforeInit(t *testing.T) {
	store, err := db.Open(db.Config{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	w := events.Writer{Store: store}
	err = w.Append(context.Background(), "sample.generated", "dataset", "", nil)
	if !errors.Is(err, db.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestAppendAndLatest(t *testing.T) {
	w, ctx := newWriter(t)
	if err := w.Append(ctx, "sample.generated", "dataset", "", events.Payload{"notices": 1}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := w.Append(ctx, "data.cleared", "dataset", "", nil); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, err := w.Latest(ctx, 10)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Type != "data.cleared" || got[1].Type != "sample.generated" {
		t.Fatalf("events not newest-first: %+v", got)
	}
	if got[0].TS != "2024-06-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp: %s", got[0].TS)
	}
}
