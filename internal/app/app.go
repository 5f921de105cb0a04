package app

import (
	"context"
	"fmt"

	"partnerline/internal/config"
	"partnerline/internal/db"
	"partnerline/internal/events"
	"partnerline/internal/repo"
	"partnerline/internal/sample"
)

// App bundles the opened, initialized store with the services built over
// it. One App per workspace per process.
type App struct {
	Store       *db.Store
	Repos       repo.Repos
	Events      events.Writer
	Config      *config.Config
	Coordinator *sample.Coordinator
}

// Open opens the workspace store, initializes the schema, and wires the
// repositories, audit writer, and sample coordinator. Workspace config
// overrides the coordinator's default quantities.
func Open(ctx context.Context, workspace string) (*App, error) {
	cfg, err := config.Load(workspace)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	store, err := db.Open(db.Config{Workspace: workspace})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, err
	}
	coord := sample.NewCoordinator(store)
	coord.Defaults = sample.DefaultsFrom(cfg)
	return &App{
		Store:       store,
		Repos:       repo.New(store),
		Events:      events.Writer{Store: store},
		Config:      cfg,
		Coordinator: coord,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// ClearData destroys every collection and re-initializes the store to an
// empty but ready state, so callers can generate again immediately. The
// clear is recorded in the fresh event log.
func (a *App) ClearData(ctx context.Context) error {
	if err := a.Store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	if err := a.Store.Init(ctx); err != nil {
		return fmt.Errorf("reinitialize store: %w", err)
	}
	if err := a.Events.Append(ctx, "data.cleared", "dataset", "", nil); err != nil {
		return fmt.Errorf("record clear: %w", err)
	}
	return nil
}
