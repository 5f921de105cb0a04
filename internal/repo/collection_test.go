package repo_test

import (
	"context"
	"errors"
	"testing"

	"partnerline/internal/db"
	"partnerline/internal/domain"
	"partnerline/internal/repo"
)

func newRepos(t *testing.T) (repo.Repos, context.Context) {
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
	return repo.New(store), ctx
}

func TestCollectionRoundTrip(t *testing.T) {
	r, ctx := newRepos(t)
	p := domain.Project{
		ID:           "proj-wing",
		Name:         "Wing Design Optimization",
		Status:       "active",
		POC:          "Sarah Johnson",
		TechLead:     "Michael Chen",
		Budget:       500000,
		DepartmentID: "airplanes",
	}
	if err := r.Projects.Add(ctx, p); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, ok, err := r.Projects.Get(ctx, "proj-wing")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Name != p.Name || got.Budget != p.Budget {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := r.Projects.Add(ctx, p); !errors.Is(err, db.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestGetAbsentIsSoft(t *testing.T) {
	r, ctx := newRepos(t)
	_, ok, err := r.SPIs.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("absence should not error: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for missing id")
	}
}

func TestUpdateMutatesInPlace(t *testing.T) {
	r, ctx := newRepos(t)
	s := domain.SitRep{ID: "sitrep-1", Title: "Kickoff", Status: "on-track", ReviewStatus: "pending-review"}
	if err := r.SitReps.Add(ctx, s); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := r.SitReps.Update(ctx, "sitrep-1", func(v *domain.SitRep) {
		v.ReviewStatus = "submitted"
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _, err := r.SitReps.Get(ctx, "sitrep-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ReviewStatus != "submitted" || got.Status != "on-track" {
		t.Fatalf("unexpected record after update: %+v", got)
	}

	err = r.SitReps.Update(ctx, "missing", func(v *domain.SitRep) {})
	if !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCountsSplitCollaboratorTypes(t *testing.T) {
	r, ctx := newRepos(t)
	add := func(id, typ string) {
		t.Helper()
		if err := r.Collaborators.Add(ctx, domain.Collaborator{ID: id, Name: id, Type: typ}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	add("walmart", "fortune30")
	add("amazon", "fortune30")
	add("airplanes-1", "other")
	if err := r.SMEPartners.Add(ctx, domain.Collaborator{ID: "sme-1", Name: "sme-1", Type: "sme"}); err != nil {
		t.Fatalf("add sme: %v", err)
	}
	counts, err := r.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.Fortune30 != 2 || counts.InternalPartners != 1 || counts.SMEPartners != 1 {
		t.Fatalf("unexpected split: %+v", counts)
	}
}
