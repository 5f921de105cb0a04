package sample_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"partnerline/internal/db"
	"partnerline/internal/repo"
	"partnerline/internal/sample"
)

type testEnv struct {
	Store *db.Store
	Coord *sample.Coordinator
	Ctx   context.Context
}

func newTestEnv(t *testing.T) testEnv {
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
	coord := sample.NewCoordinator(store)
	coord.Now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return testEnv{Store: store, Coord: coord, Ctx: ctx}
}

func intPtr(v int) *int { return &v }

func TestGenerateDefaults(t *testing.T) {
	env := newTestEnv(t)
	res, err := env.Coord.Generate(env.Ctx, sample.Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := sample.DefaultQuantities()
	if res.Realized.Projects != want.Projects {
		t.Fatalf("projects: got %d want %d", res.Realized.Projects, want.Projects)
	}
	if res.Realized.SPIs != want.SPIs || res.Realized.Objectives != want.Objectives || res.Realized.SitReps != want.SitReps {
		t.Fatalf("unexpected realized: %+v", res.Realized)
	}
	// The Fortune-30 pool holds 5 companies, below the default of 6.
	if res.Realized.Fortune30 != 5 {
		t.Fatalf("fortune30: got %d want 5", res.Realized.Fortune30)
	}
	if len(res.Notices) != 1 || res.Notices[0].Kind != "fortune30" {
		t.Fatalf("expected single fortune30 notice, got %+v", res.Notices)
	}
	if res.Departments != 6 {
		t.Fatalf("departments: got %d want 6", res.Departments)
	}
	if res.Initiatives == 0 {
		t.Fatalf("expected derived initiatives")
	}

	counts, err := env.Coord.Repos.Counts(env.Ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.Projects != want.Projects || counts.SitReps != want.SitReps || counts.Fortune30 != 5 {
		t.Fatalf("persisted counts do not match result: %+v", counts)
	}
}

func TestQuantityNoticeReportsRawRequest(t *testing.T) {
	env := newTestEnv(t)
	res, err := env.Coord.Generate(env.Ctx, sample.Request{
		Projects:         intPtr(2),
		SPIs:             intPtr(2),
		Objectives:       intPtr(1),
		SitReps:          intPtr(1),
		Fortune30:        intPtr(10),
		InternalPartners: intPtr(1),
		SMEPartners:      intPtr(1),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(res.Notices) != 1 {
		t.Fatalf("expected one notice, got %+v", res.Notices)
	}
	n := res.Notices[0]
	if n.Kind != "fortune30" || n.Requested != 10 || n.Available != 5 {
		t.Fatalf("unexpected notice: %+v", n)
	}
	if res.Realized.Fortune30 != 5 {
		t.Fatalf("fortune30 realized: got %d want 5", res.Realized.Fortune30)
	}
}

func TestAllZeroRequestPersistsNothing(t *testing.T) {
	env := newTestEnv(t)
	zero := intPtr(0)
	res, err := env.Coord.Generate(env.Ctx, sample.Request{
		Projects:         zero,
		SPIs:             zero,
		Objectives:       zero,
		SitReps:          zero,
		Fortune30:        zero,
		InternalPartners: zero,
		SMEPartners:      zero,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(res.Notices) != 0 {
		t.Fatalf("expected no notices, got %+v", res.Notices)
	}
	counts, err := env.Coord.Repos.Counts(env.Ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts != (repo.DataCounts{}) {
		t.Fatalf("expected empty store, got %+v", counts)
	}
}

func TestReferentialConsistency(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.Coord.Generate(env.Ctx, sample.Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	r := env.Coord.Repos

	projects, err := r.Projects.GetAll(env.Ctx)
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	projectIDs := map[string]bool{}
	for _, p := range projects {
		if projectIDs[p.ID] {
			t.Fatalf("duplicate project id %s", p.ID)
		}
		projectIDs[p.ID] = true
	}

	collaborators, err := r.Collaborators.GetAll(env.Ctx)
	if err != nil {
		t.Fatalf("collaborators: %v", err)
	}
	partnerIDs := map[string]bool{}
	for _, c := range collaborators {
		partnerIDs[c.ID] = true
	}

	spis, err := r.SPIs.GetAll(env.Ctx)
	if err != nil {
		t.Fatalf("spis: %v", err)
	}
	spiIDs := map[string]bool{}
	sitrepRefs := map[string]string{}
	for _, s := range spis {
		spiIDs[s.ID] = true
		if s.ProjectID != "" && !projectIDs[s.ProjectID] {
			t.Fatalf("spi %s links missing project %s", s.ID, s.ProjectID)
		}
		if s.Fortune30ID != "" && !partnerIDs[s.Fortune30ID] {
			t.Fatalf("spi %s links missing fortune30 partner %s", s.ID, s.Fortune30ID)
		}
		if s.InternalPartnerID != "" && !partnerIDs[s.InternalPartnerID] {
			t.Fatalf("spi %s links missing internal partner %s", s.ID, s.InternalPartnerID)
		}
		for _, id := range s.SitrepIDs {
			sitrepRefs[id] = s.ID
		}
	}

	sitreps, err := r.SitReps.GetAll(env.Ctx)
	if err != nil {
		t.Fatalf("sitreps: %v", err)
	}
	for _, sr := range sitreps {
		if !spiIDs[sr.SpiID] {
			t.Fatalf("sitrep %s links missing spi %s", sr.ID, sr.SpiID)
		}
		if sitrepRefs[sr.ID] != sr.SpiID {
			t.Fatalf("spi %s does not list sitrep %s back", sr.SpiID, sr.ID)
		}
	}

	objectives, err := r.Objectives.GetAll(env.Ctx)
	if err != nil {
		t.Fatalf("objectives: %v", err)
	}
	initiatives, err := r.Initiatives.GetAll(env.Ctx)
	if err != nil {
		t.Fatalf("initiatives: %v", err)
	}
	initiativeIDs := map[string]bool{}
	for _, in := range initiatives {
		initiativeIDs[in.ID] = true
	}
	for _, o := range objectives {
		for _, id := range o.InitiativeIDs {
			if !initiativeIDs[id] {
				t.Fatalf("objective %s links missing initiative %s", o.ID, id)
			}
		}
		for _, id := range o.SPIIDs {
			if !spiIDs[id] {
				t.Fatalf("objective %s links missing spi %s", o.ID, id)
			}
		}
	}
}

func TestSmallerRequestIsStablePrefix(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.Coord.Generate(env.Ctx, sample.Request{Projects: intPtr(3)}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	persisted, err := env.Coord.Repos.Projects.GetAll(env.Ctx)
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if len(persisted) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(persisted))
	}
	pool := sample.Projects(sample.Departments(), nil, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	for i, p := range persisted {
		if p.ID != pool[i].ID {
			t.Fatalf("project %d: got %s want prefix id %s", i, p.ID, pool[i].ID)
		}
	}
}

func TestGenerateOnPopulatedStoreFails(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.Coord.Generate(env.Ctx, sample.Request{}); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	_, err := env.Coord.Generate(env.Ctx, sample.Request{})
	if !errors.Is(err, db.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key on second run, got %v", err)
	}
}

func TestGenerateRecordsAuditEvents(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.Coord.Generate(env.Ctx, sample.Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	events, err := env.Coord.Events.Latest(env.Ctx, 10)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	var generated, adjusted bool
	for _, e := range events {
		switch e.Type {
		case "sample.generated":
			generated = true
		case "quantity.adjusted":
			adjusted = true
		}
	}
	if !generated || !adjusted {
		t.Fatalf("missing audit events: generated=%v adjusted=%v", generated, adjusted)
	}
}
