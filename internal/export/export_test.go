package export_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"partnerline/internal/app"
	"partnerline/internal/export"
	"partnerline/internal/sample"
)

func TestSnapshotCoversEveryCollection(t *testing.T) {
	ctx := context.Background()
	a, err := app.Open(ctx, t.TempDir())
	if err != nil {
		t.Fatalf("open app: %v", err)
	}
	defer a.Close()
	res, err := a.Coordinator.Generate(ctx, sample.Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	now := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	snap, err := export.Build(ctx, a.Repos, now)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if snap.ExportDate != "2024-06-02T00:00:00Z" {
		t.Fatalf("unexpected export date: %s", snap.ExportDate)
	}
	if len(snap.Projects) != res.Realized.Projects {
		t.Fatalf("projects: got %d want %d", len(snap.Projects), res.Realized.Projects)
	}
	if len(snap.SitReps) != res.Realized.SitReps {
		t.Fatalf("sitreps: got %d want %d", len(snap.SitReps), res.Realized.SitReps)
	}
	if len(snap.Departments) != res.Departments || len(snap.Initiatives) != res.Initiatives {
		t.Fatalf("reference data missing: %d departments, %d initiatives", len(snap.Departments), len(snap.Initiatives))
	}
	if len(snap.Collaborators) != res.Realized.Fortune30+res.Realized.InternalPartners {
		t.Fatalf("collaborators: got %d", len(snap.Collaborators))
	}
	if len(snap.SMEPartners) != res.Realized.SMEPartners {
		t.Fatalf("sme partners: got %d", len(snap.SMEPartners))
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, snap); err != nil {
		t.Fatalf("write: %v", err)
	}
	var decoded export.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(decoded.SPIs) != len(snap.SPIs) {
		t.Fatalf("spis lost in serialization: %d vs %d", len(decoded.SPIs), len(snap.SPIs))
	}
}
