package sample_test

import (
	"testing"
	"time"

	"partnerline/internal/sample"
)

var genNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestPoolsHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	check := func(kind, id string) {
		t.Helper()
		if id == "" {
			t.Fatalf("%s: empty id", kind)
		}
		if seen[id] {
			t.Fatalf("%s: duplicate id %s", kind, id)
		}
		seen[id] = true
	}
	for _, d := range sample.Departments() {
		check("department", d.ID)
	}
	fortune30 := sample.Fortune30Partners(genNow)
	for _, c := range fortune30 {
		check("fortune30", c.ID)
	}
	internal := sample.InternalPartners(genNow)
	for _, c := range internal {
		check("internal", c.ID)
	}
	for _, c := range sample.SMEPartners(genNow) {
		check("sme", c.ID)
	}
	projects := sample.Projects(sample.Departments(), internal, genNow)
	for _, p := range projects {
		check("project", p.ID)
	}
	var projectIDs, f30IDs, internalIDs []string
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}
	for _, c := range fortune30 {
		f30IDs = append(f30IDs, c.ID)
	}
	for _, c := range internal {
		internalIDs = append(internalIDs, c.ID)
	}
	spis := sample.SPIs(projectIDs, f30IDs, internalIDs, genNow)
	for _, s := range spis {
		check("spi", s.ID)
	}
	objectives := sample.Objectives()
	for _, o := range objectives {
		check("objective", o.ID)
	}
	for _, in := range sample.Initiatives(objectives) {
		check("initiative", in.ID)
	}
	for _, sr := range sample.SitReps(spis, genNow) {
		check("sitrep", sr.ID)
	}
}

func TestProjectLeadsDiffer(t *testing.T) {
	internal := sample.InternalPartners(genNow)
	for _, p := range sample.Projects(sample.Departments(), internal, genNow) {
		if p.POC == "" || p.TechLead == "" {
			t.Fatalf("project %s missing POC or tech lead", p.ID)
		}
		if p.POC == p.TechLead {
			t.Fatalf("project %s: POC and tech lead are the same identity", p.ID)
		}
	}
}

func TestSitRepsRequireSPIs(t *testing.T) {
	if got := sample.SitReps(nil, genNow); got != nil {
		t.Fatalf("expected no sitreps without spis, got %d", len(got))
	}
}

func TestInitiativesCrossLinkObjectives(t *testing.T) {
	objectives := sample.Objectives()
	initiatives := sample.Initiatives(objectives)
	if len(initiatives) != 4 {
		t.Fatalf("expected 4 initiatives, got %d", len(initiatives))
	}
	byID := map[string]map[string]bool{}
	for _, in := range initiatives {
		members := map[string]bool{}
		for _, id := range in.ObjectiveIDs {
			members[id] = true
		}
		byID[in.ID] = members
	}
	for _, o := range objectives {
		if len(o.InitiativeIDs) != 1 {
			t.Fatalf("objective %s: expected one initiative link, got %v", o.ID, o.InitiativeIDs)
		}
		if !byID[o.InitiativeIDs[0]][o.ID] {
			t.Fatalf("initiative %s does not list objective %s back", o.InitiativeIDs[0], o.ID)
		}
	}
}

func TestFortune30AgreementsPopulated(t *testing.T) {
	for _, c := range sample.Fortune30Partners(genNow) {
		if c.Type != "fortune30" {
			t.Fatalf("partner %s: unexpected type %s", c.ID, c.Type)
		}
		if c.Agreements == nil || (c.Agreements.NDA == nil && c.Agreements.JTDA == nil) {
			t.Fatalf("partner %s: no agreements", c.ID)
		}
	}
}
