package repo

import (
	"context"
	"fmt"

	"partnerline/internal/db"
	"partnerline/internal/domain"
)

// Repos bundles one repository per collection.
type Repos struct {
	Departments Collection[domain.Department]
	Projects    Collection[domain.Project]
	// Collaborators holds fortune30 and internal partners together,
	// distinguished by the Type field; SME partners are stored apart.
	Collaborators Collection[domain.Collaborator]
	SMEPartners   Collection[domain.Collaborator]
	SPIs          Collection[domain.SPI]
	Objectives    Collection[domain.Objective]
	Initiatives   Collection[domain.Initiative]
	SitReps       Collection[domain.SitRep]
}

func New(store *db.Store) Repos {
	return Repos{
		Departments:   NewCollection(store, db.Departments, func(d domain.Department) string { return d.ID }),
		Projects:      NewCollection(store, db.Projects, func(p domain.Project) string { return p.ID }),
		Collaborators: NewCollection(store, db.Collaborators, func(c domain.Collaborator) string { return c.ID }),
		SMEPartners:   NewCollection(store, db.SMEPartners, func(c domain.Collaborator) string { return c.ID }),
		SPIs:          NewCollection(store, db.SPIs, func(s domain.SPI) string { return s.ID }),
		Objectives:    NewCollection(store, db.Objectives, func(o domain.Objective) string { return o.ID }),
		Initiatives:   NewCollection(store, db.Initiatives, func(i domain.Initiative) string { return i.ID }),
		SitReps:       NewCollection(store, db.SitReps, func(s domain.SitRep) string { return s.ID }),
	}
}

// DataCounts is the per-kind record count snapshot shown to callers so
// they can reconcile requested vs persisted quantities.
type DataCounts struct {
	Projects         int `json:"projects"`
	SPIs             int `json:"spis"`
	Objectives       int `json:"objectives"`
	SitReps          int `json:"sitreps"`
	Fortune30        int `json:"fortune30"`
	InternalPartners int `json:"internal_partners"`
	SMEPartners      int `json:"sme_partners"`
	Initiatives      int `json:"initiatives"`
	Departments      int `json:"departments"`
}

// Counts tallies every collection. Fortune-30 and internal partners are
// split by collaborator type.
func (r Repos) Counts(ctx context.Context) (DataCounts, error) {
	var counts DataCounts
	var err error
	if counts.Projects, err = r.Projects.Count(ctx); err != nil {
		return counts, fmt.Errorf("count projects: %w", err)
	}
	if counts.SPIs, err = r.SPIs.Count(ctx); err != nil {
		return counts, fmt.Errorf("count spis: %w", err)
	}
	if counts.Objectives, err = r.Objectives.Count(ctx); err != nil {
		return counts, fmt.Errorf("count objectives: %w", err)
	}
	if counts.SitReps, err = r.SitReps.Count(ctx); err != nil {
		return counts, fmt.Errorf("count sitreps: %w", err)
	}
	if counts.Initiatives, err = r.Initiatives.Count(ctx); err != nil {
		return counts, fmt.Errorf("count initiatives: %w", err)
	}
	if counts.Departments, err = r.Departments.Count(ctx); err != nil {
		return counts, fmt.Errorf("count departments: %w", err)
	}
	if counts.SMEPartners, err = r.SMEPartners.Count(ctx); err != nil {
		return counts, fmt.Errorf("count sme partners: %w", err)
	}
	collaborators, err := r.Collaborators.GetAll(ctx)
	if err != nil {
		return counts, fmt.Errorf("list collaborators: %w", err)
	}
	for _, c := range collaborators {
		switch c.Type {
		case "fortune30":
			counts.Fortune30++
		default:
			counts.InternalPartners++
		}
	}
	return counts, nil
}
