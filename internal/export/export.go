package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"partnerline/internal/domain"
	"partnerline/internal/repo"
)

// Snapshot is a self-contained dump of every collection, suitable for
// backup or offline inspection.
type Snapshot struct {
	ExportDate    string                `json:"export_date" format:"date-time"`
	Departments   []domain.Department   `json:"departments"`
	Projects      []domain.Project      `json:"projects"`
	Collaborators []domain.Collaborator `json:"collaborators"`
	SMEPartners   []domain.Collaborator `json:"sme_partners"`
	SPIs          []domain.SPI          `json:"spis"`
	Objectives    []domain.Objective    `json:"objectives"`
	Initiatives   []domain.Initiative   `json:"initiatives"`
	SitReps       []domain.SitRep       `json:"sitreps"`
}

// Build reads every collection into a snapshot stamped with now.
func Build(ctx context.Context, r repo.Repos, now time.Time) (Snapshot, error) {
	s := Snapshot{ExportDate: now.UTC().Format(time.RFC3339)}
	var err error
	if s.Departments, err = r.Departments.GetAll(ctx); err != nil {
		return s, fmt.Errorf("export departments: %w", err)
	}
	if s.Projects, err = r.Projects.GetAll(ctx); err != nil {
		return s, fmt.Errorf("export projects: %w", err)
	}
	if s.Collaborators, err = r.Collaborators.GetAll(ctx); err != nil {
		return s, fmt.Errorf("export collaborators: %w", err)
	}
	if s.SMEPartners, err = r.SMEPartners.GetAll(ctx); err != nil {
		return s, fmt.Errorf("export sme partners: %w", err)
	}
	if s.SPIs, err = r.SPIs.GetAll(ctx); err != nil {
		return s, fmt.Errorf("export spis: %w", err)
	}
	if s.Objectives, err = r.Objectives.GetAll(ctx); err != nil {
		return s, fmt.Errorf("export objectives: %w", err)
	}
	if s.Initiatives, err = r.Initiatives.GetAll(ctx); err != nil {
		return s, fmt.Errorf("export initiatives: %w", err)
	}
	if s.SitReps, err = r.SitReps.GetAll(ctx); err != nil {
		return s, fmt.Errorf("export sitreps: %w", err)
	}
	return s, nil
}

// Write renders the snapshot as indented JSON.
func Write(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
