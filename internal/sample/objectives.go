package sample

import (
	"fmt"

	"partnerline/internal/domain"
)

type objectiveProfile struct {
	Title          string
	Initiative     string
	DesiredOutcome string
}

// objectiveCatalog caps the objective pool at 12 entries across four
// initiatives.
var objectiveCatalog = []objectiveProfile{
	{Title: "Reduce integration lead time", Initiative: "Operational Excellence", DesiredOutcome: "Cut cross-team integration lead time by 30%"},
	{Title: "Standardize test reporting", Initiative: "Operational Excellence", DesiredOutcome: "One shared test report format across programs"},
	{Title: "Automate build pipelines", Initiative: "Operational Excellence", DesiredOutcome: "No manual steps between commit and test article"},
	{Title: "Expand Fortune-30 co-development", Initiative: "Strategic Partnerships", DesiredOutcome: "Two active joint development agreements per year"},
	{Title: "Grow SME supplier bench", Initiative: "Strategic Partnerships", DesiredOutcome: "Qualified SME partner in every department"},
	{Title: "Joint roadmap reviews", Initiative: "Strategic Partnerships", DesiredOutcome: "Quarterly roadmap alignment with top partners"},
	{Title: "Field one applied-ML pilot", Initiative: "Applied Research", DesiredOutcome: "A deployed ML pilot with measured benefit"},
	{Title: "Mature additive processes", Initiative: "Applied Research", DesiredOutcome: "Flight-qualified additive parts catalogue"},
	{Title: "Prototype autonomy stack", Initiative: "Applied Research", DesiredOutcome: "Reusable autonomy stack demonstrated in trial"},
	{Title: "Cut unplanned downtime", Initiative: "Fleet Readiness", DesiredOutcome: "Unplanned downtime below 2% fleet-wide"},
	{Title: "Instrument critical assets", Initiative: "Fleet Readiness", DesiredOutcome: "Telemetry on every critical asset"},
	{Title: "Shorten repair turnaround", Initiative: "Fleet Readiness", DesiredOutcome: "Median repair turnaround under 10 days"},
}

// Objectives generates the objective pool in catalogue order.
func Objectives() []domain.Objective {
	out := make([]domain.Objective, 0, len(objectiveCatalog))
	for i, p := range objectiveCatalog {
		out = append(out, domain.Objective{
			ID:             fmt.Sprintf("obj-%d", i+1),
			Title:          p.Title,
			Initiative:     p.Initiative,
			DesiredOutcome: p.DesiredOutcome,
		})
	}
	return out
}

// Initiatives derives the initiative set from the supplied objectives,
// cross-linking both directions: each initiative lists its supporting
// objective ids, and each objective gets its initiative id appended.
func Initiatives(objectives []domain.Objective) []domain.Initiative {
	order := []string{}
	byName := map[string]*domain.Initiative{}
	for i := range objectives {
		name := objectives[i].Initiative
		init, ok := byName[name]
		if !ok {
			init = &domain.Initiative{
				ID:             "init-" + slug(name),
				Initiative:     name,
				DesiredOutcome: fmt.Sprintf("Deliver the %s initiative", name),
			}
			byName[name] = init
			order = append(order, name)
		}
		init.ObjectiveIDs = append(init.ObjectiveIDs, objectives[i].ID)
		objectives[i].InitiativeIDs = append(objectives[i].InitiativeIDs, init.ID)
	}
	out := make([]domain.Initiative, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}
