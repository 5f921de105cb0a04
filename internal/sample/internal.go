package sample

import (
	"fmt"
	"strings"
	"time"

	"partnerline/internal/domain"
)

type personProfile struct {
	Name       string
	Role       string
	Department string
	Projects   []string
}

// internalCatalog lists the internal partner pool: four people for each
// of the six departments.
var internalCatalog = []personProfile{
	{Name: "John Smith", Role: "Lead Engineer", Department: "airplanes", Projects: []string{"Wing Design Optimization", "Fuel Efficiency Project"}},
	{Name: "Amy Patel", Role: "Structures Analyst", Department: "airplanes", Projects: []string{"Composite Fuselage Study"}},
	{Name: "Carlos Rivera", Role: "Flight Test Lead", Department: "airplanes", Projects: []string{"Avionics Upgrade"}},
	{Name: "Dana Brooks", Role: "Program Manager", Department: "airplanes", Projects: []string{"Cabin Modernization"}},
	{Name: "Sarah Johnson", Role: "Project Manager", Department: "helicopters", Projects: []string{"Rotor System Enhancement", "Noise Reduction Initiative"}},
	{Name: "Tom Nguyen", Role: "Drivetrain Engineer", Department: "helicopters", Projects: []string{"Transmission Reliability"}},
	{Name: "Priya Shah", Role: "Avionics Lead", Department: "helicopters", Projects: []string{"Glass Cockpit Retrofit"}},
	{Name: "Luke Harper", Role: "Safety Engineer", Department: "helicopters", Projects: []string{"Autorotation Training Aids"}},
	{Name: "Michael Chang", Role: "Systems Architect", Department: "space", Projects: []string{"Satellite Communications", "Launch Systems"}},
	{Name: "Elena Volkov", Role: "Propulsion Engineer", Department: "space", Projects: []string{"Thruster Qualification"}},
	{Name: "Omar Hassan", Role: "Mission Planner", Department: "space", Projects: []string{"Orbital Debris Survey"}},
	{Name: "Grace Lin", Role: "GNC Engineer", Department: "space", Projects: []string{"Rendezvous Software"}},
	{Name: "Emma Wilson", Role: "Research Lead", Department: "energy", Projects: []string{"Solar Panel Efficiency", "Battery Storage Solutions"}},
	{Name: "Raj Mehta", Role: "Grid Engineer", Department: "energy", Projects: []string{"Microgrid Pilot"}},
	{Name: "Sofia Rossi", Role: "Materials Scientist", Department: "energy", Projects: []string{"Fuel Cell Membranes"}},
	{Name: "Ben Carter", Role: "Controls Engineer", Department: "energy", Projects: []string{"Turbine Monitoring"}},
	{Name: "David Miller", Role: "IT Director", Department: "it", Projects: []string{"Cloud Migration", "Security Enhancement"}},
	{Name: "Nina Petrova", Role: "Platform Engineer", Department: "it", Projects: []string{"Container Platform"}},
	{Name: "Ken Watanabe", Role: "Data Engineer", Department: "it", Projects: []string{"Warehouse Consolidation"}},
	{Name: "Olivia Stone", Role: "Network Architect", Department: "it", Projects: []string{"Campus Backbone Refresh"}},
	{Name: "Lisa Chen", Role: "Innovation Lead", Department: "techlab", Projects: []string{"AI Research", "Quantum Computing Initiative"}},
	{Name: "Mark Ellis", Role: "Prototyping Lead", Department: "techlab", Projects: []string{"Additive Manufacturing Cell"}},
	{Name: "Yuki Tanaka", Role: "Robotics Engineer", Department: "techlab", Projects: []string{"Autonomous Inspection"}},
	{Name: "Hannah Fox", Role: "UX Researcher", Department: "techlab", Projects: []string{"Operator Console Study"}},
}

func internalEmail(name string) string {
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) < 2 {
		return parts[0] + "@company.com"
	}
	return fmt.Sprintf("%s.%s@company.com", parts[0], parts[1])
}

// InternalPartners generates the internal partner pool, ids numbered per
// department in catalogue order.
func InternalPartners(now time.Time) []domain.Collaborator {
	perDept := map[string]int{}
	out := make([]domain.Collaborator, 0, len(internalCatalog))
	for i, p := range internalCatalog {
		perDept[p.Department]++
		refs := make([]domain.ProjectRef, 0, len(p.Projects))
		for _, name := range p.Projects {
			refs = append(refs, domain.ProjectRef{ID: slug(name), Name: name})
		}
		out = append(out, domain.Collaborator{
			ID:           fmt.Sprintf("%s-%d", p.Department, perDept[p.Department]),
			Name:         p.Name,
			Email:        internalEmail(p.Name),
			Role:         p.Role,
			DepartmentID: p.Department,
			Type:         "other",
			Projects:     refs,
			RatMember:    ratMember(i),
			LastActive:   now.UTC().Format(time.RFC3339),
		})
	}
	return out
}
