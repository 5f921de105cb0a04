package sample

import (
	"time"

	"partnerline/internal/domain"
)

type projectProfile struct {
	Name       string
	Department string
}

// projectCatalog caps the project pool at 24 entries, four per
// department.
var projectCatalog = []projectProfile{
	{Name: "Wing Design Optimization", Department: "airplanes"},
	{Name: "Fuel Efficiency Project", Department: "airplanes"},
	{Name: "Composite Fuselage Study", Department: "airplanes"},
	{Name: "Avionics Upgrade", Department: "airplanes"},
	{Name: "Rotor System Enhancement", Department: "helicopters"},
	{Name: "Noise Reduction Initiative", Department: "helicopters"},
	{Name: "Transmission Reliability", Department: "helicopters"},
	{Name: "Glass Cockpit Retrofit", Department: "helicopters"},
	{Name: "Satellite Communications", Department: "space"},
	{Name: "Launch Systems", Department: "space"},
	{Name: "Thruster Qualification", Department: "space"},
	{Name: "Rendezvous Software", Department: "space"},
	{Name: "Solar Panel Efficiency", Department: "energy"},
	{Name: "Battery Storage Solutions", Department: "energy"},
	{Name: "Microgrid Pilot", Department: "energy"},
	{Name: "Turbine Monitoring", Department: "energy"},
	{Name: "Cloud Migration", Department: "it"},
	{Name: "Security Enhancement", Department: "it"},
	{Name: "Container Platform", Department: "it"},
	{Name: "Warehouse Consolidation", Department: "it"},
	{Name: "AI Research", Department: "techlab"},
	{Name: "Quantum Computing Initiative", Department: "techlab"},
	{Name: "Additive Manufacturing Cell", Department: "techlab"},
	{Name: "Autonomous Inspection", Department: "techlab"},
}

var projectStatuses = []string{"active", "active", "delayed", "completed", "action-needed"}

// Projects generates the project pool, assigning each a department and,
// when internal partners are supplied, a POC and tech lead drawn from
// them. POC and tech lead are always different identities.
func Projects(departments []domain.Department, partners []domain.Collaborator, now time.Time) []domain.Project {
	budgets := map[string]float64{}
	for _, d := range departments {
		budgets[d.ID] = d.Budget
	}
	out := make([]domain.Project, 0, len(projectCatalog))
	for i, p := range projectCatalog {
		poc, pocDept := ratMemberCatalog[i%len(ratMemberCatalog)].Name, p.Department
		if len(partners) > 0 {
			partner := partners[i%len(partners)]
			poc, pocDept = partner.Name, partner.DepartmentID
		}
		lead := ratMember(i + 1)
		leadDept := ratMemberCatalog[(i+1)%len(ratMemberCatalog)].Department
		if lead == poc {
			lead = ratMember(i + 2)
			leadDept = ratMemberCatalog[(i+2)%len(ratMemberCatalog)].Department
		}
		budget := budgets[p.Department] / 4
		if budget == 0 {
			budget = 100000
		}
		out = append(out, domain.Project{
			ID:                 "proj-" + slug(p.Name),
			Name:               p.Name,
			Status:             projectStatuses[i%len(projectStatuses)],
			POC:                poc,
			POCDepartment:      pocDept,
			TechLead:           lead,
			TechLeadDepartment: leadDept,
			Budget:             budget,
			Spent:              budget * float64(i%4) / 5,
			DepartmentID:       p.Department,
			RatMember:          ratMember(i),
		})
	}
	return out
}
