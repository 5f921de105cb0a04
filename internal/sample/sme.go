package sample

import (
	"fmt"
	"time"

	"partnerline/internal/domain"
)

// smeCatalog lists the subject-matter-expert firm pool.
var smeCatalog = []companyProfile{
	{Name: "TechStart", Color: "#22C55E", Department: "it", Role: "Software Development", AgreementTypes: []string{"nda"}},
	{Name: "DataFlow Analytics", Color: "#3B82F6", Department: "it", Role: "Data Analytics", AgreementTypes: []string{"jtda"}},
	{Name: "CloudScale Systems", Color: "#6366F1", Department: "it", Role: "Cloud Services", AgreementTypes: []string{"nda", "jtda"}},
	{Name: "InnoTech Solutions", Color: "#EC4899", Department: "techlab", Role: "Rapid Prototyping", AgreementTypes: []string{"nda"}},
	{Name: "SecureNet Solutions", Color: "#14B8A6", Department: "it", Role: "Network Security", AgreementTypes: []string{"nda"}},
	{Name: "AgileWorks Consulting", Color: "#F97316", Department: "techlab", Role: "Process Consulting", AgreementTypes: []string{"jtda"}},
	{Name: "OrbitalEdge", Color: "#A855F7", Department: "space", Role: "Smallsat Integration", AgreementTypes: []string{"nda"}},
	{Name: "VoltBridge", Color: "#EAB308", Department: "energy", Role: "Power Electronics", AgreementTypes: []string{"nda", "jtda"}},
	{Name: "AeroMesh", Color: "#0EA5E9", Department: "airplanes", Role: "CFD Analysis", AgreementTypes: []string{"jtda"}},
	{Name: "RotorWorks", Color: "#84CC16", Department: "helicopters", Role: "Dynamic Components", AgreementTypes: []string{"nda"}},
}

// SMEPartners generates the SME partner pool.
func SMEPartners(now time.Time) []domain.Collaborator {
	out := make([]domain.Collaborator, 0, len(smeCatalog))
	for i, c := range smeCatalog {
		id := "sme-" + slug(c.Name)
		out = append(out, domain.Collaborator{
			ID:           id,
			Name:         c.Name,
			Email:        fmt.Sprintf("contact@%s.com", slug(c.Name)),
			Role:         c.Role,
			DepartmentID: c.Department,
			Type:         "sme",
			Color:        c.Color,
			Agreements:   agreementsFor(c.AgreementTypes, now),
			PrimaryContact: &domain.Contact{
				Name: ratMember(i),
				Role: "Relationship Owner",
			},
			RatMember:  ratMember(i),
			LastActive: now.UTC().Format(time.RFC3339),
		})
	}
	return out
}
