package sample

import (
	"fmt"
	"strings"
	"time"

	"partnerline/internal/domain"
)

type companyProfile struct {
	Name           string
	Color          string
	Department     string
	Role           string
	AgreementTypes []string
	Projects       []domain.ProjectRef
}

// fortune30Catalog holds the five canonical Fortune-30 company profiles.
// The generator never yields more partners than this catalogue holds.
var fortune30Catalog = []companyProfile{
	{
		Name: "Walmart", Color: "#0071CE", Department: "it", Role: "Strategic Partner",
		AgreementTypes: []string{"nda", "jtda"},
		Projects: []domain.ProjectRef{
			{ID: "supply-chain", Name: "Supply Chain Optimization", Description: "Optimizing global supply chain operations through advanced analytics and automation."},
			{ID: "digital-transform", Name: "Digital Transformation", Description: "Implementing cutting-edge digital solutions across retail operations."},
		},
	},
	{
		Name: "Amazon", Color: "#FF9900", Department: "it", Role: "Technology Partner",
		AgreementTypes: []string{"nda"},
		Projects: []domain.ProjectRef{
			{ID: "cloud-migration", Name: "Cloud Migration", Description: "Enterprise-wide migration to cloud infrastructure."},
			{ID: "ai-integration", Name: "AI Integration", Description: "Integration of AI capabilities across business processes."},
		},
	},
	{
		Name: "Apple", Color: "#555555", Department: "techlab", Role: "Innovation Partner",
		AgreementTypes: []string{"jtda"},
		Projects: []domain.ProjectRef{
			{ID: "mobile-solutions", Name: "Mobile Solutions", Description: "Development of enterprise mobile solutions."},
			{ID: "enterprise-integration", Name: "Enterprise Integration", Description: "Integration of Apple products into enterprise environments."},
		},
	},
	{
		Name: "Microsoft", Color: "#00A4EF", Department: "it", Role: "Software Partner",
		AgreementTypes: []string{"nda"},
		Projects: []domain.ProjectRef{
			{ID: "azure-adoption", Name: "Azure Adoption", Description: "Standardizing workloads on a shared cloud platform."},
			{ID: "workplace-tools", Name: "Workplace Tools", Description: "Rolling out collaborative tooling across departments."},
		},
	},
	{
		Name: "Google", Color: "#4285F4", Department: "techlab", Role: "Research Partner",
		AgreementTypes: []string{"jtda"},
		Projects: []domain.ProjectRef{
			{ID: "ml-research", Name: "ML Research", Description: "Joint research into applied machine learning."},
			{ID: "data-platform", Name: "Data Platform", Description: "Building a unified analytics data platform."},
		},
	},
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// agreementsFor derives NDA/JTDA windows from now. Dates are the only
// non-deterministic input; the structural shape is stable.
func agreementsFor(types []string, now time.Time) *domain.Agreements {
	if len(types) == 0 {
		return nil
	}
	a := &domain.Agreements{}
	for i, typ := range types {
		signed := now.AddDate(0, 0, -90+30*i)
		ag := &domain.Agreement{
			SignedDate: signed.UTC().Format(time.RFC3339),
			ExpiryDate: signed.AddDate(1, 0, 0).UTC().Format(time.RFC3339),
			Status:     "signed",
		}
		switch typ {
		case "nda":
			a.NDA = ag
		case "jtda":
			a.JTDA = ag
		}
	}
	return a
}

// Fortune30Partners generates the Fortune-30 partner pool. Pure: no
// storage access, at most len(catalogue) entries, stable ids and names.
func Fortune30Partners(now time.Time) []domain.Collaborator {
	out := make([]domain.Collaborator, 0, len(fortune30Catalog))
	for i, c := range fortune30Catalog {
		id := slug(c.Name)
		out = append(out, domain.Collaborator{
			ID:           id,
			Name:         c.Name,
			Email:        fmt.Sprintf("partner@%s.com", id),
			Role:         c.Role,
			DepartmentID: c.Department,
			Type:         "fortune30",
			Color:        c.Color,
			Agreements:   agreementsFor(c.AgreementTypes, now),
			Projects:     c.Projects,
			RatMember:    ratMember(i),
			LastActive:   now.UTC().Format(time.RFC3339),
		})
	}
	return out
}
