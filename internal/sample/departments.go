package sample

import "partnerline/internal/domain"

// departmentCatalog is the fixed reference data every dataset shares.
var departmentCatalog = []domain.Department{
	{ID: "airplanes", Name: "Airplanes", Color: "#3B82F6", Budget: 500000, ProjectCount: 0},
	{ID: "helicopters", Name: "Helicopters", Color: "#10B981", Budget: 400000, ProjectCount: 0},
	{ID: "space", Name: "Space", Color: "#8B5CF6", Budget: 450000, ProjectCount: 0},
	{ID: "energy", Name: "Energy", Color: "#F59E0B", Budget: 350000, ProjectCount: 0},
	{ID: "it", Name: "IT", Color: "#EF4444", Budget: 300000, ProjectCount: 0},
	{ID: "techlab", Name: "Tech Lab", Color: "#06B6D4", Budget: 250000, ProjectCount: 0},
}

// Departments returns the six-entry department reference catalogue.
func Departments() []domain.Department {
	out := make([]domain.Department, len(departmentCatalog))
	copy(out, departmentCatalog)
	return out
}
