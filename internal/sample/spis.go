package sample

import (
	"fmt"
	"time"

	"partnerline/internal/domain"
)

type spiProfile struct {
	Name        string
	Deliverable string
	Department  string
}

// spiCatalog caps the SPI pool at 30 tracked deliverables.
var spiCatalog = []spiProfile{
	{Name: "Wind Tunnel Validation", Deliverable: "Validated wing section test report", Department: "airplanes"},
	{Name: "Fuel Burn Baseline", Deliverable: "Fleet fuel-burn baseline dataset", Department: "airplanes"},
	{Name: "Fuselage Layup Trials", Deliverable: "Composite layup process spec", Department: "airplanes"},
	{Name: "Cockpit Display Cert", Deliverable: "Display certification package", Department: "airplanes"},
	{Name: "Cabin Noise Survey", Deliverable: "Cabin acoustic survey results", Department: "airplanes"},
	{Name: "Rotor Fatigue Test", Deliverable: "Fatigue test completion report", Department: "helicopters"},
	{Name: "Blade Tip Redesign", Deliverable: "Quiet blade tip prototype", Department: "helicopters"},
	{Name: "Gearbox Telemetry", Deliverable: "Transmission health dashboard", Department: "helicopters"},
	{Name: "Retrofit Kit Pilot", Deliverable: "Retrofit install playbook", Department: "helicopters"},
	{Name: "Autorotation Sim Module", Deliverable: "Training simulator module", Department: "helicopters"},
	{Name: "Ka-Band Link Demo", Deliverable: "High-rate downlink demonstration", Department: "space"},
	{Name: "Stage Separation Review", Deliverable: "Separation system design review", Department: "space"},
	{Name: "Thruster Life Test", Deliverable: "500-hour life test log", Department: "space"},
	{Name: "Debris Catalog Update", Deliverable: "Updated conjunction screening set", Department: "space"},
	{Name: "Docking Software Drop", Deliverable: "Rendezvous software release", Department: "space"},
	{Name: "Panel Yield Improvement", Deliverable: "Cell yield improvement study", Department: "energy"},
	{Name: "Storage Pilot Site", Deliverable: "Commissioned pilot storage site", Department: "energy"},
	{Name: "Microgrid Islanding Test", Deliverable: "Islanding test certification", Department: "energy"},
	{Name: "Membrane Durability", Deliverable: "Membrane durability results", Department: "energy"},
	{Name: "Turbine Sensor Rollout", Deliverable: "Sensor fleet deployment report", Department: "energy"},
	{Name: "Workload Migration Wave 1", Deliverable: "First migration wave complete", Department: "it"},
	{Name: "Zero Trust Rollout", Deliverable: "Zero-trust access enforcement", Department: "it"},
	{Name: "Cluster Consolidation", Deliverable: "Consolidated container clusters", Department: "it"},
	{Name: "Data Warehouse Cutover", Deliverable: "Warehouse cutover completion", Department: "it"},
	{Name: "Backbone Upgrade", Deliverable: "Campus backbone at 100G", Department: "it"},
	{Name: "Model Evaluation Harness", Deliverable: "Reusable evaluation harness", Department: "techlab"},
	{Name: "Qubit Control Bench", Deliverable: "Control electronics bench", Department: "techlab"},
	{Name: "Print Farm Qualification", Deliverable: "Qualified additive print farm", Department: "techlab"},
	{Name: "Inspection Robot Trial", Deliverable: "Autonomous inspection field trial", Department: "techlab"},
	{Name: "Console Usability Report", Deliverable: "Operator console usability report", Department: "techlab"},
}

var spiStatuses = []string{"on-track", "on-track", "delayed", "completed", "on-track", "cancelled"}

// SPIs generates the SPI pool. Roughly half the entries link to a
// project id (round-robin over projectIDs); every third entry links to a
// Fortune-30 partner and the rest alternate internal partner links.
// Sitrep ids are wired later by the coordinator.
func SPIs(projectIDs []string, fortune30IDs []string, internalIDs []string, now time.Time) []domain.SPI {
	out := make([]domain.SPI, 0, len(spiCatalog))
	for i, p := range spiCatalog {
		spi := domain.SPI{
			ID:                     fmt.Sprintf("spi-%d", i+1),
			Name:                   p.Name,
			Deliverable:            p.Deliverable,
			Details:                fmt.Sprintf("Tracked deliverable: %s.", p.Deliverable),
			Status:                 spiStatuses[i%len(spiStatuses)],
			ExpectedCompletionDate: now.AddDate(0, 0, 30+7*i).UTC().Format(time.RFC3339),
			DepartmentID:           p.Department,
			SitrepIDs:              []string{},
			RatMember:              ratMember(i),
			CreatedAt:              now.AddDate(0, 0, -i).UTC().Format(time.RFC3339),
		}
		if spi.Status == "completed" {
			done := now.AddDate(0, 0, -7).UTC().Format(time.RFC3339)
			spi.ActualCompletionDate = &done
		}
		if len(projectIDs) > 0 && i%2 == 0 {
			spi.ProjectID = projectIDs[(i/2)%len(projectIDs)]
		}
		switch {
		case len(fortune30IDs) > 0 && i%3 == 0:
			spi.Fortune30ID = fortune30IDs[(i/3)%len(fortune30IDs)]
		case len(internalIDs) > 0:
			spi.InternalPartnerID = internalIDs[i%len(internalIDs)]
		}
		out = append(out, spi)
	}
	return out
}
