package sample

import (
	"fmt"
	"time"

	"partnerline/internal/domain"
)

type sitrepProfile struct {
	Title      string
	Update     string
	Challenges string
	NextSteps  string
}

// sitrepCatalog caps the sitrep pool at 30 narrative entries.
var sitrepCatalog = []sitrepProfile{
	{Title: "Kickoff complete", Update: "Team onboarded and the work breakdown agreed with all stakeholders.", Challenges: "Late availability of one supplier contact.", NextSteps: "Confirm the integration test window."},
	{Title: "Requirements baselined", Update: "Requirements reviewed and baselined without open majors.", Challenges: "Two derived requirements still need owner sign-off.", NextSteps: "Close the remaining sign-offs this week."},
	{Title: "Design review held", Update: "Preliminary design review completed with minor actions.", Challenges: "Thermal margins tighter than planned.", NextSteps: "Rerun thermal cases with updated loads."},
	{Title: "Long-lead items ordered", Update: "All long-lead procurement released to suppliers.", Challenges: "One vendor quoted a twelve-week slip.", NextSteps: "Qualify the alternate vendor in parallel."},
	{Title: "First article inspected", Update: "First article passed inspection on the second attempt.", Challenges: "Surface finish required rework.", NextSteps: "Update the process sheet before the next lot."},
	{Title: "Integration started", Update: "Subassemblies mated and harness routing verified.", Challenges: "Connector stock is below the safety floor.", NextSteps: "Expedite connector replenishment."},
	{Title: "Software drop delivered", Update: "Increment three delivered to the test bench on schedule.", Challenges: "Regression suite runtime has doubled.", NextSteps: "Parallelize the regression suite."},
	{Title: "Test readiness review", Update: "Test readiness review passed; range time confirmed.", Challenges: "Weather margins for the outdoor segment are thin.", NextSteps: "Book a backup range window."},
	{Title: "Dry run complete", Update: "Full procedure dry run executed with two deviations.", Challenges: "Procedure step ordering confused the night crew.", NextSteps: "Reorder steps and rebrief the crew."},
	{Title: "Formal test underway", Update: "Formal qualification test is 60% complete.", Challenges: "One intermittent telemetry dropout under vibration.", NextSteps: "Instrument the suspect harness segment."},
	{Title: "Anomaly investigated", Update: "Root cause of the telemetry dropout isolated to a cold joint.", Challenges: "Rework requires a partial teardown.", NextSteps: "Schedule the teardown with the test lab."},
	{Title: "Test complete", Update: "Qualification complete; data package in review.", Challenges: "Report backlog in the review board.", NextSteps: "Split the data package for parallel review."},
	{Title: "Partner sync held", Update: "Quarterly partner sync held; roadmap aligned.", Challenges: "Export control review pending for shared artifacts.", NextSteps: "Submit the artifacts for export review."},
	{Title: "Budget checkpoint", Update: "Spend tracking 4% under plan at the midpoint.", Challenges: "Travel costs trending above estimate.", NextSteps: "Shift the next two reviews to remote."},
	{Title: "Staffing update", Update: "Two backfills started; team at full strength.", Challenges: "Ramp-up time on the legacy toolchain.", NextSteps: "Pair new hires with toolchain owners."},
	{Title: "Risk review", Update: "Top five risks re-scored; one retired.", Challenges: "New supply risk on a sole-source part.", NextSteps: "Open a second-source qualification."},
	{Title: "Milestone achieved", Update: "Major milestone closed ahead of the contract date.", Challenges: "Documentation lagging the hardware state.", NextSteps: "Freeze changes until documents catch up."},
	{Title: "Customer demo", Update: "Live demo delivered to the customer without faults.", Challenges: "Feature requests arrived outside scope.", NextSteps: "Triage requests into the next increment."},
	{Title: "Field trial started", Update: "Field trial unit shipped and installed on site.", Challenges: "Site network access took longer than planned.", NextSteps: "Automate the site enrollment steps."},
	{Title: "Data review", Update: "First field dataset reviewed; performance within spec.", Challenges: "Sensor drift visible after week two.", NextSteps: "Add a recalibration cycle to the schedule."},
	{Title: "Process audit", Update: "Internal audit finished with two minor findings.", Challenges: "Finding closure owners not yet assigned.", NextSteps: "Assign owners and due dates."},
	{Title: "Supplier escalation", Update: "Slipping supplier escalated; recovery plan agreed.", Challenges: "Recovery plan consumes all remaining float.", NextSteps: "Weekly recovery checkpoints until green."},
	{Title: "Security review", Update: "Threat model updated and controls verified.", Challenges: "One legacy interface lacks authentication.", NextSteps: "Gate the legacy interface behind the proxy."},
	{Title: "Training delivered", Update: "Operator training delivered to both shifts.", Challenges: "Simulator slots oversubscribed.", NextSteps: "Add an evening simulator block."},
	{Title: "Deployment wave done", Update: "Second deployment wave completed cleanly.", Challenges: "Rollback rehearsal not yet performed.", NextSteps: "Rehearse rollback before wave three."},
	{Title: "Performance tuning", Update: "Throughput improved 18% after tuning.", Challenges: "Gains uneven across sites.", NextSteps: "Profile the two lagging sites."},
	{Title: "Compliance check", Update: "Regulatory checklist complete and filed.", Challenges: "One waiver expires mid-program.", NextSteps: "Start the waiver renewal early."},
	{Title: "Handover prepared", Update: "Operations handover package drafted.", Challenges: "On-call rota for the first month unstaffed.", NextSteps: "Confirm the on-call rota."},
	{Title: "Retrospective held", Update: "Phase retrospective held; actions logged.", Challenges: "Recurring theme of late requirement changes.", NextSteps: "Tighten the change-control gate."},
	{Title: "Closeout started", Update: "Closeout checklist opened; archives begun.", Challenges: "Test artifacts spread across three shares.", NextSteps: "Consolidate artifacts into the archive."},
}

var sitrepStatuses = []string{"on-track", "on-track", "at-risk", "on-track", "blocked"}
var sitrepReviewStatuses = []string{"submitted", "submitted", "ready", "pending-review"}

// SitReps generates the sitrep pool from the supplied SPIs. Each entry
// links one SPI and inherits its project and department links; with no
// SPIs the pool is empty, since a sitrep cannot exist unlinked.
func SitReps(spis []domain.SPI, now time.Time) []domain.SitRep {
	if len(spis) == 0 {
		return nil
	}
	out := make([]domain.SitRep, 0, len(sitrepCatalog))
	for i, p := range sitrepCatalog {
		spi := spis[i%len(spis)]
		out = append(out, domain.SitRep{
			ID:           fmt.Sprintf("sitrep-%d", i+1),
			Title:        p.Title,
			Date:         now.AddDate(0, 0, -i).UTC().Format(time.RFC3339),
			SpiID:        spi.ID,
			ProjectID:    spi.ProjectID,
			Update:       p.Update,
			Challenges:   p.Challenges,
			NextSteps:    p.NextSteps,
			Status:       sitrepStatuses[i%len(sitrepStatuses)],
			ReviewStatus: sitrepReviewStatuses[i%len(sitrepReviewStatuses)],
			Summary:      fmt.Sprintf("%s %s", p.Update, p.NextSteps),
			DepartmentID: spi.DepartmentID,
			RatMember:    ratMember(i),
		})
	}
	return out
}
