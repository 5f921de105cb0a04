package domain

// Agreement describes a signed NDA or JTDA with its validity window.
type Agreement struct {
	SignedDate string `json:"signed_date" format:"date-time"`
	ExpiryDate string `json:"expiry_date" format:"date-time"`
	Status     string `json:"status" enum:"signed,pending,expired"`
}

// Agreements groups the optional agreements held with a partner.
type Agreements struct {
	NDA  *Agreement `json:"nda,omitempty"`
	JTDA *Agreement `json:"jtda,omitempty"`
}

// Contact is a named point of contact at a partner organization.
type Contact struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ProjectRef is a lightweight reference to a project a partner works on.
type ProjectRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Workstream is a sub-thread of collaboration owned by one collaborator.
// Workstream ids are unique within their parent collaborator.
type Workstream struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Objectives  string      `json:"objectives,omitempty"`
	NextSteps   string      `json:"next_steps,omitempty"`
	Status      string      `json:"status" enum:"active,completed,on-hold"`
	StartDate   string      `json:"start_date" format:"date-time"`
	LastUpdated string      `json:"last_updated" format:"date-time"`
	RatMember   string      `json:"rat_member,omitempty"`
	Agreements  *Agreements `json:"agreements,omitempty"`
}

// Collaborator is a partner entity. Type is immutable after creation.
type Collaborator struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Role           string       `json:"role"`
	DepartmentID   string       `json:"department_id,omitempty"`
	Type           string       `json:"type" enum:"fortune30,sme,other"`
	Color          string       `json:"color,omitempty"`
	Agreements     *Agreements  `json:"agreements,omitempty"`
	PrimaryContact *Contact     `json:"primary_contact,omitempty"`
	Workstreams    []Workstream `json:"workstreams,omitempty"`
	Projects       []ProjectRef `json:"projects,omitempty"`
	RatMember      string       `json:"rat_member,omitempty"`
	LastActive     string       `json:"last_active" format:"date-time"`
}

// Department is static reference data.
type Department struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	Budget       float64 `json:"budget"`
	ProjectCount int     `json:"project_count"`
}

// Project tracks a funded effort. POC and tech lead are never the same
// identity; that rule is enforced at the edit boundary, not in storage.
type Project struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Status             string  `json:"status" enum:"active,completed,delayed,action-needed"`
	POC                string  `json:"poc"`
	POCDepartment      string  `json:"poc_department"`
	TechLead           string  `json:"tech_lead"`
	TechLeadDepartment string  `json:"tech_lead_department"`
	Budget             float64 `json:"budget"`
	Spent              float64 `json:"spent"`
	DepartmentID       string  `json:"department_id"`
	RatMember          string  `json:"rat_member,omitempty"`
}

// SPI is a schedule performance item: a tracked deliverable optionally
// linked to a project and/or partner. SitrepIDs reference SitRep records.
type SPI struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Deliverable            string   `json:"deliverable"`
	Details                string   `json:"details,omitempty"`
	Status                 string   `json:"status" enum:"on-track,delayed,completed,cancelled"`
	ExpectedCompletionDate string   `json:"expected_completion_date" format:"date-time"`
	ActualCompletionDate   *string  `json:"actual_completion_date,omitempty" format:"date-time"`
	ProjectID              string   `json:"project_id,omitempty"`
	Fortune30ID            string   `json:"fortune30_id,omitempty"`
	InternalPartnerID      string   `json:"internal_partner_id,omitempty"`
	DepartmentID           string   `json:"department_id,omitempty"`
	SitrepIDs              []string `json:"sitrep_ids"`
	RatMember              string   `json:"rat_member,omitempty"`
	CreatedAt              string   `json:"created_at" format:"date-time"`
}

// Objective is a goal linked to initiatives and SPIs.
type Objective struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Initiative     string   `json:"initiative"`
	DesiredOutcome string   `json:"desired_outcome"`
	InitiativeIDs  []string `json:"initiative_ids,omitempty"`
	SPIIDs         []string `json:"spi_ids,omitempty"`
}

// Initiative names a strategic thread and the objectives supporting it.
type Initiative struct {
	ID             string   `json:"id"`
	Initiative     string   `json:"initiative"`
	DesiredOutcome string   `json:"desired_outcome"`
	ObjectiveIDs   []string `json:"objective_ids"`
}

// SitRep is a periodic narrative status update for an SPI. Status is the
// persisted health of the work; ReviewStatus is the submission workflow
// state of the report itself.
type SitRep struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date" format:"date-time"`
	SpiID        string `json:"spi_id"`
	ProjectID    string `json:"project_id,omitempty"`
	Update       string `json:"update"`
	Challenges   string `json:"challenges"`
	NextSteps    string `json:"next_steps"`
	Status       string `json:"status" enum:"on-track,at-risk,blocked"`
	ReviewStatus string `json:"review_status" enum:"pending-review,ready,submitted"`
	Summary      string `json:"summary"`
	DepartmentID string `json:"department_id"`
	RatMember    string `json:"rat_member,omitempty"`
}
