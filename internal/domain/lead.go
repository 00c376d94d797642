package domain

import "time"

// Lifecycle stages. Leads start at StageProspect and only move forward via the
// upsert path; the store never mutates stage on its own.
const (
	StageProspect   = "prospect"
	StageContacted  = "contacted"
	StageQualified  = "qualified"
	StageProposal   = "proposal"
	StageClosedWon  = "closed_won"
	StageClosedLost = "closed_lost"
)

// LeadSource is the fixed provenance tag stamped on every generated lead.
const LeadSource = "icp_engine"

// Candidate is a raw contact record supplied by the pool. Read-only reference
// data; the router copies its fields into a Lead and never writes back.
type Candidate struct {
	Name        string `yaml:"name" json:"name"`
	Email       string `yaml:"email" json:"email"`
	Company     string `yaml:"company" json:"company"`
	Title       string `yaml:"title" json:"title"`
	Industry    string `yaml:"industry" json:"industry"`
	CompanySize string `yaml:"company_size" json:"companySize"`
	Notes       string `yaml:"notes" json:"notes,omitempty"`
}

// Lead is a persisted qualifying candidate. Score is rounded to 2 decimals
// and is >= the originating category's threshold at creation time.
type Lead struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Company         string     `json:"company"`
	Title           string     `json:"title"`
	Industry        string     `json:"industry"`
	CompanySize     string     `json:"companySize"`
	Notes           string     `json:"notes,omitempty"`
	Category        string     `json:"category"`
	Stream          string     `json:"stream"`
	Score           float64    `json:"score"`
	DealValue       float64    `json:"dealValue"`
	Stage           string     `json:"stage"`
	Source          string     `json:"source"`
	ContactAttempts int        `json:"contactAttempts"`
	LastContactAt   *time.Time `json:"lastContactAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
