package domain

import "time"

// Activity types.
const (
	ActivityGenerated = "generated"
	ActivityContacted = "contacted"
)

// Activity is an append-only event attached to a lead. The LeadID reference is
// weak: deleting is never supported and activities outlive row replacement.
type Activity struct {
	ID          int64     `json:"id"`
	LeadID      string    `json:"leadId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
