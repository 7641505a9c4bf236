package audit

import "time"

// EventCategory classifies audit events by their primary purpose so sinks
// can apply different retention.
type EventCategory string

const (
	// CategoryCompliance covers changes to how trustworthy evidence is
	// considered: reliability overrides and claim links.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine activity such as creation and tagging.
	CategoryOperations EventCategory = "operations"
)

// Action names what happened to a piece of evidence.
type Action string

const (
	ActionEvidenceCreated    Action = "evidence_created"
	ActionClaimLinked        Action = "claim_linked"
	ActionReliabilityUpdated Action = "reliability_updated"
	ActionTagsAdded          Action = "tags_added"
)

var actionCategories = map[Action]EventCategory{
	ActionEvidenceCreated:    CategoryOperations,
	ActionTagsAdded:          CategoryOperations,
	ActionClaimLinked:        CategoryCompliance,
	ActionReliabilityUpdated: CategoryCompliance,
}

// Category returns the category for a. Unknown actions default to
// CategoryOperations.
func (a Action) Category() EventCategory {
	if cat, ok := actionCategories[a]; ok {
		return cat
	}
	return CategoryOperations
}

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID         string        `json:"id"`
	Category   EventCategory `json:"category"`
	Timestamp  time.Time     `json:"timestamp"`
	Action     Action        `json:"action"`
	SessionID  string        `json:"session_id"`
	EvidenceID int64         `json:"evidence_id"`
	// ClaimID is set for claim_linked events only.
	ClaimID   int64  `json:"claim_id,omitempty"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
