package domain

import "time"

// Activity log action tags.
const (
	ActionSessionCreated  = "session_created"
	ActionQCApproved      = "qc_approved"
	ActionLabelsGenerated = "labels_generated"
	ActionTransferred     = "transferred"
)

// ActivityLog is an append-only audit record of a session-level action.
type ActivityLog struct {
	LogID       string    `json:"logID"` // Primary key (UUID)
	SessionID   string    `json:"sessionID"`
	ActorID     string    `json:"actorID"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	ERPResponse string    `json:"erpResponse,omitempty"` // Raw ERP response payload, when relevant
	CreatedAt   time.Time `json:"createdAt"`
}
