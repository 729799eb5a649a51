package models

import "time"

// ActivityLog maps to the activity_logs table. Rows are append-only.
type ActivityLog struct {
	LogID       string    `json:"logID"`
	SessionID   string    `json:"sessionID"`
	ActorID     string    `json:"actorID"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	ERPResponse *string   `json:"erpResponse"`
	CreatedAt   time.Time `json:"createdAt"`
}
