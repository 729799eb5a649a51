package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus indicates the state of a GRPO transfer session.
// The lifecycle is strictly forward: draft -> in_progress -> completed -> transferred.
type SessionStatus string

const (
	SessionDraft       SessionStatus = "draft"
	SessionInProgress  SessionStatus = "in_progress"
	SessionCompleted   SessionStatus = "completed"
	SessionTransferred SessionStatus = "transferred"
)

// Session represents one goods-receipt-to-transfer workflow instance created
// from a GRPO (purchase delivery note) document.
type Session struct {
	SessionID        string          `json:"sessionID"` // Primary key (UUID)
	SessionCode      string          `json:"sessionCode"`
	GRPODocEntry     int             `json:"grpoDocEntry"` // ERP document entry id
	GRPODocNum       int             `json:"grpoDocNum"`
	SeriesID         int             `json:"seriesID"`
	VendorCode       string          `json:"vendorCode"`
	VendorName       string          `json:"vendorName"`
	DocDate          time.Time       `json:"docDate"`
	DocDueDate       *time.Time      `json:"docDueDate,omitempty"`
	DocTotal         decimal.Decimal `json:"docTotal"`
	Status           SessionStatus   `json:"status"`
	QCApprovedBy     *string         `json:"qcApprovedBy,omitempty"`
	TransferDocEntry *int            `json:"transferDocEntry,omitempty"` // Set once posted to the ERP
	TransferDocNum   *int            `json:"transferDocNum,omitempty"`
	AuditFields
}

// SessionSummary is a Session enriched with its item count for listings.
type SessionSummary struct {
	Session
	ItemCount int `json:"itemCount"`
}
