package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Label is one per-unit printable tag for an approved item. Exactly
// floor(approved quantity) labels exist per item, numbered 1..TotalLabels,
// each covering a quantity of one unit.
type Label struct {
	LabelID       string          `json:"labelID"` // Primary key (UUID)
	SessionID     string          `json:"sessionID"`
	ItemID        string          `json:"itemID"`
	LabelNumber   int             `json:"labelNumber"`
	TotalLabels   int             `json:"totalLabels"`
	Quantity      decimal.Decimal `json:"quantity"` // Always one unit
	BatchNumber   string          `json:"batchNumber,omitempty"`
	Payload       string          `json:"payload"` // Serialized LabelPayload
	FromWarehouse string          `json:"fromWarehouse"`
	ToWarehouse   string          `json:"toWarehouse"`
	AuditFields
}

// LabelPayload is the descriptive content embedded in each label.
type LabelPayload struct {
	SessionCode   string    `json:"session_code"`
	ItemCode      string    `json:"item_code"`
	ItemName      string    `json:"item_name"`
	Quantity      int       `json:"quantity"`
	Label         string    `json:"label"` // "k of N"
	FromWarehouse string    `json:"from_warehouse"`
	ToWarehouse   string    `json:"to_warehouse"`
	BatchNumber   string    `json:"batch_number,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
