package models

import "github.com/shopspring/decimal"

// Label maps to the transfer_labels table.
// A unique constraint on (session_id, item_id, label_number) guards against
// duplicate minting for the same approved state.
type Label struct {
	LabelID       string          `json:"labelID"`
	SessionID     string          `json:"sessionID"`
	ItemID        string          `json:"itemID"`
	LabelNumber   int             `json:"labelNumber"`
	TotalLabels   int             `json:"totalLabels"`
	Quantity      decimal.Decimal `json:"quantity"`
	BatchNumber   *string         `json:"batchNumber"`
	Payload       string          `json:"payload"`
	FromWarehouse string          `json:"fromWarehouse"`
	ToWarehouse   string          `json:"toWarehouse"`
	AuditFields
}
