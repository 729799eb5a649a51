package domain

import "github.com/shopspring/decimal"

// QCStatus indicates the quality-control outcome of a session item.
type QCStatus string

const (
	QCPending  QCStatus = "pending"
	QCApproved QCStatus = "approved"
	QCRejected QCStatus = "rejected"
)

// Item is one line of the source GRPO document within a session.
// The management-type flags are mutually exclusive by construction.
type Item struct {
	ItemID           string          `json:"itemID"` // Primary key (UUID)
	SessionID        string          `json:"sessionID"`
	LineNum          int             `json:"lineNum"`
	ItemCode         string          `json:"itemCode"`
	ItemName         string          `json:"itemName"`
	ItemDescription  string          `json:"itemDescription"`
	IsBatchItem      bool            `json:"isBatchItem"`
	IsSerialItem     bool            `json:"isSerialItem"`
	IsNonManaged     bool            `json:"isNonManaged"`
	ReceivedQuantity decimal.Decimal `json:"receivedQuantity"`
	ApprovedQuantity decimal.Decimal `json:"approvedQuantity"`
	RejectedQuantity decimal.Decimal `json:"rejectedQuantity"`
	FromWarehouse    string          `json:"fromWarehouse"`
	FromBinCode      string          `json:"fromBinCode"`
	ToWarehouse      string          `json:"toWarehouse"`
	ToBinCode        string          `json:"toBinCode"`
	UnitOfMeasure    string          `json:"unitOfMeasure"`
	Price            decimal.Decimal `json:"price"`
	LineTotal        decimal.Decimal `json:"lineTotal"`
	QCStatus         QCStatus        `json:"qcStatus"`
	QCNotes          string          `json:"qcNotes"`
	BaseEntry        int             `json:"baseEntry"` // Source GRPO document entry
	BaseLine         int             `json:"baseLine"`  // Source GRPO document line
	Splits           []Split         `json:"splits,omitempty"`
	AuditFields
}

// ItemQCResult carries one item's QC review outcome into the ledger update.
type ItemQCResult struct {
	ItemID           string
	QCStatus         QCStatus
	ApprovedQuantity decimal.Decimal
	RejectedQuantity decimal.Decimal
	QCNotes          string
	ToWarehouse      string
	ToBinCode        string
	Splits           []Split
}
