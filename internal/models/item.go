package models

import "github.com/shopspring/decimal"

// Item maps to the transfer_items table.
type Item struct {
	ItemID           string          `json:"itemID"`
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
	QCStatus         string          `json:"qcStatus"`
	QCNotes          string          `json:"qcNotes"`
	BaseEntry        int             `json:"baseEntry"`
	BaseLine         int             `json:"baseLine"`
	AuditFields
}

// Split maps to the transfer_splits table.
type Split struct {
	SplitID       string          `json:"splitID"`
	ItemID        string          `json:"itemID"`
	SplitNumber   int             `json:"splitNumber"`
	Quantity      decimal.Decimal `json:"quantity"`
	Status        string          `json:"status"`
	FromWarehouse string          `json:"fromWarehouse"`
	FromBinCode   string          `json:"fromBinCode"`
	ToWarehouse   string          `json:"toWarehouse"`
	ToBinCode     string          `json:"toBinCode"`
	BatchNumber   string          `json:"batchNumber"`
	Notes         string          `json:"notes"`
	AuditFields
}
