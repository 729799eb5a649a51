package dto

import "github.com/shopspring/decimal"

// QCSplitRequest is one sub-allocation of an item's quantity decided during
// QC review.
type QCSplitRequest struct {
	SplitNumber   int             `json:"split_number"`
	Quantity      decimal.Decimal `json:"quantity"`
	Status        string          `json:"status" binding:"omitempty,oneof=OK NOTOK HOLD"`
	FromWarehouse string          `json:"from_warehouse"`
	FromBinCode   string          `json:"from_bin_code"`
	ToWarehouse   string          `json:"to_warehouse"`
	ToBinCode     string          `json:"to_bin_code"`
	BatchNumber   string          `json:"batch_number"`
	Notes         string          `json:"notes"`
}

// QCItemApprovalRequest carries one item's review outcome.
type QCItemApprovalRequest struct {
	ItemID           string           `json:"item_id" binding:"required"`
	QCStatus         string           `json:"qc_status" binding:"omitempty,oneof=pending approved rejected"`
	ApprovedQuantity decimal.Decimal  `json:"approved_quantity"`
	RejectedQuantity decimal.Decimal  `json:"rejected_quantity"`
	QCNotes          string           `json:"qc_notes"`
	ToWarehouse      string           `json:"to_warehouse"`
	ToBinCode        string           `json:"to_bin_code"`
	Splits           []QCSplitRequest `json:"splits" binding:"omitempty,dive"`
}

// QCApprovalRequest submits a batch of item review outcomes for a session.
// An empty batch is valid: the session still moves to in_progress.
type QCApprovalRequest struct {
	Items []QCItemApprovalRequest `json:"items" binding:"omitempty,dive"`
}

// QCApprovalResponse reports the outcome of a QC approval submission.
// ItemsSkipped counts updates that referenced unknown items.
type QCApprovalResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ItemsUpdated int    `json:"items_updated"`
	ItemsSkipped int    `json:"items_skipped"`
}
