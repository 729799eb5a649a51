package domain

import "github.com/shopspring/decimal"

// SplitStatus is the disposition of a quantity split decided during QC.
type SplitStatus string

const (
	SplitOK    SplitStatus = "OK"
	SplitNotOK SplitStatus = "NOTOK"
	SplitHold  SplitStatus = "HOLD"
)

// Split allocates part of an item's quantity to a specific disposition,
// batch number and bin pair. Splits are created during QC approval and are
// immutable afterwards.
type Split struct {
	SplitID       string          `json:"splitID"` // Primary key (UUID)
	ItemID        string          `json:"itemID"`
	SplitNumber   int             `json:"splitNumber"`
	Quantity      decimal.Decimal `json:"quantity"`
	Status        SplitStatus     `json:"status"`
	FromWarehouse string          `json:"fromWarehouse"`
	FromBinCode   string          `json:"fromBinCode"`
	ToWarehouse   string          `json:"toWarehouse"`
	ToBinCode     string          `json:"toBinCode"`
	BatchNumber   string          `json:"batchNumber"`
	Notes         string          `json:"notes"`
	AuditFields
}
