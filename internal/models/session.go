package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session maps to the transfer_sessions table.
type Session struct {
	SessionID        string          `json:"sessionID"`
	SessionCode      string          `json:"sessionCode"`
	GRPODocEntry     int             `json:"grpoDocEntry"`
	GRPODocNum       int             `json:"grpoDocNum"`
	SeriesID         int             `json:"seriesID"`
	VendorCode       string          `json:"vendorCode"`
	VendorName       string          `json:"vendorName"`
	DocDate          time.Time       `json:"docDate"`
	DocDueDate       *time.Time      `json:"docDueDate"`
	DocTotal         decimal.Decimal `json:"docTotal"`
	Status           string          `json:"status"`
	QCApprovedBy     *string         `json:"qcApprovedBy"`
	TransferDocEntry *int            `json:"transferDocEntry"`
	TransferDocNum   *int            `json:"transferDocNum"`
	AuditFields
}
