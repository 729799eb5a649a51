package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
)

// CreateSessionRequest defines the data needed to create a session manually.
// The required fields mirror the source GRPO document header.
type CreateSessionRequest struct {
	GRPODocEntry int             `json:"grpo_doc_entry" binding:"required"`
	GRPODocNum   int             `json:"grpo_doc_num" binding:"required"`
	SeriesID     int             `json:"series_id" binding:"required"`
	VendorCode   string          `json:"vendor_code" binding:"required"`
	VendorName   string          `json:"vendor_name" binding:"required"`
	DocDate      string          `json:"doc_date"`     // yyyy-mm-dd, defaults to today
	DocDueDate   string          `json:"doc_due_date"` // yyyy-mm-dd, optional
	DocTotal     decimal.Decimal `json:"doc_total"`
}

// AddItemRequest defines one line item appended to an existing session.
type AddItemRequest struct {
	LineNum          int             `json:"line_num"`
	ItemCode         string          `json:"item_code" binding:"required"`
	ItemName         string          `json:"item_name"`
	ItemDescription  string          `json:"item_description"`
	IsBatchItem      bool            `json:"is_batch_item"`
	IsSerialItem     bool            `json:"is_serial_item"`
	IsNonManaged     bool            `json:"is_non_managed"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	FromWarehouse    string          `json:"from_warehouse"`
	UnitOfMeasure    string          `json:"unit_of_measure"`
	Price            decimal.Decimal `json:"price"`
	LineTotal        decimal.Decimal `json:"line_total"`
	BaseEntry        int             `json:"base_entry"`
	BaseLine         int             `json:"base_line"`
}

// SessionSummaryResponse is one row of the active-session listing.
type SessionSummaryResponse struct {
	SessionID   string    `json:"session_id"`
	SessionCode string    `json:"session_code"`
	GRPODocNum  int       `json:"grpo_doc_num"`
	VendorName  string    `json:"vendor_name"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// SessionListResponse wraps the active-session listing in the envelope.
type SessionListResponse struct {
	Success  bool                     `json:"success"`
	Sessions []SessionSummaryResponse `json:"sessions"`
}

// CreateSessionResponse reports a freshly created session.
type CreateSessionResponse struct {
	Success     bool   `json:"success"`
	SessionID   string `json:"session_id"`
	SessionCode string `json:"session_code"`
}

// SessionDetailResponse carries a session with its items and splits.
type SessionDetailResponse struct {
	Success bool           `json:"success"`
	Session domain.Session `json:"session"`
	Items   []domain.Item  `json:"items"`
}

// AddItemResponse reports a line item appended to a session.
type AddItemResponse struct {
	Success bool   `json:"success"`
	ItemID  string `json:"item_id"`
}

// ActivityLogResponse wraps a session's audit trail.
type ActivityLogResponse struct {
	Success bool                 `json:"success"`
	Logs    []domain.ActivityLog `json:"logs"`
}

// ToSessionSummaryResponse converts a domain summary to its API shape.
func ToSessionSummaryResponse(s domain.SessionSummary) SessionSummaryResponse {
	return SessionSummaryResponse{
		SessionID:   s.SessionID,
		SessionCode: s.SessionCode,
		GRPODocNum:  s.GRPODocNum,
		VendorName:  s.VendorName,
		Status:      string(s.Status),
		ItemCount:   s.ItemCount,
		CreatedAt:   s.CreatedAt,
	}
}

// ToSessionListResponse converts domain summaries into the listing envelope.
func ToSessionListResponse(summaries []domain.SessionSummary) SessionListResponse {
	res := SessionListResponse{Success: true, Sessions: make([]SessionSummaryResponse, len(summaries))}
	for i, s := range summaries {
		res.Sessions[i] = ToSessionSummaryResponse(s)
	}
	return res
}
