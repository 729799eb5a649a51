package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
)

// LabelResponse is one minted unit label.
type LabelResponse struct {
	LabelID     string          `json:"label_id"`
	ItemID      string          `json:"item_id"`
	LabelNumber int             `json:"label_number"`
	TotalLabels int             `json:"total_labels"`
	Quantity    decimal.Decimal `json:"quantity"`
	BatchNumber string          `json:"batch_number,omitempty"`
	Payload     string          `json:"payload"`
}

// LabelListResponse wraps a session's labels in the envelope.
type LabelListResponse struct {
	Success bool            `json:"success"`
	Labels  []LabelResponse `json:"labels"`
}

// GenerateLabelsResponse reports a label minting run.
type GenerateLabelsResponse struct {
	Success         bool            `json:"success"`
	LabelsGenerated int             `json:"labels_generated"`
	Labels          []LabelResponse `json:"labels"`
}

// ToLabelResponse converts a domain label to its API shape.
func ToLabelResponse(l domain.Label) LabelResponse {
	return LabelResponse{
		LabelID:     l.LabelID,
		ItemID:      l.ItemID,
		LabelNumber: l.LabelNumber,
		TotalLabels: l.TotalLabels,
		Quantity:    l.Quantity,
		BatchNumber: l.BatchNumber,
		Payload:     l.Payload,
	}
}

// ToLabelResponses converts a label slice to API shapes.
func ToLabelResponses(labels []domain.Label) []LabelResponse {
	res := make([]LabelResponse, len(labels))
	for i, l := range labels {
		res[i] = ToLabelResponse(l)
	}
	return res
}
