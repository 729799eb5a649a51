package mapping

import (
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/models"
)

// ToModelLabel converts a domain Label to its persistence model.
func ToModelLabel(d domain.Label) models.Label {
	var batch *string
	if d.BatchNumber != "" {
		b := d.BatchNumber
		batch = &b
	}
	return models.Label{
		LabelID:       d.LabelID,
		SessionID:     d.SessionID,
		ItemID:        d.ItemID,
		LabelNumber:   d.LabelNumber,
		TotalLabels:   d.TotalLabels,
		Quantity:      d.Quantity,
		BatchNumber:   batch,
		Payload:       d.Payload,
		FromWarehouse: d.FromWarehouse,
		ToWarehouse:   d.ToWarehouse,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLabel converts a persistence Label into its domain form.
func ToDomainLabel(m models.Label) domain.Label {
	var batch string
	if m.BatchNumber != nil {
		batch = *m.BatchNumber
	}
	return domain.Label{
		LabelID:       m.LabelID,
		SessionID:     m.SessionID,
		ItemID:        m.ItemID,
		LabelNumber:   m.LabelNumber,
		TotalLabels:   m.TotalLabels,
		Quantity:      m.Quantity,
		BatchNumber:   batch,
		Payload:       m.Payload,
		FromWarehouse: m.FromWarehouse,
		ToWarehouse:   m.ToWarehouse,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelActivityLog converts a domain ActivityLog to its persistence model.
func ToModelActivityLog(d domain.ActivityLog) models.ActivityLog {
	var resp *string
	if d.ERPResponse != "" {
		r := d.ERPResponse
		resp = &r
	}
	return models.ActivityLog{
		LogID:       d.LogID,
		SessionID:   d.SessionID,
		ActorID:     d.ActorID,
		Action:      d.Action,
		Description: d.Description,
		ERPResponse: resp,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainActivityLog converts a persistence ActivityLog into its domain form.
func ToDomainActivityLog(m models.ActivityLog) domain.ActivityLog {
	var resp string
	if m.ERPResponse != nil {
		resp = *m.ERPResponse
	}
	return domain.ActivityLog{
		LogID:       m.LogID,
		SessionID:   m.SessionID,
		ActorID:     m.ActorID,
		Action:      m.Action,
		Description: m.Description,
		ERPResponse: resp,
		CreatedAt:   m.CreatedAt,
	}
}
