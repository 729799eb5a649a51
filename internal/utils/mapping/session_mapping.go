package mapping

import (
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/models"
)

// ToModelSession converts a domain Session to its persistence model.
func ToModelSession(d domain.Session) models.Session {
	return models.Session{
		SessionID:        d.SessionID,
		SessionCode:      d.SessionCode,
		GRPODocEntry:     d.GRPODocEntry,
		GRPODocNum:       d.GRPODocNum,
		SeriesID:         d.SeriesID,
		VendorCode:       d.VendorCode,
		VendorName:       d.VendorName,
		DocDate:          d.DocDate,
		DocDueDate:       d.DocDueDate,
		DocTotal:         d.DocTotal,
		Status:           string(d.Status),
		QCApprovedBy:     d.QCApprovedBy,
		TransferDocEntry: d.TransferDocEntry,
		TransferDocNum:   d.TransferDocNum,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSession converts a persistence Session into its domain form.
func ToDomainSession(m models.Session) domain.Session {
	return domain.Session{
		SessionID:        m.SessionID,
		SessionCode:      m.SessionCode,
		GRPODocEntry:     m.GRPODocEntry,
		GRPODocNum:       m.GRPODocNum,
		SeriesID:         m.SeriesID,
		VendorCode:       m.VendorCode,
		VendorName:       m.VendorName,
		DocDate:          m.DocDate,
		DocDueDate:       m.DocDueDate,
		DocTotal:         m.DocTotal,
		Status:           domain.SessionStatus(m.Status),
		QCApprovedBy:     m.QCApprovedBy,
		TransferDocEntry: m.TransferDocEntry,
		TransferDocNum:   m.TransferDocNum,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
