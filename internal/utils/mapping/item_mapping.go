package mapping

import (
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/models"
)

// ToModelItem converts a domain Item to its persistence model.
// Splits are persisted separately and are not carried over here.
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:           d.ItemID,
		SessionID:        d.SessionID,
		LineNum:          d.LineNum,
		ItemCode:         d.ItemCode,
		ItemName:         d.ItemName,
		ItemDescription:  d.ItemDescription,
		IsBatchItem:      d.IsBatchItem,
		IsSerialItem:     d.IsSerialItem,
		IsNonManaged:     d.IsNonManaged,
		ReceivedQuantity: d.ReceivedQuantity,
		ApprovedQuantity: d.ApprovedQuantity,
		RejectedQuantity: d.RejectedQuantity,
		FromWarehouse:    d.FromWarehouse,
		FromBinCode:      d.FromBinCode,
		ToWarehouse:      d.ToWarehouse,
		ToBinCode:        d.ToBinCode,
		UnitOfMeasure:    d.UnitOfMeasure,
		Price:            d.Price,
		LineTotal:        d.LineTotal,
		QCStatus:         string(d.QCStatus),
		QCNotes:          d.QCNotes,
		BaseEntry:        d.BaseEntry,
		BaseLine:         d.BaseLine,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a persistence Item into its domain form.
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:           m.ItemID,
		SessionID:        m.SessionID,
		LineNum:          m.LineNum,
		ItemCode:         m.ItemCode,
		ItemName:         m.ItemName,
		ItemDescription:  m.ItemDescription,
		IsBatchItem:      m.IsBatchItem,
		IsSerialItem:     m.IsSerialItem,
		IsNonManaged:     m.IsNonManaged,
		ReceivedQuantity: m.ReceivedQuantity,
		ApprovedQuantity: m.ApprovedQuantity,
		RejectedQuantity: m.RejectedQuantity,
		FromWarehouse:    m.FromWarehouse,
		FromBinCode:      m.FromBinCode,
		ToWarehouse:      m.ToWarehouse,
		ToBinCode:        m.ToBinCode,
		UnitOfMeasure:    m.UnitOfMeasure,
		Price:            m.Price,
		LineTotal:        m.LineTotal,
		QCStatus:         domain.QCStatus(m.QCStatus),
		QCNotes:          m.QCNotes,
		BaseEntry:        m.BaseEntry,
		BaseLine:         m.BaseLine,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSplit converts a domain Split to its persistence model.
func ToModelSplit(d domain.Split) models.Split {
	return models.Split{
		SplitID:       d.SplitID,
		ItemID:        d.ItemID,
		SplitNumber:   d.SplitNumber,
		Quantity:      d.Quantity,
		Status:        string(d.Status),
		FromWarehouse: d.FromWarehouse,
		FromBinCode:   d.FromBinCode,
		ToWarehouse:   d.ToWarehouse,
		ToBinCode:     d.ToBinCode,
		BatchNumber:   d.BatchNumber,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSplit converts a persistence Split into its domain form.
func ToDomainSplit(m models.Split) domain.Split {
	return domain.Split{
		SplitID:       m.SplitID,
		ItemID:        m.ItemID,
		SplitNumber:   m.SplitNumber,
		Quantity:      m.Quantity,
		Status:        domain.SplitStatus(m.Status),
		FromWarehouse: m.FromWarehouse,
		FromBinCode:   m.FromBinCode,
		ToWarehouse:   m.ToWarehouse,
		ToBinCode:     m.ToBinCode,
		BatchNumber:   m.BatchNumber,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
