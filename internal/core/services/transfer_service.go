package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	portsrepo "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/repositories"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/erp"
)

type transferService struct {
	sessionRepo portsrepo.SessionRepositoryFacade
	itemRepo    portsrepo.ItemRepositoryFacade
	gateway     portsrepo.ERPGateway
}

// NewTransferService creates the stock transfer posting service.
func NewTransferService(
	sessionRepo portsrepo.SessionRepositoryFacade,
	itemRepo portsrepo.ItemRepositoryFacade,
	gateway portsrepo.ERPGateway,
) portssvc.TransferSvcFacade {
	return &transferService{
		sessionRepo: sessionRepo,
		itemRepo:    itemRepo,
		gateway:     gateway,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// PostTransfer assembles one stock transfer document covering every approved
// item and submits it to the ERP. Nothing is written locally until the ERP
// accepts the document, so a failed post leaves the session unchanged.
func (s *transferService) PostTransfer(ctx context.Context, sessionID string, actorID string, actorName string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	items, err := s.itemRepo.FindItemsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items for session %s: %w", sessionID, err)
	}

	transfer := buildStockTransfer(session, items, actorName)
	if len(transfer.StockTransferLines) == 0 {
		return nil, fmt.Errorf("%w: nothing to transfer for session %s", apperrors.ErrNoApprovedItems, session.SessionCode)
	}

	result, err := s.gateway.CreateStockTransfer(ctx, transfer)
	if err != nil {
		return nil, fmt.Errorf("failed to post stock transfer for session %s: %w", sessionID, err)
	}

	now := time.Now()
	log := domain.ActivityLog{
		LogID:       uuid.NewString(),
		SessionID:   sessionID,
		ActorID:     actorID,
		Action:      domain.ActionTransferred,
		Description: fmt.Sprintf("Posted to ERP - DocEntry: %d", result.DocEntry),
		ERPResponse: string(result.Raw),
		CreatedAt:   now,
	}
	if err := s.sessionRepo.RecordTransferResult(ctx, sessionID, result.DocEntry, result.DocNum, log, actorID, now); err != nil {
		return nil, fmt.Errorf("failed to record transfer result for session %s: %w", sessionID, err)
	}

	updated, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload session %s: %w", sessionID, err)
	}
	return updated, nil
}

// buildStockTransfer maps the approved items into the ERP document shape.
// The header warehouse pair comes from the first raw item; the document
// carries a single pair even when items span warehouses.
func buildStockTransfer(session *domain.Session, items []domain.Item, actorName string) erp.StockTransfer {
	transfer := erp.StockTransfer{
		DocDate:  session.DocDate.Format(docDateLayout),
		Comments: fmt.Sprintf("QC Approved WMS Transfer %s by %s", session.SessionCode, actorName),
	}
	if len(items) > 0 {
		transfer.FromWarehouse = items[0].FromWarehouse
		transfer.ToWarehouse = items[0].ToWarehouse
	}

	lines := make([]erp.StockTransferLine, 0, len(items))
	for _, item := range items {
		if item.QCStatus != domain.QCApproved {
			continue
		}

		quantity := item.ApprovedQuantity.InexactFloat64()
		line := erp.StockTransferLine{
			LineNum:           len(lines),
			ItemCode:          item.ItemCode,
			Quantity:          quantity,
			WarehouseCode:     item.ToWarehouse,
			FromWarehouseCode: item.FromWarehouse,
			BaseEntry:         item.BaseEntry,
			BaseLine:          item.BaseLine,
			BaseType:          erp.BaseTypeGRPO,
			BatchNumbers:      []erp.BatchAllocation{},
			BinAllocations:    []erp.BinAllocation{},
		}

		if item.IsBatchItem {
			for _, split := range item.Splits {
				line.BatchNumbers = append(line.BatchNumbers, erp.BatchAllocation{
					BatchNumber: split.BatchNumber,
					Quantity:    split.Quantity.InexactFloat64(),
				})
			}
		}

		if item.FromBinCode != "" {
			line.BinAllocations = append(line.BinAllocations, erp.BinAllocation{
				BinActionType:                 "batFromWarehouse",
				BinAbsEntry:                   erp.PlaceholderBinAbsEntry,
				Quantity:                      quantity,
				SerialAndBatchNumbersBaseLine: 0,
			})
		}
		if item.ToBinCode != "" {
			line.BinAllocations = append(line.BinAllocations, erp.BinAllocation{
				BinActionType:                 "batToWarehouse",
				BinAbsEntry:                   erp.PlaceholderBinAbsEntry,
				Quantity:                      quantity,
				SerialAndBatchNumbersBaseLine: 0,
			})
		}

		lines = append(lines, line)
	}
	transfer.StockTransferLines = lines
	return transfer
}
