package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	portsrepo "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/repositories"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/dto"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/middleware"
)

type qcService struct {
	sessionRepo portsrepo.SessionRepositoryFacade
	itemRepo    portsrepo.ItemRepositoryFacade
	logRepo     portsrepo.ActivityLogRepositoryFacade
}

// NewQCService creates the quality-control review service.
func NewQCService(
	sessionRepo portsrepo.SessionRepositoryFacade,
	itemRepo portsrepo.ItemRepositoryFacade,
	logRepo portsrepo.ActivityLogRepositoryFacade,
) portssvc.QCSvcFacade {
	return &qcService{
		sessionRepo: sessionRepo,
		itemRepo:    itemRepo,
		logRepo:     logRepo,
	}
}

var _ portssvc.QCSvcFacade = (*qcService)(nil)

// ApproveItems applies a batch of review outcomes. The session must exist;
// unknown item references inside the batch are skipped and counted. The
// session moves to in_progress with the approver recorded even when the batch
// is empty, matching the review workflow where a submission itself marks the
// session as being worked.
func (s *qcService) ApproveItems(ctx context.Context, sessionID string, req dto.QCApprovalRequest, actorID string) (int, int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}

	items, err := s.itemRepo.FindItemsBySessionID(ctx, sessionID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get items for session %s: %w", sessionID, err)
	}
	received := make(map[string]domain.Item, len(items))
	for _, item := range items {
		received[item.ItemID] = item
	}

	now := time.Now()
	results := make([]domain.ItemQCResult, 0, len(req.Items))
	for _, approval := range req.Items {
		status := domain.QCStatus(approval.QCStatus)
		if status == "" {
			status = domain.QCPending
		}

		// Quantities are taken as given; the ledger trusts the QC client.
		// An over-allocation is still worth surfacing in the logs.
		if item, ok := received[approval.ItemID]; ok {
			if approval.ApprovedQuantity.Add(approval.RejectedQuantity).GreaterThan(item.ReceivedQuantity) {
				logger.Warn("QC quantities exceed received quantity",
					slog.String("session_id", sessionID),
					slog.String("item_id", approval.ItemID),
					slog.String("approved", approval.ApprovedQuantity.String()),
					slog.String("rejected", approval.RejectedQuantity.String()),
					slog.String("received", item.ReceivedQuantity.String()),
				)
			}
		}

		splits := make([]domain.Split, 0, len(approval.Splits))
		for _, sp := range approval.Splits {
			splits = append(splits, domain.Split{
				SplitID:       uuid.NewString(),
				ItemID:        approval.ItemID,
				SplitNumber:   sp.SplitNumber,
				Quantity:      sp.Quantity,
				Status:        domain.SplitStatus(sp.Status),
				FromWarehouse: sp.FromWarehouse,
				FromBinCode:   sp.FromBinCode,
				ToWarehouse:   sp.ToWarehouse,
				ToBinCode:     sp.ToBinCode,
				BatchNumber:   sp.BatchNumber,
				Notes:         sp.Notes,
				AuditFields:   newAuditFields(actorID, now),
			})
		}

		results = append(results, domain.ItemQCResult{
			ItemID:           approval.ItemID,
			QCStatus:         status,
			ApprovedQuantity: approval.ApprovedQuantity,
			RejectedQuantity: approval.RejectedQuantity,
			QCNotes:          approval.QCNotes,
			ToWarehouse:      approval.ToWarehouse,
			ToBinCode:        approval.ToBinCode,
			Splits:           splits,
		})
	}

	updated, skipped, err := s.sessionRepo.ApplyQCApproval(ctx, session.SessionID, actorID, results, now)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to apply QC approval for session %s: %w", sessionID, err)
	}
	if skipped > 0 {
		logger.Warn("QC approval skipped unknown items",
			slog.String("session_id", sessionID),
			slog.Int("skipped", skipped),
		)
	}

	log := domain.ActivityLog{
		LogID:       uuid.NewString(),
		SessionID:   sessionID,
		ActorID:     actorID,
		Action:      domain.ActionQCApproved,
		Description: fmt.Sprintf("QC review submitted: %d items updated, %d skipped", updated, skipped),
		CreatedAt:   now,
	}
	if err := s.logRepo.SaveLog(ctx, log); err != nil {
		return 0, 0, fmt.Errorf("failed to append activity log: %w", err)
	}

	return updated, skipped, nil
}
