package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	portsrepo "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/repositories"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
)

var oneUnit = decimal.NewFromInt(1)

type labelService struct {
	sessionRepo portsrepo.SessionRepositoryFacade
	itemRepo    portsrepo.ItemRepositoryFacade
	labelRepo   portsrepo.LabelRepositoryFacade
	logRepo     portsrepo.ActivityLogRepositoryFacade
}

// NewLabelService creates the unit-label minting service.
func NewLabelService(
	sessionRepo portsrepo.SessionRepositoryFacade,
	itemRepo portsrepo.ItemRepositoryFacade,
	labelRepo portsrepo.LabelRepositoryFacade,
	logRepo portsrepo.ActivityLogRepositoryFacade,
) portssvc.LabelSvcFacade {
	return &labelService{
		sessionRepo: sessionRepo,
		itemRepo:    itemRepo,
		labelRepo:   labelRepo,
		logRepo:     logRepo,
	}
}

var _ portssvc.LabelSvcFacade = (*labelService)(nil)

// GenerateLabels mints one label per whole approved unit. Fractional
// remainders produce no partial label: an item approved at 2.7 yields two
// labels. The whole set is persisted in a single transaction; a session that
// already has labels cannot be re-minted.
func (s *labelService) GenerateLabels(ctx context.Context, sessionID string, actorID string) ([]domain.Label, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}

	existing, err := s.labelRepo.CountLabelsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count labels for session %s: %w", sessionID, err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: labels already generated for session %s", apperrors.ErrDuplicate, session.SessionCode)
	}

	items, err := s.itemRepo.FindItemsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items for session %s: %w", sessionID, err)
	}

	eligible := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.QCStatus == domain.QCApproved && item.ApprovedQuantity.IsPositive() {
			eligible = append(eligible, item)
		}
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("%w: submit QC approval first", apperrors.ErrNoApprovedItems)
	}

	now := time.Now()
	labels := make([]domain.Label, 0, len(eligible))
	for _, item := range eligible {
		total := int(item.ApprovedQuantity.IntPart())
		if total <= 0 {
			continue
		}

		batchNumber := ""
		if len(item.Splits) > 0 {
			batchNumber = item.Splits[0].BatchNumber
		}

		for num := 1; num <= total; num++ {
			payload := domain.LabelPayload{
				SessionCode:   session.SessionCode,
				ItemCode:      item.ItemCode,
				ItemName:      item.ItemName,
				Quantity:      1,
				Label:         fmt.Sprintf("%d of %d", num, total),
				FromWarehouse: item.FromWarehouse,
				ToWarehouse:   item.ToWarehouse,
				BatchNumber:   batchNumber,
				Timestamp:     now,
			}
			encoded, err := json.Marshal(payload)
			if err != nil {
				return nil, fmt.Errorf("failed to encode label payload: %w", err)
			}

			labels = append(labels, domain.Label{
				LabelID:       uuid.NewString(),
				SessionID:     sessionID,
				ItemID:        item.ItemID,
				LabelNumber:   num,
				TotalLabels:   total,
				Quantity:      oneUnit,
				BatchNumber:   batchNumber,
				Payload:       string(encoded),
				FromWarehouse: item.FromWarehouse,
				ToWarehouse:   item.ToWarehouse,
				AuditFields:   newAuditFields(actorID, now),
			})
		}
	}

	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: check approved quantities", apperrors.ErrNoLabelsGenerated)
	}

	if err := s.labelRepo.SaveLabels(ctx, labels); err != nil {
		return nil, fmt.Errorf("failed to save labels for session %s: %w", sessionID, err)
	}

	log := domain.ActivityLog{
		LogID:       uuid.NewString(),
		SessionID:   sessionID,
		ActorID:     actorID,
		Action:      domain.ActionLabelsGenerated,
		Description: fmt.Sprintf("Generated %d labels for %d approved items", len(labels), len(eligible)),
		CreatedAt:   now,
	}
	if err := s.logRepo.SaveLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to append activity log: %w", err)
	}

	return labels, nil
}

func (s *labelService) ListLabels(ctx context.Context, sessionID string) ([]domain.Label, error) {
	if _, err := s.sessionRepo.FindSessionByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	labels, err := s.labelRepo.ListLabelsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels for session %s: %w", sessionID, err)
	}
	if labels == nil {
		return []domain.Label{}, nil
	}
	return labels, nil
}
