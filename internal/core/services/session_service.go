package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	portsrepo "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/repositories"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/dto"
)

const docDateLayout = "2006-01-02"

type sessionService struct {
	sessionRepo portsrepo.SessionRepositoryFacade
	itemRepo    portsrepo.ItemRepositoryFacade
	logRepo     portsrepo.ActivityLogRepositoryFacade
	gateway     portsrepo.ERPGateway
}

// NewSessionService creates the session workflow service.
func NewSessionService(
	sessionRepo portsrepo.SessionRepositoryFacade,
	itemRepo portsrepo.ItemRepositoryFacade,
	logRepo portsrepo.ActivityLogRepositoryFacade,
	gateway portsrepo.ERPGateway,
) portssvc.SessionSvcFacade {
	return &sessionService{
		sessionRepo: sessionRepo,
		itemRepo:    itemRepo,
		logRepo:     logRepo,
		gateway:     gateway,
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) ListActiveSessions(ctx context.Context) ([]domain.SessionSummary, error) {
	summaries, err := s.sessionRepo.ListActiveSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	if summaries == nil {
		return []domain.SessionSummary{}, nil
	}
	return summaries, nil
}

func (s *sessionService) CreateSession(ctx context.Context, req dto.CreateSessionRequest, actorID string) (*domain.Session, error) {
	now := time.Now()

	docDate := now
	if req.DocDate != "" {
		parsed, err := time.Parse(docDateLayout, req.DocDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid doc_date %q", apperrors.ErrValidation, req.DocDate)
		}
		docDate = parsed
	}
	var docDueDate *time.Time
	if req.DocDueDate != "" {
		parsed, err := time.Parse(docDateLayout, req.DocDueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid doc_due_date %q", apperrors.ErrValidation, req.DocDueDate)
		}
		docDueDate = &parsed
	}

	session := domain.Session{
		SessionID:    uuid.NewString(),
		SessionCode:  newSessionCode(req.GRPODocEntry, now),
		GRPODocEntry: req.GRPODocEntry,
		GRPODocNum:   req.GRPODocNum,
		SeriesID:     req.SeriesID,
		VendorCode:   req.VendorCode,
		VendorName:   req.VendorName,
		DocDate:      docDate,
		DocDueDate:   docDueDate,
		DocTotal:     req.DocTotal,
		Status:       domain.SessionDraft,
		AuditFields:  newAuditFields(actorID, now),
	}

	if err := s.sessionRepo.SaveSessionWithItems(ctx, session, nil); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.appendLog(ctx, session.SessionID, actorID, domain.ActionSessionCreated,
		fmt.Sprintf("Created transfer session for GRPO %d", req.GRPODocNum), ""); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *sessionService) ImportSession(ctx context.Context, docEntry int, actorID string) (*domain.Session, error) {
	doc, lines, err := s.gateway.GetGRPODocument(ctx, docEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch GRPO document %d: %w", docEntry, err)
	}
	if doc == nil || len(lines) == 0 {
		return nil, fmt.Errorf("%w: no data for GRPO document %d", apperrors.ErrNotFound, docEntry)
	}

	now := time.Now()
	docDate := now
	if parsed, err := time.Parse(docDateLayout, doc.DocDate); err == nil {
		docDate = parsed
	}
	var docDueDate *time.Time
	if doc.DocDueDate != "" {
		if parsed, err := time.Parse(docDateLayout, doc.DocDueDate); err == nil {
			docDueDate = &parsed
		}
	}

	session := domain.Session{
		SessionID:    uuid.NewString(),
		SessionCode:  newSessionCode(docEntry, now),
		GRPODocEntry: docEntry,
		GRPODocNum:   doc.DocNum,
		SeriesID:     doc.Series,
		VendorCode:   doc.CardCode,
		VendorName:   doc.CardName,
		DocDate:      docDate,
		DocDueDate:   docDueDate,
		DocTotal:     decimal.NewFromFloat(doc.DocTotal),
		Status:       domain.SessionDraft,
		AuditFields:  newAuditFields(actorID, now),
	}

	items := make([]domain.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.Item{
			ItemID:           uuid.NewString(),
			SessionID:        session.SessionID,
			LineNum:          line.LineNum,
			ItemCode:         line.ItemCode,
			ItemName:         line.ItemDescription,
			ItemDescription:  line.ItemDescription,
			ReceivedQuantity: decimal.NewFromFloat(line.Quantity),
			ApprovedQuantity: decimal.Zero,
			RejectedQuantity: decimal.Zero,
			FromWarehouse:    line.WarehouseCode,
			UnitOfMeasure:    line.UnitsOfMeasurment,
			Price:            decimal.NewFromFloat(line.Price),
			LineTotal:        decimal.NewFromFloat(line.LineTotal),
			QCStatus:         domain.QCPending,
			BaseEntry:        docEntry,
			BaseLine:         line.LineNum,
			AuditFields:      newAuditFields(actorID, now),
		})
	}

	if err := s.sessionRepo.SaveSessionWithItems(ctx, session, items); err != nil {
		return nil, fmt.Errorf("failed to import session for GRPO %d: %w", docEntry, err)
	}

	if err := s.appendLog(ctx, session.SessionID, actorID, domain.ActionSessionCreated,
		fmt.Sprintf("Created transfer session for GRPO %d with %d items", doc.DocNum, len(items)), ""); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *sessionService) GetSessionDetail(ctx context.Context, sessionID string) (*domain.Session, []domain.Item, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	items, err := s.itemRepo.FindItemsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get items for session %s: %w", sessionID, err)
	}
	return session, items, nil
}

func (s *sessionService) AddItem(ctx context.Context, sessionID string, req dto.AddItemRequest, actorID string) (*domain.Item, error) {
	if _, err := s.sessionRepo.FindSessionByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}

	now := time.Now()
	item := domain.Item{
		ItemID:           uuid.NewString(),
		SessionID:        sessionID,
		LineNum:          req.LineNum,
		ItemCode:         req.ItemCode,
		ItemName:         req.ItemName,
		ItemDescription:  req.ItemDescription,
		IsBatchItem:      req.IsBatchItem,
		IsSerialItem:     req.IsSerialItem,
		IsNonManaged:     req.IsNonManaged,
		ReceivedQuantity: req.ReceivedQuantity,
		ApprovedQuantity: decimal.Zero,
		RejectedQuantity: decimal.Zero,
		FromWarehouse:    req.FromWarehouse,
		UnitOfMeasure:    req.UnitOfMeasure,
		Price:            req.Price,
		LineTotal:        req.LineTotal,
		QCStatus:         domain.QCPending,
		BaseEntry:        req.BaseEntry,
		BaseLine:         req.BaseLine,
		AuditFields:      newAuditFields(actorID, now),
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add item to session %s: %w", sessionID, err)
	}
	return &item, nil
}

func (s *sessionService) ListActivity(ctx context.Context, sessionID string) ([]domain.ActivityLog, error) {
	if _, err := s.sessionRepo.FindSessionByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	logs, err := s.logRepo.ListLogsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity for session %s: %w", sessionID, err)
	}
	if logs == nil {
		return []domain.ActivityLog{}, nil
	}
	return logs, nil
}

func (s *sessionService) appendLog(ctx context.Context, sessionID, actorID, action, description, erpResponse string) error {
	log := domain.ActivityLog{
		LogID:       uuid.NewString(),
		SessionID:   sessionID,
		ActorID:     actorID,
		Action:      action,
		Description: description,
		ERPResponse: erpResponse,
		CreatedAt:   time.Now(),
	}
	if err := s.logRepo.SaveLog(ctx, log); err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return nil
}

// newSessionCode builds the human-facing session code from the source
// document entry and the creation instant.
func newSessionCode(docEntry int, now time.Time) string {
	return fmt.Sprintf("GRPO-%d-%s", docEntry, now.Format("20060102150405"))
}

func newAuditFields(actorID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}
}
