package services

import (
	"context"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/dto"
)

// SessionReaderSvc defines read operations for transfer sessions
type SessionReaderSvc interface {
	// ListActiveSessions retrieves the sessions still in the workflow,
	// newest first.
	ListActiveSessions(ctx context.Context) ([]domain.SessionSummary, error)

	// GetSessionDetail retrieves a session together with its items and
	// their splits.
	GetSessionDetail(ctx context.Context, sessionID string) (*domain.Session, []domain.Item, error)

	// ListActivity retrieves a session's audit trail, oldest first.
	ListActivity(ctx context.Context, sessionID string) ([]domain.ActivityLog, error)
}

// SessionWriterSvc defines write operations for transfer sessions
type SessionWriterSvc interface {
	// CreateSession creates a session from caller-supplied header fields.
	CreateSession(ctx context.Context, req dto.CreateSessionRequest, actorID string) (*domain.Session, error)

	// ImportSession fetches a GRPO document from the ERP and creates a
	// session with one item per document line.
	ImportSession(ctx context.Context, docEntry int, actorID string) (*domain.Session, error)

	// AddItem appends one line item to an existing session.
	AddItem(ctx context.Context, sessionID string, req dto.AddItemRequest, actorID string) (*domain.Item, error)
}

// SessionSvcFacade combines session read and write operations.
type SessionSvcFacade interface {
	SessionReaderSvc
	SessionWriterSvc
}
