package repositories

import (
	"context"
	"time"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
)

// SessionReader defines read operations for transfer session data
type SessionReader interface {
	// FindSessionByID retrieves a specific session by its unique identifier.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)

	// ListActiveSessions retrieves the sessions still in the workflow
	// (draft, in_progress, completed), newest first, with item counts.
	ListActiveSessions(ctx context.Context) ([]domain.SessionSummary, error)
}

// SessionWriter defines write operations for transfer session data
type SessionWriter interface {
	// SaveSessionWithItems persists a session and its line items atomically.
	SaveSessionWithItems(ctx context.Context, session domain.Session, items []domain.Item) error

	// ApplyQCApproval updates the reviewed items in place, persists their
	// splits, and flips the session to in_progress recording the approver,
	// all within one transaction. Updates referencing unknown items are
	// skipped; the return values report how many items were updated and
	// how many were skipped.
	ApplyQCApproval(ctx context.Context, sessionID string, approverID string, results []domain.ItemQCResult, now time.Time) (updated int, skipped int, err error)

	// RecordTransferResult stores the ERP-assigned transfer identifiers,
	// marks the session transferred, and appends the audit log entry in one
	// transaction.
	RecordTransferResult(ctx context.Context, sessionID string, docEntry int, docNum int, log domain.ActivityLog, updatedBy string, now time.Time) error
}

// SessionRepositoryFacade combines session read and write operations.
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
