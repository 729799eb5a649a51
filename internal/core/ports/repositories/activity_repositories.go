package repositories

import (
	"context"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
)

// ActivityLogRepositoryFacade persists and lists the append-only audit trail.
type ActivityLogRepositoryFacade interface {
	// SaveLog appends one audit record.
	SaveLog(ctx context.Context, log domain.ActivityLog) error

	// ListLogsBySessionID retrieves a session's audit trail, oldest first.
	ListLogsBySessionID(ctx context.Context, sessionID string) ([]domain.ActivityLog, error)
}
