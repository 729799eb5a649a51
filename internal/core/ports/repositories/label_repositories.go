package repositories

import (
	"context"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
)

// LabelReader defines read operations for unit labels
type LabelReader interface {
	// ListLabelsBySessionID retrieves a session's labels in mint order.
	ListLabelsBySessionID(ctx context.Context, sessionID string) ([]domain.Label, error)

	// CountLabelsBySessionID reports how many labels exist for a session.
	CountLabelsBySessionID(ctx context.Context, sessionID string) (int, error)
}

// LabelWriter defines write operations for unit labels
type LabelWriter interface {
	// SaveLabels persists a minted label set in a single transaction.
	SaveLabels(ctx context.Context, labels []domain.Label) error
}

// LabelRepositoryFacade combines label read and write operations.
type LabelRepositoryFacade interface {
	LabelReader
	LabelWriter
}
