package repositories

import (
	"context"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
)

// ItemReader defines read operations for session line items
type ItemReader interface {
	// FindItemsBySessionID retrieves the items of a session in line order,
	// each with its splits attached.
	FindItemsBySessionID(ctx context.Context, sessionID string) ([]domain.Item, error)
}

// ItemWriter defines write operations for session line items
type ItemWriter interface {
	// SaveItem appends one item to an existing session.
	SaveItem(ctx context.Context, item domain.Item) error
}

// ItemRepositoryFacade combines item read and write operations.
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
