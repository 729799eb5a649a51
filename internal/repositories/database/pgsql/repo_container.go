package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SessionRepo:     newPgxSessionRepository(pool),
		ItemRepo:        newPgxItemRepository(pool),
		LabelRepo:       newPgxLabelRepository(pool),
		ActivityLogRepo: newPgxActivityLogRepository(pool),
	}
}
