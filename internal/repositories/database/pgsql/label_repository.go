package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	portsrepo "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/repositories"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/models"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/utils/mapping"
)

type PgxLabelRepository struct {
	BaseRepository
}

// newPgxLabelRepository creates a new repository for unit label data.
func newPgxLabelRepository(pool *pgxpool.Pool) portsrepo.LabelRepositoryFacade {
	return &PgxLabelRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLabelRepository implements portsrepo.LabelRepositoryFacade
var _ portsrepo.LabelRepositoryFacade = (*PgxLabelRepository)(nil)

const labelColumns = `
	label_id, session_id, item_id, label_number, total_labels, quantity,
	batch_number, payload, from_warehouse, to_warehouse,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveLabels persists a minted label set in one transaction. The unique
// constraint on (session_id, item_id, label_number) rejects concurrent
// double mints at the database level.
func (r *PgxLabelRepository) SaveLabels(ctx context.Context, labels []domain.Label) error {
	if len(labels) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO transfer_labels (` + labelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	batch := &pgx.Batch{}
	for _, label := range labels {
		m := mapping.ToModelLabel(label)
		batch.Queue(query,
			m.LabelID, m.SessionID, m.ItemID, m.LabelNumber, m.TotalLabels, m.Quantity,
			m.BatchNumber, m.Payload, m.FromWarehouse, m.ToWarehouse,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert labels for session "+labels[0].SessionID, err)
	}

	return r.Commit(ctx, tx)
}

// CountLabelsBySessionID reports how many labels exist for a session.
func (r *PgxLabelRepository) CountLabelsBySessionID(ctx context.Context, sessionID string) (int, error) {
	query := `SELECT COUNT(*) FROM transfer_labels WHERE session_id = $1;`

	var count int
	if err := r.Pool.QueryRow(ctx, query, sessionID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count labels for session "+sessionID, err)
	}
	return count, nil
}

// ListLabelsBySessionID retrieves a session's labels in mint order.
func (r *PgxLabelRepository) ListLabelsBySessionID(ctx context.Context, sessionID string) ([]domain.Label, error) {
	query := `
		SELECT ` + labelColumns + `
		FROM transfer_labels
		WHERE session_id = $1
		ORDER BY created_at ASC, item_id ASC, label_number ASC;
	`
	rows, err := r.Pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query labels for session "+sessionID, err)
	}
	defer rows.Close()

	labels := []domain.Label{}
	for rows.Next() {
		var m models.Label
		err := rows.Scan(
			&m.LabelID, &m.SessionID, &m.ItemID, &m.LabelNumber, &m.TotalLabels, &m.Quantity,
			&m.BatchNumber, &m.Payload, &m.FromWarehouse, &m.ToWarehouse,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan label row", err)
		}
		labels = append(labels, mapping.ToDomainLabel(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate label rows", err)
	}
	return labels, nil
}
