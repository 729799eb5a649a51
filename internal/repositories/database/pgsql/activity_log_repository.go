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

type PgxActivityLogRepository struct {
	BaseRepository
}

// newPgxActivityLogRepository creates a new repository for audit trail data.
func newPgxActivityLogRepository(pool *pgxpool.Pool) portsrepo.ActivityLogRepositoryFacade {
	return &PgxActivityLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxActivityLogRepository implements portsrepo.ActivityLogRepositoryFacade
var _ portsrepo.ActivityLogRepositoryFacade = (*PgxActivityLogRepository)(nil)

const activityLogColumns = `
	log_id, session_id, actor_id, action, description, erp_response, created_at`

// SaveLog appends one audit record.
func (r *PgxActivityLogRepository) SaveLog(ctx context.Context, log domain.ActivityLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertActivityLog(ctx, tx, log); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListLogsBySessionID retrieves a session's audit trail, oldest first.
func (r *PgxActivityLogRepository) ListLogsBySessionID(ctx context.Context, sessionID string) ([]domain.ActivityLog, error) {
	query := `
		SELECT ` + activityLogColumns + `
		FROM activity_logs
		WHERE session_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query activity logs for session "+sessionID, err)
	}
	defer rows.Close()

	logs := []domain.ActivityLog{}
	for rows.Next() {
		var m models.ActivityLog
		err := rows.Scan(
			&m.LogID, &m.SessionID, &m.ActorID, &m.Action, &m.Description,
			&m.ERPResponse, &m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan activity log row", err)
		}
		logs = append(logs, mapping.ToDomainActivityLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate activity log rows", err)
	}
	return logs, nil
}

// insertActivityLog runs the audit insert on the given transaction so other
// repositories can fold a log entry into their own transaction.
func insertActivityLog(ctx context.Context, tx pgx.Tx, log domain.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (` + activityLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	m := mapping.ToModelActivityLog(log)
	_, err := tx.Exec(ctx, query,
		m.LogID, m.SessionID, m.ActorID, m.Action, m.Description, m.ERPResponse, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert activity log for session "+m.SessionID, err)
	}
	return nil
}
