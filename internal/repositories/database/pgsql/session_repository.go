package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	portsrepo "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/repositories"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/models"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/utils/mapping"
)

type PgxSessionRepository struct {
	BaseRepository
}

// newPgxSessionRepository creates a new repository for transfer session data.
func newPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSessionRepository implements portsrepo.SessionRepositoryFacade
var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

const sessionColumns = `
	session_id, session_code, grpo_doc_entry, grpo_doc_num, series_id,
	vendor_code, vendor_name, doc_date, doc_due_date, doc_total, status,
	qc_approved_by, transfer_doc_entry, transfer_doc_num,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveSessionWithItems persists a session and its line items in one
// transaction. Items ride in a pgx batch so large documents stay one
// round trip.
func (r *PgxSessionRepository) SaveSessionWithItems(ctx context.Context, session domain.Session, items []domain.Item) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelSession := mapping.ToModelSession(session)
	sessionQuery := `
		INSERT INTO transfer_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, sessionQuery,
		modelSession.SessionID,
		modelSession.SessionCode,
		modelSession.GRPODocEntry,
		modelSession.GRPODocNum,
		modelSession.SeriesID,
		modelSession.VendorCode,
		modelSession.VendorName,
		modelSession.DocDate,
		modelSession.DocDueDate,
		modelSession.DocTotal,
		modelSession.Status,
		modelSession.QCApprovedBy,
		modelSession.TransferDocEntry,
		modelSession.TransferDocNum,
		modelSession.CreatedAt,
		modelSession.CreatedBy,
		modelSession.LastUpdatedAt,
		modelSession.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert session "+modelSession.SessionID, err)
	}

	if len(items) > 0 {
		batch := &pgx.Batch{}
		for _, item := range items {
			queueItemInsert(batch, mapping.ToModelItem(item))
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert items for session "+modelSession.SessionID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindSessionByID retrieves a session by its ID.
func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM transfer_sessions WHERE session_id = $1;`

	modelSession, err := scanSession(r.Pool.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find session by ID "+sessionID, err)
	}

	domainSession := mapping.ToDomainSession(*modelSession)
	return &domainSession, nil
}

// ListActiveSessions retrieves the sessions still inside the workflow,
// newest first, with their item counts.
func (r *PgxSessionRepository) ListActiveSessions(ctx context.Context) ([]domain.SessionSummary, error) {
	query := `
		SELECT ` + sessionColumns + `,
		       (SELECT COUNT(*) FROM transfer_items i WHERE i.session_id = s.session_id) AS item_count
		FROM transfer_sessions s
		WHERE status IN ('draft', 'in_progress', 'completed')
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query active sessions", err)
	}
	defer rows.Close()

	summaries := []domain.SessionSummary{}
	for rows.Next() {
		var m models.Session
		var itemCount int
		err := rows.Scan(
			&m.SessionID, &m.SessionCode, &m.GRPODocEntry, &m.GRPODocNum, &m.SeriesID,
			&m.VendorCode, &m.VendorName, &m.DocDate, &m.DocDueDate, &m.DocTotal, &m.Status,
			&m.QCApprovedBy, &m.TransferDocEntry, &m.TransferDocNum,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
			&itemCount,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan session row", err)
		}
		summaries = append(summaries, domain.SessionSummary{
			Session:   mapping.ToDomainSession(m),
			ItemCount: itemCount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate session rows", err)
	}
	return summaries, nil
}

// ApplyQCApproval updates reviewed items, inserts their splits, flips the
// session to in_progress and records the approver, all inside one
// transaction. Updates whose item does not belong to the session are counted
// as skipped rather than failing the batch.
func (r *PgxSessionRepository) ApplyQCApproval(ctx context.Context, sessionID string, approverID string, results []domain.ItemQCResult, now time.Time) (int, int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer r.Rollback(ctx, tx)

	itemQuery := `
		UPDATE transfer_items
		SET approved_quantity = $1, rejected_quantity = $2, qc_status = $3,
		    qc_notes = $4, to_warehouse = $5, to_bin_code = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE item_id = $9 AND session_id = $10;
	`
	splitQuery := `
		INSERT INTO transfer_splits (
			split_id, item_id, split_number, quantity, status,
			from_warehouse, from_bin_code, to_warehouse, to_bin_code,
			batch_number, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`

	updated := 0
	skipped := 0
	for _, result := range results {
		tag, err := tx.Exec(ctx, itemQuery,
			result.ApprovedQuantity,
			result.RejectedQuantity,
			string(result.QCStatus),
			result.QCNotes,
			result.ToWarehouse,
			result.ToBinCode,
			now,
			approverID,
			result.ItemID,
			sessionID,
		)
		if err != nil {
			return 0, 0, apperrors.NewAppError(500, "failed to update item "+result.ItemID, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
			continue
		}
		updated++

		for _, split := range result.Splits {
			modelSplit := mapping.ToModelSplit(split)
			_, err := tx.Exec(ctx, splitQuery,
				modelSplit.SplitID,
				modelSplit.ItemID,
				modelSplit.SplitNumber,
				modelSplit.Quantity,
				modelSplit.Status,
				modelSplit.FromWarehouse,
				modelSplit.FromBinCode,
				modelSplit.ToWarehouse,
				modelSplit.ToBinCode,
				modelSplit.BatchNumber,
				modelSplit.Notes,
				modelSplit.CreatedAt,
				modelSplit.CreatedBy,
				modelSplit.LastUpdatedAt,
				modelSplit.LastUpdatedBy,
			)
			if err != nil {
				return 0, 0, apperrors.NewAppError(500, "failed to insert split for item "+result.ItemID, err)
			}
		}
	}

	// The submission itself marks the session in progress, whatever the
	// batch contained.
	sessionQuery := `
		UPDATE transfer_sessions
		SET status = $1, qc_approved_by = $2, last_updated_at = $3, last_updated_by = $4
		WHERE session_id = $5;
	`
	tag, err := tx.Exec(ctx, sessionQuery, string(domain.SessionInProgress), approverID, now, approverID, sessionID)
	if err != nil {
		return 0, 0, apperrors.NewAppError(500, "failed to update session "+sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, 0, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, 0, err
	}
	return updated, skipped, nil
}

// RecordTransferResult stores the ERP-assigned document identifiers, marks
// the session transferred and appends the audit entry in one transaction.
func (r *PgxSessionRepository) RecordTransferResult(ctx context.Context, sessionID string, docEntry int, docNum int, log domain.ActivityLog, updatedBy string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE transfer_sessions
		SET transfer_doc_entry = $1, transfer_doc_num = $2, status = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE session_id = $6;
	`
	tag, err := tx.Exec(ctx, query, docEntry, docNum, string(domain.SessionTransferred), now, updatedBy, sessionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update session "+sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertActivityLog(ctx, tx, log); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// scanSession scans one session row into its model.
func scanSession(row pgx.Row) (*models.Session, error) {
	var m models.Session
	err := row.Scan(
		&m.SessionID, &m.SessionCode, &m.GRPODocEntry, &m.GRPODocNum, &m.SeriesID,
		&m.VendorCode, &m.VendorName, &m.DocDate, &m.DocDueDate, &m.DocTotal, &m.Status,
		&m.QCApprovedBy, &m.TransferDocEntry, &m.TransferDocNum,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
