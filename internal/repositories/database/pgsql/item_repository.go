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

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for transfer item data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxItemRepository implements portsrepo.ItemRepositoryFacade
var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

const itemColumns = `
	item_id, session_id, line_num, item_code, item_name, item_description,
	is_batch_item, is_serial_item, is_non_managed,
	received_quantity, approved_quantity, rejected_quantity,
	from_warehouse, from_bin_code, to_warehouse, to_bin_code,
	unit_of_measure, price, line_total, qc_status, qc_notes,
	base_entry, base_line,
	created_at, created_by, last_updated_at, last_updated_by`

const splitColumns = `
	split_id, item_id, split_number, quantity, status,
	from_warehouse, from_bin_code, to_warehouse, to_bin_code,
	batch_number, notes,
	created_at, created_by, last_updated_at, last_updated_by`

// FindItemsBySessionID retrieves a session's items in line order, each with
// its splits attached.
func (r *PgxItemRepository) FindItemsBySessionID(ctx context.Context, sessionID string) ([]domain.Item, error) {
	itemQuery := `SELECT ` + itemColumns + ` FROM transfer_items WHERE session_id = $1 ORDER BY line_num ASC;`

	rows, err := r.Pool.Query(ctx, itemQuery, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for session "+sessionID, err)
	}
	defer rows.Close()

	items := []domain.Item{}
	index := map[string]int{}
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row", err)
		}
		index[m.ItemID] = len(items)
		items = append(items, mapping.ToDomainItem(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate item rows", err)
	}
	if len(items) == 0 {
		return items, nil
	}

	splitQuery := `
		SELECT ` + splitColumns + `
		FROM transfer_splits
		WHERE item_id IN (SELECT item_id FROM transfer_items WHERE session_id = $1)
		ORDER BY item_id, split_number ASC;
	`
	splitRows, err := r.Pool.Query(ctx, splitQuery, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query splits for session "+sessionID, err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var m models.Split
		err := splitRows.Scan(
			&m.SplitID, &m.ItemID, &m.SplitNumber, &m.Quantity, &m.Status,
			&m.FromWarehouse, &m.FromBinCode, &m.ToWarehouse, &m.ToBinCode,
			&m.BatchNumber, &m.Notes,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan split row", err)
		}
		if i, ok := index[m.ItemID]; ok {
			items[i].Splits = append(items[i].Splits, mapping.ToDomainSplit(m))
		}
	}
	if err := splitRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate split rows", err)
	}

	return items, nil
}

// SaveItem appends one item to an existing session.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	queueItemInsert(batch, mapping.ToModelItem(item))
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert item "+item.ItemID, err)
	}

	return r.Commit(ctx, tx)
}

// queueItemInsert queues one item insert onto a pgx batch.
func queueItemInsert(batch *pgx.Batch, m models.Item) {
	query := `
		INSERT INTO transfer_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27);
	`
	batch.Queue(query,
		m.ItemID, m.SessionID, m.LineNum, m.ItemCode, m.ItemName, m.ItemDescription,
		m.IsBatchItem, m.IsSerialItem, m.IsNonManaged,
		m.ReceivedQuantity, m.ApprovedQuantity, m.RejectedQuantity,
		m.FromWarehouse, m.FromBinCode, m.ToWarehouse, m.ToBinCode,
		m.UnitOfMeasure, m.Price, m.LineTotal, m.QCStatus, m.QCNotes,
		m.BaseEntry, m.BaseLine,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

// scanItem scans one item row into its model.
func scanItem(row pgx.Row) (*models.Item, error) {
	var m models.Item
	err := row.Scan(
		&m.ItemID, &m.SessionID, &m.LineNum, &m.ItemCode, &m.ItemName, &m.ItemDescription,
		&m.IsBatchItem, &m.IsSerialItem, &m.IsNonManaged,
		&m.ReceivedQuantity, &m.ApprovedQuantity, &m.RejectedQuantity,
		&m.FromWarehouse, &m.FromBinCode, &m.ToWarehouse, &m.ToBinCode,
		&m.UnitOfMeasure, &m.Price, &m.LineTotal, &m.QCStatus, &m.QCNotes,
		&m.BaseEntry, &m.BaseLine,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
