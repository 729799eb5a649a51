package services

import (
	"context"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/dto"
)

// QCSvcFacade applies quality-control review outcomes to a session.
type QCSvcFacade interface {
	// ApproveItems updates the reviewed items, persists their splits, and
	// moves the session to in_progress recording the approver. Updates
	// referencing unknown items are skipped and counted, not errored.
	ApproveItems(ctx context.Context, sessionID string, req dto.QCApprovalRequest, actorID string) (updated int, skipped int, err error)
}

// LabelSvcFacade mints and lists per-unit labels for approved stock.
type LabelSvcFacade interface {
	// GenerateLabels mints floor(approved quantity) labels per approved
	// item, numbered 1..N with quantity one each. Re-minting a session that
	// already has labels fails with ErrDuplicate.
	GenerateLabels(ctx context.Context, sessionID string, actorID string) ([]domain.Label, error)

	// ListLabels retrieves a session's minted labels.
	ListLabels(ctx context.Context, sessionID string) ([]domain.Label, error)
}

// TransferSvcFacade assembles and posts the consolidated stock transfer.
type TransferSvcFacade interface {
	// PostTransfer builds one stock transfer line per approved item,
	// submits the document to the ERP, and on success records the assigned
	// identifiers and marks the session transferred. A failed post leaves
	// the session untouched.
	PostTransfer(ctx context.Context, sessionID string, actorID string, actorName string) (*domain.Session, error)
}
