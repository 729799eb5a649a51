package repositories

import (
	"context"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/erp"
)

// ERPGateway is the outbound port to the ERP service layer. The concrete
// implementation lives in internal/erp; services depend on this interface so
// tests can substitute a mock.
type ERPGateway interface {
	// GetGRPODocument fetches a GRPO header and its open lines. An unknown
	// document yields a nil header and no lines, not an error.
	GetGRPODocument(ctx context.Context, docEntry int) (*erp.GRPODocument, []erp.GRPOLine, error)

	// ListSeries returns the GRPO numbering series.
	ListSeries(ctx context.Context) ([]erp.Series, error)

	// ListDocumentsBySeries returns the GRPO documents of one series.
	ListDocumentsBySeries(ctx context.Context, seriesID int) ([]erp.DocumentRef, error)

	// GetItemClassification returns an item's batch/serial flags, or nil if
	// the item is unknown to the ERP.
	GetItemClassification(ctx context.Context, itemCode string) (*erp.ItemClassification, error)

	// ListBatchNumbers returns the raw batch rows captured on a GRPO document.
	ListBatchNumbers(ctx context.Context, docEntry int) ([]map[string]any, error)

	// ListWarehouses returns the warehouse master data.
	ListWarehouses(ctx context.Context) ([]erp.Warehouse, error)

	// ListBinLocations returns the bins of one warehouse.
	ListBinLocations(ctx context.Context, warehouseCode string) ([]erp.BinLocation, error)

	// CreateStockTransfer posts a stock transfer document.
	CreateStockTransfer(ctx context.Context, transfer erp.StockTransfer) (*erp.StockTransferResult, error)
}
