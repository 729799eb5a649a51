package services

import (
	"context"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/erp"
)

// MasterDataSvcFacade exposes the ERP master-data and document lookups the
// review UI drives: series, documents, item classification, batches,
// warehouses and bins.
type MasterDataSvcFacade interface {
	ListSeries(ctx context.Context) ([]erp.Series, error)
	ListDocumentsBySeries(ctx context.Context, seriesID int) ([]erp.DocumentRef, error)
	GetGRPODetails(ctx context.Context, docEntry int) (*erp.GRPODocument, []erp.GRPOLine, error)

	// ClassifyItem returns an item's batch/serial flags; an item unknown to
	// the ERP yields ErrNotFound.
	ClassifyItem(ctx context.Context, itemCode string) (*erp.ItemClassification, error)

	ListBatchNumbers(ctx context.Context, docEntry int) ([]map[string]any, error)
	ListWarehouses(ctx context.Context) ([]erp.Warehouse, error)
	ListBinLocations(ctx context.Context, warehouseCode string) ([]erp.BinLocation, error)
}
