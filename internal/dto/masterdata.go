package dto

import "github.com/pragavigithub/EmeraldBarcode20260113/internal/erp"

// SeriesListResponse wraps the GRPO numbering series lookup.
type SeriesListResponse struct {
	Success bool         `json:"success"`
	Series  []erp.Series `json:"series"`
	Message string       `json:"message,omitempty"`
}

// DocumentListResponse wraps the documents-by-series lookup.
type DocumentListResponse struct {
	Success   bool              `json:"success"`
	Documents []erp.DocumentRef `json:"documents"`
}

// GRPODetailResponse wraps a GRPO document lookup. Document is nil when the
// ERP has no data for the requested entry.
type GRPODetailResponse struct {
	Success   bool              `json:"success"`
	Document  *erp.GRPODocument `json:"document"`
	LineItems []erp.GRPOLine    `json:"line_items"`
	Message   string            `json:"message,omitempty"`
}

// ItemClassificationResponse reports an item's management type.
type ItemClassificationResponse struct {
	Success      bool   `json:"success"`
	ItemCode     string `json:"item_code"`
	ItemName     string `json:"item_name"`
	IsBatchItem  bool   `json:"is_batch_item"`
	IsSerialItem bool   `json:"is_serial_item"`
	IsNonManaged bool   `json:"is_non_managed"`
	BatchNum     string `json:"batch_num"`
	SerialNum    string `json:"serial_num"`
}

// BatchNumbersResponse wraps the batch rows of one GRPO document.
type BatchNumbersResponse struct {
	Success bool             `json:"success"`
	Batches []map[string]any `json:"batches"`
	Message string           `json:"message,omitempty"`
}

// WarehouseListResponse wraps the warehouse master-data lookup.
type WarehouseListResponse struct {
	Success    bool            `json:"success"`
	Warehouses []erp.Warehouse `json:"warehouses"`
}

// BinListResponse wraps the bin-locations lookup of one warehouse.
type BinListResponse struct {
	Success bool              `json:"success"`
	Bins    []erp.BinLocation `json:"bins"`
	Message string            `json:"message,omitempty"`
}
