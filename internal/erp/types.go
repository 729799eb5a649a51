package erp

import "encoding/json"

// BaseTypeGRPO is the SAP B1 object type tag for a purchase delivery note
// (GRPO), used as the BaseType of stock transfer lines drawn from one.
const BaseTypeGRPO = "1250000001"

// PlaceholderBinAbsEntry stands in for the bin-location absolute entry on
// bin allocations. The real value requires a BinLocations lookup that is not
// integrated yet; the service layer accepts the placeholder on test systems.
const PlaceholderBinAbsEntry = 1

// GRPODocument is the header of a purchase delivery note.
type GRPODocument struct {
	DocEntry       int     `json:"DocEntry"`
	DocNum         int     `json:"DocNum"`
	Series         int     `json:"Series"`
	CardCode       string  `json:"CardCode"`
	CardName       string  `json:"CardName"`
	DocumentStatus string  `json:"DocumentStatus"`
	DocDate        string  `json:"DocDate"`    // yyyy-mm-dd
	DocDueDate     string  `json:"DocDueDate"` // yyyy-mm-dd, may be empty
	DocTotal       float64 `json:"DocTotal"`
}

// GRPOLine is one document line of a purchase delivery note.
type GRPOLine struct {
	DocEntry          int     `json:"DocEntry"`
	LineNum           int     `json:"LineNum"`
	ItemCode          string  `json:"ItemCode"`
	ItemDescription   string  `json:"ItemDescription"`
	WarehouseCode     string  `json:"WarehouseCode"`
	UnitsOfMeasurment string  `json:"UnitsOfMeasurment"`
	LineStatus        string  `json:"LineStatus"`
	Quantity          float64 `json:"Quantity"`
	Price             float64 `json:"Price"`
	PriceAfterVAT     float64 `json:"PriceAfterVAT"`
	LineTotal         float64 `json:"LineTotal"`
}

// Series is one GRPO numbering series row from GET_GRPO_Series.
type Series struct {
	SeriesID   int    `json:"SeriesID"`
	SeriesName string `json:"SeriesName"`
	NextNumber int    `json:"NextNumber"`
}

// DocumentRef is one GRPO document row from GET_GRPO_DocEntry_By_Series.
type DocumentRef struct {
	DocEntry  int    `json:"DocEntry"`
	DocNum    int    `json:"DocNum"`
	CardName  string `json:"CardName"`
	DocStatus string `json:"DocStatus"`
}

// ItemClassification is the batch/serial management flags of an item master
// record, as returned by ItemCode_Batch_Serial_Val. BatchNum and SerialNum
// carry the raw Y/N flags.
type ItemClassification struct {
	ItemCode  string `json:"ItemCode"`
	ItemName  string `json:"ItemName"`
	BatchNum  string `json:"BatchNum"`
	SerialNum string `json:"SerialNum"`
}

// IsBatchManaged reports whether the item is batch managed.
func (c ItemClassification) IsBatchManaged() bool { return c.BatchNum == "Y" }

// IsSerialManaged reports whether the item is serial managed.
func (c ItemClassification) IsSerialManaged() bool { return c.SerialNum == "Y" }

// Warehouse is one warehouse master-data row.
type Warehouse struct {
	WarehouseCode string `json:"WarehouseCode"`
	WarehouseName string `json:"WarehouseName"`
}

// BinLocation is one bin-location master-data row.
type BinLocation struct {
	AbsEntry  int    `json:"AbsEntry"`
	BinCode   string `json:"BinCode"`
	Warehouse string `json:"Warehouse"`
}

// StockTransfer is the document posted to the StockTransfers endpoint.
type StockTransfer struct {
	DocDate            string              `json:"DocDate"` // yyyy-mm-dd
	Comments           string              `json:"Comments"`
	FromWarehouse      string              `json:"FromWarehouse"`
	ToWarehouse        string              `json:"ToWarehouse"`
	StockTransferLines []StockTransferLine `json:"StockTransferLines"`
}

// StockTransferLine is one line of a stock transfer document.
type StockTransferLine struct {
	LineNum           int               `json:"LineNum"`
	ItemCode          string            `json:"ItemCode"`
	Quantity          float64           `json:"Quantity"`
	WarehouseCode     string            `json:"WarehouseCode"`     // destination
	FromWarehouseCode string            `json:"FromWarehouseCode"` // source
	BaseEntry         int               `json:"BaseEntry"`
	BaseLine          int               `json:"BaseLine"`
	BaseType          string            `json:"BaseType"`
	BatchNumbers      []BatchAllocation `json:"BatchNumbers"`
	BinAllocations    []BinAllocation   `json:"StockTransferLinesBinAllocations"`
}

// BatchAllocation assigns part of a line quantity to a batch number.
type BatchAllocation struct {
	BatchNumber string  `json:"BatchNumber"`
	Quantity    float64 `json:"Quantity"`
}

// BinAllocation assigns a line quantity to a bin on either side of the move.
type BinAllocation struct {
	BinActionType                 string  `json:"BinActionType"` // batFromWarehouse / batToWarehouse
	BinAbsEntry                   int     `json:"BinAbsEntry"`
	Quantity                      float64 `json:"Quantity"`
	SerialAndBatchNumbersBaseLine int     `json:"SerialAndBatchNumbersBaseLine"`
}

// StockTransferResult carries the ERP-assigned identifiers of a created
// stock transfer together with the raw response payload for auditing.
type StockTransferResult struct {
	DocEntry int             `json:"DocEntry"`
	DocNum   int             `json:"DocNum"`
	Raw      json.RawMessage `json:"-"`
}
