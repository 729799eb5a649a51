package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const serviceLayerPath = "/b1s/v1"

// Client talks to a SAP B1 Service Layer instance. Authentication uses the
// service layer's cookie session, kept in the client's cookie jar after Login.
type Client struct {
	baseURL    string
	username   string
	password   string
	companyDB  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Config carries the connection settings for the service layer.
type Config struct {
	ServerURL string
	Username  string
	Password  string
	CompanyDB string
	Timeout   time.Duration
}

// NewClient builds a service layer client with its own cookie jar.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("erp: server URL cannot be empty")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("erp: failed to create cookie jar: %w", err)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:   cfg.ServerURL,
		username:  cfg.Username,
		password:  cfg.Password,
		companyDB: cfg.CompanyDB,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		logger: logger,
	}, nil
}

// Login establishes a service layer session. The session cookie lands in the
// client's jar and rides along on subsequent requests.
func (c *Client) Login(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"CompanyDB": c.companyDB,
		"UserName":  c.username,
		"Password":  c.password,
	})
	if err != nil {
		return fmt.Errorf("erp: failed to marshal login payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+serviceLayerPath+"/Login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erp: failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erp: login request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(resp.Body)
		return newRejectedError(resp.StatusCode, text)
	}
	c.logger.Info("ERP service layer session established", slog.String("company_db", c.companyDB))
	return nil
}

// valueEnvelope is the OData collection wrapper used by every list endpoint.
type valueEnvelope[T any] struct {
	Value []T `json:"value"`
}

// crossjoinRow is one row of the document/lines crossjoin. The line part is
// absent on rows that only carry the header.
type crossjoinRow struct {
	Document *GRPODocument `json:"PurchaseDeliveryNotes"`
	Line     *GRPOLine     `json:"PurchaseDeliveryNotes/DocumentLines"`
}

// GetGRPODocument fetches a GRPO header with its open lines via the
// service layer crossjoin. Returns ErrNotFound behavior upstream: an empty
// row set yields a nil document and no lines.
func (c *Client) GetGRPODocument(ctx context.Context, docEntry int) (*GRPODocument, []GRPOLine, error) {
	rawURL := fmt.Sprintf(
		"%s%s/$crossjoin(PurchaseDeliveryNotes,PurchaseDeliveryNotes/DocumentLines)"+
			"?$expand=PurchaseDeliveryNotes($select=CardCode,CardName,DocumentStatus,DocNum,Series,DocDate,DocDueDate,DocTotal,DocEntry),"+
			"PurchaseDeliveryNotes/DocumentLines($select=LineNum,ItemCode,ItemDescription,WarehouseCode,UnitsOfMeasurment,DocEntry,LineTotal,LineStatus,Quantity,Price,PriceAfterVAT)"+
			"&$filter=PurchaseDeliveryNotes/DocumentStatus eq PurchaseDeliveryNotes/DocumentLines/LineStatus"+
			" and PurchaseDeliveryNotes/DocEntry eq PurchaseDeliveryNotes/DocumentLines/DocEntry"+
			" and PurchaseDeliveryNotes/DocumentLines/DocEntry eq %d",
		c.baseURL, serviceLayerPath, docEntry,
	)

	var env valueEnvelope[crossjoinRow]
	if err := c.get(ctx, rawURL, &env); err != nil {
		return nil, nil, err
	}

	var doc *GRPODocument
	lines := make([]GRPOLine, 0, len(env.Value))
	for _, row := range env.Value {
		if row.Document != nil && doc == nil {
			d := *row.Document
			doc = &d
		}
		if row.Line != nil {
			lines = append(lines, *row.Line)
		}
	}
	return doc, lines, nil
}

// ListSeries returns the GRPO document numbering series.
func (c *Client) ListSeries(ctx context.Context) ([]Series, error) {
	var env valueEnvelope[Series]
	if err := c.get(ctx, c.queryURL("GET_GRPO_Series"), &env); err != nil {
		return nil, err
	}
	return env.Value, nil
}

// ListDocumentsBySeries returns the GRPO documents belonging to one series.
func (c *Client) ListDocumentsBySeries(ctx context.Context, seriesID int) ([]DocumentRef, error) {
	var env valueEnvelope[DocumentRef]
	params := fmt.Sprintf("seriesID='%d'", seriesID)
	if err := c.postQuery(ctx, c.queryURL("GET_GRPO_DocEntry_By_Series"), params, &env); err != nil {
		return nil, err
	}
	return env.Value, nil
}

// GetItemClassification looks up the batch/serial flags of an item master
// record. A missing item yields a nil result.
func (c *Client) GetItemClassification(ctx context.Context, itemCode string) (*ItemClassification, error) {
	var env valueEnvelope[ItemClassification]
	params := fmt.Sprintf("itemCode='%s'", itemCode)
	if err := c.postQuery(ctx, c.queryURL("ItemCode_Batch_Serial_Val"), params, &env); err != nil {
		return nil, err
	}
	if len(env.Value) == 0 {
		return nil, nil
	}
	info := env.Value[0]
	return &info, nil
}

// ListBatchNumbers returns the raw batch rows captured on one GRPO document.
func (c *Client) ListBatchNumbers(ctx context.Context, docEntry int) ([]map[string]any, error) {
	var env valueEnvelope[map[string]any]
	params := fmt.Sprintf("docEntry='%d'", docEntry)
	if err := c.postQuery(ctx, c.queryURL("Get_Batches_By_DocEntry"), params, &env); err != nil {
		return nil, err
	}
	return env.Value, nil
}

// ListWarehouses returns the warehouse master data.
func (c *Client) ListWarehouses(ctx context.Context) ([]Warehouse, error) {
	var env valueEnvelope[Warehouse]
	rawURL := c.baseURL + serviceLayerPath + "/Warehouses?$select=WarehouseName,WarehouseCode"
	if err := c.get(ctx, rawURL, &env); err != nil {
		return nil, err
	}
	return env.Value, nil
}

// ListBinLocations returns the bin locations of one warehouse.
func (c *Client) ListBinLocations(ctx context.Context, warehouseCode string) ([]BinLocation, error) {
	var env valueEnvelope[BinLocation]
	rawURL := fmt.Sprintf("%s%s/BinLocations?$select=AbsEntry,BinCode,Warehouse&$filter=Warehouse eq '%s'",
		c.baseURL, serviceLayerPath, url.QueryEscape(warehouseCode))
	if err := c.get(ctx, rawURL, &env); err != nil {
		return nil, err
	}
	return env.Value, nil
}

// CreateStockTransfer posts a stock transfer document and returns the
// ERP-assigned identifiers plus the raw response payload.
func (c *Client) CreateStockTransfer(ctx context.Context, transfer StockTransfer) (*StockTransferResult, error) {
	body, err := json.Marshal(transfer)
	if err != nil {
		return nil, fmt.Errorf("erp: failed to marshal stock transfer: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+serviceLayerPath+"/StockTransfers", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erp: failed to build stock transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erp: stock transfer request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erp: failed to read stock transfer response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, newRejectedError(resp.StatusCode, raw)
	}

	var result StockTransferResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("erp: failed to decode stock transfer response: %w", err)
	}
	result.Raw = raw
	return &result, nil
}

func (c *Client) queryURL(queryName string) string {
	return fmt.Sprintf("%s%s/SQLQueries('%s')/List", c.baseURL, serviceLayerPath, queryName)
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	// OData filter expressions are built with literal spaces; encode them so
	// the request line stays well formed.
	rawURL = strings.ReplaceAll(rawURL, " ", "%20")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("erp: failed to build request: %w", err)
	}
	req.Header.Set("Prefer", "odata.maxpagesize=0")
	return c.do(req, out)
}

// postQuery runs a parametrized SQLQueries endpoint. The service layer takes
// the parameter string in the request body, not the URL.
func (c *Client) postQuery(ctx context.Context, rawURL, paramList string, out any) error {
	body, err := json.Marshal(map[string]string{"ParamList": paramList})
	if err != nil {
		return fmt.Errorf("erp: failed to marshal query params: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erp: failed to build query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "odata.maxpagesize=0")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erp: request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(resp.Body)
		return newRejectedError(resp.StatusCode, text)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erp: failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}
