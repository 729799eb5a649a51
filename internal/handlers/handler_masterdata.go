package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/dto"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/middleware"
)

// masterDataHandler handles HTTP requests for ERP master-data lookups.
type masterDataHandler struct {
	masterDataService portssvc.MasterDataSvcFacade
}

// newMasterDataHandler creates a new masterDataHandler.
func newMasterDataHandler(ms portssvc.MasterDataSvcFacade) *masterDataHandler {
	return &masterDataHandler{
		masterDataService: ms,
	}
}

// registerMasterDataRoutes registers routes for ERP master-data lookups.
func registerMasterDataRoutes(rg *gin.RouterGroup, masterDataService portssvc.MasterDataSvcFacade) {
	h := newMasterDataHandler(masterDataService)

	rg.GET("/series", h.listSeries)
	rg.GET("/documents/:seriesID", h.listDocuments)
	rg.GET("/grpo-details/:docEntry", h.getGRPODetails)
	rg.GET("/items/:itemCode/classification", h.classifyItem)
	rg.GET("/batch-numbers/:docEntry", h.listBatchNumbers)
	rg.GET("/warehouses", h.listWarehouses)
	rg.GET("/warehouses/:whsCode/bins", h.listBins)
}

// listSeries godoc
// @Summary List GRPO numbering series
// @Tags masterdata
// @Produce json
// @Success 200 {object} dto.SeriesListResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "ERP rejected the request"
// @Security BearerAuth
// @Router /series [get]
func (h *masterDataHandler) listSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	series, err := h.masterDataService.ListSeries(c.Request.Context())
	if err != nil {
		h.respondLookupError(c, logger, "Failed to list series", err)
		return
	}

	c.JSON(http.StatusOK, dto.SeriesListResponse{Success: true, Series: series})
}

// listDocuments godoc
// @Summary List GRPO documents of a series
// @Tags masterdata
// @Produce json
// @Param seriesID path int true "Series ID"
// @Success 200 {object} dto.DocumentListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid series ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "ERP rejected the request"
// @Security BearerAuth
// @Router /documents/{seriesID} [get]
func (h *masterDataHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	seriesID, err := strconv.Atoi(c.Param("seriesID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid series ID"))
		return
	}

	documents, err := h.masterDataService.ListDocumentsBySeries(c.Request.Context(), seriesID)
	if err != nil {
		h.respondLookupError(c, logger, "Failed to list documents", err)
		return
	}

	c.JSON(http.StatusOK, dto.DocumentListResponse{Success: true, Documents: documents})
}

// getGRPODetails godoc
// @Summary Get a GRPO document with its open lines
// @Tags masterdata
// @Produce json
// @Param docEntry path int true "GRPO document entry"
// @Success 200 {object} dto.GRPODetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid document entry"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "ERP rejected the request"
// @Security BearerAuth
// @Router /grpo-details/{docEntry} [get]
func (h *masterDataHandler) getGRPODetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	docEntry, err := strconv.Atoi(c.Param("docEntry"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid document entry"))
		return
	}

	document, lines, err := h.masterDataService.GetGRPODetails(c.Request.Context(), docEntry)
	if err != nil {
		h.respondLookupError(c, logger, "Failed to fetch GRPO details", err)
		return
	}

	res := dto.GRPODetailResponse{Success: true, Document: document, LineItems: lines}
	if document == nil {
		res.Message = "No data found for this document"
	}
	c.JSON(http.StatusOK, res)
}

// classifyItem godoc
// @Summary Get an item's batch/serial classification
// @Tags masterdata
// @Produce json
// @Param itemCode path string true "Item code"
// @Success 200 {object} dto.ItemClassificationResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 502 {object} dto.ErrorResponse "ERP rejected the request"
// @Security BearerAuth
// @Router /items/{itemCode}/classification [get]
func (h *masterDataHandler) classifyItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemCode := c.Param("itemCode")

	classification, err := h.masterDataService.ClassifyItem(c.Request.Context(), itemCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Item not found"))
			return
		}
		h.respondLookupError(c, logger, "Failed to classify item", err)
		return
	}

	c.JSON(http.StatusOK, dto.ItemClassificationResponse{
		Success:      true,
		ItemCode:     classification.ItemCode,
		ItemName:     classification.ItemName,
		IsBatchItem:  classification.IsBatchManaged(),
		IsSerialItem: classification.IsSerialManaged(),
		IsNonManaged: !classification.IsBatchManaged() && !classification.IsSerialManaged(),
		BatchNum:     classification.BatchNum,
		SerialNum:    classification.SerialNum,
	})
}

// listBatchNumbers godoc
// @Summary List the batch rows captured on a GRPO document
// @Tags masterdata
// @Produce json
// @Param docEntry path int true "GRPO document entry"
// @Success 200 {object} dto.BatchNumbersResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid document entry"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "ERP rejected the request"
// @Security BearerAuth
// @Router /batch-numbers/{docEntry} [get]
func (h *masterDataHandler) listBatchNumbers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	docEntry, err := strconv.Atoi(c.Param("docEntry"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid document entry"))
		return
	}

	batches, err := h.masterDataService.ListBatchNumbers(c.Request.Context(), docEntry)
	if err != nil {
		h.respondLookupError(c, logger, "Failed to list batch numbers", err)
		return
	}

	res := dto.BatchNumbersResponse{Success: true, Batches: batches}
	if len(batches) == 0 {
		res.Message = "No batch rows found for this document"
	}
	c.JSON(http.StatusOK, res)
}

// listWarehouses godoc
// @Summary List warehouses
// @Tags masterdata
// @Produce json
// @Success 200 {object} dto.WarehouseListResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "ERP rejected the request"
// @Security BearerAuth
// @Router /warehouses [get]
func (h *masterDataHandler) listWarehouses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	warehouses, err := h.masterDataService.ListWarehouses(c.Request.Context())
	if err != nil {
		h.respondLookupError(c, logger, "Failed to list warehouses", err)
		return
	}

	c.JSON(http.StatusOK, dto.WarehouseListResponse{Success: true, Warehouses: warehouses})
}

// listBins godoc
// @Summary List the bin locations of a warehouse
// @Tags masterdata
// @Produce json
// @Param whsCode path string true "Warehouse code"
// @Success 200 {object} dto.BinListResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "ERP rejected the request"
// @Security BearerAuth
// @Router /warehouses/{whsCode}/bins [get]
func (h *masterDataHandler) listBins(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	whsCode := c.Param("whsCode")

	bins, err := h.masterDataService.ListBinLocations(c.Request.Context(), whsCode)
	if err != nil {
		h.respondLookupError(c, logger, "Failed to list bin locations", err)
		return
	}

	res := dto.BinListResponse{Success: true, Bins: bins}
	if len(bins) == 0 {
		res.Message = "No bins found for this warehouse"
	}
	c.JSON(http.StatusOK, res)
}

// respondLookupError maps ERP lookup failures onto the wire.
func (h *masterDataHandler) respondLookupError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	if errors.Is(err, apperrors.ErrERPRejected) {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(err.Error()))
		return
	}
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(msg))
}
