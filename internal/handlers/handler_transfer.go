package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/dto"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/middleware"
)

// transferHandler handles HTTP requests related to stock transfer posting.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{
		transferService: ts,
	}
}

// registerTransferRoutes registers routes related to stock transfer posting.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	rg.POST("/sessions/:sessionID/post-transfer", h.postTransfer)
}

// postTransfer godoc
// @Summary Post the consolidated stock transfer to the ERP
// @Description Builds one stock transfer line per approved item, submits the document, and on success records the assigned identifiers and marks the session transferred.
// @Tags transfer
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.PostTransferResponse
// @Failure 400 {object} dto.ErrorResponse "No approved items to transfer"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 502 {object} dto.ErrorResponse "ERP rejected the transfer"
// @Failure 500 {object} dto.ErrorResponse "Failed to post transfer"
// @Security BearerAuth
// @Router /sessions/{sessionID}/post-transfer [post]
func (h *transferHandler) postTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}
	actorName, _ := middleware.GetUserNameFromContext(c)

	session, err := h.transferService.PostTransfer(c.Request.Context(), sessionID, actorID, actorName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Session not found"))
		} else if errors.Is(err, apperrors.ErrNoApprovedItems) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No approved items to transfer"))
		} else if errors.Is(err, apperrors.ErrERPRejected) {
			logger.Error("ERP rejected stock transfer", slog.String("session_id", sessionID), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to post transfer", slog.String("session_id", sessionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to post transfer"))
		}
		return
	}

	docEntry := 0
	docNum := 0
	if session.TransferDocEntry != nil {
		docEntry = *session.TransferDocEntry
	}
	if session.TransferDocNum != nil {
		docNum = *session.TransferDocNum
	}

	logger.Info("Stock transfer posted", slog.String("session_id", sessionID), slog.Int("erp_doc_entry", docEntry))
	c.JSON(http.StatusOK, dto.PostTransferResponse{
		Success:     true,
		ERPDocEntry: docEntry,
		ERPDocNum:   docNum,
		Message:     fmt.Sprintf("Stock transfer posted - DocEntry: %d", docEntry),
	})
}
