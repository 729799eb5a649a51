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

// qcHandler handles HTTP requests related to QC review.
type qcHandler struct {
	qcService portssvc.QCSvcFacade
}

// newQCHandler creates a new qcHandler.
func newQCHandler(qs portssvc.QCSvcFacade) *qcHandler {
	return &qcHandler{
		qcService: qs,
	}
}

// registerQCRoutes registers routes related to QC review.
func registerQCRoutes(rg *gin.RouterGroup, qcService portssvc.QCSvcFacade) {
	h := newQCHandler(qcService)

	rg.POST("/sessions/:sessionID/qc-approve", h.approveItems)
}

// approveItems godoc
// @Summary Submit QC review outcomes for a session
// @Description Updates the reviewed items with approved/rejected quantities and splits, and moves the session to in_progress. Updates referencing unknown items are skipped and counted.
// @Tags qc
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param review body dto.QCApprovalRequest true "Per-item review outcomes"
// @Success 200 {object} dto.QCApprovalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to apply QC review"
// @Security BearerAuth
// @Router /sessions/{sessionID}/qc-approve [post]
func (h *qcHandler) approveItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	var req dto.QCApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for approveItems", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	updated, skipped, err := h.qcService.ApproveItems(c.Request.Context(), sessionID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Session not found"))
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to apply QC review", slog.String("session_id", sessionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to apply QC review"))
		}
		return
	}

	logger.Info("QC review applied", slog.String("session_id", sessionID), slog.Int("updated", updated), slog.Int("skipped", skipped))
	c.JSON(http.StatusOK, dto.QCApprovalResponse{
		Success:      true,
		Message:      fmt.Sprintf("QC review applied: %d items updated, %d skipped", updated, skipped),
		ItemsUpdated: updated,
		ItemsSkipped: skipped,
	})
}
