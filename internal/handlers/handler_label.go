package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/dto"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/middleware"
)

// labelHandler handles HTTP requests related to unit labels.
type labelHandler struct {
	labelService portssvc.LabelSvcFacade
}

// newLabelHandler creates a new labelHandler.
func newLabelHandler(ls portssvc.LabelSvcFacade) *labelHandler {
	return &labelHandler{
		labelService: ls,
	}
}

// registerLabelRoutes registers routes related to unit labels.
func registerLabelRoutes(rg *gin.RouterGroup, labelService portssvc.LabelSvcFacade) {
	h := newLabelHandler(labelService)

	rg.GET("/sessions/:sessionID/labels", h.listLabels)
	rg.POST("/sessions/:sessionID/generate-labels", h.generateLabels)
}

// listLabels godoc
// @Summary List a session's minted labels
// @Description Retrieves the unit labels minted for a session.
// @Tags labels
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.LabelListResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to list labels"
// @Security BearerAuth
// @Router /sessions/{sessionID}/labels [get]
func (h *labelHandler) listLabels(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	labels, err := h.labelService.ListLabels(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Session not found"))
		} else {
			logger.Error("Failed to list labels", slog.String("session_id", sessionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to list labels"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.LabelListResponse{Success: true, Labels: dto.ToLabelResponses(labels)})
}

// generateLabels godoc
// @Summary Mint unit labels for approved stock
// @Description Mints one label per whole approved unit for every approved item, numbered 1..N. A session whose labels already exist cannot be minted again.
// @Tags labels
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 201 {object} dto.GenerateLabelsResponse
// @Failure 400 {object} dto.ErrorResponse "No approved items or no whole units to label"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Labels already generated for this session"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate labels"
// @Security BearerAuth
// @Router /sessions/{sessionID}/generate-labels [post]
func (h *labelHandler) generateLabels(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	labels, err := h.labelService.GenerateLabels(c.Request.Context(), sessionID, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Session not found"))
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, dto.NewErrorResponse("Labels already generated for this session"))
		} else if errors.Is(err, apperrors.ErrNoApprovedItems) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No approved items to label"))
		} else if errors.Is(err, apperrors.ErrNoLabelsGenerated) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No whole approved units to label"))
		} else {
			logger.Error("Failed to generate labels", slog.String("session_id", sessionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to generate labels"))
		}
		return
	}

	logger.Info("Labels generated", slog.String("session_id", sessionID), slog.Int("count", len(labels)))
	c.JSON(http.StatusCreated, dto.GenerateLabelsResponse{
		Success:         true,
		LabelsGenerated: len(labels),
		Labels:          dto.ToLabelResponses(labels),
	})
}
