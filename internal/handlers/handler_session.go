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

// sessionHandler handles HTTP requests related to transfer sessions.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// newSessionHandler creates a new sessionHandler.
func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{
		sessionService: ss,
	}
}

// registerSessionRoutes registers routes related to transfer sessions.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("", h.listSessions)
		sessions.POST("", h.createSession)
		sessions.POST("/import/:docEntry", h.importSession)
		sessions.GET("/:sessionID", h.getSessionDetail)
		sessions.POST("/:sessionID/items", h.addItem)
		sessions.GET("/:sessionID/activity", h.listActivity)
	}
}

// listSessions godoc
// @Summary List active transfer sessions
// @Description Lists the sessions still inside the workflow (draft, in_progress, completed), newest first, with item counts.
// @Tags sessions
// @Produce json
// @Success 200 {object} dto.SessionListResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list sessions"
// @Security BearerAuth
// @Router /sessions [get]
func (h *sessionHandler) listSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.sessionService.ListActiveSessions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sessions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to list sessions"))
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionListResponse(summaries))
}

// createSession godoc
// @Summary Create a transfer session
// @Description Creates a session from caller-supplied GRPO header fields.
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body dto.CreateSessionRequest true "Session header fields"
// @Success 201 {object} dto.CreateSessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create session"
// @Security BearerAuth
// @Router /sessions [post]
func (h *sessionHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating session", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to create session", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to create session"))
		}
		return
	}

	logger.Info("Session created", slog.String("session_id", session.SessionID), slog.String("session_code", session.SessionCode))
	c.JSON(http.StatusCreated, dto.CreateSessionResponse{
		Success:     true,
		SessionID:   session.SessionID,
		SessionCode: session.SessionCode,
	})
}

// importSession godoc
// @Summary Import a GRPO document as a session
// @Description Fetches the GRPO document from the ERP and creates a session with one item per document line.
// @Tags sessions
// @Produce json
// @Param docEntry path int true "GRPO document entry"
// @Success 201 {object} dto.CreateSessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid document entry"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "GRPO document not found"
// @Failure 502 {object} dto.ErrorResponse "ERP rejected the request"
// @Failure 500 {object} dto.ErrorResponse "Failed to import session"
// @Security BearerAuth
// @Router /sessions/import/{docEntry} [post]
func (h *sessionHandler) importSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	docEntry, err := strconv.Atoi(c.Param("docEntry"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid document entry"))
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	session, err := h.sessionService.ImportSession(c.Request.Context(), docEntry, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("GRPO document not found", slog.Int("doc_entry", docEntry))
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
		} else if errors.Is(err, apperrors.ErrERPRejected) {
			logger.Error("ERP rejected GRPO lookup", slog.Int("doc_entry", docEntry), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to import session", slog.Int("doc_entry", docEntry), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to import session"))
		}
		return
	}

	logger.Info("Session imported", slog.String("session_id", session.SessionID), slog.Int("doc_entry", docEntry))
	c.JSON(http.StatusCreated, dto.CreateSessionResponse{
		Success:     true,
		SessionID:   session.SessionID,
		SessionCode: session.SessionCode,
	})
}

// getSessionDetail godoc
// @Summary Get a session with its items
// @Description Retrieves a session together with its items and their splits.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionDetailResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve session"
// @Security BearerAuth
// @Router /sessions/{sessionID} [get]
func (h *sessionHandler) getSessionDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	session, items, err := h.sessionService.GetSessionDetail(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Session not found"))
		} else {
			logger.Error("Failed to retrieve session", slog.String("session_id", sessionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve session"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SessionDetailResponse{
		Success: true,
		Session: *session,
		Items:   items,
	})
}

// addItem godoc
// @Summary Add an item to a session
// @Description Appends one line item to an existing session.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param item body dto.AddItemRequest true "Line item fields"
// @Success 201 {object} dto.AddItemResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to add item"
// @Security BearerAuth
// @Router /sessions/{sessionID}/items [post]
func (h *sessionHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	item, err := h.sessionService.AddItem(c.Request.Context(), sessionID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Session not found"))
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to add item", slog.String("session_id", sessionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to add item"))
		}
		return
	}

	logger.Info("Item added to session", slog.String("session_id", sessionID), slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.AddItemResponse{Success: true, ItemID: item.ItemID})
}

// listActivity godoc
// @Summary List a session's activity log
// @Description Retrieves the append-only audit trail of a session, oldest first.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.ActivityLogResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to list activity"
// @Security BearerAuth
// @Router /sessions/{sessionID}/activity [get]
func (h *sessionHandler) listActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	logs, err := h.sessionService.ListActivity(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Session not found"))
		} else {
			logger.Error("Failed to list activity", slog.String("session_id", sessionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to list activity"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ActivityLogResponse{Success: true, Logs: logs})
}
