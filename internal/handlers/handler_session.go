package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// sessionHandler handles HTTP requests for the session lifecycle.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{sessionService: ss}
}

// registerSessionRoutes registers all session routes.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.startSession)
		sessions.GET("", h.listSessions)
		sessions.GET("/active", h.getActiveSession)
		sessions.GET("/:sessionID", h.getSession)
		sessions.POST("/:sessionID/stop", h.stopSession)
	}
}

// startSession starts a collection session. A scope with an active session
// already gets a 409.
func (h *sessionHandler) startSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.sessionService.StartSession(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to start session", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Session started", slog.String("session_id", session.SessionID))
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// stopSession closes an active session. Stopping a closed session is a 409;
// sessions never reopen.
func (h *sessionHandler) stopSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	session, err := h.sessionService.StopSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Session stopped", slog.String("session_id", session.SessionID))
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *sessionHandler) getSession(c *gin.Context) {
	session, err := h.sessionService.GetSessionByID(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *sessionHandler) getActiveSession(c *gin.Context) {
	session, err := h.sessionService.ActiveSession(c.Request.Context(), scopeFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *sessionHandler) listSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListSessionsByScope(c.Request.Context(), scopeFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSessionResponse(sessions))
}
