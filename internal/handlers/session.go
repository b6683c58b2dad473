package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studypulse/backend/internal/models"
	"github.com/studypulse/backend/internal/service"
)

type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new study session handler
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateSession handles POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req models.CreateStudySessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	session, err := h.sessionService.LogSession(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		writeServiceError(c, err, "study session", "")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListSessions handles GET /api/v1/sessions
func (h *SessionHandler) ListSessions(c *gin.Context) {
	limit, offset := parseListParams(c)

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), c.GetString("user_id"), limit, offset)
	if err != nil {
		writeServiceError(c, err, "study session", "")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// DeleteSession handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), c.GetString("user_id"), id); err != nil {
		writeServiceError(c, err, "study session", strconv.FormatInt(id, 10))
		return
	}

	c.Status(http.StatusNoContent)
}
