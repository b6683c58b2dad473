package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studypulse/backend/internal/models"
	"github.com/studypulse/backend/internal/service"
)

type WellnessHandler struct {
	wellnessService service.WellnessService
}

// NewWellnessHandler creates a new wellness entry handler
func NewWellnessHandler(wellnessService service.WellnessService) *WellnessHandler {
	return &WellnessHandler{wellnessService: wellnessService}
}

// CreateEntry handles POST /api/v1/wellness
func (h *WellnessHandler) CreateEntry(c *gin.Context) {
	var req models.CreateWellnessEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	entry, err := h.wellnessService.LogEntry(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		writeServiceError(c, err, "wellness entry", "")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListEntries handles GET /api/v1/wellness
func (h *WellnessHandler) ListEntries(c *gin.Context) {
	limit, offset := parseListParams(c)

	entries, err := h.wellnessService.ListEntries(c.Request.Context(), c.GetString("user_id"), limit, offset)
	if err != nil {
		writeServiceError(c, err, "wellness entry", "")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// DeleteEntry handles DELETE /api/v1/wellness/:id
func (h *WellnessHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.wellnessService.DeleteEntry(c.Request.Context(), c.GetString("user_id"), id); err != nil {
		writeServiceError(c, err, "wellness entry", strconv.FormatInt(id, 10))
		return
	}

	c.Status(http.StatusNoContent)
}
