package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studypulse/backend/internal/models"
	"github.com/studypulse/backend/internal/service"
)

type PerformanceHandler struct {
	performanceService service.PerformanceService
}

// NewPerformanceHandler creates a new performance record handler
func NewPerformanceHandler(performanceService service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService}
}

// CreateRecord handles POST /api/v1/performance
func (h *PerformanceHandler) CreateRecord(c *gin.Context) {
	var req models.CreatePerformanceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	record, err := h.performanceService.LogRecord(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		writeServiceError(c, err, "performance record", "")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListRecords handles GET /api/v1/performance
func (h *PerformanceHandler) ListRecords(c *gin.Context) {
	limit, offset := parseListParams(c)

	records, err := h.performanceService.ListRecords(c.Request.Context(), c.GetString("user_id"), limit, offset)
	if err != nil {
		writeServiceError(c, err, "performance record", "")
		return
	}

	c.JSON(http.StatusOK, records)
}

// DeleteRecord handles DELETE /api/v1/performance/:id
func (h *PerformanceHandler) DeleteRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.performanceService.DeleteRecord(c.Request.Context(), c.GetString("user_id"), id); err != nil {
		writeServiceError(c, err, "performance record", strconv.FormatInt(id, 10))
		return
	}

	c.Status(http.StatusNoContent)
}
