package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studypulse/backend/internal/service"
)

type InsightsHandler struct {
	narrativeService service.NarrativeService
}

// NewInsightsHandler creates a handler for the AI narrative endpoint.
func NewInsightsHandler(narrativeService service.NarrativeService) *InsightsHandler {
	return &InsightsHandler{narrativeService: narrativeService}
}

// GetInsights handles GET /api/v1/insights. Generation failures are
// absorbed inside the service, so an error here means the store failed.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	insights, err := h.narrativeService.GenerateInsights(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err, "insights", "")
		return
	}

	c.JSON(http.StatusOK, insights)
}
