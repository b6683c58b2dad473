package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studypulse/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	patternService   service.PatternService
}

// NewAnalyticsHandler creates a handler for the dashboard, chart, and
// pattern analysis endpoints.
func NewAnalyticsHandler(analyticsService service.AnalyticsService, patternService service.PatternService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		patternService:   patternService,
	}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	summary, err := h.analyticsService.GetDashboard(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err, "dashboard", "")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetStudyChartData handles GET /api/v1/charts/study-data
func (h *AnalyticsHandler) GetStudyChartData(c *gin.Context) {
	data, err := h.analyticsService.GetStudyChartData(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err, "chart data", "")
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetPatterns handles GET /api/v1/patterns
func (h *AnalyticsHandler) GetPatterns(c *gin.Context) {
	findings, err := h.patternService.AnalyzePatterns(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err, "patterns", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"patterns": findings})
}
