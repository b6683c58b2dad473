package service

import (
	"context"

	"github.com/studypulse/backend/internal/models"
)

// SessionService defines the business logic for study sessions.
type SessionService interface {
	LogSession(ctx context.Context, userID string, req *models.CreateStudySessionRequest) (*models.StudySession, error)
	ListSessions(ctx context.Context, userID string, limit, offset int) ([]models.StudySession, error)
	DeleteSession(ctx context.Context, userID string, id int64) error
}

// PerformanceService defines the business logic for performance records.
type PerformanceService interface {
	LogRecord(ctx context.Context, userID string, req *models.CreatePerformanceRecordRequest) (*models.PerformanceRecord, error)
	ListRecords(ctx context.Context, userID string, limit, offset int) ([]models.PerformanceRecord, error)
	DeleteRecord(ctx context.Context, userID string, id int64) error
}

// WellnessService defines the business logic for wellness entries.
type WellnessService interface {
	LogEntry(ctx context.Context, userID string, req *models.CreateWellnessEntryRequest) (*models.WellnessEntry, error)
	ListEntries(ctx context.Context, userID string, limit, offset int) ([]models.WellnessEntry, error)
	DeleteEntry(ctx context.Context, userID string, id int64) error
}

// AnalyticsService computes the dashboard summary and chart data.
type AnalyticsService interface {
	GetDashboard(ctx context.Context, userID string) (*models.DashboardSummary, error)
	GetStudyChartData(ctx context.Context, userID string) (*models.StudyChartData, error)
}

// PatternService derives qualitative findings from the aggregates.
type PatternService interface {
	AnalyzePatterns(ctx context.Context, userID string) ([]models.Finding, error)
}

// NarrativeService produces the AI-generated narrative summary.
type NarrativeService interface {
	GenerateInsights(ctx context.Context, userID string) (*models.InsightsResponse, error)
}
