package repository

import (
	"context"
	"errors"

	"github.com/studypulse/backend/internal/models"
)

// ErrNotFound is returned when a record targeted by ID does not exist in
// the caller's scope.
var ErrNotFound = errors.New("record not found")

// All queries are scoped by userID, the opaque key supplied by the
// identity layer. An empty key addresses the single-user scope.

// SessionRepository defines data access for study sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.StudySession) (*models.StudySession, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.StudySession, error)
	Delete(ctx context.Context, userID string, id int64) error
	Count(ctx context.Context, userID string) (int64, error)
}

// PerformanceRepository defines data access for performance records.
type PerformanceRepository interface {
	Create(ctx context.Context, record *models.PerformanceRecord) (*models.PerformanceRecord, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.PerformanceRecord, error)
	Delete(ctx context.Context, userID string, id int64) error
	Count(ctx context.Context, userID string) (int64, error)
}

// WellnessRepository defines data access for wellness entries.
type WellnessRepository interface {
	Create(ctx context.Context, entry *models.WellnessEntry) (*models.WellnessEntry, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.WellnessEntry, error)
	Delete(ctx context.Context, userID string, id int64) error
	Count(ctx context.Context, userID string) (int64, error)
}

// AggregateRepository computes the grouped statistics consumed by the
// pattern engine, the dashboard, and the narrative generator. Every query
// tolerates zero matching rows and returns an empty slice or zero-valued
// summary rather than an error.
type AggregateRepository interface {
	AvgDurationByFocus(ctx context.Context, userID string) ([]models.FocusDuration, error)
	SubjectPerformance(ctx context.Context, userID string) ([]models.SubjectPerformance, error)
	SleepFocusCorrelation(ctx context.Context, userID string) ([]models.SleepFocusRow, error)
	SummaryStats(ctx context.Context, userID string) (*models.SummaryStats, error)
	SubjectTotals(ctx context.Context, userID string) ([]models.SubjectMinutes, error)
	DailyTotals(ctx context.Context, userID string, lastNDays int) ([]models.DailyMinutes, error)
}
