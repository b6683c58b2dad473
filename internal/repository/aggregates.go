package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/studypulse/backend/internal/models"
)

type aggregateRepository struct {
	db *sqlx.DB
}

// NewAggregateRepository creates the aggregation query repository.
func NewAggregateRepository(db *sqlx.DB) AggregateRepository {
	return &aggregateRepository{db: db}
}

func (r *aggregateRepository) AvgDurationByFocus(ctx context.Context, userID string) ([]models.FocusDuration, error) {
	rows := []models.FocusDuration{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT focus_rating, AVG(duration) AS avg_duration
		FROM study_sessions
		WHERE user_id = ?
		GROUP BY focus_rating
		ORDER BY focus_rating`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate duration by focus: %w", err)
	}
	return rows, nil
}

func (r *aggregateRepository) SubjectPerformance(ctx context.Context, userID string) ([]models.SubjectPerformance, error) {
	rows := []models.SubjectPerformance{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT subject,
		       AVG(focus_rating) AS avg_focus,
		       COUNT(id) AS session_count,
		       SUM(duration) AS total_minutes
		FROM study_sessions
		WHERE user_id = ?
		GROUP BY subject
		HAVING session_count >= 2
		ORDER BY avg_focus DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate subject performance: %w", err)
	}
	return rows, nil
}

func (r *aggregateRepository) SleepFocusCorrelation(ctx context.Context, userID string) ([]models.SleepFocusRow, error) {
	rows := []models.SleepFocusRow{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT w.sleep_hours,
		       w.stress_level,
		       AVG(s.focus_rating) AS avg_focus
		FROM wellness_tracking w
		JOIN study_sessions s
		  ON DATE(w.date) = DATE(s.created_at) AND s.user_id = w.user_id
		WHERE w.user_id = ?
		GROUP BY w.sleep_hours, w.stress_level
		HAVING COUNT(*) >= 2`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sleep/focus correlation: %w", err)
	}
	return rows, nil
}

func (r *aggregateRepository) SummaryStats(ctx context.Context, userID string) (*models.SummaryStats, error) {
	var stats models.SummaryStats
	err := r.db.GetContext(ctx, &stats, `
		SELECT COUNT(*) AS total_sessions,
		       COALESCE(AVG(focus_rating), 0) AS avg_focus,
		       COALESCE(AVG(duration), 0) AS avg_duration,
		       COUNT(DISTINCT subject) AS subjects_count
		FROM study_sessions
		WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary statistics: %w", err)
	}
	return &stats, nil
}

func (r *aggregateRepository) SubjectTotals(ctx context.Context, userID string) ([]models.SubjectMinutes, error) {
	rows := []models.SubjectMinutes{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT subject, SUM(duration) AS total_minutes
		FROM study_sessions
		WHERE user_id = ?
		GROUP BY subject`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate subject totals: %w", err)
	}
	return rows, nil
}

func (r *aggregateRepository) DailyTotals(ctx context.Context, userID string, lastNDays int) ([]models.DailyMinutes, error) {
	if lastNDays <= 0 {
		lastNDays = 7
	}

	rows := []models.DailyMinutes{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT DATE(created_at) AS date, SUM(duration) AS total_minutes
		FROM study_sessions
		WHERE user_id = ? AND created_at >= datetime('now', ?)
		GROUP BY DATE(created_at)
		ORDER BY date`,
		userID, fmt.Sprintf("-%d days", lastNDays),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily totals: %w", err)
	}
	return rows, nil
}
