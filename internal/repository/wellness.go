package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studypulse/backend/internal/models"
)

type wellnessRepository struct {
	db *sqlx.DB
}

// NewWellnessRepository creates a SQLite-backed wellness repository.
func NewWellnessRepository(db *sqlx.DB) WellnessRepository {
	return &wellnessRepository{db: db}
}

func (r *wellnessRepository) Create(ctx context.Context, entry *models.WellnessEntry) (*models.WellnessEntry, error) {
	entry.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO wellness_tracking
			(user_id, date, sleep_hours, stress_level, mood_rating, exercise_minutes, caffeine_intake, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.Date, entry.SleepHours, entry.StressLevel, entry.MoodRating,
		entry.ExerciseMinutes, entry.CaffeineIntake, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert wellness entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted entry id: %w", err)
	}
	entry.ID = id

	return entry, nil
}

func (r *wellnessRepository) List(ctx context.Context, userID string, limit, offset int) ([]models.WellnessEntry, error) {
	entries := []models.WellnessEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT id, user_id, date, sleep_hours, stress_level, mood_rating, exercise_minutes, caffeine_intake, notes, created_at
		FROM wellness_tracking
		WHERE user_id = ?
		ORDER BY date DESC, id DESC
		LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list wellness entries: %w", err)
	}
	return entries, nil
}

func (r *wellnessRepository) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM wellness_tracking WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete wellness entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *wellnessRepository) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM wellness_tracking WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count wellness entries: %w", err)
	}
	return count, nil
}
