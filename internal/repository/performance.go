package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studypulse/backend/internal/models"
)

type performanceRepository struct {
	db *sqlx.DB
}

// NewPerformanceRepository creates a SQLite-backed performance repository.
func NewPerformanceRepository(db *sqlx.DB) PerformanceRepository {
	return &performanceRepository{db: db}
}

func (r *performanceRepository) Create(ctx context.Context, record *models.PerformanceRecord) (*models.PerformanceRecord, error) {
	record.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO performance_records
			(user_id, subject, assessment_type, score, max_score, date, topics_covered, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.UserID, record.Subject, record.AssessmentType, record.Score, record.MaxScore,
		record.Date, record.TopicsCovered, record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert performance record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted record id: %w", err)
	}
	record.ID = id

	return record, nil
}

func (r *performanceRepository) List(ctx context.Context, userID string, limit, offset int) ([]models.PerformanceRecord, error) {
	records := []models.PerformanceRecord{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, user_id, subject, assessment_type, score, max_score, date, topics_covered, created_at
		FROM performance_records
		WHERE user_id = ?
		ORDER BY date DESC, id DESC
		LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance records: %w", err)
	}
	return records, nil
}

func (r *performanceRepository) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM performance_records WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete performance record: %w", err)
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

func (r *performanceRepository) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM performance_records WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count performance records: %w", err)
	}
	return count, nil
}
