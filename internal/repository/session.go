package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studypulse/backend/internal/models"
)

type sessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a SQLite-backed session repository.
func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.StudySession) (*models.StudySession, error) {
	session.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO study_sessions
			(user_id, subject, duration, start_time, end_time, study_method, difficulty_level, focus_rating, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.UserID, session.Subject, session.Duration, session.StartTime, session.EndTime,
		session.StudyMethod, session.DifficultyLevel, session.FocusRating, session.Notes, session.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert study session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted session id: %w", err)
	}
	session.ID = id

	return session, nil
}

func (r *sessionRepository) List(ctx context.Context, userID string, limit, offset int) ([]models.StudySession, error) {
	sessions := []models.StudySession{}
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT id, user_id, subject, duration, start_time, end_time, study_method, difficulty_level, focus_rating, notes, created_at
		FROM study_sessions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list study sessions: %w", err)
	}
	return sessions, nil
}

func (r *sessionRepository) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM study_sessions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete study session: %w", err)
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

func (r *sessionRepository) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM study_sessions WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count study sessions: %w", err)
	}
	return count, nil
}
