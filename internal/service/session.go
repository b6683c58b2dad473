package service

import (
	"context"

	"github.com/studypulse/backend/internal/models"
	"github.com/studypulse/backend/internal/repository"
)

type sessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new study session service.
func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

func (s *sessionService) LogSession(ctx context.Context, userID string, req *models.CreateStudySessionRequest) (*models.StudySession, error) {
	var fe fieldErrors
	if req.Duration <= 0 {
		fe.add("duration", "must be a positive number of minutes", "out_of_range")
	}
	fe.requireRating("difficulty_level", req.DifficultyLevel)
	fe.requireRating("focus_rating", req.FocusRating)
	if err := fe.err(); err != nil {
		return nil, err
	}

	session := &models.StudySession{
		UserID:          userID,
		Subject:         req.Subject,
		Duration:        req.Duration,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		StudyMethod:     req.StudyMethod,
		DifficultyLevel: req.DifficultyLevel,
		FocusRating:     req.FocusRating,
		Notes:           req.Notes,
	}

	return s.sessionRepo.Create(ctx, session)
}

func (s *sessionService) ListSessions(ctx context.Context, userID string, limit, offset int) ([]models.StudySession, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.sessionRepo.List(ctx, userID, limit, offset)
}

func (s *sessionService) DeleteSession(ctx context.Context, userID string, id int64) error {
	return s.sessionRepo.Delete(ctx, userID, id)
}
