package service

import (
	"context"

	"github.com/studypulse/backend/internal/models"
	"github.com/studypulse/backend/internal/repository"
)

type wellnessService struct {
	wellnessRepo repository.WellnessRepository
}

// NewWellnessService creates a new wellness entry service.
func NewWellnessService(wellnessRepo repository.WellnessRepository) WellnessService {
	return &wellnessService{wellnessRepo: wellnessRepo}
}

func (s *wellnessService) LogEntry(ctx context.Context, userID string, req *models.CreateWellnessEntryRequest) (*models.WellnessEntry, error) {
	var fe fieldErrors
	fe.requireDate("date", req.Date)
	fe.requireNonNegativeFloat("sleep_hours", req.SleepHours)
	fe.requireRating("stress_level", req.StressLevel)
	fe.requireRating("mood_rating", req.MoodRating)
	fe.requireNonNegativeInt("exercise_minutes", req.ExerciseMinutes)
	fe.requireNonNegativeInt("caffeine_intake", req.CaffeineIntake)
	if err := fe.err(); err != nil {
		return nil, err
	}

	entry := &models.WellnessEntry{
		UserID:          userID,
		Date:            req.Date,
		SleepHours:      req.SleepHours,
		StressLevel:     req.StressLevel,
		MoodRating:      req.MoodRating,
		ExerciseMinutes: req.ExerciseMinutes,
		CaffeineIntake:  req.CaffeineIntake,
		Notes:           req.Notes,
	}

	return s.wellnessRepo.Create(ctx, entry)
}

func (s *wellnessService) ListEntries(ctx context.Context, userID string, limit, offset int) ([]models.WellnessEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.wellnessRepo.List(ctx, userID, limit, offset)
}

func (s *wellnessService) DeleteEntry(ctx context.Context, userID string, id int64) error {
	return s.wellnessRepo.Delete(ctx, userID, id)
}
