package service

import (
	"context"

	"github.com/studypulse/backend/internal/models"
	"github.com/studypulse/backend/internal/repository"
)

type performanceService struct {
	performanceRepo repository.PerformanceRepository
}

// NewPerformanceService creates a new performance record service.
func NewPerformanceService(performanceRepo repository.PerformanceRepository) PerformanceService {
	return &performanceService{performanceRepo: performanceRepo}
}

func (s *performanceService) LogRecord(ctx context.Context, userID string, req *models.CreatePerformanceRecordRequest) (*models.PerformanceRecord, error) {
	var fe fieldErrors
	fe.requireNonNegativeFloat("score", req.Score)
	fe.requireNonNegativeFloat("max_score", req.MaxScore)
	fe.requireDate("date", req.Date)
	// score <= max_score is deliberately not enforced; extra credit exists.
	if err := fe.err(); err != nil {
		return nil, err
	}

	record := &models.PerformanceRecord{
		UserID:         userID,
		Subject:        req.Subject,
		AssessmentType: req.AssessmentType,
		Score:          req.Score,
		MaxScore:       req.MaxScore,
		Date:           req.Date,
		TopicsCovered:  req.TopicsCovered,
	}

	created, err := s.performanceRepo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	created.Percentage = created.ComputePercentage()
	return created, nil
}

func (s *performanceService) ListRecords(ctx context.Context, userID string, limit, offset int) ([]models.PerformanceRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.performanceRepo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Percentage = records[i].ComputePercentage()
	}
	return records, nil
}

func (s *performanceService) DeleteRecord(ctx context.Context, userID string, id int64) error {
	return s.performanceRepo.Delete(ctx, userID, id)
}
