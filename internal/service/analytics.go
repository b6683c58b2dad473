package service

import (
	"context"
	"fmt"

	"github.com/studypulse/backend/internal/models"
	"github.com/studypulse/backend/internal/repository"
)

const (
	dashboardRecentSessions = 5
	chartTrailingDays       = 7
)

type analyticsService struct {
	sessionRepo   repository.SessionRepository
	aggregateRepo repository.AggregateRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(sessionRepo repository.SessionRepository, aggregateRepo repository.AggregateRepository) AnalyticsService {
	return &analyticsService{
		sessionRepo:   sessionRepo,
		aggregateRepo: aggregateRepo,
	}
}

func (s *analyticsService) GetDashboard(ctx context.Context, userID string) (*models.DashboardSummary, error) {
	stats, err := s.aggregateRepo.SummaryStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary statistics: %w", err)
	}

	recent, err := s.sessionRepo.List(ctx, userID, dashboardRecentSessions, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent sessions: %w", err)
	}

	subjectTotals, err := s.aggregateRepo.SubjectTotals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subject totals: %w", err)
	}
	totalMinutes := 0
	for _, row := range subjectTotals {
		totalMinutes += row.TotalMinutes
	}

	return &models.DashboardSummary{
		TotalSessions:  stats.TotalSessions,
		TotalHours:     models.RoundTo(float64(totalMinutes)/60, 1),
		AvgFocus:       models.RoundTo(stats.AvgFocus, 1),
		RecentSessions: recent,
	}, nil
}

func (s *analyticsService) GetStudyChartData(ctx context.Context, userID string) (*models.StudyChartData, error) {
	subjectTotals, err := s.aggregateRepo.SubjectTotals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subject totals: %w", err)
	}

	dailyTotals, err := s.aggregateRepo.DailyTotals(ctx, userID, chartTrailingDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily totals: %w", err)
	}

	subjects := make([]models.SubjectHours, 0, len(subjectTotals))
	for _, row := range subjectTotals {
		subjects = append(subjects, models.SubjectHours{
			Subject: row.Subject,
			Hours:   models.RoundTo(float64(row.TotalMinutes)/60, 1),
		})
	}

	daily := make([]models.DailyHours, 0, len(dailyTotals))
	for _, row := range dailyTotals {
		daily = append(daily, models.DailyHours{
			Date:  row.Date,
			Hours: models.RoundTo(float64(row.TotalMinutes)/60, 1),
		})
	}

	return &models.StudyChartData{Subjects: subjects, Daily: daily}, nil
}
