package service

import (
	"context"

	"github.com/studypulse/backend/internal/models"
	"github.com/studypulse/backend/internal/repository"
)

// Hand-written mocks for the repository interfaces. Each field, when set,
// overrides the zero-value default of the corresponding method.

type mockSessionRepo struct {
	createFn func(ctx context.Context, session *models.StudySession) (*models.StudySession, error)
	listFn   func(ctx context.Context, userID string, limit, offset int) ([]models.StudySession, error)
	deleteFn func(ctx context.Context, userID string, id int64) error
	countFn  func(ctx context.Context, userID string) (int64, error)
}

func (m *mockSessionRepo) Create(ctx context.Context, session *models.StudySession) (*models.StudySession, error) {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return session, nil
}

func (m *mockSessionRepo) List(ctx context.Context, userID string, limit, offset int) ([]models.StudySession, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, userID string, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

func (m *mockSessionRepo) Count(ctx context.Context, userID string) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, userID)
	}
	return 0, nil
}

type mockPerformanceRepo struct {
	createFn func(ctx context.Context, record *models.PerformanceRecord) (*models.PerformanceRecord, error)
	listFn   func(ctx context.Context, userID string, limit, offset int) ([]models.PerformanceRecord, error)
	deleteFn func(ctx context.Context, userID string, id int64) error
	countFn  func(ctx context.Context, userID string) (int64, error)
}

func (m *mockPerformanceRepo) Create(ctx context.Context, record *models.PerformanceRecord) (*models.PerformanceRecord, error) {
	if m.createFn != nil {
		return m.createFn(ctx, record)
	}
	return record, nil
}

func (m *mockPerformanceRepo) List(ctx context.Context, userID string, limit, offset int) ([]models.PerformanceRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockPerformanceRepo) Delete(ctx context.Context, userID string, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

func (m *mockPerformanceRepo) Count(ctx context.Context, userID string) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, userID)
	}
	return 0, nil
}

type mockWellnessRepo struct {
	createFn func(ctx context.Context, entry *models.WellnessEntry) (*models.WellnessEntry, error)
	listFn   func(ctx context.Context, userID string, limit, offset int) ([]models.WellnessEntry, error)
	deleteFn func(ctx context.Context, userID string, id int64) error
	countFn  func(ctx context.Context, userID string) (int64, error)
}

func (m *mockWellnessRepo) Create(ctx context.Context, entry *models.WellnessEntry) (*models.WellnessEntry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return entry, nil
}

func (m *mockWellnessRepo) List(ctx context.Context, userID string, limit, offset int) ([]models.WellnessEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockWellnessRepo) Delete(ctx context.Context, userID string, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

func (m *mockWellnessRepo) Count(ctx context.Context, userID string) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, userID)
	}
	return 0, nil
}

type mockAggregateRepo struct {
	avgDurationByFocus    []models.FocusDuration
	subjectPerformance    []models.SubjectPerformance
	sleepFocusCorrelation []models.SleepFocusRow
	summaryStats          *models.SummaryStats
	subjectTotals         []models.SubjectMinutes
	dailyTotals           []models.DailyMinutes
	err                   error
}

func (m *mockAggregateRepo) AvgDurationByFocus(ctx context.Context, userID string) ([]models.FocusDuration, error) {
	return m.avgDurationByFocus, m.err
}

func (m *mockAggregateRepo) SubjectPerformance(ctx context.Context, userID string) ([]models.SubjectPerformance, error) {
	return m.subjectPerformance, m.err
}

func (m *mockAggregateRepo) SleepFocusCorrelation(ctx context.Context, userID string) ([]models.SleepFocusRow, error) {
	return m.sleepFocusCorrelation, m.err
}

func (m *mockAggregateRepo) SummaryStats(ctx context.Context, userID string) (*models.SummaryStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.summaryStats != nil {
		return m.summaryStats, nil
	}
	return &models.SummaryStats{}, nil
}

func (m *mockAggregateRepo) SubjectTotals(ctx context.Context, userID string) ([]models.SubjectMinutes, error) {
	return m.subjectTotals, m.err
}

func (m *mockAggregateRepo) DailyTotals(ctx context.Context, userID string, lastNDays int) ([]models.DailyMinutes, error) {
	return m.dailyTotals, m.err
}

type mockInferenceClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (m *mockInferenceClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

var _ repository.SessionRepository = (*mockSessionRepo)(nil)
var _ repository.PerformanceRepository = (*mockPerformanceRepo)(nil)
var _ repository.WellnessRepository = (*mockWellnessRepo)(nil)
var _ repository.AggregateRepository = (*mockAggregateRepo)(nil)
