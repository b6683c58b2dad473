package service

import (
	"context"
	"errors"
	"testing"

	"github.com/studypulse/backend/internal/models"
)

func validSessionRequest() *models.CreateStudySessionRequest {
	return &models.CreateStudySessionRequest{
		Subject:         "Math",
		Duration:        45,
		StartTime:       "09:00",
		EndTime:         "09:45",
		StudyMethod:     "practice",
		DifficultyLevel: 3,
		FocusRating:     4,
	}
}

func TestLogSessionValid(t *testing.T) {
	var captured *models.StudySession
	repo := &mockSessionRepo{
		createFn: func(ctx context.Context, session *models.StudySession) (*models.StudySession, error) {
			captured = session
			session.ID = 1
			return session, nil
		},
	}
	svc := NewSessionService(repo)

	created, err := svc.LogSession(context.Background(), "alice", validSessionRequest())
	if err != nil {
		t.Fatalf("LogSession returned error: %v", err)
	}

	if created.ID != 1 {
		t.Errorf("ID = %d, want 1", created.ID)
	}
	if captured.UserID != "alice" {
		t.Errorf("UserID = %q, want %q", captured.UserID, "alice")
	}
}

func TestLogSessionRejectsOutOfRangeRatings(t *testing.T) {
	repo := &mockSessionRepo{
		createFn: func(ctx context.Context, session *models.StudySession) (*models.StudySession, error) {
			t.Fatal("Create should not be reached with invalid input")
			return nil, nil
		},
	}
	svc := NewSessionService(repo)

	req := validSessionRequest()
	req.Duration = 0
	req.DifficultyLevel = 6
	req.FocusRating = 0

	_, err := svc.LogSession(context.Background(), "", req)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// All violations reported at once
	if len(validationErr.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %+v", len(validationErr.Fields), validationErr.Fields)
	}
	fields := map[string]bool{}
	for _, fe := range validationErr.Fields {
		fields[fe.Field] = true
	}
	for _, want := range []string{"duration", "difficulty_level", "focus_rating"} {
		if !fields[want] {
			t.Errorf("missing field error for %q", want)
		}
	}
}

func TestListSessionsClampsLimit(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mockSessionRepo{
		listFn: func(ctx context.Context, userID string, limit, offset int) ([]models.StudySession, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	}
	svc := NewSessionService(repo)

	if _, err := svc.ListSessions(context.Background(), "", 0, -5); err != nil {
		t.Fatalf("ListSessions returned error: %v", err)
	}
	if gotLimit != 50 || gotOffset != 0 {
		t.Errorf("limit/offset = %d/%d, want 50/0", gotLimit, gotOffset)
	}

	if _, err := svc.ListSessions(context.Background(), "", 500, 10); err != nil {
		t.Fatalf("ListSessions returned error: %v", err)
	}
	if gotLimit != 50 || gotOffset != 10 {
		t.Errorf("limit/offset = %d/%d, want 50/10", gotLimit, gotOffset)
	}
}

func TestLogRecordComputesPercentage(t *testing.T) {
	repo := &mockPerformanceRepo{}
	svc := NewPerformanceService(repo)

	created, err := svc.LogRecord(context.Background(), "", &models.CreatePerformanceRecordRequest{
		Subject:        "Math",
		AssessmentType: "quiz",
		Score:          17,
		MaxScore:       20,
		Date:           "2026-08-15",
	})
	if err != nil {
		t.Fatalf("LogRecord returned error: %v", err)
	}

	if created.Percentage != 85.0 {
		t.Errorf("percentage = %v, want 85.0", created.Percentage)
	}
}

func TestLogRecordZeroMaxScore(t *testing.T) {
	repo := &mockPerformanceRepo{}
	svc := NewPerformanceService(repo)

	created, err := svc.LogRecord(context.Background(), "", &models.CreatePerformanceRecordRequest{
		Subject:        "Math",
		AssessmentType: "participation",
		Score:          0,
		MaxScore:       0,
		Date:           "2026-08-15",
	})
	if err != nil {
		t.Fatalf("LogRecord returned error: %v", err)
	}

	if created.Percentage != 0 {
		t.Errorf("percentage = %v, want 0 for zero max score", created.Percentage)
	}
}

func TestLogRecordAllowsExtraCredit(t *testing.T) {
	repo := &mockPerformanceRepo{}
	svc := NewPerformanceService(repo)

	created, err := svc.LogRecord(context.Background(), "", &models.CreatePerformanceRecordRequest{
		Subject:        "Math",
		AssessmentType: "quiz",
		Score:          22,
		MaxScore:       20,
		Date:           "2026-08-15",
	})
	if err != nil {
		t.Fatalf("score above max should be accepted, got error: %v", err)
	}
	if created.Percentage != 110.0 {
		t.Errorf("percentage = %v, want 110.0", created.Percentage)
	}
}

func TestLogRecordRejectsBadDate(t *testing.T) {
	svc := NewPerformanceService(&mockPerformanceRepo{})

	_, err := svc.LogRecord(context.Background(), "", &models.CreatePerformanceRecordRequest{
		Subject:        "Math",
		AssessmentType: "quiz",
		Score:          10,
		MaxScore:       20,
		Date:           "15/08/2026",
	})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Fields[0].Field != "date" {
		t.Errorf("field = %q, want %q", validationErr.Fields[0].Field, "date")
	}
}

func TestLogEntryRejectsInvalidWellness(t *testing.T) {
	svc := NewWellnessService(&mockWellnessRepo{})

	_, err := svc.LogEntry(context.Background(), "", &models.CreateWellnessEntryRequest{
		Date:            "2026-08-15",
		SleepHours:      -1,
		StressLevel:     9,
		MoodRating:      3,
		ExerciseMinutes: -30,
	})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %+v", len(validationErr.Fields), validationErr.Fields)
	}
}

func TestLogEntryValid(t *testing.T) {
	svc := NewWellnessService(&mockWellnessRepo{})

	entry, err := svc.LogEntry(context.Background(), "alice", &models.CreateWellnessEntryRequest{
		Date:        "2026-08-15",
		SleepHours:  7.5,
		StressLevel: 2,
		MoodRating:  4,
	})
	if err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}
	if entry.UserID != "alice" {
		t.Errorf("UserID = %q, want %q", entry.UserID, "alice")
	}
}
