package repository

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studypulse/backend/internal/models"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func newSession(subject string, duration, focus int) *models.StudySession {
	return &models.StudySession{
		Subject:         subject,
		Duration:        duration,
		StartTime:       "09:00",
		EndTime:         "10:00",
		StudyMethod:     "reading",
		DifficultyLevel: 3,
		FocusRating:     focus,
	}
}

func TestSessionCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, newSession("Math", 60, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repo.Create(ctx, newSession("Physics", 45, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	sessions, err := repo.List(ctx, "", 50, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	// Newest first
	assert.Equal(t, "Physics", sessions[0].Subject)
	assert.Equal(t, "Math", sessions[1].Subject)
}

func TestSessionListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, newSession("Math", 30, 3))
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, "", 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(5), page[0].ID)

	page, err = repo.List(ctx, "", 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(1), page[0].ID)
}

func TestSessionDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newSession("Math", 60, 4))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "", created.ID))

	count, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	err = repo.Delete(ctx, "", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionUserScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	alice := newSession("Math", 60, 4)
	alice.UserID = "alice"
	created, err := repo.Create(ctx, alice)
	require.NoError(t, err)

	bob := newSession("Physics", 45, 3)
	bob.UserID = "bob"
	_, err = repo.Create(ctx, bob)
	require.NoError(t, err)

	sessions, err := repo.List(ctx, "alice", 50, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Math", sessions[0].Subject)

	// One scope cannot delete another's rows
	err = repo.Delete(ctx, "bob", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The empty key is its own scope, not a wildcard
	sessions, err = repo.List(ctx, "", 50, 0)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestPerformanceCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewPerformanceRepository(db)
	ctx := context.Background()

	older := &models.PerformanceRecord{
		Subject:        "Math",
		AssessmentType: "quiz",
		Score:          17,
		MaxScore:       20,
		Date:           "2026-08-01",
	}
	_, err := repo.Create(ctx, older)
	require.NoError(t, err)

	newer := &models.PerformanceRecord{
		Subject:        "Physics",
		AssessmentType: "exam",
		Score:          80,
		MaxScore:       100,
		Date:           "2026-08-15",
	}
	created, err := repo.Create(ctx, newer)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	records, err := repo.List(ctx, "", 50, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recent assessment date first
	assert.Equal(t, "2026-08-15", records[0].Date)
	assert.Equal(t, "2026-08-01", records[1].Date)

	count, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPerformanceDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPerformanceRepository(db)

	err := repo.Delete(context.Background(), "", 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWellnessCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewWellnessRepository(db)
	ctx := context.Background()

	for _, date := range []string{"2026-08-10", "2026-08-12", "2026-08-11"} {
		_, err := repo.Create(ctx, &models.WellnessEntry{
			Date:        date,
			SleepHours:  7.5,
			StressLevel: 2,
			MoodRating:  4,
		})
		require.NoError(t, err)
	}

	entries, err := repo.List(ctx, "", 50, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "2026-08-12", entries[0].Date)
	assert.Equal(t, "2026-08-11", entries[1].Date)
	assert.Equal(t, "2026-08-10", entries[2].Date)
}

func TestWellnessDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewWellnessRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.WellnessEntry{
		Date:        "2026-08-10",
		SleepHours:  8,
		StressLevel: 1,
		MoodRating:  5,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "", created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "", created.ID), ErrNotFound)
}
