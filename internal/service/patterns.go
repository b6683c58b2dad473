package service

import (
	"context"
	"fmt"

	"github.com/studypulse/backend/internal/models"
	"github.com/studypulse/backend/internal/repository"
)

const (
	// HighFocusThreshold is the minimum focus rating counted as a
	// high-focus session.
	HighFocusThreshold = 4

	// StrugglingFocusThreshold is the mean focus rating below which a
	// subject is flagged as needing attention.
	StrugglingFocusThreshold = 3.0

	// GoodSleepHours is the minimum nightly sleep counted as well rested.
	GoodSleepHours = 7.0
)

type patternService struct {
	aggregateRepo repository.AggregateRepository
}

// NewPatternService creates the pattern analysis engine. It is a pure
// consumer of the aggregate repository: deterministic for a given data
// set, no external calls.
func NewPatternService(aggregateRepo repository.AggregateRepository) PatternService {
	return &patternService{aggregateRepo: aggregateRepo}
}

// AnalyzePatterns runs the fixed rule sequence and returns the findings
// in emission order. Each rule contributes at most one finding; when none
// fires, a single "info" finding is returned instead.
func (s *patternService) AnalyzePatterns(ctx context.Context, userID string) ([]models.Finding, error) {
	focusDurations, err := s.aggregateRepo.AvgDurationByFocus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get focus durations: %w", err)
	}

	subjects, err := s.aggregateRepo.SubjectPerformance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subject performance: %w", err)
	}

	sleepFocus, err := s.aggregateRepo.SleepFocusCorrelation(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sleep/focus correlation: %w", err)
	}

	findings := make([]models.Finding, 0, 4)

	if f, ok := highFocusFinding(focusDurations); ok {
		findings = append(findings, f)
	}
	findings = append(findings, subjectFindings(subjects)...)
	if f, ok := sleepFinding(sleepFocus); ok {
		findings = append(findings, f)
	}

	if len(findings) == 0 {
		findings = append(findings, models.Finding{
			Title:          "Getting Started",
			Description:    "Keep logging your study sessions to discover your personal learning patterns!",
			Recommendation: "Try logging at least 5-10 study sessions to see meaningful insights.",
			Category:       models.FindingInfo,
		})
	}

	return findings, nil
}

// highFocusFinding reports the unweighted mean of the average durations
// of high-focus ratings.
func highFocusFinding(rows []models.FocusDuration) (models.Finding, bool) {
	var sum float64
	var n int
	for _, row := range rows {
		if row.FocusRating >= HighFocusThreshold {
			sum += row.AvgDuration
			n++
		}
	}
	if n == 0 {
		return models.Finding{}, false
	}

	return models.Finding{
		Title:          "High Focus Sessions",
		Description:    fmt.Sprintf("Your high-focus sessions (4-5 rating) average %.0f minutes", sum/float64(n)),
		Recommendation: "Try to replicate the conditions that lead to high focus sessions!",
		Category:       models.FindingPositive,
	}, true
}

// subjectFindings names the strongest subject and, when more than one
// subject qualifies, flags the weakest if its mean focus is poor. The
// input is already sorted by mean focus descending.
func subjectFindings(subjects []models.SubjectPerformance) []models.Finding {
	if len(subjects) == 0 {
		return nil
	}

	best := subjects[0]
	findings := []models.Finding{{
		Title:          fmt.Sprintf("Top Subject: %s", best.Subject),
		Description:    fmt.Sprintf("Average focus rating: %.1f/5 (%d sessions)", best.AvgFocus, best.SessionCount),
		Recommendation: fmt.Sprintf("You focus well on %s. Apply similar techniques to other subjects.", best.Subject),
		Category:       models.FindingInsight,
	}}

	if len(subjects) > 1 {
		worst := subjects[len(subjects)-1]
		if worst.AvgFocus < StrugglingFocusThreshold {
			findings = append(findings, models.Finding{
				Title:          fmt.Sprintf("Needs Attention: %s", worst.Subject),
				Description:    fmt.Sprintf("Average focus rating: %.1f/5", worst.AvgFocus),
				Recommendation: fmt.Sprintf("Try different study methods for %s or study it when you're most alert.", worst.Subject),
				Category:       models.FindingWarning,
			})
		}
	}

	return findings
}

// sleepFinding reports the unweighted mean focus across well-rested
// groups.
func sleepFinding(rows []models.SleepFocusRow) (models.Finding, bool) {
	var sum float64
	var n int
	for _, row := range rows {
		if row.SleepHours >= GoodSleepHours {
			sum += row.AvgFocus
			n++
		}
	}
	if n == 0 {
		return models.Finding{}, false
	}

	return models.Finding{
		Title:          "Sleep & Focus Connection",
		Description:    fmt.Sprintf("With 7+ hours of sleep, your average focus is %.1f/5", sum/float64(n)),
		Recommendation: "Prioritize getting enough sleep for better study sessions!",
		Category:       models.FindingInsight,
	}, true
}
