package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/studypulse/backend/internal/inference"
	"github.com/studypulse/backend/internal/logger"
	"github.com/studypulse/backend/internal/models"
	"github.com/studypulse/backend/internal/repository"
)

const (
	// MinSessionsForNarrative gates the external call: below this many
	// sessions the canned getting-started message is returned and the
	// service is never invoked.
	MinSessionsForNarrative = 3

	narrativeSessionLimit     = 20
	narrativePerformanceLimit = 10
	narrativeWellnessLimit    = 10
)

const unavailableMessage = "🤖 AI analysis unavailable - Please configure your API key in the .env file."

const gettingStartedTemplate = `🚀 **Getting Started with AI Analysis**

Welcome to your AI Learning Coach! I'm here to help you optimize your academic performance.

**Current Status:** You have %d study session(s) logged. To provide meaningful insights, I recommend logging at least 5-10 study sessions along with some wellness data.

**Quick Tips to Get Started:**
- Log your study sessions with honest focus ratings
- Track your sleep and stress levels in the wellness section
- Record any test scores or assignment grades
- Be consistent - even 5 minutes of logging can reveal patterns!

Keep logging your data - I'll be ready with insights soon! 🎓`

const fallbackTemplate = `🤖 **AI Analysis Temporarily Unavailable**

I'm having trouble analyzing your data right now, but don't worry! Here are some general insights while I get back online:

**Keep These Habits Strong:**
- Maintain consistent study sessions
- Track your focus and energy levels honestly
- Log your wellness data regularly

**Try This Week:**
- Experiment with different study times to find your peak hours
- Notice how sleep affects your focus ratings
- Test different study methods and see what works

Error details: %s

Try again in a few minutes! 🔄`

// The prompt template and its five section headers are a versioned
// contract with the model; consumers must tolerate missing sections if
// the output format drifts.
const promptTemplate = `You are an expert AI learning coach analyzing a student's academic performance data. Be encouraging, specific, and actionable.

Student Data Analysis:
%s

Provide insights in this format:

**🎯 KEY PATTERNS DISCOVERED**
[Identify 2-3 most important patterns in their data]

**📊 PERFORMANCE CORRELATIONS**
[Correlations between wellness factors and academic performance]

**💪 YOUR STRENGTHS**
[What they're doing well - be specific with data]

**🚀 OPTIMIZATION OPPORTUNITIES**
[Specific, actionable recommendations]

**📅 NEXT STEPS**
[Concrete actions they can take this week]

Keep response under 400 words. Use data points and be encouraging. Include emojis for engagement.`

type narrativeService struct {
	sessionRepo     repository.SessionRepository
	performanceRepo repository.PerformanceRepository
	wellnessRepo    repository.WellnessRepository
	aggregateRepo   repository.AggregateRepository
	client          inference.Client
}

// NewNarrativeService creates the insight narrative generator. The
// inference client is an explicit dependency; pass nil when no API
// credential is configured and the service degrades to a canned message.
func NewNarrativeService(
	sessionRepo repository.SessionRepository,
	performanceRepo repository.PerformanceRepository,
	wellnessRepo repository.WellnessRepository,
	aggregateRepo repository.AggregateRepository,
	client inference.Client,
) NarrativeService {
	return &narrativeService{
		sessionRepo:     sessionRepo,
		performanceRepo: performanceRepo,
		wellnessRepo:    wellnessRepo,
		aggregateRepo:   aggregateRepo,
		client:          client,
	}
}

type narrativePayload struct {
	Stats              *models.SummaryStats       `json:"stats"`
	StudySessions      []models.StudySession      `json:"study_sessions"`
	PerformanceRecords []models.PerformanceRecord `json:"performance_records"`
	WellnessData       []models.WellnessEntry     `json:"wellness_data"`
}

// GenerateInsights returns a narrative summary of the user's data.
// Inference failures never propagate: they are logged and converted to a
// fallback message carrying the error detail as a diagnostic.
func (s *narrativeService) GenerateInsights(ctx context.Context, userID string) (*models.InsightsResponse, error) {
	dataPoints, err := s.countDataPoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.List(ctx, userID, narrativeSessionLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get study sessions: %w", err)
	}

	// The sufficiency gate wins over the configuration gate: with too
	// little data the answer is the same whether or not a credential is
	// present, and the external service is never invoked.
	if len(sessions) < MinSessionsForNarrative {
		return &models.InsightsResponse{
			Insight:    fmt.Sprintf(gettingStartedTemplate, len(sessions)),
			DataPoints: dataPoints,
		}, nil
	}

	if s.client == nil {
		return &models.InsightsResponse{Insight: unavailableMessage, DataPoints: dataPoints}, nil
	}

	records, err := s.performanceRepo.List(ctx, userID, narrativePerformanceLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get performance records: %w", err)
	}

	entries, err := s.wellnessRepo.List(ctx, userID, narrativeWellnessLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get wellness entries: %w", err)
	}

	stats, err := s.aggregateRepo.SummaryStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary statistics: %w", err)
	}

	payload, err := json.MarshalIndent(narrativePayload{
		Stats:              stats,
		StudySessions:      sessions,
		PerformanceRecords: records,
		WellnessData:       entries,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize narrative payload: %w", err)
	}

	prompt := fmt.Sprintf(promptTemplate, payload)

	text, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		logger.Ctx(ctx).Warn("narrative generation failed",
			logger.Err(err),
			logger.Int("session_count", len(sessions)),
		)
		return &models.InsightsResponse{
			Insight:    fmt.Sprintf(fallbackTemplate, err.Error()),
			DataPoints: dataPoints,
		}, nil
	}

	return &models.InsightsResponse{Insight: text, DataPoints: dataPoints}, nil
}

func (s *narrativeService) countDataPoints(ctx context.Context, userID string) (int64, error) {
	sessionCount, err := s.sessionRepo.Count(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count study sessions: %w", err)
	}
	recordCount, err := s.performanceRepo.Count(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count performance records: %w", err)
	}
	entryCount, err := s.wellnessRepo.Count(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count wellness entries: %w", err)
	}
	return sessionCount + recordCount + entryCount, nil
}
