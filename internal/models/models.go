package models

import "time"

// StudySession is one logged block of study time.
type StudySession struct {
	ID              int64     `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id,omitempty"`
	Subject         string    `db:"subject" json:"subject"`
	Duration        int       `db:"duration" json:"duration"` // minutes
	StartTime       string    `db:"start_time" json:"start_time"`
	EndTime         string    `db:"end_time" json:"end_time"`
	StudyMethod     string    `db:"study_method" json:"study_method"`
	DifficultyLevel int       `db:"difficulty_level" json:"difficulty_level"`
	FocusRating     int       `db:"focus_rating" json:"focus_rating"`
	Notes           string    `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// PerformanceRecord is a graded assessment result.
type PerformanceRecord struct {
	ID             int64     `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id,omitempty"`
	Subject        string    `db:"subject" json:"subject"`
	AssessmentType string    `db:"assessment_type" json:"assessment_type"`
	Score          float64   `db:"score" json:"score"`
	MaxScore       float64   `db:"max_score" json:"max_score"`
	Date           string    `db:"date" json:"date"` // YYYY-MM-DD
	TopicsCovered  string    `db:"topics_covered" json:"topics_covered,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	Percentage     float64   `db:"-" json:"percentage"`
}

// ComputePercentage returns the score as a percentage of the maximum,
// rounded to one decimal. A zero max score yields 0 rather than NaN.
func (r *PerformanceRecord) ComputePercentage() float64 {
	if r.MaxScore == 0 {
		return 0
	}
	return RoundTo(r.Score/r.MaxScore*100, 1)
}

// WellnessEntry is one day of self-reported wellness data.
type WellnessEntry struct {
	ID              int64     `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id,omitempty"`
	Date            string    `db:"date" json:"date"` // YYYY-MM-DD
	SleepHours      float64   `db:"sleep_hours" json:"sleep_hours"`
	StressLevel     int       `db:"stress_level" json:"stress_level"`
	MoodRating      int       `db:"mood_rating" json:"mood_rating"`
	ExerciseMinutes int       `db:"exercise_minutes" json:"exercise_minutes"`
	CaffeineIntake  int       `db:"caffeine_intake" json:"caffeine_intake"`
	Notes           string    `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// CreateStudySessionRequest is the request body for logging a session.
// Rating ranges are checked in the service layer, not by binding tags,
// so all violations come back in one aggregated validation response.
type CreateStudySessionRequest struct {
	Subject         string `json:"subject" binding:"required"`
	Duration        int    `json:"duration" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	StudyMethod     string `json:"study_method" binding:"required"`
	DifficultyLevel int    `json:"difficulty_level" binding:"required"`
	FocusRating     int    `json:"focus_rating" binding:"required"`
	Notes           string `json:"notes"`
}

// CreatePerformanceRecordRequest is the request body for logging a result.
type CreatePerformanceRecordRequest struct {
	Subject        string  `json:"subject" binding:"required"`
	AssessmentType string  `json:"assessment_type" binding:"required"`
	Score          float64 `json:"score"`
	MaxScore       float64 `json:"max_score" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	TopicsCovered  string  `json:"topics_covered"`
}

// CreateWellnessEntryRequest is the request body for logging wellness data.
type CreateWellnessEntryRequest struct {
	Date            string  `json:"date" binding:"required"`
	SleepHours      float64 `json:"sleep_hours"`
	StressLevel     int     `json:"stress_level" binding:"required"`
	MoodRating      int     `json:"mood_rating" binding:"required"`
	ExerciseMinutes int     `json:"exercise_minutes"`
	CaffeineIntake  int     `json:"caffeine_intake"`
	Notes           string  `json:"notes"`
}

// DashboardSummary is the headline view of a user's study history.
type DashboardSummary struct {
	TotalSessions  int64          `json:"total_sessions"`
	TotalHours     float64        `json:"total_hours"`
	AvgFocus       float64        `json:"avg_focus"`
	RecentSessions []StudySession `json:"recent_sessions"`
}

// SubjectHours is study time per subject, in hours.
type SubjectHours struct {
	Subject string  `json:"subject"`
	Hours   float64 `json:"hours"`
}

// DailyHours is study time on one calendar day, in hours.
type DailyHours struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// StudyChartData feeds the dashboard charts.
type StudyChartData struct {
	Subjects []SubjectHours `json:"subjects"`
	Daily    []DailyHours   `json:"daily"`
}

// InsightsResponse carries the generated narrative plus the total number
// of records it was drawn from.
type InsightsResponse struct {
	Insight    string `json:"insight"`
	DataPoints int64  `json:"data_points"`
}
