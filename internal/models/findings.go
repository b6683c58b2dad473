package models

import "math"

// FindingCategory classifies a pattern finding for display.
type FindingCategory string

const (
	FindingPositive FindingCategory = "positive"
	FindingInsight  FindingCategory = "insight"
	FindingWarning  FindingCategory = "warning"
	FindingInfo     FindingCategory = "info"
)

// Finding is a single qualitative observation derived from the aggregates.
// Emission order is display order; the presentation layer does no sorting.
type Finding struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Recommendation string          `json:"recommendation"`
	Category       FindingCategory `json:"category"`
}

// FocusDuration is the average session duration for one focus rating.
type FocusDuration struct {
	FocusRating int     `db:"focus_rating" json:"focus_rating"`
	AvgDuration float64 `db:"avg_duration" json:"avg_duration"`
}

// SubjectPerformance summarizes sessions for one subject. Only subjects
// with at least two sessions qualify.
type SubjectPerformance struct {
	Subject      string  `db:"subject" json:"subject"`
	AvgFocus     float64 `db:"avg_focus" json:"avg_focus"`
	SessionCount int     `db:"session_count" json:"session_count"`
	TotalMinutes int     `db:"total_minutes" json:"total_minutes"`
}

// SleepFocusRow relates one (sleep_hours, stress_level) group to the mean
// focus rating of sessions created on matching dates.
type SleepFocusRow struct {
	SleepHours  float64 `db:"sleep_hours" json:"sleep_hours"`
	StressLevel int     `db:"stress_level" json:"stress_level"`
	AvgFocus    float64 `db:"avg_focus" json:"avg_focus"`
}

// SummaryStats are whole-history session statistics. All fields are zero
// when no sessions exist.
type SummaryStats struct {
	TotalSessions int64   `db:"total_sessions" json:"total_sessions"`
	AvgFocus      float64 `db:"avg_focus" json:"avg_focus"`
	AvgDuration   float64 `db:"avg_duration" json:"avg_duration"`
	SubjectCount  int64   `db:"subjects_count" json:"subjects_count"`
}

// SubjectMinutes is total study minutes for one subject.
type SubjectMinutes struct {
	Subject      string `db:"subject" json:"subject"`
	TotalMinutes int    `db:"total_minutes" json:"total_minutes"`
}

// DailyMinutes is total study minutes on one calendar day.
type DailyMinutes struct {
	Date         string `db:"date" json:"date"`
	TotalMinutes int    `db:"total_minutes" json:"total_minutes"`
}

// RoundTo rounds v to the given number of decimal places. Display
// conventions (hours and averages to one decimal) live in the services.
func RoundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
