package service

import (
	"fmt"
	"time"

	"github.com/studypulse/backend/internal/apierror"
)

// ValidationError aggregates per-field input violations so a single
// response can report every problem at once.
type ValidationError struct {
	Fields []apierror.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

type fieldErrors []apierror.FieldError

func (fe *fieldErrors) add(field, message, code string) {
	*fe = append(*fe, apierror.FieldError{Field: field, Message: message, Code: code})
}

// requireRating checks the 1-5 scale shared by focus, difficulty, stress,
// and mood fields. Out-of-range values are rejected rather than clamped.
func (fe *fieldErrors) requireRating(field string, value int) {
	if value < 1 || value > 5 {
		fe.add(field, "must be between 1 and 5", "out_of_range")
	}
}

func (fe *fieldErrors) requireNonNegativeInt(field string, value int) {
	if value < 0 {
		fe.add(field, "must not be negative", "out_of_range")
	}
}

func (fe *fieldErrors) requireNonNegativeFloat(field string, value float64) {
	if value < 0 {
		fe.add(field, "must not be negative", "out_of_range")
	}
}

func (fe *fieldErrors) requireDate(field, value string) {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		fe.add(field, "must be a calendar date in YYYY-MM-DD format", "invalid_format")
	}
}

func (fe *fieldErrors) err() error {
	if len(*fe) == 0 {
		return nil
	}
	return &ValidationError{Fields: *fe}
}
