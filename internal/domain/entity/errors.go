package entity

import (
	"errors"
	"fmt"
)

// Not-found errors are reported distinctly from validation errors so callers
// can refresh silently instead of surfacing an alarm.
var (
	ErrTripNotFound       = errors.New("trip not found")
	ErrStopNotFound       = errors.New("stop not found")
	ErrMovementNotFound   = errors.New("movement not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrShareTokenNotFound = errors.New("share link not found or expired")
	ErrDuplicateCountry   = errors.New("a trip for this country already exists")
)

// ValidationError rejects an operation before any state is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
