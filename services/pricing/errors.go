package pricing

import (
	"fmt"

	"rentora/models"
)

// ValidationError reports malformed quote input (non-chronological dates,
// negative counts, unparseable fields). It is never substituted with a
// default price.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ConflictError reports that a requested range overlaps a manual block or
// non-cancelled booking. Conflicts carries every overlapping entry so the
// caller can render alternatives.
type ConflictError struct {
	Message   string
	Conflicts []models.Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("availability conflict: %s (%d overlapping entries)", e.Message, len(e.Conflicts))
}
