package events

import (
	"errors"
	"fmt"

	"ms-events/internal/validate"
)

var (
	ErrEmptyAgenda = errors.New("agenda must contain at least one item")
	ErrEmptyTags   = errors.New("tags must contain at least one item")
)

// MissingFieldError names the first required field found empty during
// validation.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// IsValidationError reports whether err was produced by the submit
// pipeline's validation steps, as opposed to a storage failure. Handlers
// use it to pick between 400 and 5xx responses.
func IsValidationError(err error) bool {
	var missing *MissingFieldError
	return errors.As(err, &missing) ||
		errors.Is(err, ErrEmptyAgenda) ||
		errors.Is(err, ErrEmptyTags) ||
		errors.Is(err, validate.ErrInvalidDate) ||
		errors.Is(err, validate.ErrInvalidTimeFormat) ||
		errors.Is(err, validate.ErrInvalidTimeValue)
}
