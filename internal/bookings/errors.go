package bookings

import "errors"

var (
	ErrMissingEventID = errors.New("booking requires an event id")

	// ErrDanglingEvent means the referenced event did not exist at the
	// moment of the existence check.
	ErrDanglingEvent = errors.New("booking references an event that does not exist")

	ErrInvalidEmail = errors.New("invalid email address")
)

// IsValidationError reports whether err came from input validation rather
// than storage.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingEventID) || errors.Is(err, ErrInvalidEmail)
}
