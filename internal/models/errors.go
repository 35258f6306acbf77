package models

import "errors"

// Storage-level errors shared by the event and booking layers. The DB
// packages translate driver errors into these so services never have to
// inspect dialect-specific error codes.
var (
	// ErrSlugConflict is returned when an insert or update violates the
	// unique index on events.slug.
	ErrSlugConflict = errors.New("an event with this slug already exists")

	// ErrEventNotFound is returned when a lookup matches no event row.
	ErrEventNotFound = errors.New("event not found")

	// ErrBookingNotFound is returned when a lookup matches no booking row.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStorageUnavailable is returned when the database cannot be
	// reached. It is propagated to callers, never swallowed.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
