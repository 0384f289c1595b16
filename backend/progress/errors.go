package progress

import "errors"

var (
	// ErrNotInitialized is returned when a read or mutation arrives before
	// Initialize has bound an identity and catalog.
	ErrNotInitialized = errors.New("progress store not initialized")

	// ErrUnknownItem is returned for a toggle targeting an id that is not
	// part of the current catalog. No mutation takes place.
	ErrUnknownItem = errors.New("unknown study item")

	// ErrPersistenceUnavailable wraps failures of the persistence medium.
	// It never aborts a session: reads fall back to a fresh record and
	// writes leave the in-memory state authoritative.
	ErrPersistenceUnavailable = errors.New("progress persistence unavailable")
)
