package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound indicates the referenced record does not exist for the given keys.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a business precondition on current state failed
	// (gift not available, gift not reserved, duplicate RSVP).
	ErrConflict = errors.New("conflict with current state")
	// ErrInvalidCode indicates the presented reservation code does not match
	// the stored one. Kept distinct from ErrConflict so callers can
	// differentiate a bad credential from a bad state.
	ErrInvalidCode = errors.New("invalid reservation code")
	// ErrDuplicatePhone indicates a guest with the same phone already exists.
	// The guest directory resolves this by re-reading the winning record.
	ErrDuplicatePhone = errors.New("phone already registered")
)
