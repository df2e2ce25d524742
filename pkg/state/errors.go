package state

import "errors"

// State errors.
var (
	// ErrNotFound is returned when a request-scoped value does not exist.
	ErrNotFound = errors.New("state: value not found")

	// ErrTypeMismatch is returned when a stored value has a different
	// type than requested.
	ErrTypeMismatch = errors.New("state: type mismatch")
)
