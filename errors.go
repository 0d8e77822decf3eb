package treedex

import "errors"

// Standard index errors callers are expected to match with errors.Is.
var (
	// Lifecycle errors
	ErrNotInitialized = errors.New("treedex: index not initialized")

	// Lookup errors
	ErrNotFound = errors.New("treedex: entry not found")

	// Consistency errors
	ErrDuplicateID        = errors.New("treedex: duplicate entry id")
	ErrParentPathMismatch = errors.New("treedex: parent path mismatch")
)
