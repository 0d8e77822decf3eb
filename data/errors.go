package data

import "errors"

// Entry-level errors shared by the index and its callers.
var (
	ErrNilEntry   = errors.New("treedex: nil entry")
	ErrIDMismatch = errors.New("treedex: entry id mismatch")
)
