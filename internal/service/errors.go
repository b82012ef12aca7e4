package service

import "errors"

// Service-level error kinds. User-facing messages stay per-operation and
// generic; callers distinguish kinds with errors.Is.
var (
	// ErrNotFound covers both "no such entity" and "owned by another
	// user"; the caller cannot tell the two apart.
	ErrNotFound = errors.New("not found or unauthorized")

	// ErrValidation is returned when caller-supplied input fails the
	// required-field checks.
	ErrValidation = errors.New("validation failed")
)
