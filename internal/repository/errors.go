package repository

import "errors"

// Domain-level errors surfaced by repository implementations; driver
// errors are mapped at the boundary and never leak upward.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
)
