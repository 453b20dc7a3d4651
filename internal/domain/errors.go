package domain

import "errors"

var (
	// ErrNotFound is returned by repos when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks uniqueness violations (duplicate email).
	ErrConflict = errors.New("conflict")
	// ErrValidation marks bad input shape or range.
	ErrValidation = errors.New("validation")
	// ErrDependency marks a failed call to a downstream collaborator;
	// only the scheduled jobs use it.
	ErrDependency = errors.New("dependency")
)
