package domain

import "errors"

var (
	// ErrValidation marks a missing or empty required field.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an id that does not resolve to an entity.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks an unreadable or unwritable backing document.
	ErrStorage = errors.New("storage failure")
)
