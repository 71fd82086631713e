package repository

import "errors"

// Common repository errors.
var (
	// ErrNotFound is returned when no document matches the given id.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateUsername is returned when a credential write would violate
	// the unique username index.
	ErrDuplicateUsername = errors.New("username already exists")
)
