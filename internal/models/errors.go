package models

import "errors"

// Sentinel errors shared by repositories, services and handlers.
// Repositories and services wrap these with fmt.Errorf("...: %w", err);
// the HTTP layer maps them to status codes with errors.Is.
var (
	// ErrValidation marks a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an unowned or nonexistent resource.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate registration.
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized marks bad credentials or a missing/expired token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstream marks a failed external service call.
	ErrUpstream = errors.New("upstream service failed")
)
