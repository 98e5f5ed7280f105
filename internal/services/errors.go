package services

import (
	"errors"

	"pokedex/internal/repositories"
)

// Error taxonomy surfaced to handlers. Every failure from a service call
// matches exactly one of these via errors.Is; handlers map them to HTTP
// statuses (403, 404, 409) and anything else to 500.
var (
	// ErrUnauthorized means the acting user does not own the target record.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = repositories.ErrNotFound
	// ErrConflict means the write would create a duplicate relationship.
	ErrConflict = repositories.ErrDuplicate
)
