package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers match
// them with errors.Is; implementations wrap them with record context.
var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indicates the write would violate a uniqueness rule.
	ErrDuplicate = errors.New("duplicate record")
)
