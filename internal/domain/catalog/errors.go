package catalog

import "errors"

var (
	// ErrEntryNotFound indicates the catalog entry doesn't exist.
	ErrEntryNotFound = errors.New("catalog entry not found")
	// ErrInvalidEntry indicates invalid input for a catalog entry.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)
