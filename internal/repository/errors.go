// Package repository holds the persistence error contract shared by the
// storage backends and the domain services. The repository interfaces
// themselves live with their consumers in the domain packages.
package repository

import "errors"

// ErrNotFound is returned when a requested entity doesn't exist
var ErrNotFound = errors.New("not found")
