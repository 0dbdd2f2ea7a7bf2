// Package repository defines the persistence contracts the use case layer depends on.
// Implementations live under internal/infra/adapter/persistence.
package repository

import "errors"

// Typed storage errors. Adapters translate driver-level failures into these
// so callers never have to inspect database error codes.
var (
	// ErrNotFound indicates the targeted row does not exist (or is not visible
	// to the caller, e.g. an owner-scoped delete on someone else's article).
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail indicates a unique constraint violation on usuarios.email.
	ErrDuplicateEmail = errors.New("email already exists")
)
