// Package service implements the business rules for categories and posts:
// input validation, slug computation, uniqueness and referential checks.
// Handlers translate the sentinel errors declared here into HTTP status
// codes.
package service

import "errors"

// Service errors. Callers match with errors.Is; the wrapped message carries
// the human-readable detail.
var (
	// ErrValidation marks malformed or missing required input.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a lookup for an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation on a category name or post slug.
	ErrConflict = errors.New("conflict")

	// ErrCategoryNotFound marks a client-supplied category reference that
	// does not resolve. Distinguished from ErrNotFound because it is a bad
	// request, not a missing resource.
	ErrCategoryNotFound = errors.New("category does not exist")
)
