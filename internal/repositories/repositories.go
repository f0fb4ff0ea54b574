// Package repositories implements MongoDB data access for the four
// collections: usuarios, posts, comentarios, likes.
package repositories

import "errors"

var (
	// ErrNotFound is returned when a lookup or delete matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate document")
)
