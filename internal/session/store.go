// Package session holds server-side login sessions keyed by an opaque token
// carried in an HTTP-only cookie.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a token matches no live session.
var ErrNotFound = errors.New("session not found")

// Data is the identity stored per session; handlers derive the acting user
// from it, never from request bodies.
type Data struct {
	UserID string `json:"id"`
	Name   string `json:"nombre"`
	Email  string `json:"correo"`
}

// Store creates, resolves and destroys sessions.
type Store interface {
	Create(ctx context.Context, data Data) (token string, err error)
	Get(ctx context.Context, token string) (*Data, error)
	Destroy(ctx context.Context, token string) error
}
