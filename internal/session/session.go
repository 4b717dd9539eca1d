package session

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNoSession    = errors.New("no session")
	ErrInvalidToken = errors.New("invalid session token")
)

// Marker is what the server remembers about a logged in user
type Marker struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Store keeps markers by session id until they expire or are deleted
type Store interface {
	Save(ctx context.Context, id string, m Marker, ttl time.Duration) error
	// Get returns ErrNoSession for unknown or expired ids
	Get(ctx context.Context, id string) (Marker, error)
	Delete(ctx context.Context, id string) error
}
