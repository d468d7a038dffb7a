// Package session keeps server-side login sessions behind a pluggable Store.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned for unknown or expired sessions
var ErrNotFound = errors.New("session not found")

// Session binds an opaque id to a user until ExpiresAt
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store persists sessions. Get never returns an expired session.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, s *Session) error
	Destroy(ctx context.Context, id string) error
}

// Pruner is implemented by stores that can drop expired sessions in bulk
type Pruner interface {
	Prune(ctx context.Context) (int64, error)
}
