package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adithi-k-max/FSAD-project/internal/pkg/auth"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

// Manager issues sessions and translates between cookie tokens and stored sessions
type Manager struct {
	store  Store
	tokens *auth.SessionTokenService
	maxAge time.Duration
	now    func() time.Time
}

// NewManager creates a Manager. Every session lives for maxAge.
func NewManager(store Store, tokens *auth.SessionTokenService, maxAge time.Duration) *Manager {
	return &Manager{
		store:  store,
		tokens: tokens,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// MaxAge is the fixed session lifetime
func (m *Manager) MaxAge() time.Duration {
	return m.maxAge
}

// Start creates a fresh session for userID and returns the signed cookie token
func (m *Manager) Start(ctx context.Context, userID int64) (string, *Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: m.now().Add(m.maxAge),
	}
	if err := m.store.Set(ctx, s); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, err := m.tokens.Sign(s.ID, s.ExpiresAt)
	if err != nil {
		_ = m.store.Destroy(ctx, s.ID)
		return "", nil, err
	}
	return token, s, nil
}

// Resolve returns the live session for a cookie token. Tampered, expired and
// unknown tokens all yield ErrNotFound.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	id, err := m.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrExpiredToken) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m.store.Get(ctx, id)
}

// End destroys the session behind token. Unknown tokens are ignored.
func (m *Manager) End(ctx context.Context, token string) error {
	id, err := m.tokens.Verify(token)
	if err != nil {
		return nil
	}
	return m.store.Destroy(ctx, id)
}

// RunPruner drops expired sessions every period until ctx is cancelled.
// Stores that cannot prune are left alone.
func (m *Manager) RunPruner(ctx context.Context, period time.Duration) {
	pruner, ok := m.store.(Pruner)
	if !ok {
		return
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := pruner.Prune(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("Failed to prune expired sessions")
				continue
			}
			if n > 0 {
				logger.Debug().Int64("pruned", n).Msg("Pruned expired sessions")
			}
		}
	}
}
