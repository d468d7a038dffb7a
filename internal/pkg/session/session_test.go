package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adithi-k-max/FSAD-project/internal/pkg/auth"
)

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	_ = m.Set(ctx, &Session{ID: "live", UserID: 1, ExpiresAt: now.Add(time.Hour)})
	_ = m.Set(ctx, &Session{ID: "dead", UserID: 2, ExpiresAt: now.Add(-time.Second)})

	if s, err := m.Get(ctx, "live"); err != nil || s.UserID != 1 {
		t.Fatalf("live: got %+v, %v", s, err)
	}
	if _, err := m.Get(ctx, "dead"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired session returned: %v", err)
	}

	n, _ := m.Prune(ctx)
	if n != 1 || m.Len() != 1 {
		t.Errorf("prune: removed %d, left %d", n, m.Len())
	}

	_ = m.Destroy(ctx, "live")
	if _, err := m.Get(ctx, "live"); !errors.Is(err, ErrNotFound) {
		t.Errorf("destroyed session returned: %v", err)
	}
}

func newManager() (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	return NewManager(store, auth.NewSessionTokenService("secret", time.Hour), time.Hour), store
}

func TestManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newManager()

	token, s, err := mgr.Start(ctx, 7)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	got, err := mgr.Resolve(ctx, token)
	if err != nil || got.ID != s.ID || got.UserID != 7 {
		t.Fatalf("Resolve: %+v, %v", got, err)
	}

	if err := mgr.End(ctx, token); err != nil {
		t.Fatalf("End: %v", err)
	}
	if _, err := mgr.Resolve(ctx, token); !errors.Is(err, ErrNotFound) {
		t.Errorf("ended session still resolves: %v", err)
	}
}

func TestManager_RejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	mgr, store := newManager()

	// Valid signature from another secret for a session that does exist
	_ = store.Set(ctx, &Session{ID: "abc", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)})
	foreign, _ := auth.NewSessionTokenService("other", time.Hour).Sign("abc", time.Now().Add(time.Hour))

	for _, token := range []string{"", "garbage", foreign} {
		if _, err := mgr.Resolve(ctx, token); !errors.Is(err, ErrNotFound) {
			t.Errorf("token %q: got %v", token, err)
		}
	}

	if err := mgr.End(ctx, "garbage"); err != nil {
		t.Errorf("End on garbage: %v", err)
	}
}

func TestManager_NewSessionPerLogin(t *testing.T) {
	ctx := context.Background()
	mgr, store := newManager()

	t1, _, _ := mgr.Start(ctx, 1)
	t2, _, _ := mgr.Start(ctx, 1)
	if t1 == t2 {
		t.Error("expected distinct tokens")
	}
	if store.Len() != 2 {
		t.Errorf("expected two sessions, got %d", store.Len())
	}
}

func TestRunPruner_StopsOnCancel(t *testing.T) {
	mgr, store := newManager()
	_ = store.Set(context.Background(), &Session{ID: "old", ExpiresAt: time.Now().Add(-time.Minute)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		mgr.RunPruner(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for store.Len() != 0 {
		select {
		case <-deadline:
			t.Fatal("pruner did not remove expired session")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pruner did not stop")
	}
}
