package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHashPassword_Format(t *testing.T) {
	stored, err := HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	hash, salt, ok := strings.Cut(stored, ".")
	if !ok {
		t.Fatalf("expected hash.salt, got %q", stored)
	}
	if len(hash) != 128 {
		t.Errorf("hash length: got %d, want 128 hex chars", len(hash))
	}
	if len(salt) != 32 {
		t.Errorf("salt length: got %d, want 32 hex chars", len(salt))
	}

	again, _ := HashPassword("Secret123")
	if again == stored {
		t.Error("two hashes of the same password must differ by salt")
	}
}

func TestCheckPassword(t *testing.T) {
	stored, err := HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	tests := []struct {
		name     string
		stored   string
		password string
		want     bool
	}{
		{"match", stored, "Secret123", true},
		{"wrong password", stored, "Secret124", false},
		{"no separator", "abcdef", "Secret123", false},
		{"bad hex", "zz.salt", "Secret123", false},
		{"empty", "", "Secret123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.stored, tt.password); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := NewSessionTokenService("test-secret", time.Hour)

	token, err := svc.Sign("session-1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	id, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id != "session-1" {
		t.Errorf("got %q", id)
	}
}

func TestSessionToken_Rejects(t *testing.T) {
	svc := NewSessionTokenService("test-secret", time.Hour)
	other := NewSessionTokenService("other-secret", time.Hour)

	foreign, _ := other.Sign("session-1", time.Now().Add(time.Hour))
	if _, err := svc.Verify(foreign); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign signature: got %v", err)
	}

	expired, _ := svc.Sign("session-1", time.Now().Add(-time.Minute))
	if _, err := svc.Verify(expired); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expired: got %v", err)
	}

	if _, err := svc.Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("empty: got %v", err)
	}
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage: got %v", err)
	}
}
