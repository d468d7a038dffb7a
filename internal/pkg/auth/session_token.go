package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session token errors
var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

const tokenIssuer = "placement-api"

// SessionTokenService signs and verifies the session cookie value.
// The token carries only the opaque session id; all session state lives server side.
type SessionTokenService struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewSessionTokenService creates a token service signing with secret
func NewSessionTokenService(secret string, maxAge time.Duration) *SessionTokenService {
	return &SessionTokenService{
		secret: []byte(secret),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// MaxAge is the lifetime of issued tokens
func (s *SessionTokenService) MaxAge() time.Duration {
	return s.maxAge
}

// Sign returns a signed token for sessionID valid until expiresAt
func (s *SessionTokenService) Sign(sessionID string, expiresAt time.Time) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Verify checks signature and expiry and returns the session id
func (s *SessionTokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}
