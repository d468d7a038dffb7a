package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/session"
)

// Context keys set by the auth middleware
const (
	ContextUserID      = "userID"
	ContextCurrentUser = "currentUser"
	ContextSessionTok  = "sessionToken"
)

// UserLookup resolves the session's user on every request
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	sessions *session.Manager
	users    UserLookup
	cookie   CookieConfig
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *session.Manager, users UserLookup, cookie CookieConfig) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		users:    users,
		cookie:   cookie,
	}
}

// SetSessionCookie writes the session token cookie
func (m *AuthMiddleware) SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, token, int(m.sessions.MaxAge().Seconds()), "/", "", m.cookie.Secure, true)
}

// ClearSessionCookie expires the session token cookie
func (m *AuthMiddleware) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, "", -1, "/", "", m.cookie.Secure, true)
}

// SessionToken returns the raw cookie token, empty when absent
func (m *AuthMiddleware) SessionToken(c *gin.Context) string {
	token, err := c.Cookie(m.cookie.Name)
	if err != nil {
		return ""
	}
	return token
}

// authenticate resolves the session and stores the user id in the context
func (m *AuthMiddleware) authenticate(c *gin.Context) bool {
	token := m.SessionToken(c)
	if token == "" {
		HandleAPIError(c, apperrors.ErrUnauthenticated)
		return false
	}

	s, err := m.sessions.Resolve(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
		} else {
			HandleAPIError(c, err)
		}
		return false
	}

	c.Set(ContextUserID, s.UserID)
	c.Set(ContextSessionTok, token)
	return true
}

// RequireAuth rejects requests without a live session with 401
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole loads the session user and rejects it with 403 unless it holds one of roles.
// With no roles any authenticated user passes.
func (m *AuthMiddleware) RequireRole(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			c.Abort()
			return
		}

		user, err := m.users.GetUserByID(c.Request.Context(), c.GetInt64(ContextUserID))
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				err = apperrors.ErrSessionUserGone
			}
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		if len(roles) > 0 && !user.HasRole(roles...) {
			HandleAPIError(c, apperrors.ErrInsufficientRights)
			c.Abort()
			return
		}

		c.Set(ContextCurrentUser, user)
		c.Next()
	}
}

// RequireUser is RequireRole without a role restriction
func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return m.RequireRole()
}

// CurrentUser returns the user loaded by RequireRole
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextCurrentUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

// EnsureRole writes denied as the response unless user holds one of roles.
// Handlers call it before binding so a wrong role never sees input errors.
func EnsureRole(c *gin.Context, user *models.User, denied error, roles ...models.RoleType) bool {
	if user == nil {
		HandleAPIError(c, apperrors.ErrUnauthenticated)
		return false
	}
	if !user.HasRole(roles...) {
		HandleAPIError(c, denied)
		return false
	}
	return true
}
