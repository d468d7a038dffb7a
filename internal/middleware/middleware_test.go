package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/models/dto"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/auth"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/session"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Configure(logger.Config{Level: logger.Disabled, Output: io.Discard})
	os.Exit(m.Run())
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		code    dto.ErrorCode
	}{
		{"not authenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized, "Not authenticated", dto.ErrorCodeUnauthorized},
		{"session user gone", apperrors.ErrSessionUserGone, http.StatusUnauthorized, "User not found", dto.ErrorCodeUnauthorized},
		{"wrong credentials", apperrors.ErrWrongCredentials, http.StatusUnauthorized, "Invalid credentials", dto.ErrorCodeUnauthorized},
		{"forbidden", apperrors.ErrNotJobOwner, http.StatusForbidden, "Cannot update applications for this job", dto.ErrorCodeForbidden},
		{"not found", apperrors.ErrJobNotFound, http.StatusNotFound, "Job not found", dto.ErrorCodeNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", apperrors.ErrApplicationNotFound), http.StatusNotFound, "Application not found", dto.ErrorCodeNotFound},
		{"duplicate is 400", apperrors.ErrUsernameTaken, http.StatusBadRequest, "Username already exists", dto.ErrorCodeAlreadyExists},
		{"validation", apperrors.ErrInvalidStatus, http.StatusBadRequest, "Invalid status value", dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.NewBadRequestError("Invalid id"), http.StatusBadRequest, "Invalid id", dto.ErrorCodeBadRequest},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error", dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/x", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Message != tt.message || body.Code != tt.code {
				t.Errorf("body = %+v, want message %q code %q", body, tt.message, tt.code)
			}
		})
	}
}

func TestHandleAPIError_FieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/register", nil)

	HandleAPIError(c, apperrors.NewValidationError("Invalid input", []apperrors.FieldError{
		{Field: "email", Message: "Invalid email address"},
	}))

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "email" {
		t.Fatalf("errors = %+v", body.Errors)
	}
}

// usersStub serves GetUserByID from a map
type usersStub map[int64]*models.User

func (u usersStub) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if user, ok := u[id]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func TestRequireRole(t *testing.T) {
	tokens := auth.NewSessionTokenService("test-secret", time.Hour)
	sessions := session.NewManager(session.NewMemoryStore(), tokens, time.Hour)
	users := usersStub{
		1: {ID: 1, Username: "admin", Role: models.RoleAdmin},
		2: {ID: 2, Username: "alice", Role: models.RoleStudent},
	}
	mw := NewAuthMiddleware(sessions, users, CookieConfig{Name: "placement.sid"})

	router := gin.New()
	router.GET("/admin", mw.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		u, _ := CurrentUser(c)
		c.String(http.StatusOK, u.Username)
	})

	token := func(userID int64) string {
		tok, _, err := sessions.Start(context.Background(), userID)
		if err != nil {
			t.Fatal(err)
		}
		return tok
	}

	tests := []struct {
		name    string
		cookie  string
		status  int
		message string
	}{
		{"no cookie", "", http.StatusUnauthorized, "Not authenticated"},
		{"garbage cookie", "abc", http.StatusUnauthorized, "Not authenticated"},
		{"deleted user", token(3), http.StatusUnauthorized, "User not found"},
		{"wrong role", token(2), http.StatusForbidden, "Insufficient permissions"},
		{"admin", token(1), http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "placement.sid", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
			if tt.message == "" {
				if w.Body.String() != "admin" {
					t.Errorf("body = %q", w.Body.String())
				}
				return
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Message != tt.message {
				t.Errorf("message = %q, want %q", body.Message, tt.message)
			}
		})
	}
}
