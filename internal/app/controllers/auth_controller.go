// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adithi-k-max/FSAD-project/internal/app/models/dto"
	"github.com/adithi-k-max/FSAD-project/internal/app/services"
	"github.com/adithi-k-max/FSAD-project/internal/middleware"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/session"
)

// AuthController handles registration, login and the session lifecycle
type AuthController struct {
	authService services.AuthService
	sessions    *session.Manager
	authMW      *middleware.AuthMiddleware
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessions *session.Manager, authMW *middleware.AuthMiddleware, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		authMW:      authMW,
		logger:      logger,
	}
}

// startSession issues a fresh session for userID and sets the cookie
func (c *AuthController) startSession(ctx *gin.Context, userID int64) bool {
	token, _, err := c.sessions.Start(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return false
	}
	c.authMW.SetSessionCookie(ctx, token)
	return true
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a user with the given role and its profile in one transaction, then starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} models.User "Registered user"
// @Failure 400 {object} dto.ErrorResponse "Invalid input, or username/email already exists"
// @Failure 403 {object} dto.ErrorResponse "Registration is not allowed for this role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		c.logger.Warn().Msg("Invalid registration request payload")
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Failed to register user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !c.startSession(ctx, user.ID) {
		return
	}

	c.logger.Info().
		Int64("userID", user.ID).
		Str("role", string(user.Role)).
		Msg("User registered")
	ctx.JSON(http.StatusCreated, user)
}

// Login handles user login
// @Summary User login
// @Description Verifies credentials and starts a cookie session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} models.User "Logged in user"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !c.startSession(ctx, user.ID) {
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Logout ends the current session
// @Summary Logout
// @Description Destroys the server-side session and clears the cookie
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.MessageResponse "Logged out"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.sessions.End(ctx.Request.Context(), ctx.GetString(middleware.ContextSessionTok)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to destroy session")
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.authMW.ClearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// CurrentUser returns the session user
// @Summary Current user
// @Description Returns the user bound to the session cookie, re-read from the store
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} models.User
// @Failure 401 {object} dto.ErrorResponse "Not authenticated or user not found"
// @Router /user [get]
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	user, err := c.authService.CurrentUser(ctx.Request.Context(), ctx.GetInt64(middleware.ContextUserID))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			err = apperrors.ErrSessionUserGone
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
