package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adithi-k-max/FSAD-project/internal/app/models/dto"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

// HandleAPIError maps an error to its status code and writes the error body.
// Duplicates are reported as 400, like other invalid input.
func HandleAPIError(c *gin.Context, err error) {
	status, code, fallback := classify(err)

	body := dto.NewErrorResponse(code, apperrors.Message(err, fallback))

	var ce *apperrors.CustomError
	if errors.As(err, &ce) && len(ce.Fields) > 0 {
		body.Errors = ce.Fields
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		body = dto.NewErrorResponse(code, fallback)
	}

	_ = c.Error(err)
	c.JSON(status, body)
}

func classify(err error) (int, dto.ErrorCode, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotAuthenticated), errors.Is(err, apperrors.ErrSessionInvalid):
		return http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Not authenticated"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Invalid credentials"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Insufficient permissions"
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusBadRequest, dto.ErrorCodeAlreadyExists, "Resource already exists"
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid input"
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}
