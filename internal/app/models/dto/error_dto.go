package dto

import "github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"

// ErrorCode is a stable machine-readable error category
type ErrorCode string

const (
	ErrorCodeUnauthorized     ErrorCode = "AUTH_001"
	ErrorCodeForbidden        ErrorCode = "AUTH_002"
	ErrorCodeNotFound         ErrorCode = "RES_001"
	ErrorCodeAlreadyExists    ErrorCode = "RES_002"
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "VAL_002"
	ErrorCodeInternalServer   ErrorCode = "SRV_001"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string                 `json:"message" example:"Not authenticated"`
	Code    ErrorCode              `json:"code,omitempty" example:"AUTH_001"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// NewErrorResponse creates an error body
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{Message: message, Code: code}
}

// MessageResponse is a plain acknowledgement body
type MessageResponse struct {
	Message string `json:"message" example:"Logged out"`
}

// HealthResponse is returned by the liveness endpoints
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message,omitempty" example:"pong"`
}
