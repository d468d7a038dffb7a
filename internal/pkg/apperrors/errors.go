package apperrors

import "errors"

// Error categories. The HTTP layer maps each category to one status code.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("invalid session")

	ErrPermissionDenied = errors.New("permission denied")

	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Domain errors carrying the message returned to clients
var (
	ErrUnauthenticated    = NewCustomError(ErrNotAuthenticated, "Not authenticated")
	ErrSessionUserGone    = NewCustomError(ErrNotAuthenticated, "User not found")
	ErrWrongCredentials   = NewCustomError(ErrInvalidCredentials, "Invalid credentials")
	ErrInsufficientRights = NewCustomError(ErrPermissionDenied, "Insufficient permissions")

	ErrUserNotFound        = NewCustomError(ErrResourceNotFound, "User not found")
	ErrJobNotFound         = NewCustomError(ErrResourceNotFound, "Job not found")
	ErrApplicationNotFound = NewCustomError(ErrResourceNotFound, "Application not found")
	ErrEmployerNotFound    = NewCustomError(ErrResourceNotFound, "Employer not found")
	ErrStudentNotFound     = NewCustomError(ErrResourceNotFound, "Student not found")

	ErrUsernameTaken  = NewCustomError(ErrConflict, "Username already exists")
	ErrEmailTaken     = NewCustomError(ErrConflict, "Email already exists")
	ErrAlreadyApplied = NewCustomError(ErrConflict, "Already applied to this job")

	ErrStudentsOnly        = NewCustomError(ErrPermissionDenied, "Only students can apply for jobs")
	ErrEmployersOnly       = NewCustomError(ErrPermissionDenied, "Only employers can post jobs")
	ErrApplicationManagers = NewCustomError(ErrPermissionDenied, "Only employers and admins can update applications")
	ErrNotJobOwner         = NewCustomError(ErrPermissionDenied, "Cannot update applications for this job")
	ErrPrivilegedRole      = NewCustomError(ErrPermissionDenied, "Registration is not allowed for this role")

	ErrInvalidStatus       = NewCustomError(ErrValidationFailed, "Invalid status value")
	ErrCompanyNameRequired = NewCustomError(ErrValidationFailed, "Company name is required for employers")
)

// FieldError describes one rejected input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Fields  []FieldError
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewResourceNotFoundError creates a not found error with a message
func NewResourceNotFoundError(message string) error {
	return NewCustomError(ErrResourceNotFound, message)
}

// NewForbiddenError creates a permission denied error with a message
func NewForbiddenError(message string) error {
	return NewCustomError(ErrPermissionDenied, message)
}

// NewBadRequestError creates a bad request error with a message
func NewBadRequestError(message string) error {
	return NewCustomError(ErrBadRequest, message)
}

// NewValidationError creates a validation error listing the rejected fields
func NewValidationError(message string, fields []FieldError) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Fields:  fields,
	}
}

// Message returns the client-facing message of err, or fallback when err carries none
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
