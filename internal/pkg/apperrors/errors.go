package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidID        = errors.New("invalid identifier")
	ErrBadRequest       = errors.New("bad request")
)

// Professor errors
var (
	ErrProfessorNotFound  = errors.New("professor not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrRegNoAlreadyExists = errors.New("registration number already exists")
)

// Gig errors
var (
	ErrGigNotFound      = errors.New("gig not found")
	ErrInvalidGigStatus = errors.New("invalid gig status")
)

// Application errors
var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrInvalidApplicationStatus = errors.New("invalid application status")
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}
