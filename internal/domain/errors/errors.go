package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrAuthentication = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"Authentication failed",
		"",
	)

	ErrTokenSignatureInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_SIGNATURE_INVALID",
		"Token signature is invalid",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrTokenAudienceMismatch = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_AUDIENCE_MISMATCH",
		"Token audience is not accepted",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"Token is malformed",
		"",
	)

	ErrUnknownScheme = NewBaseError(
		http.StatusUnauthorized,
		"UNKNOWN_TOKEN_SCHEME",
		"Unknown token scheme",
		"",
	)

	// OAuth-related errors
	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"Invalid Google ID token",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Record-related errors
	ErrMedicationNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDICATION_NOT_FOUND",
		"Medication not found",
		"",
	)

	ErrVaccinationNotFound = NewBaseError(
		http.StatusNotFound,
		"VACCINATION_NOT_FOUND",
		"Vaccination not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"No device registered for this user",
		"",
	)

	ErrRecommendationNotFound = NewBaseError(
		http.StatusNotFound,
		"RECOMMENDATION_NOT_FOUND",
		"Recommendation not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnknownAction = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ACTION",
		"Unknown action",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// IsAuthenticationFailure reports whether err is any kind of token rejection.
func IsAuthenticationFailure(err error) bool {
	var appErr AppError

	return errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusUnauthorized
}

// IsNotFound reports whether err means the addressed record does not exist.
func IsNotFound(err error) bool {
	var appErr AppError

	return errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusNotFound
}

// IsValidationFailure reports whether err is a rejected input.
func IsValidationFailure(err error) bool {
	var appErr AppError

	return errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusBadRequest
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// UpstreamError reports a failed call to a collaborator (record store, language model, push).
// Unlike other 5xx errors its message carries the underlying cause.
type UpstreamError struct {
	source string
	err    error
}

// NewUpstreamError wraps err as a failure of the named upstream.
func NewUpstreamError(source string, err error) AppError {
	return &UpstreamError{
		source: source,
		err:    err,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return e.source + " failed: " + e.err.Error()
}

// Unwrap exposes the collaborator error.
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Source names the failing upstream.
func (e *UpstreamError) Source() string {
	return e.source
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILURE"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.err.Error()
}

// IsUpstreamFailure reports whether err came from a collaborator.
func IsUpstreamFailure(err error) bool {
	var upstreamErr *UpstreamError

	return errors.As(err, &upstreamErr)
}
