package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeValidation indicates invalid input caught before any network call.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeUnauthorized indicates the remote API rejected the request for
	// lack of (or invalid) credentials.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeNotFound indicates the requested resource does not exist.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeAPI indicates a structured error returned by the remote API.
	ErrCodeAPI ErrorCode = "api"
	// ErrCodeNetwork indicates the request never completed or the response
	// body could not be decoded.
	ErrCodeNetwork ErrorCode = "network"
	// ErrCodeThrottled indicates a client-side rate limit rejected the call.
	ErrCodeThrottled ErrorCode = "throttled"
	// ErrCodeStorage indicates the session persistence backend failed.
	ErrCodeStorage ErrorCode = "storage"
	// ErrCodeCanceled indicates the operation result was discarded because
	// the session it belonged to ended while the call was in flight.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError is a structured application error with a code, a human-readable
// message, and an optional cause. It supports error wrapping and unwrapping
// for use with errors.Is and errors.As. The Message of every AppError is
// suitable for direct display to the user.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Fields maps input field names to messages for validation errors (optional)
	Fields map[string]string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// ValidationFields creates a Validation error carrying field-keyed messages.
func ValidationFields(message string, fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Fields:  fields,
	}
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
	}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
	}
}

// API creates an error for a structured failure reported by the remote API.
func API(message string) *AppError {
	return &AppError{
		Code:    ErrCodeAPI,
		Message: message,
	}
}

// Network wraps a transport-level failure.
func Network(message string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeNetwork,
		Message: message,
		Cause:   cause,
	}
}

// Throttled creates a new Throttled error.
func Throttled(message string) *AppError {
	return &AppError{
		Code:    ErrCodeThrottled,
		Message: message,
	}
}

// Storage wraps a session persistence failure.
func Storage(message string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeStorage,
		Message: message,
		Cause:   cause,
	}
}

// Canceled creates a new Canceled error.
func Canceled(message string) *AppError {
	return &AppError{
		Code:    ErrCodeCanceled,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsNetwork checks if an error is a Network error.
func IsNetwork(err error) bool {
	return isCode(err, ErrCodeNetwork)
}

// IsThrottled checks if an error is a Throttled error.
func IsThrottled(err error) bool {
	return isCode(err, ErrCodeThrottled)
}

// IsStorage checks if an error is a Storage error.
func IsStorage(err error) bool {
	return isCode(err, ErrCodeStorage)
}

// IsCanceled checks if an error is a Canceled error.
func IsCanceled(err error) bool {
	return isCode(err, ErrCodeCanceled)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetFields returns the field-keyed messages from an error, or nil if not an
// AppError or no fields are set.
func GetFields(err error) map[string]string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}

// Message returns the displayable message from an error. Non-AppError values
// fall back to their Error string.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
