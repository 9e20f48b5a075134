package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeConflict    = "CONFLICT"
	CodeUnavailable = "STORAGE_UNAVAILABLE"
	CodeIntegrity   = "INVARIANT_VIOLATION"
)

// AppError represents an application error with context
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	StatusCode int               `json:"-"`
	Err        error             `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithError wraps an underlying error
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// New creates a new AppError
func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NotFound creates a not found error
func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// Validation creates a validation error
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// Conflict creates a conflict error
func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

// Unavailable creates a storage unavailability error. The caller only
// ever sees a generic failure; the underlying cause stays internal.
func Unavailable(message string) *AppError {
	return New(CodeUnavailable, message, http.StatusInternalServerError)
}

// Integrity creates an invariant violation error. This always marks a
// defect in stored data and must never be silently ignored.
func Integrity(message string) *AppError {
	return New(CodeIntegrity, message, http.StatusInternalServerError)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error if present
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeValidation
	}
	return false
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeConflict
	}
	return false
}

// IsUnavailable checks if the error is a storage unavailability error
func IsUnavailable(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeUnavailable
	}
	return false
}

// IsIntegrity checks if the error is an invariant violation error
func IsIntegrity(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeIntegrity
	}
	return false
}
