package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for explicit error handling
// These errors allow handlers to distinguish between failure modes using
// errors.Is() instead of string matching.

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials indicates authentication failed
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation indicates malformed or missing required input
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a uniqueness or invariant violation
	ErrConflict = errors.New("conflict")

	// ErrSMSNotConfigured indicates the SMS gateway is not configured
	ErrSMSNotConfigured = errors.New("SMS service not configured")
)

// validationError wraps ErrValidation with a caller-facing message
func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// conflictError wraps ErrConflict with a caller-facing message
func conflictError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
