package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy. Every error returned by a service wraps exactly one of these.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrPersistence      = errors.New("persistence failure")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Frequently raised validation failures. Treat them as read-only; use
// WithDetails to attach request data.
var (
	ErrCurrentYearNotSet = NewValidationError("current academic year is not set")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err      error
	Message  string
	Messages []string
	Details  map[string]interface{}
	cause    error
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the taxonomy sentinel and the underlying cause, if any.
func (e *CustomError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

// WithDetails returns a copy of the error carrying details. The receiver is
// never modified and the copy still matches it with errors.Is.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	cp := *e
	cp.Details = details
	if cp.cause == nil {
		cp.cause = e
	}
	return &cp
}

// NewValidationError reports one or more human-readable input problems.
func NewValidationError(messages ...string) error {
	e := &CustomError{Err: ErrValidationFailed, Messages: messages}
	if len(messages) == 1 {
		e.Message = messages[0]
	}
	return e
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewPersistenceError wraps an unexpected data store failure. The message is
// meant for logs only.
func NewPersistenceError(cause error, operation string) error {
	return &CustomError{
		Err:     ErrPersistence,
		Message: fmt.Sprintf("%s: %v", operation, cause),
		cause:   cause,
	}
}

// Messages returns the client-facing messages carried by err.
func Messages(err error) []string {
	var ce *CustomError
	if errors.As(err, &ce) {
		if len(ce.Messages) > 0 {
			return ce.Messages
		}
		return []string{ce.Error()}
	}
	if err == nil {
		return nil
	}
	return []string{strings.TrimPrefix(err.Error(), ErrValidationFailed.Error()+": ")}
}

// Is returns whether err matches target or any of errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
