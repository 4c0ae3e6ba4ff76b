package dto

import (
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeAccountDisabled    ErrorCode = "AUTH_002"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_006"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_008"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeConflict         ErrorCode = "RES_004"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityError    ErrorSeverity = "ERROR"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"VAL_001"`
	Message  string        `json:"message" example:"Validation failed"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// ErrorResponse is the body of every failed request. Message is a string,
// or a list of strings for validation failures.
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Message   interface{}  `json:"message" swaggertype:"string" example:"academic year not found"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-09-23T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// WithSeverity sets the severity level of the error
func (e *ErrorDetail) WithSeverity(severity ErrorSeverity) *ErrorDetail {
	e.Severity = severity
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response with a single message.
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Message:   errorDetail.Message,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// NewValidationErrorResponse creates a 400 body whose message is the list
// of field-level problems.
func NewValidationErrorResponse(messages []string) *ErrorResponse {
	if messages == nil {
		messages = []string{}
	}
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").
		WithSeverity(ErrorSeverityWarning).
		WithDetails(messages)
	return &ErrorResponse{
		Success:   false,
		Message:   messages,
		Error:     detail,
		Timestamp: time.Now(),
	}
}
