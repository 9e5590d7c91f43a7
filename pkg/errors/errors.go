package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrInvalidState ErrorCode = "INVALID_STATE"

	// Scan errors
	ErrListing ErrorCode = "LISTING"
	ErrPattern ErrorCode = "PATTERN"
	ErrHandler ErrorCode = "HANDLER"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Output errors
	ErrOutput ErrorCode = "OUTPUT"
)

// SweepError represents a structured error with code and details
type SweepError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SweepError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SweepError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SweepError) Is(target error) bool {
	var targetErr *SweepError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SweepError with the given code and message
func New(code ErrorCode, message string) *SweepError {
	return &SweepError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SweepError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SweepError {
	return &SweepError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SweepError
func Wrap(err error, code ErrorCode, message string) *SweepError {
	if err == nil {
		return nil
	}
	return &SweepError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SweepError {
	if err == nil {
		return nil
	}
	return &SweepError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SweepError) WithDetail(key string, value interface{}) *SweepError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sweepErr *SweepError
	if errors.As(err, &sweepErr) {
		return sweepErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SweepError
func GetErrorCode(err error) ErrorCode {
	var sweepErr *SweepError
	if errors.As(err, &sweepErr) {
		return sweepErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SweepError
func GetErrorDetails(err error) map[string]interface{} {
	var sweepErr *SweepError
	if errors.As(err, &sweepErr) {
		return sweepErr.Details
	}
	return nil
}
