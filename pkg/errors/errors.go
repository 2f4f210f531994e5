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

	// Rule construction errors
	ErrInvalidPattern    ErrorCode = "INVALID_PATTERN"
	ErrInvalidStyleToken ErrorCode = "INVALID_STYLE_TOKEN"
	ErrZeroLengthMatch   ErrorCode = "ZERO_LENGTH_MATCH"
	ErrStyleNotFound     ErrorCode = "STYLE_NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// I/O errors
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrInputRead   ErrorCode = "INPUT_READ"
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"
)

// Detail keys shared by the packages that build rules
const (
	DetailPattern  = "pattern"
	DetailToken    = "token"
	DetailPosition = "position"
	DetailOrigin   = "origin"
	DetailStyle    = "style"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// AtSource ties the error to a declared rule: the origin is appended to the
// message and both pattern and origin are recorded as details. An empty
// origin reads as "unknown origin" in the message.
func (e *Error) AtSource(pattern, origin string) *Error {
	label := origin
	if label == "" {
		label = "unknown origin"
	}
	e.Message = fmt.Sprintf("%s (%s)", e.Message, label)
	return e.WithDetail(DetailPattern, pattern).WithDetail(DetailOrigin, origin)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var czErr *Error
	if errors.As(err, &czErr) {
		return czErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an Error
func GetErrorCode(err error) ErrorCode {
	var czErr *Error
	if errors.As(err, &czErr) {
		return czErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an Error
func GetErrorDetails(err error) map[string]interface{} {
	var czErr *Error
	if errors.As(err, &czErr) {
		return czErr.Details
	}
	return nil
}
