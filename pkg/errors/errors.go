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

	// Generation errors
	ErrInvalidTag ErrorCode = "INVALID_TAG"

	// Markup errors
	ErrParse ErrorCode = "PARSE"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// I/O errors
	ErrFileRead ErrorCode = "FILE_READ"
	ErrRender   ErrorCode = "RENDER"
)

// MarkupError represents a structured error with code and details
type MarkupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MarkupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MarkupError) Unwrap() error {
	return e.Wrapped
}

// Is matches any error carrying the same code
func (e *MarkupError) Is(target error) bool {
	if coded, ok := target.(interface{ Code() ErrorCode }); ok {
		return e.Code == coded.Code()
	}
	var targetErr *MarkupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MarkupError with the given code and message
func New(code ErrorCode, message string) *MarkupError {
	return &MarkupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MarkupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MarkupError {
	return &MarkupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MarkupError
func Wrap(err error, code ErrorCode, message string) *MarkupError {
	if err == nil {
		return nil
	}
	return &MarkupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MarkupError {
	if err == nil {
		return nil
	}
	return &MarkupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MarkupError) WithDetail(key string, value interface{}) *MarkupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MarkupError) WithDetails(details map[string]interface{}) *MarkupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// GetErrorCode returns the error code from an error, or ErrUnknown if it carries none
func GetErrorCode(err error) ErrorCode {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return markupErr.Code
	}
	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr.Code()
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MarkupError
func GetErrorDetails(err error) map[string]interface{} {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return markupErr.Details
	}
	return nil
}
