package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeTransform represents errors produced by a transformation
	// rejecting its input (malformed base64, invalid JSON, bad color, ...)
	ErrorTypeTransform ErrorType = "transform"
	// ErrorTypeInput represents caller-side input errors (oversized payload,
	// missing required argument)
	ErrorTypeInput ErrorType = "input"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// NewTransformError reports a transformation rejecting its input. The message
// is descriptive and safe to surface directly to the user.
func NewTransformError(message string) *BaseError {
	return NewBaseError(ErrorTypeTransform, message, nil)
}

// NewTransformErrorf is NewTransformError with formatting.
func NewTransformErrorf(format string, args ...any) *BaseError {
	return NewBaseError(ErrorTypeTransform, fmt.Sprintf(format, args...), nil)
}

// ErrInputTooLarge is returned when a caller submits input above the
// configured size cap
type ErrInputTooLarge struct {
	*BaseError
	Size  int
	Limit int
}

func NewInputTooLarge(size, limit int) *ErrInputTooLarge {
	return &ErrInputTooLarge{
		BaseError: NewBaseError(ErrorTypeInput, fmt.Sprintf("input is %d characters, limit is %d", size, limit), nil),
		Size:      size,
		Limit:     limit,
	}
}

// ErrMissingInput is returned when a non-generator tool is invoked with no input
var ErrMissingInput = NewBaseError(ErrorTypeInput, "no input provided", nil)

// typedError is satisfied by BaseError and, through embedding, by every
// error built on top of it.
type typedError interface {
	errorType() ErrorType
}

func (e *BaseError) errorType() ErrorType {
	return e.Type
}

// IsErrorType checks if an error is of a specific type, unwrapping as needed
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		if te, ok := err.(typedError); ok {
			return te.errorType() == errType
		}
		wrapped, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = wrapped.Unwrap()
	}
	return false
}
