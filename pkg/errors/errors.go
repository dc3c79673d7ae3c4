package errors

import (
	"errors"
	"fmt"
)

// Failure kinds. Every kind ends up as the same "no images found" placeholder
// for the user; the distinction only feeds logs and metrics.
var (
	ErrTransport    = errors.New("transport failure")
	ErrDecode       = errors.New("malformed response body")
	ErrUpstream     = errors.New("upstream rejected request")
	ErrInvalidRange = errors.New("invalid date range")
	ErrRateLimited  = errors.New("rate limited")
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Kind returns a short label for the failure kind of err, suitable for log
// fields and metric labels.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	default:
		return "unknown"
	}
}
