package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the stable numeric result returned across the boundary.
//
// The set is closed: any integer outside of it is reserved and is read as
// CodeUnknown (see Normalize).
type Code int32

const (
	CodeSuccess          Code = 0  // Operation completed.
	CodeEntropyFailure   Code = 1  // The OS entropy source failed.
	CodeInvalidParameter Code = 2  // Null pointer or malformed input.
	CodeBufferTooSmall   Code = 3  // Caller-supplied output buffer is too small.
	CodeUnknown          Code = 99 // Unexpected internal condition.
)

// Normalize maps a raw integer onto the closed Code set.
func Normalize(raw int32) Code {
	switch c := Code(raw); c {
	case CodeSuccess, CodeEntropyFailure, CodeInvalidParameter, CodeBufferTooSmall, CodeUnknown:
		return c
	default:
		return CodeUnknown
	}
}

func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "SUCCESS"
	case CodeEntropyFailure:
		return "ENTROPY_FAILURE"
	case CodeInvalidParameter:
		return "INVALID_PARAMETER"
	case CodeBufferTooSmall:
		return "BUFFER_TOO_SMALL"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Retryable reports whether the failure is environmental and may succeed on a
// later attempt. Only entropy failures qualify.
func (c Code) Retryable() bool {
	return c == CodeEntropyFailure
}

// Error is a structured error used across the module.
//
// It can wrap an underlying error while also carrying a user-facing message
// and a stable code.
type Error struct {
	err  error
	msg  string
	code Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil && e.msg != "" {
		return e.msg + ": " + e.err.Error()
	}

	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	return describe(e.code)
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Code: %s(%d), Message: %s, Underlying Error: %v",
		e.code.String(),
		int32(e.code),
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing error message, falling back to the code description.
func (e *Error) Msg() string {
	if e.msg == "" {
		return describe(e.code)
	}
	return e.msg
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidParameter, CodeBufferTooSmall:
		return http.StatusBadRequest
	case CodeEntropyFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func describe(c Code) string {
	switch c {
	case CodeSuccess:
		return "Success"
	case CodeEntropyFailure:
		return "Failed to generate random data from entropy source"
	case CodeInvalidParameter:
		return "Invalid parameter"
	case CodeBufferTooSmall:
		return "Buffer too small for output"
	default:
		return "Unknown error"
	}
}

func new(err error, msg string, code Code) error {
	return &Error{err: err, msg: msg, code: code}
}

// NewEntropy wraps a failure of the entropy source.
func NewEntropy(err error) error {
	return new(err, "entropy source failure", CodeEntropyFailure)
}

// NewInvalidParameter creates a caller-contract violation with the given message.
func NewInvalidParameter(msg string) error {
	return new(nil, msg, CodeInvalidParameter)
}

// NewBufferTooSmall reports an output buffer of size got where need bytes are required.
func NewBufferTooSmall(need, got int) error {
	return new(nil, fmt.Sprintf("buffer too small: need %d bytes, got %d", need, got), CodeBufferTooSmall)
}

// NewUnknown wraps an unexpected internal condition.
func NewUnknown(err error) error {
	return new(err, "internal error", CodeUnknown)
}

// CodeOf projects any error onto the closed Code set. A nil error is
// CodeSuccess; an error without a *Error in its chain is CodeUnknown.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}

	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.code
	}

	return CodeUnknown
}
