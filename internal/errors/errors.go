// Package errors provides coded error types for the ASCII conversion pipeline.
//
// Every failure the core can produce carries a machine-readable Code so the
// transports (HTTP, MCP, CLI) can log and test the failure kind even when
// they present a single generic message to the user.
//
// # Error Codes
//
//   - INVALID_DIMENSIONS: rows or cols is not a positive integer
//   - DECODE_ERROR: the payload is not a decodable image
//   - RESIZE_ERROR: the resize/grayscale pipeline produced a buffer of the
//     wrong length
//   - INVALID_RLE: run-length text could not be parsed or decoded
//   - INVALID_REQUEST: the transport could not parse the request envelope
//   - INTERNAL_ERROR: anything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDimensions, "rows must be positive, got %d", rows)
//	if errors.Is(err, errors.ErrCodeInvalidDimensions) {
//	    // reject the request
//	}
//
//	err := errors.Wrap(errors.ErrCodeDecode, cause, "failed to decode image")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the conversion pipeline and its transports.
const (
	// Core pipeline errors
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeDecode            Code = "DECODE_ERROR"
	ErrCodeResize            Code = "RESIZE_ERROR"
	ErrCodeInvalidRLE        Code = "INVALID_RLE"

	// Transport errors
	ErrCodeInvalidRequest Code = "INVALID_REQUEST"
	ErrCodeInternal       Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Errors without a code report ErrCodeInternal; a nil error reports "".
func GetCode(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// UserMessage returns the message of a coded error without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
