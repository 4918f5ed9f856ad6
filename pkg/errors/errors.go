// Package errors provides structured error types for routeperm.
//
// Every failure the route pipeline can produce is fatal for the run, but
// callers still need to tell them apart: a CLI prints a message and exits,
// a host application may catch the error and report it instead. Codes make
// that distinction machine-readable.
//
// # Error Codes
//
//   - LOOKUP_ERROR: an identifier has no entry in the lookup table
//   - PARSE_ERROR: a coordinate or record could not be decoded
//   - INVALID_*: input validation failures (permutation size, unit, path)
//   - FILE_NOT_FOUND, IO_ERROR: boundary I/O failures
//   - INTERNAL_ERROR: a broken invariant
//
// # Usage
//
//	err := errors.New(errors.ErrCodeLookup, "no location %q", id)
//	if errors.Is(err, errors.ErrCodeLookup) {
//	    // handle missing identifier
//	}
//
//	err := errors.Wrap(errors.ErrCodeParse, origErr, "latitude of record %d", i)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidUnit  Code = "INVALID_UNIT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// Data errors
	ErrCodeLookup Code = "LOOKUP_ERROR"
	ErrCodeParse  Code = "PARSE_ERROR"

	// Boundary I/O errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeIO           Code = "IO_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// The outermost *Error wins.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed by
// the cause when there is one. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
