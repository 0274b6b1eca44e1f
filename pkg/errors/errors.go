// Package errors provides structured error types for histoscene.
//
// Every failure the engine reports carries a machine-readable [Code] so that
// hosts (CLI, HTTP server) can tell a malformed payload from a well-formed
// but invalid chart, and both from a layout that does not fit its canvas.
//
// # Error Codes
//
//   - INVALID_FORMAT: input text does not match the chart spec shape or types
//   - INVALID_SPEC: the spec decoded fine but violates an invariant
//   - INVALID_LAYOUT: padding insets leave no positive plot area
//   - INVALID_INPUT: bad render options (unknown format, tick mode, ...)
//   - NOT_FOUND: unknown demo dataset or resource
//   - INTERNAL_ERROR: unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSpec, "series %q has %d values", name, n)
//	if errors.Is(err, errors.ErrCodeInvalidSpec) {
//	    // report a validation failure
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, jsonErr, "decode chart spec")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidSpec   Code = "INVALID_SPEC"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// Only the outermost *Error in the chain is consulted, so a wrapped
// validation error re-coded by a caller reports the caller's code.
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// IsUserError reports whether err was caused by caller input rather than by
// the engine itself. Hosts use it to pick between "fix your input" and
// "something broke" presentations.
func IsUserError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidSpec,
		ErrCodeInvalidLayout, ErrCodeNotFound:
		return true
	}
	return false
}
