// Package errors provides structured error types for blockgraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Structural problems with the input (duplicate block ids, self-loops) fail
// fast with a dedicated code. Cyclic prerequisite graphs are not errors: the
// relationship index reports them as data so a best-effort diagram can still
// be drawn.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeSelfLoop, "block %q cannot require itself", id)
//	if errors.Is(err, errors.ErrCodeSelfLoop) {
//	    // Handle rejected relationship
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Structural graph errors
	ErrCodeDuplicateID Code = "DUPLICATE_ID"
	ErrCodeSelfLoop    Code = "SELF_LOOP"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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
// It unwraps the error chain looking for an *Error with a matching code.
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
		return e.Message
	}
	return err.Error()
}

// As is a re-export of the standard library's errors.As so callers that
// import this package under the name errors keep access to it.
func As(err error, target any) bool { return errors.As(err, target) }

// DuplicateIDError lists every block id that appeared more than once in a
// single input batch.
type DuplicateIDError struct {
	IDs []string
}

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate block ids: %s", strings.Join(e.IDs, ", "))
}

// Code returns the error code for this error type.
func (e *DuplicateIDError) Code() Code {
	return ErrCodeDuplicateID
}

// DuplicateIDs reports the offending ids carried by err, if any.
func DuplicateIDs(err error) []string {
	var e *DuplicateIDError
	if errors.As(err, &e) {
		return e.IDs
	}
	return nil
}
