// Package errors provides structured error types for the newick module.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the parser, the file collaborators and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Positional context (offset and a bounded input snippet) for parse failures
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - SYNTAX_ERROR: malformed descendant lists and unterminated comments
//   - INVALID_*: input validation failures (format, options, encodings)
//   - *_NOT_FOUND: missing resources
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.At(errors.ErrCodeSyntax, 12, "B,C)", "expected ',' or ')'")
//	if errors.Is(err, errors.ErrCodeSyntax) {
//	    // Handle malformed input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
//
// # Offsets
//
// [Error.Offset] and [Warning.Offset] count characters (runes), not bytes,
// because the parser works on decoded text. Convert with
// []rune(text)[:offset] before slicing the original string; on non-ASCII
// input a byte index would point elsewhere.
//
// # Warnings
//
// Conditions that are reported but do not abort an operation (for example
// text left over after a terminating ';') are represented by [Warning]
// values instead of errors.
package errors

import (
	"errors"
	"fmt"
)

// ContextWindow is the maximum number of characters of remaining input
// captured in [Error.Context].
const ContextWindow = 100

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Parse errors
	ErrCodeSyntax Code = "SYNTAX_ERROR"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidEncoding Code = "INVALID_ENCODING"
	ErrCodeInvalidOption   Code = "INVALID_OPTION"
	ErrCodeInvalidTree     Code = "INVALID_TREE"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code, optional input position and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Offset  int    // Rune offset into the input, -1 if not positional
	Context string // Bounded snippet of the input starting at Offset
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Offset >= 0 {
		if e.Context != "" {
			msg += fmt.Sprintf(" (offset %d, near %q)", e.Offset, e.Context)
		} else {
			msg += fmt.Sprintf(" (offset %d)", e.Offset)
		}
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
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
		Offset:  -1,
	}
}

// At creates a new positional Error. The context snippet is truncated to
// [ContextWindow] characters.
func At(code Code, offset int, context string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
		Context: Snippet([]rune(context), 0),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  -1,
		Cause:   cause,
	}
}

// Snippet returns at most [ContextWindow] runes of s starting at the rune
// offset.
func Snippet(s []rune, offset int) string {
	if offset >= len(s) {
		return ""
	}
	end := min(len(s), offset+ContextWindow)
	return string(s[offset:end])
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

// Warning describes a non-fatal condition found while reading input.
type Warning struct {
	Offset int    // Rune offset of the first unread character
	Unread int    // Number of characters left unread
	Text   string // Bounded snippet of the unread text
}

// String formats the warning for logs and terminal output.
func (w Warning) String() string {
	return fmt.Sprintf("%d chars unread from input: %q", w.Unread, w.Text)
}
