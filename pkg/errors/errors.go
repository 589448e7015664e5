// Package errors provides the coded errors shared by the CLI and the HTTP
// API.
//
// Solver outcomes such as inconsistent or underdetermined unknowns are not
// errors; they are reported in solver.Solution. Errors cover malformed input
// and failures of the surrounding tooling.
//
// # Error Codes
//
// Codes are grouped by prefix: INVALID_* for input the caller must fix,
// *_NOT_FOUND for missing resources and INTERNAL_ERROR for the rest. Each
// code maps to an HTTP status through [Code.Status].
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLayout, "duplicate item name: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidLayout) {
//	    // the layout document needs fixing
//	}
//
// Details carry structured context to API clients:
//
//	err := errors.Wrap(errors.ErrCodeSyntax, cause, "invalid constraint").
//	    WithDetail("line", 3).
//	    WithDetail("column", 7)
package errors

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeSyntax        Code = "INVALID_SYNTAX"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidSize   Code = "INVALID_SIZE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Status is the HTTP status the API answers with for c. Unknown codes are
// internal errors.
func (c Code) Status() int {
	switch c {
	case ErrCodeInvalidInput, ErrCodeSyntax, ErrCodeInvalidLayout,
		ErrCodeInvalidFormat, ErrCodeInvalidSize, ErrCodeInvalidPath:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

// Error is an error with a code, a message for users and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Details map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// WithDetail returns a copy of e with key set to v.
func (e *Error) WithDetail(key string, v any) *Error {
	out := *e
	out.Details = maps.Clone(e.Details)
	if out.Details == nil {
		out.Details = make(map[string]any, 1)
	}
	out.Details[key] = v
	return &out
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Details returns the details of the outermost *Error in err's chain.
func Details(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// UserMessage is the text shown to users: the message and its cause
// without the code prefix.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + UserMessage(e.Cause)
	}
	return e.Message
}

// HTTPStatus maps err to a response status. Errors without a code are
// internal errors.
func HTTPStatus(err error) int {
	return GetCode(err).Status()
}
