// Package errors provides coded, user-facing errors for the CLI and
// build pipeline. Each code carries a category, a message, and where
// useful a suggestion, so a failed build tells the user what to do
// next rather than dumping a bare Go error.
package errors

import (
	"fmt"
	"strings"
)

// Category groups error codes by the subsystem that raised them.
type Category string

const (
	CategoryConfig    Category = "config"
	CategoryBuild     Category = "build"
	CategoryTranspile Category = "transpile"
	CategoryRender    Category = "render"
	CategoryLive      Category = "live"
	CategoryCLI       Category = "cli"
)

// Error is a structured error with a stable code and an optional
// suggestion for fixing it.
type Error struct {
	// Code is the stable identifier, e.g. "V102".
	Code string

	// Category is the subsystem that raised the error.
	Category Category

	// Message is the short description.
	Message string

	// Detail is a longer explanation, often the underlying tool output.
	Detail string

	// Suggestion hints at a fix.
	Suggestion string

	// Wrapped is the underlying error.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap supports errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Wrapped }

// WithDetail attaches a longer explanation.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithSuggestion attaches a fix hint.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap attaches the underlying error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// Format renders the error for terminal display.
func (e *Error) Format() string {
	var b strings.Builder
	b.WriteString("error")
	if e.Code != "" {
		b.WriteString(" " + e.Code)
	}
	b.WriteString(": " + e.Message + "\n")
	if e.Detail != "" {
		b.WriteString("\n  " + strings.ReplaceAll(strings.TrimSpace(e.Detail), "\n", "\n  ") + "\n")
	}
	if e.Wrapped != nil {
		b.WriteString("\n  cause: " + e.Wrapped.Error() + "\n")
	}
	if e.Suggestion != "" {
		b.WriteString("\n  hint: " + e.Suggestion + "\n")
	}
	return b.String()
}

// New creates an Error from a registered code. Unregistered codes
// still produce a usable error so callers never panic on a typo.
func New(code string) *Error {
	t, ok := registry[code]
	if !ok {
		return &Error{Code: code, Message: "unknown error"}
	}
	return &Error{
		Code:       code,
		Category:   t.Category,
		Message:    t.Message,
		Suggestion: t.Suggestion,
	}
}

// Newf creates an uncoded Error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{Category: category, Message: fmt.Sprintf(format, args...)}
}

// FromError wraps a plain error under a code, passing through values
// that already are coded errors.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*Error); ok {
		return ve
	}
	return New(code).Wrap(err)
}
