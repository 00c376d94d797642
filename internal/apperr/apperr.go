// Package apperr provides typed domain errors. Core services return these and
// callers branch on Kind instead of string-matching messages.
package apperr

import (
	"errors"
	"fmt"
)

// Kind categorizes an error.
type Kind int

const (
	// KindUnknown is the default when none is specified.
	KindUnknown Kind = iota
	// KindNotFound indicates a referenced record does not exist.
	KindNotFound
	// KindConfiguration indicates a requested category or setting has no
	// registered definition. Fails fast, never silently ignored.
	KindConfiguration
	// KindValidation indicates malformed caller input.
	KindValidation
	// KindStorage indicates the persistence layer failed or is unreachable.
	KindStorage
	// KindInternal indicates an unexpected internal failure.
	KindInternal
)

// Error is a domain error with a typed Kind.
type Error struct {
	Kind    Kind
	Message string
	Op      string // operation that failed (optional)
	Err     error  // underlying error (optional)
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap supports errors.Is/As on the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error wrapping an underlying one.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp sets the operation name and returns the error.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// NotFound creates a not-found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Configuration creates a configuration error.
func Configuration(message string) *Error {
	return New(KindConfiguration, message)
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Storage creates a storage error wrapping the driver failure.
func Storage(message string, err error) *Error {
	return Wrap(KindStorage, message, err)
}

// KindOf extracts the Kind from err, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
