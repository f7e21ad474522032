// Package apperr defines the error kinds every data operation can surface:
// validation failures, missing rows, and store constraint violations.
// Controllers map these to HTTP statuses via response.FromError; nothing
// here is fatal to the process.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an operational error.
type Kind int

const (
	// KindValidation: a create/update was rejected before reaching the
	// store: missing field, bad enum value, or an unresolved reference.
	KindValidation Kind = iota + 1
	// KindNotFound: an update/delete matched no row.
	KindNotFound
	// KindConstraint: the store itself rejected the statement (foreign
	// key or uniqueness violation).
	KindConstraint
)

// Error carries a kind, a user-facing message, and optionally a
// field → message map for validation failures plus the wrapped cause.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a KindValidation error with a plain message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// ValidationFields builds a KindValidation error carrying per-field messages.
func ValidationFields(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Msg: "validation failed", Fields: fields}
}

// NotFound builds a KindNotFound error for the named resource and id.
func NotFound(resource string, id uint) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s %d not found", resource, id)}
}

// Constraint wraps a store constraint violation.
func Constraint(msg string, err error) *Error {
	return &Error{Kind: KindConstraint, Msg: msg, Err: err}
}

// kindOf extracts the Kind from err, or 0 when err is not an *Error.
func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool { return kindOf(err) == KindValidation }

// IsNotFound reports whether err is (or wraps) a not-found error.
func IsNotFound(err error) bool { return kindOf(err) == KindNotFound }

// IsConstraint reports whether err is (or wraps) a constraint error.
func IsConstraint(err error) bool { return kindOf(err) == KindConstraint }

// FieldsOf returns the field-error map when err carries one, else nil.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
