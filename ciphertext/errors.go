// Package ciphertext wraps a scheme.Ciphertext together with the scheme
// capability and key material needed to keep operating on it, so callers
// never thread a scheme name and keys through every call (Design Note
// "Operator overloading").
package ciphertext

import "errors"

// Kind tags the distinct ways a handle-level operation can fail.
type Kind string

const (
	// KindUnsupportedOperation marks an operator the underlying scheme's
	// capability set does not implement.
	KindUnsupportedOperation Kind = "unsupported_operation"
	// KindSchemeMismatch marks an operation between two handles built from
	// different schemes or incompatible key material.
	KindSchemeMismatch Kind = "scheme_mismatch"
)

// Error is the error type returned by every handle-level operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "ciphertext: " + e.Op + ": " + string(e.Kind) + ": " + e.Err.Error()
	}
	return "ciphertext: " + e.Op + ": " + string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Is reports whether err is a *Error carrying the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
