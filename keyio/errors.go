// Package keyio persists scheme.KeyMaterial as JSON. It deliberately never
// uses an eval-style deserializer for key restoration - only strict
// encoding/json against a fixed wire schema - and stamps every export with
// a blake2b checksum so a corrupted or hand-edited key file is rejected
// before it ever reaches a scheme operation.
package keyio

import "errors"

// Kind tags the distinct ways loading a key file can fail.
type Kind string

const (
	// KindMalformed marks JSON that doesn't parse into the wire schema.
	KindMalformed Kind = "malformed"
	// KindChecksumMismatch marks a key payload whose blake2b checksum
	// doesn't match what was recomputed on load.
	KindChecksumMismatch Kind = "checksum_mismatch"
	// KindInvalidInput marks a well-formed but semantically invalid field
	// (e.g. a non-hex integer).
	KindInvalidInput Kind = "invalid_input"
)

// Error is the error type returned by every keyio operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "keyio: " + e.Op + ": " + string(e.Kind) + ": " + e.Err.Error()
	}
	return "keyio: " + e.Op + ": " + string(e.Kind)
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
