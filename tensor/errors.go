// Package tensor encodes real-valued vectors into homomorphically
// operable ciphertexts. It layers a signed, divisor-scaled fixed-point
// representation (Fraction) on top of the unsigned plaintext group
// fixedpoint/scheme already speak, tracking sign and scale in the clear so
// EncryptedTensor arithmetic stays meaningful under a single scheme's
// homomorphism without leaking the encrypted magnitude.
package tensor

import "errors"

// Kind tags the distinct ways a tensor-level operation can fail.
type Kind string

const (
	// KindDivisorMismatch marks an elementwise op between fractions encoded
	// at different precisions (different Divisor).
	KindDivisorMismatch Kind = "divisor_mismatch"
	// KindLengthMismatch marks an elementwise or dot-product op between
	// tensors/weight lists of different length.
	KindLengthMismatch Kind = "length_mismatch"
)

// Error is the error type returned by every tensor-level operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "tensor: " + e.Op + ": " + string(e.Kind) + ": " + e.Err.Error()
	}
	return "tensor: " + e.Op + ": " + string(e.Kind)
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
