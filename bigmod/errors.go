package bigmod

import "errors"

// Kind tags the distinct ways a bigmod operation can fail. These are plain
// string tags rather than one Go type per failure, per the error-kind design
// used throughout gophe.
type Kind string

const (
	// KindNotInvertible marks mod_inv failing because gcd(a, m) != 1.
	KindNotInvertible Kind = "not_invertible"
	// KindNoPrimeFound marks random_prime exhausting its search budget.
	KindNoPrimeFound Kind = "no_prime_found"
	// KindInvalidInput marks a malformed argument (non-positive modulus, etc).
	KindInvalidInput Kind = "invalid_input"
)

// Error is the error type returned by every bigmod operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "bigmod: " + e.Op + ": " + string(e.Kind) + ": " + e.Err.Error()
	}
	return "bigmod: " + e.Op + ": " + string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Is reports whether err is a bigmod *Error carrying the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
