package gophe

import "errors"

// Kind tags the distinct ways a Facade-level operation can fail.
type Kind string

const (
	// KindUnsupportedInput marks a value Encrypt/Decrypt doesn't know how
	// to route - not an int, float64, *big.Int, []float64, or a value
	// previously produced by this package.
	KindUnsupportedInput Kind = "unsupported_input"
	// KindUnsupportedScheme marks an unrecognised scheme.Name passed to New.
	KindUnsupportedScheme Kind = "unsupported_scheme"
)

// Error is the error type returned by Facade-level operations that fail
// before ever reaching a scheme, ciphertext, or tensor operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "gophe: " + e.Op + ": " + string(e.Kind) + ": " + e.Err.Error()
	}
	return "gophe: " + e.Op + ": " + string(e.Kind)
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
