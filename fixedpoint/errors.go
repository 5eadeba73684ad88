package fixedpoint

import "errors"

// Kind tags the distinct ways a fixedpoint operation can fail.
type Kind string

const (
	// KindUnsupportedInput marks a negative float, the one documented
	// normalize_input limitation (spec Open Question (c)).
	KindUnsupportedInput Kind = "unsupported_input"
	KindInvalidInput     Kind = "invalid_input"
)

// Error is the error type returned by every fixedpoint operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "fixedpoint: " + e.Op + ": " + string(e.Kind) + ": " + e.Err.Error()
	}
	return "fixedpoint: " + e.Op + ": " + string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Is reports whether err is a fixedpoint *Error carrying the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
