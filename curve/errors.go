package curve

import "errors"

// Kind tags the distinct ways a curve operation can fail.
type Kind string

const (
	// KindUnsupportedForm marks an unknown curve form name.
	KindUnsupportedForm Kind = "unsupported_form"
	// KindUnsupportedCurve marks an unknown (form, name) catalogue entry.
	KindUnsupportedCurve Kind = "unsupported_curve"
	// KindPointNotOnCurve is an internal assertion failure: it should never
	// be raised on valid inputs, and exists purely as a bug-catcher.
	KindPointNotOnCurve Kind = "point_not_on_curve"
)

// Error is the error type returned by every curve operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "curve: " + e.Op + ": " + string(e.Kind) + ": " + e.Err.Error()
	}
	return "curve: " + e.Op + ": " + string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Is reports whether err is a curve *Error carrying the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
