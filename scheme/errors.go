package scheme

import "errors"

// Kind tags the distinct ways a scheme-level operation can fail - a
// closed set of string tags, not one Go type per failure, matching the
// "distinct tags, not type names" requirement.
type Kind string

const (
	// KindUnsupportedScheme marks an unknown scheme name.
	KindUnsupportedScheme Kind = "unsupported_scheme"
	// KindUnsupportedOperation marks a homomorphic op or re-encryption the
	// scheme's capability set does not include.
	KindUnsupportedOperation Kind = "unsupported_operation"
	// KindMissingKey marks an operation whose required public or private
	// key half is absent from the KeyMaterial.
	KindMissingKey Kind = "missing_key"
	// KindKeyGenFailure marks a probabilistic keygen loop exhausting
	// max_tries without producing a valid key set.
	KindKeyGenFailure Kind = "keygen_failure"
	// KindDecryptionFailure marks a DLP-bounded decryption (Benaloh,
	// Exponential ElGamal, EC-ElGamal, Naccache-Stern) that could not
	// recover a plaintext within its search bound.
	KindDecryptionFailure Kind = "decryption_failure"
	// KindInvalidInput marks a malformed argument.
	KindInvalidInput Kind = "invalid_input"
)

// Error is the error type returned by every scheme-level operation.
type Error struct {
	Kind   Kind
	Scheme Name
	Op     string
	Err    error
}

func (e *Error) Error() string {
	base := "scheme"
	if e.Scheme != "" {
		base += "(" + string(e.Scheme) + ")"
	}
	if e.Err != nil {
		return base + ": " + e.Op + ": " + string(e.Kind) + ": " + e.Err.Error()
	}
	return base + ": " + e.Op + ": " + string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(scheme Name, op string, kind Kind, err error) *Error {
	return &Error{Scheme: scheme, Op: op, Kind: kind, Err: err}
}

// Is reports whether err is a scheme *Error carrying the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
