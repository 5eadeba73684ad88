package ciphertext

import (
	"math/big"

	"github.com/shieldphe/gophe/prng"
	"github.com/shieldphe/gophe/scheme"
)

// Reporter is the diagnostic sink a Handle emits range-reduction warnings
// to (§4.8, §4.9: "reduced with a diagnostic emission"). It is satisfied
// structurally by gophe.Reporter, which also has an Infof method; only
// Warnf is needed here, so this package does not import gophe.
type Reporter interface {
	Warnf(format string, args ...interface{})
}

type noopReporter struct{}

func (noopReporter) Warnf(string, ...interface{}) {}

// Handle is an opaque, scheme-agnostic ciphertext: the raw scheme.Ciphertext
// plus the capability record and key material required to keep computing on
// it. Callers reach homomorphic operators as methods on the handle itself
// rather than through a separate evaluator object.
type Handle struct {
	cap scheme.Capability
	km  scheme.KeyMaterial
	ct  scheme.Ciphertext
	log Reporter
}

// New wraps a raw ciphertext produced by cap.Encrypt under the same
// capability and key material, so it can keep being operated on. Diagnostics
// are discarded; use NewWithReporter to route them somewhere.
func New(cap scheme.Capability, km scheme.KeyMaterial, ct scheme.Ciphertext) Handle {
	return Handle{cap: cap, km: km, ct: ct, log: noopReporter{}}
}

// NewWithReporter is New, but routes range-reduction warnings to r instead
// of discarding them.
func NewWithReporter(cap scheme.Capability, km scheme.KeyMaterial, ct scheme.Ciphertext, r Reporter) Handle {
	if r == nil {
		r = noopReporter{}
	}
	return Handle{cap: cap, km: km, ct: ct, log: r}
}

func (h Handle) reporter() Reporter {
	if h.log == nil {
		return noopReporter{}
	}
	return h.log
}

// Scheme reports which PHE variant produced this handle.
func (h Handle) Scheme() scheme.Name { return h.cap.Name }

// Raw exposes the underlying scheme.Ciphertext, e.g. for serialisation.
func (h Handle) Raw() scheme.Ciphertext { return h.ct }

// KeyMaterial returns the key material this handle was built with.
func (h Handle) KeyMaterial() scheme.KeyMaterial { return h.km }

func (h Handle) sameScheme(other Handle) error {
	if h.cap.Name != other.cap.Name {
		return newError("operator", KindSchemeMismatch, nil)
	}
	return nil
}

// Add returns a new handle holding h+other, failing KindUnsupportedOperation
// if the scheme has no additive homomorphism.
func (h Handle) Add(other Handle) (Handle, error) {
	if err := h.sameScheme(other); err != nil {
		return Handle{}, err
	}
	if h.cap.Add == nil {
		return Handle{}, newError(string(scheme.OpAdd), KindUnsupportedOperation, nil)
	}
	ct, err := h.cap.Add(h.km, h.ct, other.ct)
	if err != nil {
		return Handle{}, err
	}
	return Handle{cap: h.cap, km: h.km, ct: ct, log: h.reporter()}, nil
}

// Mul returns a new handle holding h*other, failing KindUnsupportedOperation
// if the scheme has no multiplicative homomorphism.
func (h Handle) Mul(other Handle) (Handle, error) {
	if err := h.sameScheme(other); err != nil {
		return Handle{}, err
	}
	if h.cap.Multiply == nil {
		return Handle{}, newError(string(scheme.OpMultiply), KindUnsupportedOperation, nil)
	}
	ct, err := h.cap.Multiply(h.km, h.ct, other.ct)
	if err != nil {
		return Handle{}, err
	}
	return Handle{cap: h.cap, km: h.km, ct: ct, log: h.reporter()}, nil
}

// MulScalar returns a new handle holding h scaled by the plaintext k. A
// scalar outside [0, PlaintextModulo) is reduced modulo it before scaling,
// with a diagnostic emitted through the handle's Reporter (§4.9).
func (h Handle) MulScalar(src *prng.Source, k *big.Int) (Handle, error) {
	if h.cap.MultiplyScalar == nil {
		return Handle{}, newError(string(scheme.OpScalarMultiply), KindUnsupportedOperation, nil)
	}
	if m := h.cap.PlaintextModulo(h.km); m != nil && m.Sign() > 0 {
		if new(big.Int).Abs(k).Cmp(m) >= 0 {
			h.reporter().Warnf("scalar_multiply: scalar %s exceeds plaintext modulus %s, reducing modulo it", k.String(), m.String())
		}
	}
	ct, err := h.cap.MultiplyScalar(src, h.km, h.ct, k)
	if err != nil {
		return Handle{}, err
	}
	return Handle{cap: h.cap, km: h.km, ct: ct, log: h.reporter()}, nil
}

// Xor returns a new handle holding the bitwise XOR of h and other, failing
// KindUnsupportedOperation outside Goldwasser-Micali. A differing-length
// pair is zero-padded by the scheme's Xor implementation, which needs src
// to mint the padding ciphertexts.
func (h Handle) Xor(src *prng.Source, other Handle) (Handle, error) {
	if err := h.sameScheme(other); err != nil {
		return Handle{}, err
	}
	if h.cap.Xor == nil {
		return Handle{}, newError(string(scheme.OpXor), KindUnsupportedOperation, nil)
	}
	ct, err := h.cap.Xor(src, h.km, h.ct, other.ct)
	if err != nil {
		return Handle{}, err
	}
	return Handle{cap: h.cap, km: h.km, ct: ct, log: h.reporter()}, nil
}

// Regenerate returns a fresh, independently-randomised encryption of the
// same plaintext (§4.6 "re-encryption"), failing KindUnsupportedOperation
// for deterministic schemes that define no such operator.
func (h Handle) Regenerate(src *prng.Source) (Handle, error) {
	if h.cap.ReEncrypt == nil {
		return Handle{}, newError(string(scheme.OpReEncrypt), KindUnsupportedOperation, nil)
	}
	ct, err := h.cap.ReEncrypt(src, h.km, h.ct)
	if err != nil {
		return Handle{}, err
	}
	return Handle{cap: h.cap, km: h.km, ct: ct, log: h.reporter()}, nil
}

// Decrypt recovers the plaintext, failing with scheme.KindMissingKey if this
// handle carries no private key.
func (h Handle) Decrypt() (*big.Int, error) {
	return h.cap.Decrypt(h.km, h.ct)
}
