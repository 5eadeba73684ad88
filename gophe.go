// Package gophe is a partially homomorphic encryption library: nine
// classical PHE cryptosystems (RSA, ElGamal, Exponential ElGamal,
// EllipticCurve-ElGamal, Paillier, Damgård-Jurik, Okamoto-Uchiyama,
// Benaloh, Naccache-Stern, Goldwasser-Micali) behind one scheme-agnostic
// Facade, plus an encrypted-tensor encoder for fixed-point vectors.
//
// A typical session:
//
//	f, err := gophe.New(scheme.Paillier, scheme.Options{KeySize: 1024})
//	c, err := f.Encrypt(42)
//	sum, err := c.(ciphertext.Handle).Add(other)
//	m, err := f.Decrypt(sum)
package gophe

// Reporter receives diagnostic messages a Facade emits: a Warnf when an
// integer input to Encrypt, or a scalar passed to a returned handle's
// MulScalar, is at or past the plaintext modulus and gets reduced modulo it.
// Nothing in the Facade calls Infof. A Facade built by New or RestoreKeys
// starts with a no-op Reporter, so callers who don't care about this never
// have to provide one.
type Reporter interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type noopReporter struct{}

func (noopReporter) Infof(string, ...interface{}) {}
func (noopReporter) Warnf(string, ...interface{}) {}
