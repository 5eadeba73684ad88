package gophe

import (
	"math/big"

	"github.com/shieldphe/gophe/ciphertext"
	"github.com/shieldphe/gophe/fixedpoint"
	"github.com/shieldphe/gophe/keyio"
	"github.com/shieldphe/gophe/prng"
	"github.com/shieldphe/gophe/scheme"
	"github.com/shieldphe/gophe/tensor"
)

// Facade is the single entry point a caller needs: pick a scheme, generate
// (or restore) a key pair, then Encrypt/Decrypt/RegenerateCiphertext without
// ever naming the underlying scheme.Capability again. What Encrypt returns
// and Decrypt accepts is deliberately a dynamically-typed interface{} - an
// int/int64/*big.Int plaintext becomes a ciphertext.Handle, a float64
// becomes a tensor.Fraction, and a []float64 becomes a tensor.EncryptedTensor
// (Design Note "Dynamic typing of plaintext/ciphertext").
type Facade struct {
	name      scheme.Name
	cap       scheme.Capability
	km        scheme.KeyMaterial
	src       *prng.Source
	precision int
	log       Reporter
}

// New generates a fresh key pair for the named scheme and returns a ready
// Facade.
func New(name scheme.Name, opts scheme.Options) (*Facade, error) {
	cap, err := scheme.Get(name)
	if err != nil {
		return nil, newError("new", KindUnsupportedScheme, err)
	}
	src, err := prng.New()
	if err != nil {
		return nil, newError("new", KindUnsupportedInput, err)
	}
	km, err := cap.KeyGen(src, opts)
	if err != nil {
		return nil, err
	}
	precision := opts.Precision
	if precision == 0 {
		precision = fixedpoint.DefaultPrecision
	}
	return &Facade{name: name, cap: cap, km: km, src: src, precision: precision, log: noopReporter{}}, nil
}

// RestoreKeys rebuilds a Facade from a document produced by (*Facade).ExportKeys.
func RestoreKeys(data []byte) (*Facade, error) {
	name, km, err := keyio.RestoreKeys(data)
	if err != nil {
		return nil, err
	}
	cap, err := scheme.Get(name)
	if err != nil {
		return nil, err
	}
	src, err := prng.New()
	if err != nil {
		return nil, newError("restore_keys", KindUnsupportedInput, err)
	}
	return &Facade{name: name, cap: cap, km: km, src: src, precision: fixedpoint.DefaultPrecision, log: noopReporter{}}, nil
}

// SetReporter installs r as the Facade's diagnostic sink. A nil r is ignored.
func (f *Facade) SetReporter(r Reporter) {
	if r != nil {
		f.log = r
	}
}

// Scheme reports which PHE variant this Facade was constructed with.
func (f *Facade) Scheme() scheme.Name { return f.name }

// PublicOnly returns a Facade carrying only f's public key, suitable for
// handing to a party that should be able to encrypt and homomorphically
// combine ciphertexts but never decrypt them.
func (f *Facade) PublicOnly() *Facade {
	return &Facade{name: f.name, cap: f.cap, km: f.km.PublicOnly(), src: f.src, precision: f.precision, log: f.log}
}

// ExportKeys serializes this Facade's key material (see keyio.ExportKeys).
func (f *Facade) ExportKeys() ([]byte, error) {
	return keyio.ExportKeys(f.name, f.km)
}

// Encrypt routes x to the representation that can carry its homomorphism:
// int/int64/*big.Int to a single ciphertext.Handle, float64 to a
// tensor.Fraction (which keeps sign and precision alongside the encrypted
// magnitude), and []float64 to a tensor.EncryptedTensor. Anything else fails
// with KindUnsupportedInput.
func (f *Facade) Encrypt(x interface{}) (interface{}, error) {
	switch v := x.(type) {
	case []float64:
		t, err := tensor.Encode(f.src, f.cap, f.km, v, f.precision)
		if err != nil {
			return nil, err
		}
		return t, nil
	case float64:
		frac, err := tensor.EncodeFraction(f.src, f.cap, f.km, v, f.precision)
		if err != nil {
			return nil, err
		}
		return frac, nil
	case int, int64, *big.Int:
		m := f.cap.PlaintextModulo(f.km)
		norm, err := fixedpoint.NormalizeInput(v, m, f.precision)
		if err != nil {
			return nil, err
		}
		if exceedsPlaintextModulo(v, m) {
			f.log.Warnf("encrypt: input %v exceeds plaintext modulus %s, reducing modulo it", v, m.String())
		}
		ct, err := f.cap.Encrypt(f.src, f.km, norm)
		if err != nil {
			return nil, err
		}
		return ciphertext.NewWithReporter(f.cap, f.km, ct, f.log), nil
	default:
		return nil, newError("encrypt", KindUnsupportedInput, nil)
	}
}

// Decrypt is Encrypt's inverse: it accepts whatever Encrypt returned (a
// ciphertext.Handle, tensor.Fraction, or tensor.EncryptedTensor) and returns
// the plaintext in the matching Go type (*big.Int, float64, or []float64).
func (f *Facade) Decrypt(c interface{}) (interface{}, error) {
	switch v := c.(type) {
	case ciphertext.Handle:
		return v.Decrypt()
	case tensor.Fraction:
		return v.Decrypt()
	case tensor.EncryptedTensor:
		return v.Decrypt()
	default:
		return nil, newError("decrypt", KindUnsupportedInput, nil)
	}
}

// RegenerateCiphertext returns a fresh, independently-randomised re-encryption
// of c's plaintext, recursing into a tensor.Fraction's or
// tensor.EncryptedTensor's element handles as needed.
func (f *Facade) RegenerateCiphertext(c interface{}) (interface{}, error) {
	switch v := c.(type) {
	case ciphertext.Handle:
		return v.Regenerate(f.src)
	case tensor.Fraction:
		return regenerateFraction(f.src, v)
	case tensor.EncryptedTensor:
		out := make([]tensor.Fraction, len(v.Elements))
		for i, el := range v.Elements {
			regen, err := regenerateFraction(f.src, el)
			if err != nil {
				return nil, err
			}
			out[i] = regen
		}
		return tensor.EncryptedTensor{Cap: v.Cap, KM: v.KM, Elements: out}, nil
	default:
		return nil, newError("regenerate_ciphertext", KindUnsupportedInput, nil)
	}
}

// CreateCiphertextObj wraps a raw scheme.Ciphertext (e.g. one recovered from
// a serialized wire form) as a ciphertext.Handle under this Facade's current
// scheme and key material.
func (f *Facade) CreateCiphertextObj(raw scheme.Ciphertext) ciphertext.Handle {
	return ciphertext.NewWithReporter(f.cap, f.km, raw, f.log)
}

// regenerateFraction re-randomises both of a Fraction's ciphertext tracks
// (Dividend and AbsDividend), preserving Sign, Divisor and MixedSign.
func regenerateFraction(src *prng.Source, f tensor.Fraction) (tensor.Fraction, error) {
	dividend, err := f.Dividend.Regenerate(src)
	if err != nil {
		return tensor.Fraction{}, err
	}
	abs, err := f.AbsDividend.Regenerate(src)
	if err != nil {
		return tensor.Fraction{}, err
	}
	return tensor.Fraction{
		Sign:        f.Sign,
		Dividend:    dividend,
		AbsDividend: abs,
		Divisor:     f.Divisor,
		MixedSign:   f.MixedSign,
	}, nil
}

// exceedsPlaintextModulo reports whether v's magnitude is at least m, the
// condition under which Encrypt reduces the input and emits a warning.
func exceedsPlaintextModulo(v interface{}, m *big.Int) bool {
	var raw *big.Int
	switch x := v.(type) {
	case int:
		raw = big.NewInt(int64(x))
	case int64:
		raw = big.NewInt(x)
	case *big.Int:
		raw = x
	default:
		return false
	}
	if m == nil || m.Sign() <= 0 {
		return false
	}
	return new(big.Int).Abs(raw).Cmp(m) >= 0
}
