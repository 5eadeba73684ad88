package tensor

import (
	"math/big"

	"github.com/shieldphe/gophe/ciphertext"
	"github.com/shieldphe/gophe/fixedpoint"
	"github.com/shieldphe/gophe/prng"
	"github.com/shieldphe/gophe/scheme"
)

// Fraction is a single encrypted real number, encoded per §4.8 as a triple
// of ciphertexts plus a sign flag. Divisor (a plaintext scale, e.g.
// 10^precision) and Sign stay in the clear: encrypting them would reveal no
// further privacy once AbsDividend's ciphertext is already visible, and
// keeping them clear sidesteps the mod-m wraparound ambiguity a fully
// signed ciphertext encoding would carry for a DLP-bounded scheme.
//
// Two encrypted tracks ride in parallel. AbsDividend holds the non-negative
// magnitude, small enough for a DLP-bounded scheme's decrypt to recover
// regardless of how large the plaintext modulus is. Dividend holds the
// signed value wrapped modulo the scheme's plaintext modulus - the
// representation a ring's own addition already handles correctly for
// negative numbers. Sign·AbsDividend is the default decode path; once Add
// combines two opposite-signed fractions (§4.8 "T + U"), the elementwise
// sum of AbsDividend tracks stops meaning anything (3+(-5)'s magnitudes
// don't add to the answer's magnitude), so the result is flagged
// MixedSign and Decrypt instead reads Dividend's modular wraparound, which
// stays correct because addition in a ring self-corrects signed wraparound.
type Fraction struct {
	Sign        int8
	Dividend    ciphertext.Handle
	AbsDividend ciphertext.Handle
	Divisor     *big.Int
	MixedSign   bool
}

// EncodeFraction fractionizes value at the given precision and encrypts its
// magnitude under cap/km into AbsDividend, and its signed, modulo-wrapped
// value into Dividend, recording the sign itself separately.
func EncodeFraction(src *prng.Source, cap scheme.Capability, km scheme.KeyMaterial, value float64, precision int) (Fraction, error) {
	sign := int8(1)
	magnitude := value
	if value < 0 {
		sign = -1
		magnitude = -value
	}
	m := cap.PlaintextModulo(km)
	dividend, divisor, err := fixedpoint.Fractionize(magnitude, m, precision)
	if err != nil {
		return Fraction{}, err
	}

	absCt, err := cap.Encrypt(src, km, dividend)
	if err != nil {
		return Fraction{}, err
	}

	signedDividend := dividend
	if sign < 0 {
		signedDividend = new(big.Int).Mod(new(big.Int).Neg(dividend), m)
	}
	signedCt, err := cap.Encrypt(src, km, signedDividend)
	if err != nil {
		return Fraction{}, err
	}

	return Fraction{
		Sign:        sign,
		Dividend:    ciphertext.New(cap, km, signedCt),
		AbsDividend: ciphertext.New(cap, km, absCt),
		Divisor:     divisor,
	}, nil
}

// balancedDividend decrypts Dividend and folds the result back into a
// signed residue: a value past the plaintext modulus' midpoint denotes the
// wrapped negative that §4.8's "relies on modular wrap for correctness"
// note describes.
func (f Fraction) balancedDividend() (*big.Int, error) {
	raw, err := f.Dividend.Decrypt()
	if err != nil {
		return nil, err
	}
	cap, err := scheme.Get(f.Dividend.Scheme())
	if err != nil {
		return nil, err
	}
	m := cap.PlaintextModulo(f.Dividend.KeyMaterial())
	half := new(big.Int).Rsh(m, 1)
	if raw.Cmp(half) > 0 {
		raw = new(big.Int).Sub(raw, m)
	}
	return raw, nil
}

// Decrypt recovers the signed float value. A MixedSign fraction (the
// product of adding opposite-signed operands) decodes through Dividend's
// modular wraparound; every other fraction decodes through Sign·AbsDividend.
func (f Fraction) Decrypt() (float64, error) {
	var dividend *big.Int
	var err error
	signApplies := true
	if f.MixedSign {
		dividend, err = f.balancedDividend()
		signApplies = false
	} else {
		dividend, err = f.AbsDividend.Decrypt()
	}
	if err != nil {
		return 0, err
	}

	num := new(big.Float).SetInt(dividend)
	den := new(big.Float).SetInt(f.Divisor)
	q := new(big.Float).Quo(num, den)
	val, _ := q.Float64()
	if signApplies && f.Sign < 0 {
		val = -val
	}
	return val, nil
}

// Add returns a+b. Per §4.8 "T + U", Dividend and AbsDividend are both
// added elementwise; the sum's sign is −1 only when both operands are
// negative, otherwise +1. When the operands disagree in sign (or either was
// itself already a mixed-sign sum), the result is flagged MixedSign so
// Decrypt reads it back through Dividend's wraparound instead of
// Sign·AbsDividend.
func (f Fraction) Add(other Fraction) (Fraction, error) {
	if f.Divisor.Cmp(other.Divisor) != 0 {
		return Fraction{}, newError("add", KindDivisorMismatch, nil)
	}
	dividendSum, err := f.Dividend.Add(other.Dividend)
	if err != nil {
		return Fraction{}, err
	}
	absSum, err := f.AbsDividend.Add(other.AbsDividend)
	if err != nil {
		return Fraction{}, err
	}
	sign := int8(1)
	if f.Sign < 0 && other.Sign < 0 {
		sign = -1
	}
	return Fraction{
		Sign:        sign,
		Dividend:    dividendSum,
		AbsDividend: absSum,
		Divisor:     f.Divisor,
		MixedSign:   f.Sign != other.Sign || f.MixedSign || other.MixedSign,
	}, nil
}

// Mul returns f*other using the scheme's ciphertext-ciphertext multiply
// (RSA, ElGamal), scaling both magnitude and divisor and combining signs.
func (f Fraction) Mul(other Fraction) (Fraction, error) {
	product, err := f.AbsDividend.Mul(other.AbsDividend)
	if err != nil {
		return Fraction{}, err
	}
	dividendProduct, err := f.Dividend.Mul(other.Dividend)
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{
		Sign:        f.Sign * other.Sign,
		Dividend:    dividendProduct,
		AbsDividend: product,
		Divisor:     new(big.Int).Mul(f.Divisor, other.Divisor),
		MixedSign:   f.MixedSign || other.MixedSign,
	}, nil
}

// MulScalar scales f's magnitude by the plaintext integer k, flipping sign
// when k is negative.
func (f Fraction) MulScalar(src *prng.Source, k *big.Int) (Fraction, error) {
	sign := f.Sign
	kk := k
	if k.Sign() < 0 {
		sign = -sign
		kk = new(big.Int).Neg(k)
	}
	scaled, err := f.AbsDividend.MulScalar(src, kk)
	if err != nil {
		return Fraction{}, err
	}
	dividendScaled, err := f.Dividend.MulScalar(src, k)
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{
		Sign:        sign,
		Dividend:    dividendScaled,
		AbsDividend: scaled,
		Divisor:     f.Divisor,
		MixedSign:   f.MixedSign,
	}, nil
}
