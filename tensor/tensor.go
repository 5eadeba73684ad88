package tensor

import (
	"math/big"

	"github.com/shieldphe/gophe/prng"
	"github.com/shieldphe/gophe/scheme"
	"golang.org/x/exp/slices"
)

// EncryptedTensor is a fixed-length vector of encrypted fractions sharing a
// scheme and key material, the unit TensorEncoder operations act on.
type EncryptedTensor struct {
	Cap      scheme.Capability
	KM       scheme.KeyMaterial
	Elements []Fraction
}

// Encode builds an EncryptedTensor by encoding each value independently at
// the given precision.
func Encode(src *prng.Source, cap scheme.Capability, km scheme.KeyMaterial, values []float64, precision int) (EncryptedTensor, error) {
	elements := make([]Fraction, 0, len(values))
	for _, v := range values {
		f, err := EncodeFraction(src, cap, km, v, precision)
		if err != nil {
			return EncryptedTensor{}, err
		}
		elements = append(elements, f)
	}
	return EncryptedTensor{Cap: cap, KM: km, Elements: elements}, nil
}

// Decrypt decrypts every element back to a float64 slice, in order.
func (t EncryptedTensor) Decrypt() ([]float64, error) {
	out := make([]float64, len(t.Elements))
	for i, f := range t.Elements {
		v, err := f.Decrypt()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Add returns the elementwise sum of t and other.
func (t EncryptedTensor) Add(other EncryptedTensor) (EncryptedTensor, error) {
	if len(t.Elements) != len(other.Elements) {
		return EncryptedTensor{}, newError("add", KindLengthMismatch, nil)
	}
	out := make([]Fraction, len(t.Elements))
	for i := range t.Elements {
		sum, err := t.Elements[i].Add(other.Elements[i])
		if err != nil {
			return EncryptedTensor{}, err
		}
		out[i] = sum
	}
	return EncryptedTensor{Cap: t.Cap, KM: t.KM, Elements: out}, nil
}

// Mul returns the elementwise ciphertext-ciphertext product of t and other.
func (t EncryptedTensor) Mul(other EncryptedTensor) (EncryptedTensor, error) {
	if len(t.Elements) != len(other.Elements) {
		return EncryptedTensor{}, newError("multiply", KindLengthMismatch, nil)
	}
	out := make([]Fraction, len(t.Elements))
	for i := range t.Elements {
		product, err := t.Elements[i].Mul(other.Elements[i])
		if err != nil {
			return EncryptedTensor{}, err
		}
		out[i] = product
	}
	return EncryptedTensor{Cap: t.Cap, KM: t.KM, Elements: out}, nil
}

// MulScalar scales every element by the same plaintext integer k.
func (t EncryptedTensor) MulScalar(src *prng.Source, k *big.Int) (EncryptedTensor, error) {
	out := make([]Fraction, len(t.Elements))
	for i, f := range t.Elements {
		scaled, err := f.MulScalar(src, k)
		if err != nil {
			return EncryptedTensor{}, err
		}
		out[i] = scaled
	}
	return EncryptedTensor{Cap: t.Cap, KM: t.KM, Elements: out}, nil
}

// MulPlainList scales each element by its own plaintext integer weight,
// e.g. for an encrypted-input, plaintext-weight linear layer.
func (t EncryptedTensor) MulPlainList(src *prng.Source, weights []*big.Int) (EncryptedTensor, error) {
	if len(weights) != len(t.Elements) {
		return EncryptedTensor{}, newError("multiply_plain_list", KindLengthMismatch, nil)
	}
	out := make([]Fraction, len(t.Elements))
	for i, f := range t.Elements {
		scaled, err := f.MulScalar(src, weights[i])
		if err != nil {
			return EncryptedTensor{}, err
		}
		out[i] = scaled
	}
	return EncryptedTensor{Cap: t.Cap, KM: t.KM, Elements: out}, nil
}

// Dot computes the inner product of t with a plaintext weight vector: scale
// every element by its weight, then fold the results with Add (which
// itself now tolerates mixed-sign operands, see Fraction.Add). Folding
// still requires every scaled element to share a divisor, so a tensor whose
// elements were encoded at different precisions is rejected up front rather
// than partway through the fold.
func (t EncryptedTensor) Dot(src *prng.Source, weights []*big.Int) (Fraction, error) {
	scaled, err := t.MulPlainList(src, weights)
	if err != nil {
		return Fraction{}, err
	}
	if len(scaled.Elements) == 0 {
		return Fraction{}, newError("dot", KindLengthMismatch, nil)
	}
	first := scaled.Elements[0]
	if slices.ContainsFunc(scaled.Elements[1:], func(f Fraction) bool {
		return f.Divisor.Cmp(first.Divisor) != 0
	}) {
		return Fraction{}, newError("dot", KindDivisorMismatch, nil)
	}

	acc := first
	for _, f := range scaled.Elements[1:] {
		acc, err = acc.Add(f)
		if err != nil {
			return Fraction{}, err
		}
	}
	return acc, nil
}
