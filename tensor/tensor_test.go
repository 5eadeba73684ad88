package tensor_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/prng"
	"github.com/shieldphe/gophe/scheme"
	"github.com/shieldphe/gophe/tensor"
	"github.com/stretchr/testify/require"
)

func newPaillierKey(t *testing.T) (scheme.Capability, scheme.KeyMaterial, *prng.Source) {
	t.Helper()
	src, err := prng.NewKeyed([]byte("tensor-test-seed"))
	require.NoError(t, err)
	cap, err := scheme.Get(scheme.Paillier)
	require.NoError(t, err)
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128})
	require.NoError(t, err)
	return cap, km, src
}

func TestFractionEncodeDecryptRoundTrip(t *testing.T) {
	cap, km, src := newPaillierKey(t)
	f, err := tensor.EncodeFraction(src, cap, km, 3.14, 2)
	require.NoError(t, err)
	got, err := f.Decrypt()
	require.NoError(t, err)
	require.InDelta(t, 3.14, got, 1e-9)
}

func TestFractionEncodeNegativeValue(t *testing.T) {
	cap, km, src := newPaillierKey(t)
	f, err := tensor.EncodeFraction(src, cap, km, -2.5, 1)
	require.NoError(t, err)
	require.EqualValues(t, -1, f.Sign)
	got, err := f.Decrypt()
	require.NoError(t, err)
	require.InDelta(t, -2.5, got, 1e-9)
}

func TestEncryptedTensorAddAndDecrypt(t *testing.T) {
	cap, km, src := newPaillierKey(t)
	a, err := tensor.Encode(src, cap, km, []float64{1.5, 2.5, 3.5}, 1)
	require.NoError(t, err)
	b, err := tensor.Encode(src, cap, km, []float64{0.5, 0.5, 0.5}, 1)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	got, err := sum.Decrypt()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2.0, 3.0, 4.0}, got, 1e-9)
}

func TestEncryptedTensorDotWithPlainWeights(t *testing.T) {
	cap, km, src := newPaillierKey(t)
	values, err := tensor.Encode(src, cap, km, []float64{2, 3, 4}, 0)
	require.NoError(t, err)

	dot, err := values.Dot(src, []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)})
	require.NoError(t, err)
	got, err := dot.Decrypt()
	require.NoError(t, err)
	require.InDelta(t, 2*1+3*2+4*3, got, 1e-9)
}

func TestFractionAddMixedSign(t *testing.T) {
	cap, km, src := newPaillierKey(t)
	pos, err := tensor.EncodeFraction(src, cap, km, 5.0, 0)
	require.NoError(t, err)
	neg, err := tensor.EncodeFraction(src, cap, km, -3.0, 0)
	require.NoError(t, err)

	sum, err := pos.Add(neg)
	require.NoError(t, err)
	require.True(t, sum.MixedSign)
	got, err := sum.Decrypt()
	require.NoError(t, err)
	require.InDelta(t, 2.0, got, 1e-9)

	// Both negative is not a mixed-sign case and decodes via Sign*AbsDividend.
	negA, err := tensor.EncodeFraction(src, cap, km, -2.0, 0)
	require.NoError(t, err)
	negB, err := tensor.EncodeFraction(src, cap, km, -7.0, 0)
	require.NoError(t, err)
	bothNeg, err := negA.Add(negB)
	require.NoError(t, err)
	require.False(t, bothNeg.MixedSign)
	got, err = bothNeg.Decrypt()
	require.NoError(t, err)
	require.InDelta(t, -9.0, got, 1e-9)
}

func TestEncryptedTensorAddMixedSignElements(t *testing.T) {
	cap, km, src := newPaillierKey(t)
	a, err := tensor.Encode(src, cap, km, []float64{5.0, -4.0}, 0)
	require.NoError(t, err)
	b, err := tensor.Encode(src, cap, km, []float64{-3.0, 1.0}, 0)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	got, err := sum.Decrypt()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2.0, -3.0}, got, 1e-9)
}

func TestEncryptedTensorAddLengthMismatch(t *testing.T) {
	cap, km, src := newPaillierKey(t)
	a, err := tensor.Encode(src, cap, km, []float64{1, 2}, 0)
	require.NoError(t, err)
	b, err := tensor.Encode(src, cap, km, []float64{1, 2, 3}, 0)
	require.NoError(t, err)

	_, err = a.Add(b)
	require.Error(t, err)
	require.True(t, tensor.Is(err, tensor.KindLengthMismatch))
}
