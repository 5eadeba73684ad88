package scheme_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/scheme"
	"github.com/stretchr/testify/require"
)

func TestGoldwasserMicaliEncryptDecryptRoundTrip(t *testing.T) {
	cap, err := scheme.Get(scheme.GoldwasserMicali)
	require.NoError(t, err)
	src := newTestSource(t, "gm")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 96})
	require.NoError(t, err)

	m := big.NewInt(0b10110)
	c, err := cap.Encrypt(src, km, m)
	require.NoError(t, err)
	require.Equal(t, scheme.KindBits, c.Kind)
	got, err := cap.Decrypt(km, c)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestGoldwasserMicaliXorMatchesBitwiseXor(t *testing.T) {
	cap, err := scheme.Get(scheme.GoldwasserMicali)
	require.NoError(t, err)
	src := newTestSource(t, "gm-xor")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 96})
	require.NoError(t, err)

	a, err := cap.Encrypt(src, km, big.NewInt(0b1011))
	require.NoError(t, err)
	b, err := cap.Encrypt(src, km, big.NewInt(0b1101))
	require.NoError(t, err)
	xored, err := cap.Xor(src, km, a, b)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, xored)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(0b1011^0b1101), got)
}

func TestGoldwasserMicaliXorZeroPadsShorterOperand(t *testing.T) {
	cap, err := scheme.Get(scheme.GoldwasserMicali)
	require.NoError(t, err)
	src := newTestSource(t, "gm-xor-padded")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 96})
	require.NoError(t, err)

	// a is 6 bits wide, b only 2: b must be zero-extended before combining,
	// so the result should equal plain bitwise XOR at a's width.
	a, err := cap.Encrypt(src, km, big.NewInt(0b101101))
	require.NoError(t, err)
	b, err := cap.Encrypt(src, km, big.NewInt(0b011))
	require.NoError(t, err)

	xored, err := cap.Xor(src, km, a, b)
	require.NoError(t, err)
	require.Len(t, xored.Bits, len(a.Bits))
	got, err := cap.Decrypt(km, xored)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(0b101101^0b011), got)

	reversed, err := cap.Xor(src, km, b, a)
	require.NoError(t, err)
	got2, err := cap.Decrypt(km, reversed)
	require.NoError(t, err)
	require.Equal(t, got, got2)
}

func TestGoldwasserMicaliDoesNotSupportAdd(t *testing.T) {
	cap, err := scheme.Get(scheme.GoldwasserMicali)
	require.NoError(t, err)
	require.Nil(t, cap.Add)
	require.Nil(t, cap.Multiply)
	require.Nil(t, cap.MultiplyScalar)
}
