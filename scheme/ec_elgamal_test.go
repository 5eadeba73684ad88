package scheme_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/curve"
	"github.com/shieldphe/gophe/scheme"
	"github.com/stretchr/testify/require"
)

func TestECElGamalEncryptDecryptRoundTrip(t *testing.T) {
	cap, err := scheme.Get(scheme.EllipticCurveElGamal)
	require.NoError(t, err)
	src := newTestSource(t, "ec-elgamal")
	km, err := cap.KeyGen(src, scheme.Options{Form: curve.Weierstrass, CurveName: "secp256k1", PlaintextLimit: big.NewInt(1000)})
	require.NoError(t, err)

	m := big.NewInt(21)
	c, err := cap.Encrypt(src, km, m)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, c)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestECElGamalAddIsHomomorphic(t *testing.T) {
	cap, err := scheme.Get(scheme.EllipticCurveElGamal)
	require.NoError(t, err)
	src := newTestSource(t, "ec-elgamal-add")
	km, err := cap.KeyGen(src, scheme.Options{Form: curve.Weierstrass, CurveName: "secp256k1", PlaintextLimit: big.NewInt(1000)})
	require.NoError(t, err)

	a, err := cap.Encrypt(src, km, big.NewInt(4))
	require.NoError(t, err)
	b, err := cap.Encrypt(src, km, big.NewInt(9))
	require.NoError(t, err)
	sum, err := cap.Add(km, a, b)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, sum)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(13), got)
}

func TestECElGamalDoesNotSupportMultiply(t *testing.T) {
	cap, err := scheme.Get(scheme.EllipticCurveElGamal)
	require.NoError(t, err)
	require.Nil(t, cap.Multiply)
	require.Nil(t, cap.Xor)
	require.Nil(t, cap.ReEncrypt)
}
