package scheme_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/scheme"
	"github.com/stretchr/testify/require"
)

func TestExponentialElGamalEncryptDecryptRoundTrip(t *testing.T) {
	cap, err := scheme.Get(scheme.ExponentialElGamal)
	require.NoError(t, err)
	src := newTestSource(t, "exp-elgamal")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 96, PlaintextLimit: big.NewInt(1000)})
	require.NoError(t, err)

	m := big.NewInt(17)
	c, err := cap.Encrypt(src, km, m)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, c)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestExponentialElGamalAddIsHomomorphic(t *testing.T) {
	cap, err := scheme.Get(scheme.ExponentialElGamal)
	require.NoError(t, err)
	src := newTestSource(t, "exp-elgamal-add")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 96, PlaintextLimit: big.NewInt(1000)})
	require.NoError(t, err)

	a, err := cap.Encrypt(src, km, big.NewInt(12))
	require.NoError(t, err)
	b, err := cap.Encrypt(src, km, big.NewInt(30))
	require.NoError(t, err)
	sum, err := cap.Add(km, a, b)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, sum)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), got)
}

func TestExponentialElGamalMultiplyScalar(t *testing.T) {
	cap, err := scheme.Get(scheme.ExponentialElGamal)
	require.NoError(t, err)
	src := newTestSource(t, "exp-elgamal-scalar")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 96, PlaintextLimit: big.NewInt(1000)})
	require.NoError(t, err)

	a, err := cap.Encrypt(src, km, big.NewInt(6))
	require.NoError(t, err)
	scaled, err := cap.MultiplyScalar(src, km, a, big.NewInt(5))
	require.NoError(t, err)
	got, err := cap.Decrypt(km, scaled)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(30), got)
}

func TestExponentialElGamalDecryptFailsBeyondBound(t *testing.T) {
	cap, err := scheme.Get(scheme.ExponentialElGamal)
	require.NoError(t, err)
	src := newTestSource(t, "exp-elgamal-bound")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 96, PlaintextLimit: big.NewInt(10)})
	require.NoError(t, err)

	c, err := cap.Encrypt(src, km, big.NewInt(500))
	require.NoError(t, err)
	_, err = cap.Decrypt(km, c)
	require.Error(t, err)
	require.True(t, scheme.Is(err, scheme.KindDecryptionFailure))
}
