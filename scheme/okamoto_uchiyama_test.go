package scheme_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/scheme"
	"github.com/stretchr/testify/require"
)

func TestOkamotoUchiyamaEncryptDecryptRoundTrip(t *testing.T) {
	cap, err := scheme.Get(scheme.OkamotoUchiyama)
	require.NoError(t, err)
	src := newTestSource(t, "ou")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 144})
	require.NoError(t, err)

	m := big.NewInt(55)
	c, err := cap.Encrypt(src, km, m)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, c)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestOkamotoUchiyamaAddIsHomomorphic(t *testing.T) {
	cap, err := scheme.Get(scheme.OkamotoUchiyama)
	require.NoError(t, err)
	src := newTestSource(t, "ou-add")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 144})
	require.NoError(t, err)

	a, err := cap.Encrypt(src, km, big.NewInt(18))
	require.NoError(t, err)
	b, err := cap.Encrypt(src, km, big.NewInt(24))
	require.NoError(t, err)
	sum, err := cap.Add(km, a, b)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, sum)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), got)
}

func TestOkamotoUchiyamaPlaintextModuloHidesFactorPublicly(t *testing.T) {
	cap, err := scheme.Get(scheme.OkamotoUchiyama)
	require.NoError(t, err)
	src := newTestSource(t, "ou-modulo")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 144})
	require.NoError(t, err)

	exact := cap.PlaintextModulo(km)
	require.NotNil(t, exact)
	require.Equal(t, km.Private["p"].String(), exact.String())

	bound := cap.PlaintextModulo(km.PublicOnly())
	require.NotNil(t, bound)
	require.NotEqual(t, exact, bound)
}
