package scheme_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/scheme"
	"github.com/stretchr/testify/require"
)

func TestDamgardJurikEncryptDecryptRoundTrip(t *testing.T) {
	cap, err := scheme.Get(scheme.DamgardJurik)
	require.NoError(t, err)
	src := newTestSource(t, "damgard-jurik")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128, Exponent: 2})
	require.NoError(t, err)

	m := big.NewInt(321)
	c, err := cap.Encrypt(src, km, m)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, c)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestDamgardJurikAddIsHomomorphic(t *testing.T) {
	cap, err := scheme.Get(scheme.DamgardJurik)
	require.NoError(t, err)
	src := newTestSource(t, "damgard-jurik-add")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128, Exponent: 2})
	require.NoError(t, err)

	a, err := cap.Encrypt(src, km, big.NewInt(100))
	require.NoError(t, err)
	b, err := cap.Encrypt(src, km, big.NewInt(250))
	require.NoError(t, err)
	sum, err := cap.Add(km, a, b)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, sum)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(350), got)
}

func TestDamgardJurikExponentOneMatchesPaillierShape(t *testing.T) {
	cap, err := scheme.Get(scheme.DamgardJurik)
	require.NoError(t, err)
	src := newTestSource(t, "damgard-jurik-s1")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128, Exponent: 1})
	require.NoError(t, err)

	m := big.NewInt(7)
	c, err := cap.Encrypt(src, km, m)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, c)
	require.NoError(t, err)
	require.Equal(t, m, got)
}
