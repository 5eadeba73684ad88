package scheme_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/prng"
	"github.com/shieldphe/gophe/scheme"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, tag string) *prng.Source {
	t.Helper()
	src, err := prng.NewKeyed([]byte("scheme-test-seed-" + tag))
	require.NoError(t, err)
	return src
}

func TestRSAEncryptDecryptRoundTrip(t *testing.T) {
	cap, err := scheme.Get(scheme.RSA)
	require.NoError(t, err)
	src := newTestSource(t, "rsa")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128})
	require.NoError(t, err)

	m := big.NewInt(42)
	c, err := cap.Encrypt(src, km, m)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, c)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestRSAMultiplyIsHomomorphic(t *testing.T) {
	cap, err := scheme.Get(scheme.RSA)
	require.NoError(t, err)
	src := newTestSource(t, "rsa-mul")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128})
	require.NoError(t, err)

	a, err := cap.Encrypt(src, km, big.NewInt(6))
	require.NoError(t, err)
	b, err := cap.Encrypt(src, km, big.NewInt(7))
	require.NoError(t, err)
	product, err := cap.Multiply(km, a, b)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, product)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), got)
}

func TestRSADoesNotSupportAdd(t *testing.T) {
	cap, err := scheme.Get(scheme.RSA)
	require.NoError(t, err)
	require.Nil(t, cap.Add)
	require.Nil(t, cap.Xor)
	require.Nil(t, cap.ReEncrypt)
}

func TestRSADecryptRequiresPrivateKey(t *testing.T) {
	cap, err := scheme.Get(scheme.RSA)
	require.NoError(t, err)
	src := newTestSource(t, "rsa-pub")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128})
	require.NoError(t, err)
	pub := km.PublicOnly()

	c, err := cap.Encrypt(src, pub, big.NewInt(5))
	require.NoError(t, err)
	_, err = cap.Decrypt(pub, c)
	require.Error(t, err)
	require.True(t, scheme.Is(err, scheme.KindMissingKey))
}
