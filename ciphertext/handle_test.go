package ciphertext_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/ciphertext"
	"github.com/shieldphe/gophe/prng"
	"github.com/shieldphe/gophe/scheme"
	"github.com/stretchr/testify/require"
)

func newHandle(t *testing.T, name scheme.Name, src *prng.Source, km scheme.KeyMaterial, m int64) ciphertext.Handle {
	t.Helper()
	cap, err := scheme.Get(name)
	require.NoError(t, err)
	ct, err := cap.Encrypt(src, km, big.NewInt(m))
	require.NoError(t, err)
	return ciphertext.New(cap, km, ct)
}

func TestHandleAddAndDecrypt(t *testing.T) {
	src, err := prng.NewKeyed([]byte("ciphertext-handle-add"))
	require.NoError(t, err)
	cap, err := scheme.Get(scheme.Paillier)
	require.NoError(t, err)
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128})
	require.NoError(t, err)

	a := newHandle(t, scheme.Paillier, src, km, 10)
	b := newHandle(t, scheme.Paillier, src, km, 32)
	sum, err := a.Add(b)
	require.NoError(t, err)
	got, err := sum.Decrypt()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), got)
}

func TestHandleMulScalar(t *testing.T) {
	src, err := prng.NewKeyed([]byte("ciphertext-handle-scalar"))
	require.NoError(t, err)
	cap, err := scheme.Get(scheme.Paillier)
	require.NoError(t, err)
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128})
	require.NoError(t, err)

	a := newHandle(t, scheme.Paillier, src, km, 6)
	scaled, err := a.MulScalar(src, big.NewInt(7))
	require.NoError(t, err)
	got, err := scaled.Decrypt()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), got)
}

func TestHandleUnsupportedOperatorFails(t *testing.T) {
	src, err := prng.NewKeyed([]byte("ciphertext-handle-unsupported"))
	require.NoError(t, err)
	cap, err := scheme.Get(scheme.RSA)
	require.NoError(t, err)
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128})
	require.NoError(t, err)

	a := newHandle(t, scheme.RSA, src, km, 6)
	b := newHandle(t, scheme.RSA, src, km, 7)
	_, err = a.Add(b)
	require.Error(t, err)
	require.True(t, ciphertext.Is(err, ciphertext.KindUnsupportedOperation))
}

func TestHandleSchemeMismatchFails(t *testing.T) {
	src, err := prng.NewKeyed([]byte("ciphertext-handle-mismatch"))
	require.NoError(t, err)
	paillierCap, err := scheme.Get(scheme.Paillier)
	require.NoError(t, err)
	paillierKM, err := paillierCap.KeyGen(src, scheme.Options{KeySize: 128})
	require.NoError(t, err)
	rsaCap, err := scheme.Get(scheme.RSA)
	require.NoError(t, err)
	rsaKM, err := rsaCap.KeyGen(src, scheme.Options{KeySize: 128})
	require.NoError(t, err)

	a := newHandle(t, scheme.Paillier, src, paillierKM, 6)
	b := newHandle(t, scheme.RSA, src, rsaKM, 7)
	_, err = a.Add(b)
	require.Error(t, err)
	require.True(t, ciphertext.Is(err, ciphertext.KindSchemeMismatch))
}
