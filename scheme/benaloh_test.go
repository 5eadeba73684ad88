package scheme_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/scheme"
	"github.com/stretchr/testify/require"
)

func TestBenalohEncryptDecryptRoundTrip(t *testing.T) {
	cap, err := scheme.Get(scheme.Benaloh)
	require.NoError(t, err)
	src := newTestSource(t, "benaloh")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128, PlaintextLimit: big.NewInt(127), MaxTries: 20000})
	require.NoError(t, err)

	m := big.NewInt(88)
	c, err := cap.Encrypt(src, km, m)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, c)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestBenalohAddWrapsModuloBlockSize(t *testing.T) {
	cap, err := scheme.Get(scheme.Benaloh)
	require.NoError(t, err)
	src := newTestSource(t, "benaloh-add")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128, PlaintextLimit: big.NewInt(127), MaxTries: 20000})
	require.NoError(t, err)

	a, err := cap.Encrypt(src, km, big.NewInt(100))
	require.NoError(t, err)
	b, err := cap.Encrypt(src, km, big.NewInt(50))
	require.NoError(t, err)
	sum, err := cap.Add(km, a, b)
	require.NoError(t, err)
	got, err := cap.Decrypt(km, sum)
	require.NoError(t, err)
	require.Equal(t, big.NewInt((100+50)%127), got)
}

func TestBenalohReEncryptPreservesPlaintext(t *testing.T) {
	cap, err := scheme.Get(scheme.Benaloh)
	require.NoError(t, err)
	src := newTestSource(t, "benaloh-reenc")
	km, err := cap.KeyGen(src, scheme.Options{KeySize: 128, PlaintextLimit: big.NewInt(127), MaxTries: 20000})
	require.NoError(t, err)

	c, err := cap.Encrypt(src, km, big.NewInt(10))
	require.NoError(t, err)
	refreshed, err := cap.ReEncrypt(src, km, c)
	require.NoError(t, err)
	require.NotEqual(t, c.Value, refreshed.Value)
	got, err := cap.Decrypt(km, refreshed)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(10), got)
}
