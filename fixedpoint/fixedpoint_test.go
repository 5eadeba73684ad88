package fixedpoint_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/fixedpoint"
	"github.com/stretchr/testify/require"
)

var modulus = new(big.Int).Lsh(big.NewInt(1), 128)

func TestNormalizeInputPositiveInt(t *testing.T) {
	got, err := fixedpoint.NormalizeInput(42, modulus, fixedpoint.DefaultPrecision)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), got)
}

func TestNormalizeInputNegativeIntWrapsModular(t *testing.T) {
	got, err := fixedpoint.NormalizeInput(-1, modulus, fixedpoint.DefaultPrecision)
	require.NoError(t, err)
	require.Equal(t, new(big.Int).Sub(modulus, big.NewInt(1)), got)
}

func TestNormalizeInputNegativeFloatFails(t *testing.T) {
	_, err := fixedpoint.NormalizeInput(-3.14, modulus, 5)
	require.Error(t, err)
	require.True(t, fixedpoint.Is(err, fixedpoint.KindUnsupportedInput))
}

func TestFractionizeRoundTrip(t *testing.T) {
	dividend, divisor, err := fixedpoint.Fractionize(3.14159, modulus, 5)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(314159), dividend)
	require.Equal(t, big.NewInt(100000), divisor)
}

func TestNormalizeInputFloatRoundTripsWithinTolerance(t *testing.T) {
	value := 123.456
	precision := 5
	got, err := fixedpoint.NormalizeInput(value, modulus, precision)
	require.NoError(t, err)

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)
	dividend := new(big.Int).Mul(got, divisor)
	dividend.Mod(dividend, modulus)

	reconstructed := new(big.Float).SetPrec(256).SetInt(dividend)
	reconstructed.Quo(reconstructed, new(big.Float).SetPrec(256).SetInt(divisor))
	f, _ := reconstructed.Float64()
	require.InDelta(t, value, f, 1e-5)
}

func TestInferPrecision(t *testing.T) {
	require.Equal(t, 2, fixedpoint.InferPrecision(3.14))
	require.Equal(t, 0, fixedpoint.InferPrecision(7))
	require.Equal(t, 5, fixedpoint.InferPrecision(1.23456))
}
