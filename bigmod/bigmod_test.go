package bigmod_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/bigmod"
	"github.com/shieldphe/gophe/prng"
	"github.com/stretchr/testify/require"
)

func TestModPowRoundTrip(t *testing.T) {
	m := big.NewInt(101)
	base := big.NewInt(7)
	exp := big.NewInt(5)
	got, err := bigmod.ModPow(base, exp, m)
	require.NoError(t, err)
	require.Equal(t, new(big.Int).Exp(base, exp, m), got)
}

func TestModPowNegativeExponentUsesInverse(t *testing.T) {
	m := big.NewInt(101)
	base := big.NewInt(7)
	got, err := bigmod.ModPow(base, big.NewInt(-3), m)
	require.NoError(t, err)
	inv, err := bigmod.ModInverse(base, m)
	require.NoError(t, err)
	want := new(big.Int).Exp(inv, big.NewInt(3), m)
	require.Equal(t, want, got)
}

func TestModInverseFailsOnNonCoprime(t *testing.T) {
	_, err := bigmod.ModInverse(big.NewInt(4), big.NewInt(8))
	require.Error(t, err)
	require.True(t, bigmod.Is(err, bigmod.KindNotInvertible))
}

func TestGCD(t *testing.T) {
	require.Equal(t, big.NewInt(6), bigmod.GCD(big.NewInt(54), big.NewInt(24)))
	require.Equal(t, big.NewInt(1), bigmod.GCD(big.NewInt(17), big.NewInt(5)))
	require.Equal(t, big.NewInt(5), bigmod.GCD(big.NewInt(0), big.NewInt(5)))
}

func TestRandomPrimeIsPrimeAndInRange(t *testing.T) {
	src, err := prng.NewKeyed([]byte("deterministic-test-seed-0001"))
	require.NoError(t, err)
	p, err := bigmod.RandomPrime(src, 32, 40)
	require.NoError(t, err)
	require.True(t, p.ProbablyPrime(20))
	require.GreaterOrEqual(t, p.BitLen(), 32)
	require.LessOrEqual(t, p.BitLen(), 40)
}

func TestFactorIntSmallComposite(t *testing.T) {
	factors := bigmod.FactorInt(big.NewInt(360)) // 2^3 * 3^2 * 5
	product := big.NewInt(1)
	for _, f := range factors {
		product.Mul(product, f)
	}
	require.Equal(t, big.NewInt(360), product)
	require.Len(t, factors, 6)
}

func TestFactorIntPrime(t *testing.T) {
	factors := bigmod.FactorInt(big.NewInt(97))
	require.Equal(t, []*big.Int{big.NewInt(97)}, factors)
}

func TestSolveCRT(t *testing.T) {
	// x = 2 mod 3, x = 3 mod 5, x = 2 mod 7 -> x = 23 mod 105
	x, m, err := bigmod.SolveCRT([]bigmod.CRTTerm{
		{Remainder: big.NewInt(2), Modulus: big.NewInt(3)},
		{Remainder: big.NewInt(3), Modulus: big.NewInt(5)},
		{Remainder: big.NewInt(2), Modulus: big.NewInt(7)},
	})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(105), m)
	require.Equal(t, big.NewInt(23), x)
}

func TestJacobi(t *testing.T) {
	require.Equal(t, 1, bigmod.Jacobi(big.NewInt(5), big.NewInt(9)))
}
