package curve_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shieldphe/gophe/curve"
)

// bigIntComparer lets cmp.Diff compare *big.Int fields by value instead of
// by pointer identity, the same role cmp.Comparer plays for lattigo's own
// structs_test.go table comparisons.
var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

func TestPointDeepEqualityAcrossIndependentComputations(t *testing.T) {
	c, err := curve.Lookup(curve.Weierstrass, "secp256k1")
	if err != nil {
		t.Fatal(err)
	}
	g := c.BasePoint()

	// 3G computed two different ways must land on byte-identical coordinates,
	// not merely Equal()-equivalent ones.
	viaDouble := c.Add(c.Add(g, g), g)
	viaTriple := c.ScalarMultiply(g, big.NewInt(3))

	if diff := cmp.Diff(viaDouble, viaTriple, bigIntComparer); diff != "" {
		t.Errorf("3G mismatch between doubling and scalar multiply (-double +scalar):\n%s", diff)
	}
}

func TestPointDiffDetectsMismatch(t *testing.T) {
	c, err := curve.Lookup(curve.Weierstrass, "secp256k1")
	if err != nil {
		t.Fatal(err)
	}
	g := c.BasePoint()
	twoG := c.ScalarMultiply(g, big.NewInt(2))

	if cmp.Equal(g, twoG, bigIntComparer) {
		t.Fatal("expected G and 2G to differ")
	}
}
