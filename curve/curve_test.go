package curve_test

import (
	"math/big"
	"testing"

	"github.com/shieldphe/gophe/curve"
	"github.com/stretchr/testify/require"
)

// curveLaws exercises every property from §8 "Curve laws" against one
// curve: for each k in a fixed list of small scalars, is_on_curve(kG) holds; 0G=O; nG=O; (-k)G=-(kG);
// (k+1)G=kG+G; P+(-P)=O; add is commutative.
func curveLaws(t *testing.T, c curve.Curve) {
	t.Helper()
	g := c.BasePoint()
	require.True(t, c.IsOnCurve(g))

	require.True(t, c.ScalarMultiply(g, big.NewInt(0)).Equal(c.Identity()))
	require.True(t, c.ScalarMultiply(g, c.Params.Order).Equal(c.Identity()))

	for _, k := range []int64{1, 2, 3, 5, 11, 97} {
		kk := big.NewInt(k)
		kg := c.ScalarMultiply(g, kk)
		require.True(t, c.IsOnCurve(kg), "k=%d", k)

		negKG := c.ScalarMultiply(g, new(big.Int).Neg(kk))
		require.True(t, c.Negate(kg).Equal(negKG), "k=%d", k)

		kPlus1G := c.ScalarMultiply(g, new(big.Int).Add(kk, big.NewInt(1)))
		require.True(t, c.Add(kg, g).Equal(kPlus1G), "k=%d", k)

		require.True(t, c.Add(kg, c.Negate(kg)).Equal(c.Identity()), "k=%d", k)

		other := c.ScalarMultiply(g, big.NewInt(k+1))
		require.True(t, c.Add(kg, other).Equal(c.Add(other, kg)), "k=%d commutative", k)
	}
}

func TestCurveLawsSecp256k1(t *testing.T) {
	c, err := curve.Lookup(curve.Weierstrass, "secp256k1")
	require.NoError(t, err)
	curveLaws(t, c)
}

func TestCurveLawsP256(t *testing.T) {
	c, err := curve.Lookup(curve.Weierstrass, "p256")
	require.NoError(t, err)
	curveLaws(t, c)
}

func TestCurveLawsBrainpoolP256r1(t *testing.T) {
	c, err := curve.Lookup(curve.Weierstrass, "brainpoolP256r1")
	require.NoError(t, err)
	curveLaws(t, c)
}

func TestCurveLawsEd25519(t *testing.T) {
	c, err := curve.Lookup(curve.Edwards, "ed25519")
	require.NoError(t, err)
	curveLaws(t, c)
}

func TestCurveLawsK163(t *testing.T) {
	c, err := curve.Lookup(curve.Koblitz, "k163")
	require.NoError(t, err)
	curveLaws(t, c)
}

func TestDefaultCurveSelection(t *testing.T) {
	weier, err := curve.Lookup(curve.Weierstrass, "")
	require.NoError(t, err)
	require.Equal(t, "secp256k1", weier.Params.Name)

	edw, err := curve.Lookup(curve.Edwards, "")
	require.NoError(t, err)
	require.Equal(t, "ed25519", edw.Params.Name)

	kob, err := curve.Lookup(curve.Koblitz, "")
	require.NoError(t, err)
	require.Equal(t, "k163", kob.Params.Name)
}

func TestUnsupportedFormAndCurve(t *testing.T) {
	_, err := curve.Lookup(curve.Form("jacobian"), "")
	require.Error(t, err)
	require.True(t, curve.Is(err, curve.KindUnsupportedForm))

	_, err = curve.Lookup(curve.Weierstrass, "not-a-curve")
	require.Error(t, err)
	require.True(t, curve.Is(err, curve.KindUnsupportedCurve))
}

func TestCatalogueCoverage(t *testing.T) {
	want := map[curve.Form][]string{
		curve.Weierstrass: {"secp256k1", "p192", "p224", "p256", "p384", "p521", "brainpoolP256r1", "brainpoolP384r1", "brainpoolP512r1"},
		curve.Edwards:     {"ed25519", "ed448", "e521", "curve41417", "jubjub"},
		curve.Koblitz:     {"k163", "k233", "k283", "k409", "k571"},
	}
	for form, names := range want {
		got := curve.Names(form)
		for _, name := range names {
			require.Contains(t, got, name, "form=%s name=%s", form, name)
		}
	}
}

func TestAddIdentityEdgeCases(t *testing.T) {
	for _, form := range []curve.Form{curve.Weierstrass, curve.Edwards, curve.Koblitz} {
		c, err := curve.Lookup(form, "")
		require.NoError(t, err)
		g := c.BasePoint()
		o := c.Identity()

		require.True(t, c.Add(g, o).Equal(g), "form=%s P+O", form)
		require.True(t, c.Add(o, g).Equal(g), "form=%s O+P", form)
		require.True(t, c.Add(o, o).Equal(o), "form=%s O+O", form)
		require.True(t, c.Add(g, c.Negate(g)).Equal(o), "form=%s P+(-P)", form)
	}
}
