package curve

import "math/big"

// Form names the three coordinate-system families gophe supports.
type Form string

const (
	Weierstrass Form = "weierstrass"
	Edwards     Form = "edwards"
	Koblitz     Form = "koblitz"
)

// engine is the dispatch surface per Form: each variant implements the same
// five capabilities (add, double, negate, identity, is-on-curve) its own
// way, and Curve.ScalarMultiply is expressed once, generically, in terms of
// them (Design Note "Curve polymorphism": a sum type over the three forms
// plus a shared dispatch layer, rather than class inheritance).
type engine interface {
	add(p, q Point) Point
	double(p Point) Point
	negate(p Point) Point
	identity() Point
	isOnCurve(p Point) bool
}

// Curve is an immutable, fully-parameterized elliptic curve: a field
// (prime modulus, or irreducible GF(2) polynomial for Koblitz), its
// coefficients, a base point, and the base point's order.
type Curve struct {
	Params Params
	eng    engine
}

// newCurve builds the Curve wrapper with the engine matching Params.Form.
func newCurve(p Params) (Curve, error) {
	var e engine
	switch p.Form {
	case Weierstrass:
		e = weierstrassEngine{p: p}
	case Edwards:
		e = edwardsEngine{p: p}
	case Koblitz:
		e = koblitzEngine{p: p}
	default:
		return Curve{}, newError("new_curve", KindUnsupportedForm, nil)
	}
	c := Curve{Params: p, eng: e}
	base := c.BasePoint()
	if !c.IsOnCurve(base) {
		return Curve{}, newError("new_curve", KindPointNotOnCurve, nil)
	}
	return c, nil
}

// BasePoint returns the curve's canonical generator G.
func (c Curve) BasePoint() Point {
	return point(new(big.Int).Set(c.Params.Gx), new(big.Int).Set(c.Params.Gy))
}

// Identity returns the curve's neutral element O.
func (c Curve) Identity() Point { return c.eng.identity() }

// IsOnCurve reports whether p satisfies the curve equation (or is the
// identity, which trivially does).
func (c Curve) IsOnCurve(p Point) bool {
	if p.Infinity {
		return true
	}
	return c.eng.isOnCurve(p)
}

// Negate returns -P.
func (c Curve) Negate(p Point) Point {
	if p.Infinity {
		return p
	}
	return assertOnCurve(c, c.eng.negate(p))
}

// Add returns P+Q, handling the identity and P+(-P) edge cases explicitly
// before deferring to the form's own addition law.
func (c Curve) Add(p, q Point) Point {
	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}
	if c.eng.negate(p).Equal(q) {
		return c.eng.identity()
	}
	if p.Equal(q) {
		return c.Double(p)
	}
	return assertOnCurve(c, c.eng.add(p, q))
}

// Double returns 2P.
func (c Curve) Double(p Point) Point {
	if p.Infinity {
		return p
	}
	return assertOnCurve(c, c.eng.double(p))
}

// ScalarMultiply computes k*G via left-to-right double-and-add on the
// binary expansion of k, after normalizing k modulo the curve order and
// handling k<0 by negating the result - exactly the edge-case handling §4.4
// spells out: k==0 (mod n) -> O, k<0 -> negate(scalarMultiply(|k|)).
func (c Curve) ScalarMultiply(g Point, k *big.Int) Point {
	n := c.Params.Order
	kk := new(big.Int).Mod(k, n)
	if kk.Sign() == 0 {
		return c.Identity()
	}
	if k.Sign() < 0 {
		return c.Negate(c.ScalarMultiply(g, new(big.Int).Abs(k)))
	}
	result := c.Identity()
	for i := kk.BitLen() - 1; i >= 0; i-- {
		result = c.Double(result)
		if kk.Bit(i) == 1 {
			result = c.Add(result, g)
		}
	}
	return result
}

func assertOnCurve(c Curve, p Point) Point {
	if !c.IsOnCurve(p) {
		panic(newError("assert_on_curve", KindPointNotOnCurve, nil))
	}
	return p
}
