package curve

import (
	"math/big"

	"github.com/shieldphe/gophe/gf2"
)

// koblitzEngine implements the binary (GF(2^m)) curve law
// y^2 + x*y = x^3 + a*x^2 + b (mod f(x)), where f is the irreducible
// reduction polynomial carried in Params.Modulus.
type koblitzEngine struct{ p Params }

func (e koblitzEngine) identity() Point { return infinity() }

func (e koblitzEngine) isOnCurve(pt Point) bool {
	f := e.p.Modulus
	lhs := gf2.Add(gf2.Mod(gf2.Square(pt.Y), f), gf2.Mod(gf2.Multiply(pt.X, pt.Y), f))
	x3 := gf2.Mod(gf2.Multiply(gf2.Mod(gf2.Square(pt.X), f), pt.X), f)
	ax2 := gf2.Mod(gf2.Multiply(e.p.A, gf2.Mod(gf2.Square(pt.X), f)), f)
	rhs := gf2.Add(gf2.Add(x3, ax2), e.p.B)
	rhs = gf2.Mod(rhs, f)
	return gf2.Mod(lhs, f).Cmp(rhs) == 0
}

// negate: (x, x xor y) - flipping the sign of y over GF(2) is adding x (the
// curve's two roots for a given x differ by exactly x).
func (e koblitzEngine) negate(pt Point) Point {
	return point(new(big.Int).Set(pt.X), gf2.Add(pt.X, pt.Y))
}

// double(point with x=0) = O, per spec's explicit edge case.
func (e koblitzEngine) double(pt Point) Point {
	if pt.X.Sign() == 0 {
		return infinity()
	}
	f := e.p.Modulus
	beta := gf2.Add(pt.X, gf2.Divide(pt.Y, pt.X, f))

	x3 := gf2.Add(gf2.Add(gf2.Mod(gf2.Square(beta), f), beta), e.p.A)
	x3 = gf2.Mod(x3, f)

	x1Sq := gf2.Mod(gf2.Square(pt.X), f)
	betaX3 := gf2.Mod(gf2.Multiply(beta, x3), f)
	y3 := gf2.Add(gf2.Add(x1Sq, betaX3), x3)
	y3 = gf2.Mod(y3, f)

	return point(x3, y3)
}

func (e koblitzEngine) add(p1, p2 Point) Point {
	f := e.p.Modulus
	beta := gf2.Divide(gf2.Add(p1.Y, p2.Y), gf2.Add(p1.X, p2.X), f)

	x3 := gf2.Add(gf2.Mod(gf2.Square(beta), f), beta)
	x3 = gf2.Add(x3, gf2.Add(p1.X, p2.X))
	x3 = gf2.Add(x3, e.p.A)
	x3 = gf2.Mod(x3, f)

	y3 := gf2.Mod(gf2.Multiply(beta, gf2.Add(p1.X, x3)), f)
	y3 = gf2.Add(y3, x3)
	y3 = gf2.Add(y3, p1.Y)
	y3 = gf2.Mod(y3, f)

	return point(x3, y3)
}
