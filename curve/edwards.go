package curve

import "math/big"

// edwardsEngine implements the twisted Edwards unified addition law:
// a*x^2 + y^2 = 1 + d*x^2*y^2 (mod p). Addition and doubling share one
// formula (the "unified" property), so double(P) is literally add(P, P).
type edwardsEngine struct{ p Params }

// identity is the concrete affine point (0,1); twisted Edwards curves have
// no point at infinity.
func (e edwardsEngine) identity() Point {
	return point(big.NewInt(0), big.NewInt(1))
}

func (e edwardsEngine) isOnCurve(pt Point) bool {
	p := e.p.Modulus
	x2 := new(big.Int).Mul(pt.X, pt.X)
	y2 := new(big.Int).Mul(pt.Y, pt.Y)

	lhs := new(big.Int).Mul(e.p.A, x2)
	lhs.Add(lhs, y2)
	lhs.Mod(lhs, p)

	rhs := new(big.Int).Mul(e.p.D, x2)
	rhs.Mul(rhs, y2)
	rhs.Add(rhs, big.NewInt(1))
	rhs.Mod(rhs, p)

	return lhs.Cmp(rhs) == 0
}

func (e edwardsEngine) negate(pt Point) Point {
	negX := new(big.Int).Neg(pt.X)
	negX.Mod(negX, e.p.Modulus)
	return point(negX, new(big.Int).Set(pt.Y))
}

func (e edwardsEngine) double(pt Point) Point {
	return e.add(pt, pt)
}

func (e edwardsEngine) add(p1, p2 Point) Point {
	p := e.p.Modulus

	x1y2 := new(big.Int).Mul(p1.X, p2.Y)
	y1x2 := new(big.Int).Mul(p1.Y, p2.X)
	x1x2y1y2 := new(big.Int).Mul(p1.X, p2.X)
	x1x2y1y2.Mul(x1x2y1y2, p1.Y)
	x1x2y1y2.Mul(x1x2y1y2, p2.Y)
	dProd := new(big.Int).Mul(e.p.D, x1x2y1y2)

	xNum := new(big.Int).Add(x1y2, y1x2)
	xDen := new(big.Int).Add(big.NewInt(1), dProd)
	xDenInv := new(big.Int).ModInverse(xDen, p)
	x3 := new(big.Int).Mul(xNum, xDenInv)
	x3.Mod(x3, p)

	y1y2 := new(big.Int).Mul(p1.Y, p2.Y)
	ax1x2 := new(big.Int).Mul(e.p.A, p1.X)
	ax1x2.Mul(ax1x2, p2.X)
	yNum := new(big.Int).Sub(y1y2, ax1x2)
	yDen := new(big.Int).Sub(big.NewInt(1), dProd)
	yDenInv := new(big.Int).ModInverse(new(big.Int).Mod(yDen, p), p)
	y3 := new(big.Int).Mul(yNum, yDenInv)
	y3.Mod(y3, p)

	return point(x3, y3)
}
