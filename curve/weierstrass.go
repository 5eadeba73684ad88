package curve

import "math/big"

// weierstrassEngine implements y^2 = x^3 + a*x + b (mod p).
type weierstrassEngine struct{ p Params }

func (e weierstrassEngine) identity() Point { return infinity() }

func (e weierstrassEngine) isOnCurve(pt Point) bool {
	p := e.p.Modulus
	lhs := new(big.Int).Exp(pt.Y, big.NewInt(2), p)
	x3 := new(big.Int).Exp(pt.X, big.NewInt(3), p)
	ax := new(big.Int).Mul(e.p.A, pt.X)
	rhs := new(big.Int).Add(x3, ax)
	rhs.Add(rhs, e.p.B)
	rhs.Mod(rhs, p)
	return lhs.Cmp(rhs) == 0
}

func (e weierstrassEngine) negate(pt Point) Point {
	negY := new(big.Int).Neg(pt.Y)
	negY.Mod(negY, e.p.Modulus)
	return point(new(big.Int).Set(pt.X), negY)
}

// double(point with y=0) = O, per spec's explicit edge case.
func (e weierstrassEngine) double(pt Point) Point {
	if pt.Y.Sign() == 0 {
		return infinity()
	}
	p := e.p.Modulus
	num := new(big.Int).Mul(pt.X, pt.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, e.p.A)
	den := new(big.Int).Lsh(pt.Y, 1)
	denInv := new(big.Int).ModInverse(den, p)
	beta := new(big.Int).Mul(num, denInv)
	beta.Mod(beta, p)

	x3 := new(big.Int).Mul(beta, beta)
	x3.Sub(x3, pt.X)
	x3.Sub(x3, pt.X)
	x3.Mod(x3, p)

	y3 := new(big.Int).Sub(pt.X, x3)
	y3.Mul(y3, beta)
	y3.Sub(y3, pt.Y)
	y3.Mod(y3, p)

	return point(x3, y3)
}

func (e weierstrassEngine) add(p1, p2 Point) Point {
	p := e.p.Modulus
	num := new(big.Int).Sub(p2.Y, p1.Y)
	den := new(big.Int).Sub(p2.X, p1.X)
	denInv := new(big.Int).ModInverse(den, p)
	beta := new(big.Int).Mul(num, denInv)
	beta.Mod(beta, p)

	x3 := new(big.Int).Mul(beta, beta)
	x3.Sub(x3, p1.X)
	x3.Sub(x3, p2.X)
	x3.Mod(x3, p)

	y3 := new(big.Int).Sub(p1.X, x3)
	y3.Mul(y3, beta)
	y3.Sub(y3, p1.Y)
	y3.Mod(y3, p)

	return point(x3, y3)
}
