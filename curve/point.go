package curve

import "math/big"

// Point is a curve-agnostic coordinate pair. Infinity marks the symbolic
// point at infinity used by the Weierstrass and Koblitz identity elements;
// the twisted Edwards form never sets it, since its identity (0,1) is an
// ordinary affine point.
type Point struct {
	X, Y     *big.Int
	Infinity bool
}

// Equal reports whether p and q denote the same curve point.
func (p Point) Equal(q Point) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func point(x, y *big.Int) Point {
	return Point{X: x, Y: y}
}

func infinity() Point {
	return Point{Infinity: true}
}
