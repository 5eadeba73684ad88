// Package gf2 implements carry-less polynomial arithmetic over GF(2): every
// *big.Int is a polynomial in x with coefficients in {0,1}, bit i being the
// coefficient of x^i. This is the arithmetic the Koblitz curve form runs
// over; nothing else in gophe needs it.
package gf2

import (
	"math/big"
	"math/bits"
)

// Add is polynomial addition over GF(2), i.e. bit-wise XOR.
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Xor(a, b)
}

// Multiply returns the carry-less product of a and b: the schoolbook
// shift-and-xor product, with no carries propagated between bit positions.
func Multiply(a, b *big.Int) *big.Int {
	result := new(big.Int)
	shifted := new(big.Int).Set(a)
	bb := new(big.Int).Set(b)
	for bb.Sign() != 0 {
		if bb.Bit(0) == 1 {
			result.Xor(result, shifted)
		}
		shifted = new(big.Int).Lsh(shifted, 1)
		bb = new(big.Int).Rsh(bb, 1)
	}
	return result
}

// Square interleaves zero bits between every bit of a - the carry-less
// analogue of squaring, since (sum a_i x^i)^2 = sum a_i x^2i over GF(2).
func Square(a *big.Int) *big.Int {
	result := new(big.Int)
	for i := 0; i < a.BitLen(); i++ {
		if a.Bit(i) == 1 {
			result.SetBit(result, 2*i, 1)
		}
	}
	return result
}

// Mod reduces a modulo the irreducible polynomial m by repeated
// shift-and-xor until bit-length(a) < bit-length(m).
func Mod(a, m *big.Int) *big.Int {
	r := new(big.Int).Set(a)
	mLen := m.BitLen()
	for r.BitLen() >= mLen {
		shift := uint(r.BitLen() - mLen)
		shiftedM := new(big.Int).Lsh(m, shift)
		r.Xor(r, shiftedM)
	}
	return r
}

// Div returns the quotient produced while reducing a modulo m (the same
// shift-and-xor process Mod performs, but accumulating the quotient instead
// of discarding it).
func Div(a, m *big.Int) *big.Int {
	r := new(big.Int).Set(a)
	q := new(big.Int)
	mLen := m.BitLen()
	for r.BitLen() >= mLen {
		shift := uint(r.BitLen() - mLen)
		shiftedM := new(big.Int).Lsh(m, shift)
		r.Xor(r, shiftedM)
		q.SetBit(q, int(shift), 1)
	}
	return q
}

// PowMod computes a^e mod m (left-to-right square-and-multiply, reducing
// after every step) for a non-negative integer exponent e.
func PowMod(a *big.Int, e uint, m *big.Int) *big.Int {
	if e == 0 {
		return Mod(big.NewInt(1), m)
	}
	base := Mod(a, m)
	result := big.NewInt(1)
	started := false
	for bitIdx := bits.Len(e) - 1; bitIdx >= 0; bitIdx-- {
		if started {
			result = Mod(Multiply(result, result), m)
		}
		if (e>>uint(bitIdx))&1 == 1 {
			if started {
				result = Mod(Multiply(result, base), m)
			} else {
				result = new(big.Int).Set(base)
			}
			started = true
		}
	}
	return result
}

// Inverse returns a^-1 mod m via the extended polynomial Euclidean
// algorithm. m must be irreducible for the inverse to exist for a != 0.
func Inverse(a, m *big.Int) *big.Int {
	// Extended Euclid over GF(2)[x]: maintain (r0, r1) and (t0, t1) with
	// r0 = t0*a and r1 = t1*a (mod m) until r1 reaches 0; r0 is then
	// gcd(a, m), which is 1 when m is irreducible and a != 0.
	r0, r1 := new(big.Int).Set(m), Mod(a, m)
	t0, t1 := big.NewInt(0), big.NewInt(1)
	for r1.Sign() != 0 {
		q := Div(r0, r1)
		r0, r1 = r1, Add(r0, Multiply(q, r1))
		t0, t1 = t1, Add(t0, Multiply(q, t1))
	}
	return Mod(t0, m)
}

// Divide computes a/b mod m as Mod(Multiply(a, Inverse(b, m)), m).
func Divide(a, b, m *big.Int) *big.Int {
	return Mod(Multiply(a, Inverse(b, m)), m)
}
