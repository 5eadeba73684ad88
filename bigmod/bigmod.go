// Package bigmod implements the arbitrary-precision modular arithmetic and
// number-theoretic primitives shared by every PHE scheme: modular
// exponentiation and inverse, gcd, probabilistic prime generation, the
// Jacobi symbol, small-integer factorization, and Chinese Remainder
// reconstruction. Every operation accepts arbitrary-sized integers; there is
// no fixed-width fallback anywhere in this package.
package bigmod

import (
	"crypto/rand"
	"math/big"

	"github.com/shieldphe/gophe/prng"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// ModPow computes base^exp mod m. A negative exp is handled by inverting
// base mod m first and raising the inverse to |exp|, per spec.
func ModPow(base, exp, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, newError("mod_pow", KindInvalidInput, nil)
	}
	if exp.Sign() >= 0 {
		return new(big.Int).Exp(base, exp, m), nil
	}
	inv, err := ModInverse(base, m)
	if err != nil {
		return nil, newError("mod_pow", KindNotInvertible, err)
	}
	posExp := new(big.Int).Neg(exp)
	return new(big.Int).Exp(inv, posExp, m), nil
}

// ModInverse returns a^-1 mod m, failing when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, newError("mod_inv", KindInvalidInput, nil)
	}
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, newError("mod_inv", KindNotInvertible, nil)
	}
	return inv, nil
}

// GCD returns the greatest common divisor of a and b (always non-negative).
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// Jacobi returns the Jacobi symbol (a/n) for odd n > 0.
func Jacobi(a, n *big.Int) int {
	return big.Jacobi(a, n)
}

// RandomPrime draws a uniform odd candidate with bit length in [lowBits,
// highBits] and tests it for primality to >=64-bit confidence (ProbablyPrime
// with 20 Miller-Rabin rounds, matching the Go stdlib convention for
// cryptographic primes), drawing a fresh candidate up to 2^20 times before
// failing with KindNoPrimeFound. lowBits and highBits describe the
// candidate's bit length, not its numeric range.
func RandomPrime(src *prng.Source, lowBits, highBits int) (*big.Int, error) {
	if lowBits <= 1 || highBits < lowBits {
		return nil, newError("random_prime", KindInvalidInput, nil)
	}
	bits := lowBits
	if highBits > lowBits {
		span := highBits - lowBits + 1
		bits = lowBits + int(src.Int(8).Int64())%span
	}
	const maxAttempts = 1 << 20
	for i := 0; i < maxAttempts; i++ {
		candidate := src.OddCandidate(bits)
		if candidate.ProbablyPrime(20) {
			return candidate, nil
		}
	}
	return nil, newError("random_prime", KindNoPrimeFound, nil)
}

// CryptoRandomPrime is a convenience wrapper around crypto/rand.Prime for
// call sites that do not need a seedable source (key sizes large enough that
// the quadratic rejection-sampling loop in RandomPrime would be wasteful).
func CryptoRandomPrime(bits int) (*big.Int, error) {
	p, err := rand.Prime(rand.Reader, bits)
	if err != nil {
		return nil, newError("random_prime", KindNoPrimeFound, err)
	}
	return p, nil
}

// FactorInt trial-divides n (which MUST be small, per spec - this is used
// only to factor things like Naccache-Stern's small-prime product sigma, not
// general moduli) and returns its prime factors with multiplicity.
func FactorInt(n *big.Int) []*big.Int {
	n = new(big.Int).Abs(n)
	var factors []*big.Int
	if n.Cmp(two) < 0 {
		return factors
	}
	d := new(big.Int).Set(two)
	for d.Cmp(n) <= 0 {
		for new(big.Int).Mod(n, d).Sign() == 0 {
			factors = append(factors, new(big.Int).Set(d))
			n.Div(n, d)
		}
		d.Add(d, one)
		if new(big.Int).Mul(d, d).Cmp(n) > 0 {
			break
		}
	}
	if n.Cmp(one) > 0 {
		factors = append(factors, n)
	}
	return factors
}

// CRTTerm is one (remainder, modulus) pair for SolveCRT.
type CRTTerm struct {
	Remainder *big.Int
	Modulus   *big.Int
}

// SolveCRT reconstructs the unique x mod M = prod(terms[i].Modulus) such that
// x == terms[i].Remainder (mod terms[i].Modulus) for every term, assuming the
// moduli are pairwise coprime.
func SolveCRT(terms []CRTTerm) (x, modulus *big.Int, err error) {
	if len(terms) == 0 {
		return nil, nil, newError("solve_crt", KindInvalidInput, nil)
	}
	x = new(big.Int).Mod(terms[0].Remainder, terms[0].Modulus)
	modulus = new(big.Int).Set(terms[0].Modulus)
	for _, t := range terms[1:] {
		g := GCD(modulus, t.Modulus)
		if g.Cmp(one) != 0 {
			return nil, nil, newError("solve_crt", KindInvalidInput, nil)
		}
		// Solve x + modulus*k == t.Remainder (mod t.Modulus)
		mInv, invErr := ModInverse(modulus, t.Modulus)
		if invErr != nil {
			return nil, nil, newError("solve_crt", KindNotInvertible, invErr)
		}
		diff := new(big.Int).Sub(t.Remainder, x)
		k := new(big.Int).Mod(new(big.Int).Mul(diff, mInv), t.Modulus)
		x = new(big.Int).Add(x, new(big.Int).Mul(modulus, k))
		modulus = new(big.Int).Mul(modulus, t.Modulus)
		x.Mod(x, modulus)
	}
	return x, modulus, nil
}

// PositiveMod returns a mod m normalized into [0, m), matching the spec's
// "modular wrap" treatment of negative integers.
func PositiveMod(a, m *big.Int) *big.Int {
	r := new(big.Int).Mod(a, m)
	return r
}
