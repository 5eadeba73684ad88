// Package fixedpoint encodes integers and non-negative floats as elements
// of a plaintext group ℤ/m, the encoding every PHE scheme's plaintext space
// ultimately speaks. A float m is represented by a (dividend, divisor) pair
// with divisor = 10^precision, normalized into a single group element via
// dividend * divisor^-1 mod m - the classic "encode a fraction as its
// modular-inverse product" trick that lets fixed-point values ride through
// a scheme's multiplicative/additive homomorphism undisturbed.
package fixedpoint

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shieldphe/gophe/bigmod"
)

// DefaultPrecision is used when a caller does not specify one.
const DefaultPrecision = 5

// InferPrecision recovers the number of decimal digits in value's shortest
// round-tripping decimal representation, matching "when precision is not
// given, use the number of decimal digits present in the literal."
func InferPrecision(value float64) int {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		return len(s) - idx - 1
	}
	return 0
}

// Fractionize returns (dividend, divisor) for a non-negative value, with
// divisor = 10^precision and dividend = floor(value * 10^precision) mod m.
// value is read as its shortest round-tripping decimal literal (3.14159, not
// the nearest binary float64 3.14158999...) and multiplied in exact rational
// arithmetic, so the result is exact rather than float64-rounded.
func Fractionize(value float64, m *big.Int, precision int) (dividend, divisor *big.Int, err error) {
	if value < 0 {
		return nil, nil, newError("fractionize", KindUnsupportedInput, nil)
	}
	divisor = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)

	scaled, ok := new(big.Rat).SetString(strconv.FormatFloat(value, 'g', -1, 64))
	if !ok {
		return nil, nil, newError("fractionize", KindInvalidInput, nil)
	}
	scaled.Mul(scaled, new(big.Rat).SetInt(divisor))

	scaledInt := new(big.Int).Quo(scaled.Num(), scaled.Denom()) // truncation toward zero; value>=0 so this is floor
	dividend = new(big.Int).Mod(scaledInt, m)
	return dividend, divisor, nil
}

// NormalizeInput maps value (an int, int64, *big.Int or float64) into the plaintext
// group [0, m). Integers, positive or negative, map via modular wrap.
// Non-negative floats map through Fractionize then mod_inv(divisor). A
// negative float is the one documented limitation: it FAILS with
// UnsupportedInput.
func NormalizeInput(value interface{}, m *big.Int, precision int) (*big.Int, error) {
	switch v := value.(type) {
	case int:
		return bigmod.PositiveMod(big.NewInt(int64(v)), m), nil
	case int64:
		return bigmod.PositiveMod(big.NewInt(v), m), nil
	case *big.Int:
		return bigmod.PositiveMod(v, m), nil
	case float64:
		if v < 0 {
			return nil, newError("normalize_input", KindUnsupportedInput, nil)
		}
		dividend, divisor, err := Fractionize(v, m, precision)
		if err != nil {
			return nil, err
		}
		divisorInv, err := bigmod.ModInverse(divisor, m)
		if err != nil {
			return nil, newError("normalize_input", KindInvalidInput, err)
		}
		result := new(big.Int).Mul(dividend, divisorInv)
		return result.Mod(result, m), nil
	default:
		return nil, newError("normalize_input", KindInvalidInput, nil)
	}
}
