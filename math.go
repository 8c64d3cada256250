package core

import (
	"math"

	"github.com/holiman/uint256"
)

// Checked arithmetic over uint64 amounts. Every update that could wrap
// fails loudly instead of wrapping.

func CheckedAdd(a, b uint64) (uint64, error) {
	if b > math.MaxUint64-a {
		return 0, ErrMathOverflow
	}
	return a + b, nil
}

func CheckedSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrMathUnderflow
	}
	return a - b, nil
}

// MulDiv computes a*b/den with a 256-bit intermediate product, truncating
// toward zero. The quotient must fit in a uint64.
func MulDiv(a, b, den uint64) (uint64, error) {
	if den == 0 {
		return 0, ErrMathOverflow
	}
	z := new(uint256.Int).SetUint64(a)
	z.Mul(z, new(uint256.Int).SetUint64(b))
	z.Div(z, new(uint256.Int).SetUint64(den))
	if !z.IsUint64() {
		return 0, ErrMathOverflow
	}
	return z.Uint64(), nil
}

// mulDiv3 computes a*b*c/(d1*d2), truncating toward zero. The three-way
// product fits in 192 bits, the divisor in 128, so nothing wraps before
// the final width check.
func mulDiv3(a, b, c, d1, d2 uint64) (uint64, error) {
	if d1 == 0 || d2 == 0 {
		return 0, ErrMathOverflow
	}
	z := new(uint256.Int).SetUint64(a)
	z.Mul(z, new(uint256.Int).SetUint64(b))
	z.Mul(z, new(uint256.Int).SetUint64(c))
	den := new(uint256.Int).SetUint64(d1)
	den.Mul(den, new(uint256.Int).SetUint64(d2))
	z.Div(z, den)
	if !z.IsUint64() {
		return 0, ErrMathOverflow
	}
	return z.Uint64(), nil
}

// BpsOf returns amount*bps/10000, truncating toward zero.
func BpsOf(amount, bps uint64) (uint64, error) {
	return MulDiv(amount, bps, BPS_DENOMINATOR)
}
