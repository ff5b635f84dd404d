package types

import (
	"math/big"
)

// Mul64 multiplies two int64 and reports whether the product fits.
func Mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) == ((a < 0) != (b < 0)) {
		if c/b == a {
			return c, true
		}
	}
	return c, false
}

// Add64 adds two int64 and reports whether the sum fits.
func Add64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) == (b > 0) {
		return c, true
	}
	if b == 0 {
		return c, true
	}
	return c, false
}

// MulDiv64 computes floor(a*b/c) exactly for non-negative a, b and positive
// c. The intermediate product is widened through big.Int when it overflows
// int64, so the result is identical on every node regardless of platform.
// Returns false if c <= 0, an input is negative, or the quotient does not
// fit in int64.
func MulDiv64(a, b, c int64) (int64, bool) {
	if c <= 0 || a < 0 || b < 0 {
		return 0, false
	}
	if product, ok := Mul64(a, b); ok {
		return product / c, true
	}
	var bi big.Int
	bi.Div(bi.Mul(big.NewInt(a), big.NewInt(b)), big.NewInt(c))
	if !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}
