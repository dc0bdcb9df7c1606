package probability

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Calculator evaluates exact probability primitives at a fixed number of
// significant decimal digits. A Calculator is immutable and safe for
// concurrent use.
type Calculator struct {
	digits int32
}

// Digits returns the number of significant decimal digits carried by results
func (c *Calculator) Digits() int {
	return int(c.digits)
}

// magnitude returns floor(log10(|d|)) for a non-zero d
func magnitude(d decimal.Decimal) int32 {
	coefficient := new(big.Int).Abs(d.Coefficient())
	return int32(len(coefficient.String())) + d.Exponent() - 1
}

// round keeps c.digits significant digits of d, half away from zero
func (c *Calculator) round(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return d.Round(c.digits - 1 - magnitude(d))
}

func (c *Calculator) mul(a, b decimal.Decimal) decimal.Decimal {
	return c.round(a.Mul(b))
}

// div divides with one guard digit beyond the configured precision before
// the final rounding. b must be non-zero.
func (c *Calculator) div(a, b decimal.Decimal) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	places := c.digits + 1 - (magnitude(a) - magnitude(b))
	return c.round(a.DivRound(b, places))
}

// pow raises base to a non-negative integer power by repeated squaring,
// rounding every intermediate product. pow(x, 0) is 1 for every x.
func (c *Calculator) pow(base decimal.Decimal, exp int64) decimal.Decimal {
	result := decimal.NewFromInt(1)
	base = c.round(base)
	for exp > 0 {
		if exp&1 == 1 {
			result = c.mul(result, base)
		}
		exp >>= 1
		if exp > 0 {
			base = c.mul(base, base)
		}
	}
	return result
}
