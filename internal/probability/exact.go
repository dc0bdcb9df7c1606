package probability

import (
	"math"
	"math/big"

	"probcalc/domain/stats"
	"probcalc/internal/errors"

	"github.com/shopspring/decimal"
)

// MaxBinomialTrials bounds n in BinomialProbability. The exact combination
// count C(n, k) grows to about 0.3*n decimal digits, so unbounded n would
// make a single call run for an arbitrarily long time.
const MaxBinomialTrials = 100_000

// sqrtTwoPi is evaluated once in float64; see GaussianDensity.
var sqrtTwoPi = decimal.NewFromFloat(math.Sqrt(2 * math.Pi))

// NewCalculator creates a calculator carrying digits significant decimal digits
func NewCalculator(digits int) (*Calculator, error) {
	if digits < 1 || digits > math.MaxInt32/2 {
		return nil, errors.InvalidArgument("precision must be a positive number of significant digits")
	}
	return &Calculator{digits: int32(digits)}, nil
}

// BasicProbability returns favorable/total as an exact ratio
func (c *Calculator) BasicProbability(favorable, total int64) (stats.ExactProbability, error) {
	if total == 0 {
		return decimal.Zero, errors.InvalidArgument("total outcomes cannot be zero")
	}
	if total < 0 || favorable < 0 {
		return decimal.Zero, errors.InvalidArgument("outcome counts cannot be negative")
	}
	if favorable > total {
		return decimal.Zero, errors.Newf(errors.CodeInvalidArgument,
			"favorable outcomes (%d) exceed total outcomes (%d)", favorable, total)
	}
	return c.div(decimal.NewFromInt(favorable), decimal.NewFromInt(total)), nil
}

// ConditionalProbability returns P(A|B) = P(A and B) / P(B)
func (c *Calculator) ConditionalProbability(pAandB, pB float64) (stats.ExactProbability, error) {
	if pB == 0 {
		return decimal.Zero, errors.InvalidArgument("P(B) cannot be zero")
	}
	if !isProbability(pAandB) || !isProbability(pB) {
		return decimal.Zero, errors.InvalidArgument("probabilities must lie in [0, 1]")
	}
	if pAandB > pB {
		return decimal.Zero, errors.Newf(errors.CodeInvalidArgument,
			"P(A and B) = %v cannot exceed P(B) = %v", pAandB, pB)
	}
	return c.div(decimal.NewFromFloat(pAandB), decimal.NewFromFloat(pB)), nil
}

// BinomialProbability returns C(n,k) * p^k * (1-p)^(n-k). The combination
// count is exact; the power terms are rounded to the calculator's precision
// at every multiplication.
func (c *Calculator) BinomialProbability(n, k int64, p float64) (stats.ExactProbability, error) {
	if !isProbability(p) {
		return decimal.Zero, errors.InvalidArgument("probability p must be between 0 and 1")
	}
	if n < 0 || k < 0 {
		return decimal.Zero, errors.InvalidArgument("trial and success counts cannot be negative")
	}
	if k > n {
		return decimal.Zero, errors.Newf(errors.CodeInvalidArgument,
			"successes (%d) cannot exceed trials (%d)", k, n)
	}
	if n > MaxBinomialTrials {
		return decimal.Zero, errors.Newf(errors.CodeInvalidArgument,
			"trials (%d) exceed the supported maximum of %d", n, MaxBinomialTrials)
	}

	combination := decimal.NewFromBigInt(new(big.Int).Binomial(n, k), 0)
	success := decimal.NewFromFloat(p)
	failure := decimal.NewFromInt(1).Sub(success)

	result := c.mul(c.round(combination), c.pow(success, k))
	return c.mul(result, c.pow(failure, n-k)), nil
}

// GaussianDensity evaluates the normal probability density
// 1/(stdDev*sqrt(2*pi)) * exp(-0.5*((x-mean)/stdDev)^2).
//
// sqrt(2*pi) and the exponential are evaluated in float64 and lifted into
// the decimal result, so digits past float64 precision (about 16
// significant digits) are not meaningful. The remaining arithmetic runs at
// the calculator's precision.
func (c *Calculator) GaussianDensity(x, mean, stdDev float64) (stats.ExactProbability, error) {
	if stdDev == 0 {
		return decimal.Zero, errors.InvalidArgument("standard deviation cannot be zero")
	}
	if stdDev < 0 {
		return decimal.Zero, errors.InvalidArgument("standard deviation must be positive")
	}
	if !isFinite(x) || !isFinite(mean) || !isFinite(stdDev) {
		return decimal.Zero, errors.InvalidArgument("gaussian inputs must be finite")
	}

	sigma := decimal.NewFromFloat(stdDev)
	coefficient := c.div(decimal.NewFromInt(1), c.mul(sigma, sqrtTwoPi))

	z := c.div(decimal.NewFromFloat(x).Sub(decimal.NewFromFloat(mean)), sigma)
	exponent := c.mul(decimal.NewFromFloat(-0.5), c.mul(z, z))

	return c.mul(coefficient, decimal.NewFromFloat(math.Exp(exponent.InexactFloat64()))), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isProbability(v float64) bool {
	return v >= 0 && v <= 1
}
