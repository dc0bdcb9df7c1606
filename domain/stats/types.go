package stats

import (
	"github.com/shopspring/decimal"
)

// ============================================================================
// STABLE PRIMITIVES
// ============================================================================

// ExactProbability is an arbitrary-precision decimal probability.
// INVARIANTS:
// - Rounded to the producing calculator's significant-digit precision
// - Lies in [0, 1] whenever the inputs were valid probabilities
type ExactProbability = decimal.Decimal

// Dataset is an ordered, finite sequence of observations
type Dataset []float64

// Distribution is a candidate discrete distribution: one non-negative weight per outcome
type Distribution []float64

// Summary holds the descriptive statistics of a Dataset
// INVARIANTS:
// - Count >= 2 (StdDev is the Bessel-corrected sample deviation)
// - Min <= Median <= Max
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// LinearFit is an ordinary least-squares line y = Slope*i + Intercept over
// zero-based positions i.
type LinearFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"` // 1 for a perfectly linear series, NaN for a constant one
	Points    int     `json:"points"`
}

// At evaluates the fitted line at position i
func (f LinearFit) At(i int) float64 {
	return f.Slope*float64(i) + f.Intercept
}
