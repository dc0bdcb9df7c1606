package probability

import (
	"math"

	"probcalc/domain/stats"
	"probcalc/internal/errors"

	"gonum.org/v1/gonum/floats"
)

// DistributionTolerance is the relative tolerance used when checking that
// distribution weights sum to one.
const DistributionTolerance = 1e-9

// ValidateDistribution returns weights unchanged when they form a discrete
// probability distribution. The weights are never normalized.
func ValidateDistribution(weights stats.Distribution) (stats.Distribution, error) {
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, errors.Newf(errors.CodeInvalidArgument, "weight %d is not a finite number", i)
		}
		if w < 0 {
			return nil, errors.Newf(errors.CodeInvalidArgument, "weight %d is negative (%v)", i, w)
		}
	}

	sum := floats.Sum(weights)
	if !isClose(sum, 1.0, DistributionTolerance) {
		return nil, errors.InvalidArgument("distribution must sum to 1")
	}
	return weights, nil
}

// isClose reports |a-b| <= relTol * max(|a|, |b|)
func isClose(a, b, relTol float64) bool {
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}
