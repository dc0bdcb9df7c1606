package analysis

import (
	"math"

	dstats "probcalc/domain/stats"
	"probcalc/internal/errors"

	"github.com/montanaflynn/stats"
)

// PredictiveEstimate returns the arithmetic mean of data as the point
// estimate for the next observation.
func PredictiveEstimate(data dstats.Dataset) (float64, error) {
	if len(data) == 0 {
		return 0, errors.InvalidArgument("data cannot be empty")
	}
	if err := requireFinite(data); err != nil {
		return 0, err
	}

	mean, err := stats.Mean(stats.Float64Data(data))
	if err != nil {
		return 0, errors.Wrap(err, "mean")
	}
	return mean, nil
}

// RiskAssessment returns the Bessel-corrected sample standard deviation
// of data, used as a proxy for risk.
func RiskAssessment(data dstats.Dataset) (float64, error) {
	if len(data) < 2 {
		return 0, errors.InvalidArgument("at least two data points are required for risk assessment")
	}
	if err := requireFinite(data); err != nil {
		return 0, err
	}

	stdDev, err := stats.StandardDeviationSample(stats.Float64Data(data))
	if err != nil {
		return 0, errors.Wrap(err, "sample standard deviation")
	}
	return stdDev, nil
}

// SummaryStatistics computes mean, sample standard deviation, min, max and
// median. It needs at least two points because of the standard deviation.
func SummaryStatistics(data dstats.Dataset) (dstats.Summary, error) {
	summary := dstats.Summary{}

	if len(data) < 2 {
		return summary, errors.InvalidArgument("at least two data points are required for summary statistics")
	}
	if err := requireFinite(data); err != nil {
		return summary, err
	}

	input := stats.Float64Data(data)

	mean, err := input.Mean()
	if err != nil {
		return summary, errors.Wrap(err, "mean")
	}

	stdDev, err := input.StandardDeviationSample()
	if err != nil {
		return summary, errors.Wrap(err, "sample standard deviation")
	}

	min, err := input.Min()
	if err != nil {
		return summary, errors.Wrap(err, "min")
	}

	max, err := input.Max()
	if err != nil {
		return summary, errors.Wrap(err, "max")
	}

	// Median sorts a copy, the caller's data keeps its order
	median, err := input.Median()
	if err != nil {
		return summary, errors.Wrap(err, "median")
	}

	summary.Count = len(data)
	summary.Mean = mean
	summary.StdDev = stdDev
	summary.Min = min
	summary.Max = max
	summary.Median = median

	return summary, nil
}

func requireFinite(data dstats.Dataset) error {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Newf(errors.CodeInvalidArgument, "data point %d is not a finite number", i)
		}
	}
	return nil
}
