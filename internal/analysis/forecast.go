package analysis

import (
	dstats "probcalc/domain/stats"
	"probcalc/internal/errors"

	"gonum.org/v1/gonum/stat"
)

// FitLinear fits y = Slope*i + Intercept by ordinary least squares, using
// the zero-based position i of each value as the only regressor.
func FitLinear(data dstats.Dataset) (dstats.LinearFit, error) {
	if len(data) < 2 {
		return dstats.LinearFit{}, errors.InvalidArgument("at least two data points are required for time series analysis")
	}
	if err := requireFinite(data); err != nil {
		return dstats.LinearFit{}, err
	}

	positions := make([]float64, len(data))
	for i := range positions {
		positions[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(positions, data, nil, false)

	return dstats.LinearFit{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(positions, data, nil, intercept, slope),
		Points:    len(data),
	}, nil
}

// ForecastLinear extrapolates the least-squares line of data to the next
// steps positions. The fit is purely linear: seasonal or curved series are
// not modelled and forecast accuracy degrades accordingly.
func ForecastLinear(data dstats.Dataset, steps int) ([]float64, error) {
	if steps < 0 {
		return nil, errors.InvalidArgument("forecast steps cannot be negative")
	}

	fit, err := FitLinear(data)
	if err != nil {
		return nil, err
	}

	predictions := make([]float64, steps)
	for s := range predictions {
		predictions[s] = fit.At(fit.Points + s)
	}
	return predictions, nil
}
