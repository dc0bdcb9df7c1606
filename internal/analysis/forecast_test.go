package analysis

import (
	"testing"

	dstats "probcalc/domain/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastLinear_ExactContinuation(t *testing.T) {
	got, err := ForecastLinear(dstats.Dataset{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDeltaSlice(t, []float64{6, 7, 8}, got, 1e-9)
}

func TestForecastLinear_NoisySeries(t *testing.T) {
	// slope = Sxy/Sxx = 9/5
	data := dstats.Dataset{1.5, 2.5, 5.5, 6.5}

	fit, err := FitLinear(data)
	require.NoError(t, err)
	assert.InDelta(t, 1.8, fit.Slope, 1e-9)
	assert.InDelta(t, 1.3, fit.Intercept, 1e-9)
	assert.Less(t, fit.RSquared, 1.0)
	assert.Equal(t, 4, fit.Points)

	got, err := ForecastLinear(data, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{8.5, 10.3}, got, 1e-9)
}

func TestForecastLinear_ConstantSeries(t *testing.T) {
	got, err := ForecastLinear(dstats.Dataset{4, 4, 4}, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 4}, got, 1e-12)
}

func TestForecastLinear_ZeroSteps(t *testing.T) {
	got, err := ForecastLinear(dstats.Dataset{1, 2}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestForecastLinear_InvalidInputs(t *testing.T) {
	_, err := ForecastLinear(dstats.Dataset{1}, 1)
	requireInvalidArgument(t, err)

	_, err = ForecastLinear(dstats.Dataset{1, 2, 3}, -1)
	requireInvalidArgument(t, err)
}

func TestFitLinear_PerfectLine(t *testing.T) {
	fit, err := FitLinear(dstats.Dataset{10, 7, 4, 1})
	require.NoError(t, err)
	assert.InDelta(t, -3, fit.Slope, 1e-12)
	assert.InDelta(t, 10, fit.Intercept, 1e-12)
	assert.InDelta(t, 1, fit.RSquared, 1e-12)
	assert.InDelta(t, -2, fit.At(4), 1e-12)
}
