package probability

import (
	"math"
	"strings"
	"testing"

	"probcalc/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func newTestCalculator(t *testing.T, digits int) *Calculator {
	t.Helper()
	calc, err := NewCalculator(digits)
	require.NoError(t, err)
	return calc
}

func requireInvalidArgument(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err), "unexpected error: %v", err)
}

func TestNewCalculator_RejectsNonPositivePrecision(t *testing.T) {
	_, err := NewCalculator(0)
	requireInvalidArgument(t, err)

	calc := newTestCalculator(t, 200)
	assert.Equal(t, 200, calc.Digits())
}

func TestBasicProbability_Bounds(t *testing.T) {
	calc := newTestCalculator(t, 200)

	for _, total := range []int64{1, 2, 6, 7, 1000003} {
		one, err := calc.BasicProbability(total, total)
		require.NoError(t, err)
		assert.True(t, one.Equal(decimal.NewFromInt(1)), "total=%d got %s", total, one)

		zero, err := calc.BasicProbability(0, total)
		require.NoError(t, err)
		assert.True(t, zero.IsZero(), "total=%d got %s", total, zero)
	}
}

func TestBasicProbability_CarriesConfiguredPrecision(t *testing.T) {
	calc := newTestCalculator(t, 200)

	third, err := calc.BasicProbability(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "0."+strings.Repeat("3", 200), third.String())

	sixth, err := calc.BasicProbability(1, 6)
	require.NoError(t, err)
	assert.Equal(t, "0.1"+strings.Repeat("6", 198)+"7", sixth.String())
}

func TestBasicProbability_PrecisionIsPerCalculator(t *testing.T) {
	coarse := newTestCalculator(t, 5)
	fine := newTestCalculator(t, 30)

	a, err := coarse.BasicProbability(1, 3)
	require.NoError(t, err)
	b, err := fine.BasicProbability(1, 3)
	require.NoError(t, err)

	assert.Equal(t, "0.33333", a.String())
	assert.Equal(t, "0."+strings.Repeat("3", 30), b.String())
}

func TestBasicProbability_InvalidInputs(t *testing.T) {
	calc := newTestCalculator(t, 50)

	_, err := calc.BasicProbability(1, 0)
	requireInvalidArgument(t, err)

	_, err = calc.BasicProbability(-1, 4)
	requireInvalidArgument(t, err)

	_, err = calc.BasicProbability(5, 4)
	requireInvalidArgument(t, err)
}

func TestConditionalProbability(t *testing.T) {
	calc := newTestCalculator(t, 200)

	got, err := calc.ConditionalProbability(0.2, 0.5)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("0.4")), "got %s", got)

	_, err = calc.ConditionalProbability(0.2, 0)
	requireInvalidArgument(t, err)

	_, err = calc.ConditionalProbability(0.6, 0.5)
	requireInvalidArgument(t, err)

	_, err = calc.ConditionalProbability(math.NaN(), 0.5)
	requireInvalidArgument(t, err)
}

func TestBinomialProbability_KnownValue(t *testing.T) {
	calc := newTestCalculator(t, 200)

	// C(10,3) / 2^10 = 120/1024
	got, err := calc.BinomialProbability(10, 3, 0.5)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("0.1171875")), "got %s", got)
}

func TestBinomialProbability_SumsToOne(t *testing.T) {
	calc := newTestCalculator(t, 200)
	one := decimal.NewFromInt(1)
	tolerance := decimal.RequireFromString("1e-9")

	for _, n := range []int64{0, 1, 5, 20, 60} {
		for _, p := range []float64{0, 0.1, 0.25, 0.5, 0.73, 1} {
			sum := decimal.Zero
			for k := int64(0); k <= n; k++ {
				term, err := calc.BinomialProbability(n, k, p)
				require.NoError(t, err)
				assert.False(t, term.IsNegative())
				assert.True(t, term.LessThanOrEqual(one))
				sum = sum.Add(term)
			}
			assert.True(t, sum.Sub(one).Abs().LessThanOrEqual(tolerance), "n=%d p=%v sum=%s", n, p, sum)
		}
	}
}

func TestBinomialProbability_MatchesFloatReference(t *testing.T) {
	calc := newTestCalculator(t, 100)
	ref := distuv.Binomial{N: 30, P: 0.3}

	for k := int64(0); k <= 30; k++ {
		got, err := calc.BinomialProbability(30, k, 0.3)
		require.NoError(t, err)
		assert.InDelta(t, ref.Prob(float64(k)), got.InexactFloat64(), 1e-12, "k=%d", k)
	}
}

func TestBinomialProbability_InvalidInputs(t *testing.T) {
	calc := newTestCalculator(t, 50)

	_, err := calc.BinomialProbability(10, 3, 1.5)
	requireInvalidArgument(t, err)

	_, err = calc.BinomialProbability(10, 3, -0.1)
	requireInvalidArgument(t, err)

	_, err = calc.BinomialProbability(3, 4, 0.5)
	requireInvalidArgument(t, err)

	_, err = calc.BinomialProbability(3, -1, 0.5)
	requireInvalidArgument(t, err)

	_, err = calc.BinomialProbability(-3, 0, 0.5)
	requireInvalidArgument(t, err)
}

func TestBinomialProbability_TrialLimit(t *testing.T) {
	calc := newTestCalculator(t, 50)

	_, err := calc.BinomialProbability(1<<40, 1<<39, 0.5)
	requireInvalidArgument(t, err)

	_, err = calc.BinomialProbability(MaxBinomialTrials+1, 0, 0.5)
	requireInvalidArgument(t, err)

	got, err := calc.BinomialProbability(MaxBinomialTrials, MaxBinomialTrials, 1)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1)), "got %s", got)
}

func TestGaussianDensity_PeakAtMean(t *testing.T) {
	calc := newTestCalculator(t, 200)

	for _, sd := range []float64{0.5, 1, 2.5, 10} {
		for _, mean := range []float64{-3, 0, 42} {
			got, err := calc.GaussianDensity(mean, mean, sd)
			require.NoError(t, err)

			expected := 1 / (sd * math.Sqrt(2*math.Pi))
			assert.InDelta(t, expected, got.InexactFloat64(), 1e-15, "sd=%v mean=%v", sd, mean)
		}
	}
}

func TestGaussianDensity_MatchesFloatReference(t *testing.T) {
	calc := newTestCalculator(t, 60)
	normal := distuv.Normal{Mu: 1.5, Sigma: 2}

	for _, x := range []float64{-4, -1, 0, 1.5, 2, 7.25} {
		got, err := calc.GaussianDensity(x, 1.5, 2)
		require.NoError(t, err)
		assert.InDelta(t, normal.Prob(x), got.InexactFloat64(), 1e-14, "x=%v", x)
	}
}

func TestGaussianDensity_InvalidInputs(t *testing.T) {
	calc := newTestCalculator(t, 50)

	_, err := calc.GaussianDensity(1, 0, 0)
	requireInvalidArgument(t, err)

	_, err = calc.GaussianDensity(1, 0, -1)
	requireInvalidArgument(t, err)

	_, err = calc.GaussianDensity(math.Inf(1), 0, 1)
	requireInvalidArgument(t, err)
}

func TestPrimitives_Idempotent(t *testing.T) {
	calc := newTestCalculator(t, 200)

	first, err := calc.BinomialProbability(25, 7, 0.37)
	require.NoError(t, err)
	second, err := calc.BinomialProbability(25, 7, 0.37)
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())

	g1, err := calc.GaussianDensity(0.3, 0, 1)
	require.NoError(t, err)
	g2, err := calc.GaussianDensity(0.3, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, g1.String(), g2.String())
}
