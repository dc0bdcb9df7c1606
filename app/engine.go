package app

import (
	"context"

	"probcalc/domain/stats"
	"probcalc/internal"
	"probcalc/internal/analysis"
	"probcalc/internal/batch"
	"probcalc/internal/config"
	"probcalc/internal/errors"
	"probcalc/internal/probability"
)

// Engine exposes the probability and statistics primitives behind one
// configured instance. Precision and pool size are fixed at construction.
type Engine struct {
	calculator *probability.Calculator
	executor   *batch.Executor
	logger     *internal.Logger
}

// NewEngine creates an engine from cfg. A nil cfg uses config.Default().
// Extra executor options (metrics, a custom logger) are applied after the
// configured ones.
func NewEngine(cfg *config.Config, opts ...batch.Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid engine configuration")
	}

	calculator, err := probability.NewCalculator(cfg.Precision.Digits)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create probability calculator")
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))
	executorOpts := append([]batch.Option{batch.WithLogger(logger)}, opts...)

	engine := &Engine{
		calculator: calculator,
		executor:   batch.NewExecutor(cfg.Batch.Workers, executorOpts...),
		logger:     logger,
	}
	logger.Debug("[Engine] ready: precision=%d digits, workers=%d", engine.Precision(), engine.Workers())

	return engine, nil
}

// Precision returns the significant decimal digits of exact results
func (e *Engine) Precision() int {
	return e.calculator.Digits()
}

// Workers returns the batch pool size
func (e *Engine) Workers() int {
	return e.executor.Workers()
}

// BasicProbability returns favorable/total
func (e *Engine) BasicProbability(favorable, total int64) (stats.ExactProbability, error) {
	return e.calculator.BasicProbability(favorable, total)
}

// ConditionalProbability returns P(A and B) / P(B)
func (e *Engine) ConditionalProbability(pAandB, pB float64) (stats.ExactProbability, error) {
	return e.calculator.ConditionalProbability(pAandB, pB)
}

// BinomialProbability returns the probability of k successes in n trials
func (e *Engine) BinomialProbability(n, k int64, p float64) (stats.ExactProbability, error) {
	return e.calculator.BinomialProbability(n, k, p)
}

// GaussianDensity returns the normal density at x. Digits beyond float64
// precision are not meaningful, see probability.Calculator.GaussianDensity.
func (e *Engine) GaussianDensity(x, mean, stdDev float64) (stats.ExactProbability, error) {
	return e.calculator.GaussianDensity(x, mean, stdDev)
}

// ValidateDistribution returns weights unchanged if they sum to one
func (e *Engine) ValidateDistribution(weights stats.Distribution) (stats.Distribution, error) {
	return probability.ValidateDistribution(weights)
}

// PredictiveEstimate returns the mean of data
func (e *Engine) PredictiveEstimate(data stats.Dataset) (float64, error) {
	return analysis.PredictiveEstimate(data)
}

// RiskAssessment returns the sample standard deviation of data
func (e *Engine) RiskAssessment(data stats.Dataset) (float64, error) {
	return analysis.RiskAssessment(data)
}

// SummaryStatistics returns mean, sample standard deviation, min, max and median
func (e *Engine) SummaryStatistics(data stats.Dataset) (stats.Summary, error) {
	return analysis.SummaryStatistics(data)
}

// ForecastLinear extrapolates a least-squares line steps positions ahead
func (e *Engine) ForecastLinear(data stats.Dataset, steps int) ([]float64, error) {
	return analysis.ForecastLinear(data, steps)
}

// FitLinear returns the least-squares line ForecastLinear extrapolates
func (e *Engine) FitLinear(data stats.Dataset) (stats.LinearFit, error) {
	return analysis.FitLinear(data)
}

// ParallelMap applies fn(item, args...) to every item on the engine's
// worker pool and returns the results in input order.
func ParallelMap[T, R any](ctx context.Context, e *Engine, items []T, fn batch.Func[T, R], args ...any) ([]R, error) {
	return batch.Map(ctx, e.executor, items, fn, args...)
}
