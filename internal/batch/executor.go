package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"probcalc/internal"
	"probcalc/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Func is applied to one batch item together with the call's extra arguments
type Func[T, R any] func(item T, args ...any) (R, error)

// Executor runs batches of independent calls on a bounded worker pool.
// The pool exists only for the duration of a Map call.
type Executor struct {
	workers int
	logger  *internal.Logger
	metrics *Metrics
}

// Option configures an Executor
type Option func(*Executor)

// WithLogger sets the logger used for batch lifecycle messages
func WithLogger(logger *internal.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics records batch outcomes on m
func WithMetrics(m *Metrics) Option {
	return func(e *Executor) {
		e.metrics = m
	}
}

// NewExecutor creates an executor with the given pool size. A size below
// one selects the number of available CPUs.
func NewExecutor(workers int, opts ...Option) *Executor {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	e := &Executor{
		workers: workers,
		logger:  internal.DefaultLogger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers returns the pool size
func (e *Executor) Workers() int {
	return e.workers
}

// Map applies fn(item, args...) to every item and returns the results in
// input order, whatever order the workers finish in.
//
// Items and args are checked before any worker starts; values holding
// functions, channels or unsafe pointers fail with a SERIALIZATION_ERROR.
// Every dispatched call runs to completion. If any call returns an error
// or panics, Map returns a COMPUTATION_ERROR for the lowest failing index
// wrapping the original failure. Items not yet dispatched when ctx is
// cancelled fail with the context error. A nil ctx is treated as
// context.Background().
func Map[T, R any](ctx context.Context, e *Executor, items []T, fn Func[T, R], args ...any) ([]R, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if fn == nil {
		return nil, errors.InvalidArgument("batch function cannot be nil")
	}
	for i, item := range items {
		if err := checkTransferable(item); err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
	}
	for i, arg := range args {
		if err := checkTransferable(arg); err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
	}

	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	batchID := uuid.New()
	start := time.Now()
	e.logger.Debug("[BatchExecutor] batch %s: dispatching %d items on %d workers", batchID, len(items), e.workers)

	failures := make([]error, len(items))

	g := new(errgroup.Group)
	g.SetLimit(e.workers)

	for i := range items {
		if err := ctx.Err(); err != nil {
			failures[i] = err
			continue
		}
		index := i
		g.Go(func() error {
			results[index], failures[index] = runItem(fn, items[index], args)
			return nil
		})
	}

	// Workers never return errors to the group, so Wait only joins them
	_ = g.Wait()

	duration := time.Since(start)
	failed := 0
	first := -1
	for i, err := range failures {
		if err != nil {
			failed++
			if first < 0 {
				first = i
			}
		}
	}

	if e.metrics != nil {
		e.metrics.observe(len(items)-failed, failed, duration)
	}

	if first >= 0 {
		e.logger.Debug("[BatchExecutor] batch %s: %d of %d items failed in %v", batchID, failed, len(items), duration)
		return nil, errors.ComputationError(fmt.Sprintf("batch item %d failed", first), failures[first])
	}

	e.logger.Debug("[BatchExecutor] batch %s: completed %d items in %v", batchID, len(items), duration)
	return results, nil
}

// runItem runs one call, converting a panic into an error
func runItem[T, R any](fn Func[T, R], item T, args []any) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(item, args...)
}
