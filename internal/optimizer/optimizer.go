package optimizer

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine"
	engine_v1 "github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// OnOptimizeStartCallback is called once before any worker starts.
type OnOptimizeStartCallback func(combinations int, workers int)

// OnProgressCallback is called from worker goroutines, possibly concurrently.
type OnProgressCallback func(current int64, total int64)

// OnOptimizeEndCallback is called when Run returns.
type OnOptimizeEndCallback func(err error)

type Callbacks struct {
	OnOptimizeStart *OnOptimizeStartCallback
	OnProgress      *OnProgressCallback
	OnOptimizeEnd   *OnOptimizeEndCallback
}

// Outcome is the result of one parameter combination.
// Balance is the mark-to-market balance when the run stopped, even when it failed.
type Outcome[P any] struct {
	Params  P
	Balance float64
	Err     error
}

func (o Outcome[P]) Failed() bool {
	return o.Err != nil
}

// Result is everything a Run produced. Outcomes follow the order of the generated combinations.
type Result[P any] struct {
	RunID     string
	Outcomes  []Outcome[P]
	Best      []Outcome[P]
	Errors    []Outcome[P]
	Workers   int
	StartedAt time.Time
	Duration  time.Duration
}

// Successes returns the outcomes whose run completed.
func (r *Result[P]) Successes() []Outcome[P] {
	return slices.DeleteFunc(slices.Clone(r.Outcomes), Outcome[P].Failed)
}

// Failures returns the outcomes whose transform or run returned an error.
func (r *Result[P]) Failures() []Outcome[P] {
	return slices.DeleteFunc(slices.Clone(r.Outcomes), func(o Outcome[P]) bool {
		return !o.Failed()
	})
}

// Optimizer runs one backtest per parameter combination on a fixed pool of workers.
// P is a parameter combination, S the strategy state built from it.
type Optimizer[P any, S any] struct {
	candles        []types.Candle
	backtestConfig engine_v1.BacktestConfig
	config         OptimizerConfig
	log            *logger.Logger
}

func NewOptimizer[P any, S any](
	candles []types.Candle,
	backtestConfig engine_v1.BacktestConfig,
	optimizerConfig OptimizerConfig,
	log *logger.Logger,
) (*Optimizer[P, S], error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	if len(candles) == 0 {
		return nil, errors.New(errors.ErrCodeCandleDataEmpty, "candle data is empty")
	}

	if err := backtestConfig.Validate(); err != nil {
		return nil, err
	}

	if err := optimizerConfig.Validate(); err != nil {
		return nil, err
	}

	return &Optimizer[P, S]{
		candles:        candles,
		backtestConfig: backtestConfig,
		config:         optimizerConfig,
		log:            log,
	}, nil
}

// Run backtests every combination returned by generate.
// The combinations are split into contiguous chunks, one per worker, and each worker reuses a single
// backtest. A failing transform or strategy is recorded in its outcome; only a worker that cannot
// build its backtest aborts the run.
func (o *Optimizer[P, S]) Run(
	generate func() []P,
	transform func(P) (S, error),
	strategy func(engine.Engine, *S, types.Candle) error,
	callbacks Callbacks,
) (result *Result[P], err error) {
	if callbacks.OnOptimizeEnd != nil {
		defer func() {
			(*callbacks.OnOptimizeEnd)(err)
		}()
	}

	startedAt := time.Now()

	combinations := generate()
	if len(combinations) == 0 {
		return nil, errors.New(errors.ErrCodeOptimizerNoCombinations, "no parameter combinations to optimize")
	}

	workers := min(o.config.WorkerCount(), len(combinations))
	chunkSize := (len(combinations) + workers - 1) / workers
	chunks := slices.Collect(slices.Chunk(combinations, chunkSize))

	runID := uuid.New().String()
	log := o.log.With(zap.String("run_id", runID))

	log.Info("Optimization started",
		zap.Int("combinations", len(combinations)),
		zap.Int("workers", len(chunks)),
		zap.Int("chunk_size", chunkSize),
	)

	if callbacks.OnOptimizeStart != nil {
		(*callbacks.OnOptimizeStart)(len(combinations), len(chunks))
	}

	collector := NewCollector(o.config.TopK, func(outcome Outcome[P]) float64 {
		return outcome.Balance
	})
	progress := NewProgress(len(combinations))
	chunkOutcomes := make([][]Outcome[P], len(chunks))

	var group errgroup.Group

	for i, chunk := range chunks {
		group.Go(func() error {
			outcomes, err := o.runChunk(chunk, transform, strategy, collector, progress, callbacks)
			if err != nil {
				return errors.Wrapf(errors.ErrCodeOptimizerWorkerFailed, err, "worker %d failed", i)
			}

			chunkOutcomes[i] = outcomes

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Error("Optimization failed", zap.Error(err))

		return nil, err
	}

	result = &Result[P]{
		RunID:     runID,
		Outcomes:  slices.Concat(chunkOutcomes...),
		Best:      collector.Best(),
		Errors:    collector.Errors(),
		Workers:   len(chunks),
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
	}

	log.Info("Optimization finished",
		zap.Int("successes", len(result.Successes())),
		zap.Int("failures", len(result.Failures())),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}

// runChunk processes params sequentially on one backtest, resetting it between combinations.
func (o *Optimizer[P, S]) runChunk(
	params []P,
	transform func(P) (S, error),
	strategy func(engine.Engine, *S, types.Candle) error,
	collector *Collector[Outcome[P]],
	progress *Progress,
	callbacks Callbacks,
) ([]Outcome[P], error) {
	// NewBacktest keeps its own copy of the candles.
	backtest, err := engine_v1.NewBacktest(o.candles, o.backtestConfig, logger.NewNopLogger())
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome[P], 0, len(params))

	for _, p := range params {
		outcome := o.runOne(backtest, p, transform, strategy)

		collector.Push(outcome, outcome.Failed())
		outcomes = append(outcomes, outcome)

		current := progress.Increment()
		if callbacks.OnProgress != nil && o.shouldReport(current, progress.Total()) {
			(*callbacks.OnProgress)(current, progress.Total())
		}

		backtest.Reset()
	}

	return outcomes, nil
}

func (o *Optimizer[P, S]) runOne(
	backtest *engine_v1.Backtest,
	params P,
	transform func(P) (S, error),
	strategy func(engine.Engine, *S, types.Candle) error,
) Outcome[P] {
	state, err := transform(params)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeTransformFailed, "failed to build strategy state", err)
	} else {
		err = backtest.Run(func(bt engine.Engine, candle types.Candle) error {
			return strategy(bt, &state, candle)
		}, engine.LifecycleCallbacks{})
	}

	if err != nil {
		if ce := o.log.Check(zap.DebugLevel, "Combination failed"); ce != nil {
			ce.Write(zap.Any("params", params), zap.Error(err))
		}
	}

	return Outcome[P]{
		Params:  params,
		Balance: backtest.TotalBalance(),
		Err:     err,
	}
}

func (o *Optimizer[P, S]) shouldReport(current int64, total int64) bool {
	every := int64(o.config.ProgressEvery)

	return every <= 1 || current%every == 0 || current == total
}
