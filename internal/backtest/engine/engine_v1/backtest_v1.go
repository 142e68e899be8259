package engine

import (
	"fmt"

	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"go.uber.org/zap"
)

// Backtest replays a fixed candle series through a strategy.
// It owns its wallet, order queue, position queue and event log; none of them are safe for concurrent use.
type Backtest struct {
	config     BacktestConfig
	log        *logger.Logger
	commission commission_fee.CommissionFee
	candles    []types.Candle
	index      int
	wallet     *Wallet
	orders     []types.Order
	positions  []types.Position
	events     *BacktestLog
	nextID     uint32
}

var _ engine.Engine = (*Backtest)(nil)

// NewBacktest creates a backtest over candles. Candles outside the configured time window are dropped.
// No engine is returned when the series is empty or the config is invalid.
func NewBacktest(candles []types.Candle, config BacktestConfig, log *logger.Logger) (*Backtest, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	if len(candles) == 0 {
		return nil, errors.New(errors.ErrCodeCandleDataEmpty, "candle data is empty")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	window := filterCandles(candles, config)
	if len(window) == 0 {
		return nil, errors.New(errors.ErrCodeCandleDataEmpty, "no candles inside the configured time window")
	}

	wallet, err := NewWallet(config.InitialBalance)
	if err != nil {
		return nil, err
	}

	b := &Backtest{
		config:     config,
		log:        log,
		commission: config.CommissionFee(),
		candles:    window,
		index:      0,
		wallet:     wallet,
		orders:     nil,
		positions:  nil,
		events:     NewBacktestLog(),
		nextID:     1,
	}

	b.log.Debug("Backtest created",
		zap.Int("candles", len(b.candles)),
		zap.Float64("initial_balance", config.InitialBalance),
		zap.String("broker", string(config.Broker)),
		zap.String("trailing_stop", string(config.TrailingStop)),
	)

	return b, nil
}

// Run processes every remaining candle: strategy step, order fills, exit rules, trailing ratchet.
func (b *Backtest) Run(strategy engine.StrategyFunc, callbacks engine.LifecycleCallbacks) (err error) {
	total := len(b.candles)

	if callbacks.OnRunEnd != nil {
		defer func() {
			(*callbacks.OnRunEnd)(err)
		}()
	}

	if callbacks.OnRunStart != nil {
		if cbErr := (*callbacks.OnRunStart)(total); cbErr != nil {
			return errors.Wrap(errors.ErrCodeCallbackFailed, "run start callback failed", cbErr)
		}
	}

	for b.index < total {
		candle := b.candles[b.index]

		if err := strategy(b, candle); err != nil {
			if errors.GetCode(err) == errors.ErrCodeUnknown {
				return errors.Wrapf(errors.ErrCodeStrategyRuntimeError, err, "strategy failed at candle %d", b.index)
			}

			return fmt.Errorf("strategy failed at candle %d: %w", b.index, err)
		}

		if err := b.executeOrders(candle); err != nil {
			return fmt.Errorf("failed to execute orders at candle %d: %w", b.index, err)
		}

		if err := b.executePositions(candle); err != nil {
			return fmt.Errorf("failed to execute positions at candle %d: %w", b.index, err)
		}

		if b.config.TrailingStop == TrailingStopRatchet {
			b.ratchetTrailingStops(candle)
		}

		b.index++

		if callbacks.OnProcessData != nil {
			if cbErr := (*callbacks.OnProcessData)(b.index, total); cbErr != nil {
				return errors.Wrap(errors.ErrCodeCallbackFailed, "process data callback failed", cbErr)
			}
		}
	}

	if b.config.LiquidateOnEnd {
		if err := b.Liquidate(); err != nil {
			return fmt.Errorf("failed to liquidate: %w", err)
		}
	}

	return nil
}

// Liquidate cancels every pending order and closes every position at the last close.
func (b *Backtest) Liquidate() error {
	for len(b.orders) > 0 {
		if err := b.DeleteOrder(b.orders[0]); err != nil {
			return err
		}
	}

	return b.CloseAllPositions(b.markCandle().Close)
}

// Reset restores the backtest to its initial state so it can be run again without reallocating.
func (b *Backtest) Reset() {
	b.index = 0
	b.wallet.Reset()
	b.orders = b.orders[:0]
	b.positions = b.positions[:0]
	b.events.Clear()
	b.nextID = 1
}

func (b *Backtest) Balance() float64 {
	return b.wallet.Balance()
}

func (b *Backtest) FreeBalance() (float64, error) {
	return b.wallet.FreeBalance()
}

func (b *Backtest) Locked() float64 {
	return b.wallet.Locked()
}

func (b *Backtest) InitialBalance() float64 {
	return b.wallet.InitialBalance()
}

// TotalBalance returns the balance plus the value of open positions at the current close.
func (b *Backtest) TotalBalance() float64 {
	total := b.wallet.Balance()
	mark := b.markCandle().Close

	for _, position := range b.positions {
		total += position.Cost() + position.EstimateProfit(mark)
	}

	return total
}

func (b *Backtest) Orders() []types.Order {
	return append([]types.Order(nil), b.orders...)
}

func (b *Backtest) Positions() []types.Position {
	return append([]types.Position(nil), b.positions...)
}

func (b *Backtest) Events() []types.Event {
	return b.events.Events()
}

// Candles returns a copy of the candles the backtest runs over.
func (b *Backtest) Candles() []types.Candle {
	return append([]types.Candle(nil), b.candles...)
}

func (b *Backtest) Index() int {
	return b.index
}

func (b *Backtest) CurrentCandle() (types.Candle, bool) {
	if b.index >= len(b.candles) {
		return types.Candle{}, false
	}

	return b.candles[b.index], true
}

func (b *Backtest) CommissionFee() commission_fee.CommissionFee {
	return b.commission
}

func (b *Backtest) Config() BacktestConfig {
	return b.config
}

// markCandle is the candle open positions are valued at: the current one, or the last once exhausted.
func (b *Backtest) markCandle() types.Candle {
	if b.index >= len(b.candles) {
		return b.candles[len(b.candles)-1]
	}

	return b.candles[b.index]
}

// filterCandles copies the candles whose open time falls inside the configured window.
// Candles without an open time are always kept.
func filterCandles(candles []types.Candle, config BacktestConfig) []types.Candle {
	window := make([]types.Candle, 0, len(candles))

	for _, candle := range candles {
		if candle.OpenTime.IsSome() {
			openTime := candle.OpenTime.Unwrap()
			if config.StartTime.IsSome() && openTime.Before(config.StartTime.Unwrap()) {
				continue
			}

			if config.EndTime.IsSome() && openTime.After(config.EndTime.Unwrap()) {
				continue
			}
		}

		window = append(window, candle)
	}

	return window
}
