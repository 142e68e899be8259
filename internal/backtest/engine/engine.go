package engine

import (
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// Lifecycle callback types for a single backtest run.
// All callbacks with error return can abort execution if they return an error.

// OnRunStartCallback is called before the first candle is processed.
type OnRunStartCallback func(totalCandles int) error

// OnProcessDataCallback is called after each candle is processed.
type OnProcessDataCallback func(current int, total int) error

// OnRunEndCallback is called when the run completes (always called via defer).
type OnRunEndCallback func(err error)

// LifecycleCallbacks holds all lifecycle callback functions for a backtest run.
// All fields are pointers - nil means no callback will be invoked.
type LifecycleCallbacks struct {
	OnRunStart    *OnRunStartCallback
	OnProcessData *OnProcessDataCallback
	OnRunEnd      *OnRunEndCallback
}

// StrategyFunc is invoked once per candle, before pending orders are filled.
type StrategyFunc func(bt Engine, candle types.Candle) error

// Engine is the view of a running backtest that strategies operate on.
//
//nolint:interfacebloat // Engine mirrors everything a strategy may read or do during a tick
type Engine interface {
	// PlaceOrder reserves the order cost (plus entry fee) and queues the order.
	PlaceOrder(order types.Order) error
	// DeleteOrder cancels the first pending order equal to order and releases its reservation.
	DeleteOrder(order types.Order) error
	// ClosePosition closes the position with id at exitPrice and returns the net profit.
	ClosePosition(id uint32, exitPrice float64) (float64, error)
	// CloseAllPositions closes every open position at exitPrice.
	CloseAllPositions(exitPrice float64) error
	// Balance returns the wallet balance, locked funds included.
	Balance() float64
	// FreeBalance returns the balance not reserved by pending orders.
	FreeBalance() (float64, error)
	// Locked returns the funds reserved by pending orders.
	Locked() float64
	// TotalBalance returns the balance plus open positions marked at the current close.
	TotalBalance() float64
	// InitialBalance returns the balance the run started with.
	InitialBalance() float64
	// Orders returns a copy of the pending orders in FIFO order.
	Orders() []types.Order
	// Positions returns a copy of the open positions.
	Positions() []types.Position
	// Events returns a copy of the event log.
	Events() []types.Event
	// Index returns the cursor of the candle being processed.
	Index() int
	// CurrentCandle returns the candle under the cursor, false once the run is exhausted.
	CurrentCandle() (types.Candle, bool)
	// CommissionFee returns the fee model used for fills.
	CommissionFee() commission_fee.CommissionFee
}
