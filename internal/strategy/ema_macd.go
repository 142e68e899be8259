package strategy

import (
	"math"

	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine"
	"github.com/rxtech-lab/argo-backtest/internal/indicator"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/internal/utils"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

const (
	// riskPercent of the free balance is committed per entry.
	riskPercent = 2.0
	// minimumTradeAmount is the smallest notional an entry commits.
	minimumTradeAmount = 21.0
	// trailingPercent is the distance of the trailing exit below its trigger.
	trailingPercent = 2.0
)

// EMAMACDState holds the indicators of one EMA/MACD strategy run.
type EMAMACDState struct {
	Params EMAMACDParams
	ema    *indicator.EMA
	macd   *indicator.MACD
}

// NewEMAMACDState builds fresh indicators for params.
func NewEMAMACDState(params EMAMACDParams) (EMAMACDState, error) {
	if err := params.Validate(); err != nil {
		return EMAMACDState{}, err
	}

	ema, err := indicator.NewEMAWithPeriod(params.EMA)
	if err != nil {
		return EMAMACDState{}, errors.Wrap(errors.ErrCodeTransformFailed, "failed to create ema", err)
	}

	macd, err := indicator.NewMACDWithPeriods(params.Fast, params.Slow, params.Signal)
	if err != nil {
		return EMAMACDState{}, errors.Wrap(errors.ErrCodeTransformFailed, "failed to create macd", err)
	}

	return EMAMACDState{
		Params: params,
		ema:    ema,
		macd:   macd,
	}, nil
}

// EMAMACDTrailing buys when the close is above the EMA with a positive MACD histogram,
// and exits through a trailing stop 2% under a trigger starting at the close.
func EMAMACDTrailing(bt engine.Engine, state *EMAMACDState, candle types.Candle) error {
	return enterOnTrend(bt, state, candle, func(closePrice float64) types.ExitRule {
		return types.TrailingStop(closePrice, trailingPercent)
	})
}

// TurtleTPSL takes the same entries as EMAMACDTrailing with a take profit at twice the close
// and a stop loss 2% under it.
func TurtleTPSL(bt engine.Engine, state *EMAMACDState, candle types.Candle) error {
	return enterOnTrend(bt, state, candle, func(closePrice float64) types.ExitRule {
		return types.TakeProfitAndStopLoss(closePrice*2, utils.SubPercent(closePrice, trailingPercent))
	})
}

// enterOnTrend feeds the indicators and places a market-priced buy while less than half
// of the initial balance is committed.
func enterOnTrend(bt engine.Engine, state *EMAMACDState, candle types.Candle, exit func(float64) types.ExitRule) error {
	closePrice := candle.Close
	trend := state.ema.Next(closePrice)
	histogram := state.macd.Next(closePrice)

	balance, err := bt.FreeBalance()
	if err != nil {
		return err
	}

	if balance <= bt.InitialBalance()/2 || closePrice <= trend || histogram <= 0 {
		return nil
	}

	amount := math.Max(utils.HowMany(balance, riskPercent), minimumTradeAmount)
	// never more than the free balance buys once the entry fee is paid
	quantity := math.Min(amount/closePrice, utils.CalculateMaxQuantity(balance, closePrice, bt.CommissionFee()))

	return bt.PlaceOrder(types.NewOrder(types.OrderSideBuy, closePrice, quantity, exit(closePrice)))
}
