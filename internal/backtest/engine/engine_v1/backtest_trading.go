package engine

import (
	"math"
	"slices"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/internal/utils"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"go.uber.org/zap"
)

// PlaceOrder validates the order, locks its cost plus entry fee and queues it.
func (b *Backtest) PlaceOrder(order types.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	if _, err := b.wallet.Lock(b.reservation(order)); err != nil {
		return err
	}

	b.orders = append(b.orders, order)
	b.events.Append(types.NewOrderEvent(types.EventTypeAddOrder, b.index, order))

	if ce := b.log.Check(zap.DebugLevel, "Order placed"); ce != nil {
		ce.Write(
			zap.Int("index", b.index),
			zap.String("side", string(order.Side)),
			zap.Float64("entry_price", order.EntryPrice),
			zap.Float64("quantity", order.Quantity),
		)
	}

	return nil
}

// DeleteOrder cancels the first pending order equal to order.
func (b *Backtest) DeleteOrder(order types.Order) error {
	idx := slices.Index(b.orders, order)
	if idx < 0 {
		return errors.New(errors.ErrCodeOrderNotFound, "order not found")
	}

	if _, err := b.wallet.Unlock(b.reservation(order)); err != nil {
		return err
	}

	b.orders = slices.Delete(b.orders, idx, idx+1)
	b.events.Append(types.NewOrderEvent(types.EventTypeDelOrder, b.index, order))

	return nil
}

// ClosePosition closes the position with id at exitPrice, bypassing its exit rule.
// It returns the realized profit net of fees.
func (b *Backtest) ClosePosition(id uint32, exitPrice float64) (float64, error) {
	if err := validateExitPrice(exitPrice); err != nil {
		return 0, err
	}

	idx := slices.IndexFunc(b.positions, func(p types.Position) bool {
		return p.ID == id
	})
	if idx < 0 {
		return 0, errors.Newf(errors.ErrCodePositionNotFound, "position %d not found", id)
	}

	profit, err := b.settle(b.positions[idx], exitPrice)
	if err != nil {
		return 0, err
	}

	b.positions = slices.Delete(b.positions, idx, idx+1)

	return profit, nil
}

// CloseAllPositions closes every open position at exitPrice.
func (b *Backtest) CloseAllPositions(exitPrice float64) error {
	if err := validateExitPrice(exitPrice); err != nil {
		return err
	}

	for len(b.positions) > 0 {
		if _, err := b.ClosePosition(b.positions[0].ID, exitPrice); err != nil {
			return err
		}
	}

	return nil
}

// executeOrders fills every pending order whose entry price traded inside the candle.
// Unfilled orders keep their FIFO order.
func (b *Backtest) executeOrders(candle types.Candle) error {
	if len(b.orders) == 0 {
		return nil
	}

	remaining := make([]types.Order, 0, len(b.orders))

	for i, order := range b.orders {
		if !candle.Contains(order.EntryPrice) {
			remaining = append(remaining, order)

			continue
		}

		if err := b.openPosition(order); err != nil {
			b.orders = append(remaining, b.orders[i:]...)

			return err
		}
	}

	b.orders = remaining

	return nil
}

func (b *Backtest) openPosition(order types.Order) error {
	fee := b.commission.Calculate(order.EntryPrice, order.Quantity)

	if _, err := b.wallet.Sub(order.Cost() + fee); err != nil {
		return err
	}

	position := types.NewPositionFromOrder(b.nextID, order, b.index, fee)
	b.nextID++

	b.positions = append(b.positions, position)
	b.events.Append(types.NewAddPositionEvent(b.index, position))

	if ce := b.log.Check(zap.DebugLevel, "Position opened"); ce != nil {
		ce.Write(
			zap.Int("index", b.index),
			zap.Uint32("id", position.ID),
			zap.String("side", string(position.Side)),
			zap.Float64("entry_price", position.EntryPrice),
			zap.Float64("quantity", position.Quantity),
		)
	}

	return nil
}

// executePositions evaluates the exit rule of every open position against the candle.
func (b *Backtest) executePositions(candle types.Candle) error {
	if len(b.positions) == 0 {
		return nil
	}

	open := b.positions
	kept := make([]types.Position, 0, len(open))

	for i, position := range open {
		exitPrice, shouldClose, err := evaluateExit(position, candle)
		if err == nil && shouldClose {
			_, err = b.settle(position, exitPrice)
		}

		if err != nil {
			b.positions = append(kept, open[i:]...)

			return err
		}

		if !shouldClose {
			kept = append(kept, position)
		}
	}

	b.positions = kept

	return nil
}

// evaluateExit returns the exit price of position on candle and whether it closes.
func evaluateExit(position types.Position, candle types.Candle) (float64, bool, error) {
	rule := position.ExitRule

	switch rule.Type {
	case types.ExitRuleTakeProfitAndStopLoss:
		takeProfit, stopLoss := rule.Price, rule.StopPrice

		var takeProfitHit, stopLossHit bool

		if position.Side == types.PositionSideShort {
			takeProfitHit = takeProfit > 0 && takeProfit >= candle.Low
			stopLossHit = stopLoss > 0 && stopLoss <= candle.High
		} else {
			takeProfitHit = takeProfit > 0 && takeProfit <= candle.High
			stopLossHit = stopLoss > 0 && stopLoss >= candle.Low
		}

		// take profit wins when both are reachable inside the same candle
		if takeProfitHit {
			return takeProfit, true, nil
		}

		if stopLossHit {
			return stopLoss, true, nil
		}

		return 0, false, nil
	case types.ExitRuleTrailingStop:
		trigger := rule.Price

		if position.Side == types.PositionSideShort {
			if candle.High >= trigger {
				return utils.AddPercent(trigger, rule.Percent), true, nil
			}

			return 0, false, nil
		}

		if candle.Low <= trigger {
			return utils.SubPercent(trigger, rule.Percent), true, nil
		}

		return 0, false, nil
	default:
		return 0, false, errors.Newf(errors.ErrCodeUnsupportedExitRule,
			"position %d has exit rule %s, only %s or %s can close a position",
			position.ID, rule.Type, types.ExitRuleTakeProfitAndStopLoss, types.ExitRuleTrailingStop)
	}
}

// ratchetTrailingStops moves trailing triggers toward the favorable side, keeping the trigger/entry ratio of the open.
// It runs after the exit pass so a candle never both moves a trigger and trips it.
func (b *Backtest) ratchetTrailingStops(candle types.Candle) {
	for i := range b.positions {
		position := &b.positions[i]
		if position.ExitRule.Type != types.ExitRuleTrailingStop || position.TrailRatio <= 0 {
			continue
		}

		if position.Side == types.PositionSideShort {
			position.ExitRule.Price = math.Min(position.ExitRule.Price, candle.Low*position.TrailRatio)
		} else {
			position.ExitRule.Price = math.Max(position.ExitRule.Price, candle.High*position.TrailRatio)
		}
	}
}

// settle credits the wallet for closing position at exitPrice and records the event.
// The caller removes the position from the queue.
func (b *Backtest) settle(position types.Position, exitPrice float64) (float64, error) {
	if err := validateExitPrice(exitPrice); err != nil {
		return 0, err
	}

	fee := b.commission.Calculate(exitPrice, position.Quantity)
	gross := position.EstimateProfit(exitPrice)

	if _, err := b.wallet.Add(gross + position.Cost() - fee); err != nil {
		return 0, err
	}

	profit := gross - fee - position.EntryFee
	b.events.Append(types.NewDelPositionEvent(b.index, position, exitPrice, profit, fee))

	if ce := b.log.Check(zap.DebugLevel, "Position closed"); ce != nil {
		ce.Write(
			zap.Int("index", b.index),
			zap.Uint32("id", position.ID),
			zap.Float64("exit_price", exitPrice),
			zap.Float64("profit", profit),
		)
	}

	return profit, nil
}

// reservation is what an order locks: its cost plus the fee of filling it.
func (b *Backtest) reservation(order types.Order) float64 {
	return order.Cost() + b.commission.Calculate(order.EntryPrice, order.Quantity)
}

func validateExitPrice(exitPrice float64) error {
	if exitPrice <= 0 || math.IsNaN(exitPrice) || math.IsInf(exitPrice, 0) {
		return errors.Newf(errors.ErrCodeInvalidExitPrice, "invalid exit price: %f", exitPrice)
	}

	return nil
}
