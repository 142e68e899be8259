package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/shopspring/decimal"
)

// GetStats summarizes the run from the event log. Open positions are marked at the current close.
func (b *Backtest) GetStats(strategyName string) (types.TradeStats, error) {
	closed := b.events.Filter(types.EventTypeDelPosition)

	realized := decimal.Zero
	fees := decimal.Zero
	grossProfit := decimal.Zero
	grossLoss := decimal.Zero
	returns := make(stats.Float64Data, 0, len(closed))

	result := types.TradeResult{}
	pnl := types.TradePnl{}

	equity := b.wallet.InitialBalance()
	peak := equity

	for i, event := range closed {
		profit := decimal.NewFromFloat(event.Profit)
		realized = realized.Add(profit)

		switch {
		case event.Profit > 0:
			result.NumberOfWinningTrades++
			grossProfit = grossProfit.Add(profit)
		case event.Profit < 0:
			result.NumberOfLosingTrades++
			grossLoss = grossLoss.Add(profit.Neg())
		}

		if i == 0 || event.Profit < pnl.MaximumLoss {
			pnl.MaximumLoss = event.Profit
		}

		if i == 0 || event.Profit > pnl.MaximumProfit {
			pnl.MaximumProfit = event.Profit
		}

		if event.Position.IsSome() {
			returns = append(returns, event.Position.Unwrap().ProfitChange(event.ExitPrice))
		}

		equity += event.Profit
		if equity > peak {
			peak = equity
		}

		if peak > 0 {
			if drawdown := (peak - equity) / peak * 100; drawdown > result.MaxDrawdown {
				result.MaxDrawdown = drawdown
			}
		}
	}

	for _, event := range b.events.events {
		if event.Type == types.EventTypeAddPosition || event.Type == types.EventTypeDelPosition {
			fees = fees.Add(decimal.NewFromFloat(event.Fee))
		}
	}

	result.NumberOfTrades = len(closed)
	if result.NumberOfTrades > 0 {
		result.WinRate = float64(result.NumberOfWinningTrades) / float64(result.NumberOfTrades) * 100
	}

	if grossLoss.IsPositive() {
		result.ProfitFactor, _ = grossProfit.Div(grossLoss).Float64()
	}

	sharpe, err := sharpeRatio(returns)
	if err != nil && !errors.IsInsufficientDataError(err) {
		return types.TradeStats{}, fmt.Errorf("failed to calculate sharpe ratio: %w", err)
	}

	result.SharpeRatio = sharpe

	mark := b.markCandle().Close
	unrealized := decimal.Zero

	for _, position := range b.positions {
		unrealized = unrealized.Add(decimal.NewFromFloat(position.EstimateProfit(mark)))
	}

	pnl.RealizedPnL, _ = realized.Float64()
	pnl.UnrealizedPnL, _ = unrealized.Float64()
	pnl.TotalPnL, _ = realized.Add(unrealized).Float64()

	totalFees, _ := fees.Float64()

	tradeStats := types.TradeStats{
		ID:              uuid.New().String(),
		Timestamp:       time.Now(),
		Strategy:        strategyName,
		NumberOfCandles: len(b.candles),
		InitialBalance:  b.wallet.InitialBalance(),
		FinalBalance:    b.TotalBalance(),
		TradeResult:     result,
		TotalFees:       totalFees,
		TradePnl:        pnl,
		BuyAndHoldPnl:   buyAndHoldPnl(b.wallet.InitialBalance(), b.candles),
	}

	return tradeStats, nil
}

// sharpeRatio is mean over sample standard deviation of per-trade returns.
// It is 0 when the returns have no dispersion.
func sharpeRatio(returns stats.Float64Data) (float64, error) {
	if len(returns) < 2 {
		return 0, errors.NewInsufficientDataErrorf(2, len(returns), "sharpe_ratio",
			"sharpe ratio needs at least 2 trades, got %d", len(returns))
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return 0, err
	}

	stdDev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, err
	}

	if stdDev == 0 {
		return 0, nil
	}

	return mean / stdDev, nil
}

func buyAndHoldPnl(initialBalance float64, candles []types.Candle) float64 {
	if len(candles) == 0 || candles[0].Close <= 0 {
		return 0
	}

	first := decimal.NewFromFloat(candles[0].Close)
	last := decimal.NewFromFloat(candles[len(candles)-1].Close)
	balance := decimal.NewFromFloat(initialBalance)

	value, _ := balance.Div(first).Mul(last).Sub(balance).Float64()

	return value
}
