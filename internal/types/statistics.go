package types

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type TradePnl struct {
	// Realized PnL. Sum of the net profit of every closed position.
	RealizedPnL float64 `yaml:"realized_pnl"`
	// Unrealized PnL of positions still open, marked at the last close.
	UnrealizedPnL float64 `yaml:"unrealized_pnl"`
	// Total PnL. RealizedPnL plus UnrealizedPnL.
	TotalPnL float64 `yaml:"total_pnl"`
	// Maximum loss. Minimum realized pnl of a single trade.
	MaximumLoss float64 `yaml:"maximum_loss"`
	// Maximum profit. Maximum realized pnl of a single trade.
	MaximumProfit float64 `yaml:"maximum_profit"`
}

type TradeResult struct {
	// Count of all closed trades.
	NumberOfTrades int `yaml:"number_of_trades"`
	// Count of winning trades that has positive pnl.
	NumberOfWinningTrades int `yaml:"number_of_winning_trades"`
	// Count of losing trades that has negative pnl.
	NumberOfLosingTrades int `yaml:"number_of_losing_trades"`
	// Win rate in percent.
	WinRate float64 `yaml:"win_rate"`
	// Maximum drawdown of the realized equity curve in percent.
	MaxDrawdown float64 `yaml:"max_drawdown"`
	// Gross profit divided by gross loss.
	ProfitFactor float64 `yaml:"profit_factor"`
	// Sharpe ratio of the per-trade percent returns.
	SharpeRatio float64 `yaml:"sharpe_ratio"`
}

type TradeStats struct {
	// ID is the unique identifier for this backtest run.
	ID string `yaml:"id" json:"id"`
	// Timestamp is when this backtest run was executed.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	// Strategy is the name of the strategy that produced the run.
	Strategy string `yaml:"strategy" json:"strategy"`
	// NumberOfCandles processed by the run.
	NumberOfCandles int `yaml:"number_of_candles"`
	InitialBalance  float64 `yaml:"initial_balance"`
	FinalBalance    float64 `yaml:"final_balance"`
	// Result of all trades.
	TradeResult TradeResult `yaml:"trade_result"`
	// Total fees.
	TotalFees float64 `yaml:"total_fees"`
	// PnL of all trades.
	TradePnl TradePnl `yaml:"trade_pnl"`
	// Buy and hold PnL of the initial balance over the same candles.
	BuyAndHoldPnl float64 `yaml:"buy_and_hold_pnl"`
}

func WriteTradeStats(path string, stats []TradeStats) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal trade stats to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write trade stats to file: %w", err)
	}

	return nil
}
