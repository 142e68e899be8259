package indicator

import "github.com/rxtech-lab/argo-backtest/pkg/errors"

type IndicatorType string

const (
	IndicatorTypeEMA  IndicatorType = "ema"
	IndicatorTypeMACD IndicatorType = "macd"
)

// Indicator is a streaming technical indicator fed one close price per candle.
type Indicator interface {
	// Name returns the name of the indicator
	Name() IndicatorType
	// Config configures the indicator and resets its state
	Config(params ...any) error
	// Next feeds a price and returns the primary value of the indicator
	Next(price float64) float64
	// Reset clears the state so the indicator can be fed another series
	Reset()
}

func periodParam(name string, param any) (int, error) {
	period, ok := param.(int)
	if !ok {
		return 0, errors.Newf(errors.ErrCodeInvalidParameter, "invalid type for %s parameter, expected int", name)
	}

	if period <= 0 {
		return 0, errors.Newf(errors.ErrCodeInvalidPeriod, "%s must be a positive integer, got %d", name, period)
	}

	return period, nil
}
