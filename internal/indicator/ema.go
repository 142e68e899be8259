package indicator

import (
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// EMA implements the Exponential Moving Average. The first price seeds the average.
type EMA struct {
	period     int
	multiplier float64
	value      float64
	count      int
}

// NewEMA creates a new EMA indicator with default configuration.
func NewEMA() Indicator {
	ema := &EMA{}
	ema.setPeriod(20)

	return ema
}

// NewEMAWithPeriod creates an EMA with the given period.
func NewEMAWithPeriod(period int) (*EMA, error) {
	ema := &EMA{}
	if err := ema.Config(period); err != nil {
		return nil, err
	}

	return ema, nil
}

func (e *EMA) Name() IndicatorType {
	return IndicatorTypeEMA
}

// Config configures the EMA indicator. Expected parameters: period (int).
func (e *EMA) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "Config expects 1 parameter: period (int)")
	}

	period, err := periodParam("period", params[0])
	if err != nil {
		return err
	}

	e.setPeriod(period)

	return nil
}

func (e *EMA) Next(price float64) float64 {
	if e.count == 0 {
		e.value = price
	} else {
		e.value = e.multiplier*price + (1-e.multiplier)*e.value
	}

	e.count++

	return e.value
}

// Value returns the last computed average.
func (e *EMA) Value() float64 {
	return e.value
}

// Ready reports whether at least period prices were fed.
func (e *EMA) Ready() bool {
	return e.count >= e.period
}

func (e *EMA) Period() int {
	return e.period
}

func (e *EMA) Reset() {
	e.value = 0
	e.count = 0
}

func (e *EMA) setPeriod(period int) {
	e.period = period
	e.multiplier = 2 / float64(period+1)
	e.Reset()
}
