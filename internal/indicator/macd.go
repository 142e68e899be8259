package indicator

import (
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// MACDOutput is the value of the MACD for one price.
type MACDOutput struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD represents the Moving Average Convergence Divergence indicator.
type MACD struct {
	fast   *EMA
	slow   *EMA
	signal *EMA
}

// NewMACD creates a new MACD indicator with default configuration.
func NewMACD() Indicator {
	m := &MACD{}
	m.setPeriods(12, 26, 9)

	return m
}

// NewMACDWithPeriods creates a MACD with explicit fast, slow and signal periods.
func NewMACDWithPeriods(fastPeriod, slowPeriod, signalPeriod int) (*MACD, error) {
	m := &MACD{}
	if err := m.Config(fastPeriod, slowPeriod, signalPeriod); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MACD) Name() IndicatorType {
	return IndicatorTypeMACD
}

// Config configures the MACD indicator. Expected parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int).
// The fast period is not required to be shorter than the slow one.
func (m *MACD) Config(params ...any) error {
	if len(params) != 3 {
		return errors.New(errors.ErrCodeInvalidParameter,
			"Config expects 3 parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int)")
	}

	fastPeriod, err := periodParam("fastPeriod", params[0])
	if err != nil {
		return err
	}

	slowPeriod, err := periodParam("slowPeriod", params[1])
	if err != nil {
		return err
	}

	signalPeriod, err := periodParam("signalPeriod", params[2])
	if err != nil {
		return err
	}

	m.setPeriods(fastPeriod, slowPeriod, signalPeriod)

	return nil
}

// Next returns the histogram.
func (m *MACD) Next(price float64) float64 {
	return m.Update(price).Histogram
}

// Update feeds a price and returns every line of the MACD.
func (m *MACD) Update(price float64) MACDOutput {
	macd := m.fast.Next(price) - m.slow.Next(price)
	signal := m.signal.Next(macd)

	return MACDOutput{
		MACD:      macd,
		Signal:    signal,
		Histogram: macd - signal,
	}
}

// Ready reports whether the slow and signal averages saw enough prices.
func (m *MACD) Ready() bool {
	return m.slow.Ready() && m.signal.Ready()
}

func (m *MACD) Reset() {
	m.fast.Reset()
	m.slow.Reset()
	m.signal.Reset()
}

func (m *MACD) setPeriods(fastPeriod, slowPeriod, signalPeriod int) {
	m.fast = &EMA{}
	m.fast.setPeriod(fastPeriod)
	m.slow = &EMA{}
	m.slow.setPeriod(slowPeriod)
	m.signal = &EMA{}
	m.signal.setPeriod(signalPeriod)
}
