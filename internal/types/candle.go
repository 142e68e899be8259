package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// Candle is one OHLCV price bar. Candles are never mutated once loaded into a backtest.
type Candle struct {
	Open   float64 `yaml:"open" json:"open" csv:"open" validate:"gt=0"`
	High   float64 `yaml:"high" json:"high" csv:"high" validate:"gt=0,gtefield=Low"`
	Low    float64 `yaml:"low" json:"low" csv:"low" validate:"gt=0"`
	Close  float64 `yaml:"close" json:"close" csv:"close" validate:"gt=0"`
	Volume float64 `yaml:"volume" json:"volume" csv:"volume" validate:"gte=0"`
	Bid    float64 `yaml:"bid" json:"bid" csv:"bid" validate:"gte=0"`
	// OpenTime is the start of the bar, if the source provides it.
	OpenTime optional.Option[time.Time] `yaml:"open_time" json:"open_time" csv:"-"`
	// CloseTime is the end of the bar, if the source provides it.
	CloseTime optional.Option[time.Time] `yaml:"close_time" json:"close_time" csv:"-"`
}

// NewCandle creates a candle without bid or timestamps.
func NewCandle(open, high, low, close, volume float64) Candle {
	return Candle{
		Open:      open,
		High:      high,
		Low:       low,
		Close:     close,
		Volume:    volume,
		Bid:       0,
		OpenTime:  optional.None[time.Time](),
		CloseTime: optional.None[time.Time](),
	}
}

// Ask is the volume traded on the ask side.
func (c Candle) Ask() float64 {
	return c.Volume - c.Bid
}

// Contains reports whether price traded inside the bar.
func (c Candle) Contains(price float64) bool {
	return price >= c.Low && price <= c.High
}

// Validate validates the price ordering of the candle.
func (c Candle) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidCandle, "invalid candle", err)
	}

	if c.OpenTime.IsSome() && c.CloseTime.IsSome() && c.CloseTime.Unwrap().Before(c.OpenTime.Unwrap()) {
		return errors.New(errors.ErrCodeInvalidCandle, "candle close time is before open time")
	}

	return nil
}
