package strategy

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// EMAMACDParams are the indicator periods of the EMA/MACD strategies.
type EMAMACDParams struct {
	EMA    int `yaml:"ema" json:"ema" validate:"gt=0" jsonschema:"title=EMA Period,description=Period of the trend EMA,minimum=1,default=100"`
	Fast   int `yaml:"fast" json:"fast" validate:"gt=0" jsonschema:"title=MACD Fast Period,minimum=1,default=12"`
	Slow   int `yaml:"slow" json:"slow" validate:"gt=0" jsonschema:"title=MACD Slow Period,minimum=1,default=26"`
	Signal int `yaml:"signal" json:"signal" validate:"gt=0" jsonschema:"title=MACD Signal Period,minimum=1,default=9"`
}

// DefaultEMAMACDParams returns a 100 period EMA with the standard 12/26/9 MACD.
func DefaultEMAMACDParams() EMAMACDParams {
	return EMAMACDParams{
		EMA:    100,
		Fast:   12,
		Slow:   26,
		Signal: 9,
	}
}

func (p EMAMACDParams) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid strategy parameters", err)
	}

	return nil
}

func (p EMAMACDParams) String() string {
	return fmt.Sprintf("EMA: %3d, MACD: (%3d, %3d, %3d)", p.EMA, p.Fast, p.Slow, p.Signal)
}
