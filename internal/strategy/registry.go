package strategy

import (
	"sort"

	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// StepFunc is one candle of an EMA/MACD strategy.
type StepFunc func(bt engine.Engine, state *EMAMACDState, candle types.Candle) error

// Definition describes a strategy the CLIs can run by name.
type Definition struct {
	Name          string
	Description   string
	DefaultParams EMAMACDParams
	Step          StepFunc
}

const (
	NameEMAMACDTrailing = "ema_macd"
	NameTurtleTPSL      = "turtle"
)

var registry = map[string]Definition{
	NameEMAMACDTrailing: {
		Name:          NameEMAMACDTrailing,
		Description:   "EMA trend and MACD momentum entries with a 2% trailing stop",
		DefaultParams: DefaultEMAMACDParams(),
		Step:          EMAMACDTrailing,
	},
	NameTurtleTPSL: {
		Name:          NameTurtleTPSL,
		Description:   "EMA trend and MACD momentum entries with a 2x take profit and a 2% stop loss",
		DefaultParams: DefaultEMAMACDParams(),
		Step:          TurtleTPSL,
	},
}

// Get returns the strategy registered under name.
func Get(name string) (Definition, error) {
	definition, ok := registry[name]
	if !ok {
		return Definition{}, errors.Newf(errors.ErrCodeStrategyNotFound, "strategy %q not found, available: %v", name, Names())
	}

	return definition, nil
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Bind builds fresh indicators for params and returns a strategy callback for a single backtest.
func (d Definition) Bind(params EMAMACDParams) (engine.StrategyFunc, error) {
	state, err := NewEMAMACDState(params)
	if err != nil {
		return nil, err
	}

	return func(bt engine.Engine, candle types.Candle) error {
		return d.Step(bt, &state, candle)
	}, nil
}

// ParamsSchema returns the JSON schema of the strategy parameters.
func (d Definition) ParamsSchema() (string, error) {
	return ToJSONSchema(d.DefaultParams)
}
