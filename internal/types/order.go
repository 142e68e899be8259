package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

type OrderSide string

type PositionSide string

type ExitRuleType string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

const (
	PositionSideLong  PositionSide = "LONG"
	PositionSideShort PositionSide = "SHORT"
)

const (
	ExitRuleLimit                 ExitRuleType = "LIMIT"
	ExitRuleStopLoss              ExitRuleType = "STOP_LOSS"
	ExitRuleTakeProfit            ExitRuleType = "TAKE_PROFIT"
	ExitRuleTrailingStop          ExitRuleType = "TRAILING_STOP"
	ExitRuleTakeProfitAndStopLoss ExitRuleType = "TAKE_PROFIT_AND_STOP_LOSS"
)

// ExitRule decides when an open position is closed automatically.
//
// Price holds the limit, stop, take-profit or trailing trigger price depending on Type.
// For TAKE_PROFIT_AND_STOP_LOSS, Price is the take profit and StopPrice the stop loss.
// Percent is only used by TRAILING_STOP.
type ExitRule struct {
	Type      ExitRuleType `yaml:"type" json:"type" validate:"required,oneof=LIMIT STOP_LOSS TAKE_PROFIT TRAILING_STOP TAKE_PROFIT_AND_STOP_LOSS"`
	Price     float64      `yaml:"price" json:"price" validate:"gte=0"`
	StopPrice float64      `yaml:"stop_price" json:"stop_price" validate:"gte=0"`
	Percent   float64      `yaml:"percent" json:"percent" validate:"gte=0,lt=100"`
}

func Limit(price float64) ExitRule {
	return ExitRule{Type: ExitRuleLimit, Price: price}
}

func StopLoss(price float64) ExitRule {
	return ExitRule{Type: ExitRuleStopLoss, Price: price}
}

func TakeProfit(price float64) ExitRule {
	return ExitRule{Type: ExitRuleTakeProfit, Price: price}
}

// TrailingStop triggers once price trades through trigger and exits percent beyond it.
func TrailingStop(trigger float64, percent float64) ExitRule {
	return ExitRule{Type: ExitRuleTrailingStop, Price: trigger, Percent: percent}
}

// TakeProfitAndStopLoss closes at takeProfit or stopLoss, whichever is reachable first.
// A zero price disables that side.
func TakeProfitAndStopLoss(takeProfit float64, stopLoss float64) ExitRule {
	return ExitRule{Type: ExitRuleTakeProfitAndStopLoss, Price: takeProfit, StopPrice: stopLoss}
}

// IsPositionExit reports whether the engine can evaluate the rule in its exit pass.
func (r ExitRule) IsPositionExit() bool {
	return r.Type == ExitRuleTrailingStop || r.Type == ExitRuleTakeProfitAndStopLoss
}

// Order is capital reserved for a trade that has not filled yet.
// Orders compare by value, which is how a pending order is found for cancellation.
type Order struct {
	EntryPrice float64   `yaml:"entry_price" json:"entry_price" validate:"gt=0"`
	Side       OrderSide `yaml:"side" json:"side" validate:"required,oneof=BUY SELL"`
	Quantity   float64   `yaml:"quantity" json:"quantity" validate:"gt=0"`
	ExitRule   ExitRule  `yaml:"exit_rule" json:"exit_rule"`
}

// NewOrder creates an order.
func NewOrder(side OrderSide, entryPrice float64, quantity float64, exitRule ExitRule) Order {
	return Order{
		EntryPrice: entryPrice,
		Side:       side,
		Quantity:   quantity,
		ExitRule:   exitRule,
	}
}

// Cost is the capital the order reserves, excluding fees.
func (o Order) Cost() float64 {
	return o.EntryPrice * o.Quantity
}

// PositionSide maps the order side to the side of the position it opens.
func (o Order) PositionSide() PositionSide {
	if o.Side == OrderSideSell {
		return PositionSideShort
	}

	return PositionSideLong
}

// Validate validates the Order struct.
func (o *Order) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOrder, "invalid order", err)
	}

	return nil
}
