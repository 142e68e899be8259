package types

import (
	"testing"

	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestOrderValidate(t *testing.T) {
	tests := []struct {
		name        string
		order       Order
		shouldError bool
	}{
		{
			name:        "valid buy order",
			order:       NewOrder(OrderSideBuy, 100, 1, TrailingStop(100, 2)),
			shouldError: false,
		},
		{
			name:        "valid sell order",
			order:       NewOrder(OrderSideSell, 100, 0.5, TakeProfitAndStopLoss(90, 105)),
			shouldError: false,
		},
		{
			name:        "zero entry price",
			order:       NewOrder(OrderSideBuy, 0, 1, TrailingStop(100, 2)),
			shouldError: true,
		},
		{
			name:        "negative quantity",
			order:       NewOrder(OrderSideBuy, 100, -1, TrailingStop(100, 2)),
			shouldError: true,
		},
		{
			name:        "unknown side",
			order:       NewOrder(OrderSide("HOLD"), 100, 1, TrailingStop(100, 2)),
			shouldError: true,
		},
		{
			name:        "missing exit rule type",
			order:       NewOrder(OrderSideBuy, 100, 1, ExitRule{}),
			shouldError: true,
		},
		{
			name:        "trailing percent out of range",
			order:       NewOrder(OrderSideBuy, 100, 1, TrailingStop(100, 150)),
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.shouldError {
				assert.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidOrder))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderCostAndSide(t *testing.T) {
	buy := NewOrder(OrderSideBuy, 95, 2, TrailingStop(95, 2))
	assert.Equal(t, 190.0, buy.Cost())
	assert.Equal(t, PositionSideLong, buy.PositionSide())

	sell := NewOrder(OrderSideSell, 50, 3, TakeProfitAndStopLoss(40, 55))
	assert.Equal(t, 150.0, sell.Cost())
	assert.Equal(t, PositionSideShort, sell.PositionSide())
}

func TestOrderEquality(t *testing.T) {
	a := NewOrder(OrderSideBuy, 100, 1, TrailingStop(100, 2))
	b := NewOrder(OrderSideBuy, 100, 1, TrailingStop(100, 2))
	c := NewOrder(OrderSideBuy, 100, 1, TrailingStop(100, 3))

	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestExitRuleConstructors(t *testing.T) {
	assert.Equal(t, ExitRule{Type: ExitRuleLimit, Price: 10}, Limit(10))
	assert.Equal(t, ExitRule{Type: ExitRuleStopLoss, Price: 9}, StopLoss(9))
	assert.Equal(t, ExitRule{Type: ExitRuleTakeProfit, Price: 11}, TakeProfit(11))
	assert.Equal(t, ExitRule{Type: ExitRuleTrailingStop, Price: 10, Percent: 2}, TrailingStop(10, 2))
	assert.Equal(t, ExitRule{Type: ExitRuleTakeProfitAndStopLoss, Price: 105, StopPrice: 95}, TakeProfitAndStopLoss(105, 95))

	assert.True(t, TrailingStop(10, 2).IsPositionExit())
	assert.True(t, TakeProfitAndStopLoss(105, 95).IsPositionExit())
	assert.False(t, Limit(10).IsPositionExit())
	assert.False(t, StopLoss(10).IsPositionExit())
	assert.False(t, TakeProfit(10).IsPositionExit())
}
