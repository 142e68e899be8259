package utils

import (
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
)

// CalculateMaxQuantity calculates the maximum quantity that can be bought with the given balance, fees included.
func CalculateMaxQuantity(balance float64, price float64, commissionFee commission_fee.CommissionFee) float64 {
	if price <= 0 || balance <= 0 {
		return 0
	}

	maxQty := balance / price

	// Usually converges in a couple of iterations
	for i := 0; i < 10; i++ {
		totalCost := maxQty*price + commissionFee.Calculate(price, maxQty)
		if totalCost <= balance {
			break
		}

		adjustment := balance / totalCost
		maxQty = maxQty * adjustment
	}

	return maxQty
}
