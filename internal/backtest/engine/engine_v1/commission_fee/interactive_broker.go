package commission_fee

// InteractiveBrokerCommissionFee charges 0.005 per unit with a minimum of 1.0 per fill.
type InteractiveBrokerCommissionFee struct {
}

func NewInteractiveBrokerCommissionFee() CommissionFee {
	return &InteractiveBrokerCommissionFee{}
}

func (c *InteractiveBrokerCommissionFee) Calculate(price float64, quantity float64) float64 {
	if quantity <= 0 {
		return 0
	}

	fee := 0.005 * quantity
	if fee < 1.0 {
		return 1.0
	}

	return fee
}
