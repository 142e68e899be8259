package commission_fee

// PercentCommissionFee charges a percent of the filled notional, like most crypto venues.
type PercentCommissionFee struct {
	Percent float64
}

func NewPercentCommissionFee(percent float64) CommissionFee {
	return &PercentCommissionFee{Percent: percent}
}

func (c *PercentCommissionFee) Calculate(price float64, quantity float64) float64 {
	notional := price * quantity
	if notional <= 0 || c.Percent <= 0 {
		return 0
	}

	return notional * c.Percent / 100
}
