package commission_fee

type CommissionFee interface {
	// Calculate the commission fee for a fill of quantity units at price and returns the fee in quote currency
	Calculate(price float64, quantity float64) float64
}

type Broker string

const (
	BrokerInteractiveBroker Broker = "interactive_broker"
	BrokerZero              Broker = "zero_commission"
	BrokerPercent           Broker = "percent"
)

var AllBrokers = []any{
	BrokerInteractiveBroker,
	BrokerZero,
	BrokerPercent,
}

// GetCommissionFeeHandler returns the fee model of broker. percent is only used by BrokerPercent.
func GetCommissionFeeHandler(broker Broker, percent float64) CommissionFee {
	switch broker {
	case BrokerInteractiveBroker:
		return NewInteractiveBrokerCommissionFee()
	case BrokerPercent:
		return NewPercentCommissionFee(percent)
	case BrokerZero:
		return NewZeroCommissionFee()
	default:
		return NewZeroCommissionFee()
	}
}
