package types

// Position is an open, filled trade.
type Position struct {
	ID         uint32       `yaml:"id" json:"id"`
	Side       PositionSide `yaml:"side" json:"side"`
	EntryPrice float64      `yaml:"entry_price" json:"entry_price"`
	Quantity   float64      `yaml:"quantity" json:"quantity"`
	ExitRule   ExitRule     `yaml:"exit_rule" json:"exit_rule"`
	// OpenIndex is the candle index the position was filled on.
	OpenIndex int `yaml:"open_index" json:"open_index"`
	// EntryFee is the commission paid when the order filled.
	EntryFee float64 `yaml:"entry_fee" json:"entry_fee"`
	// TrailRatio is trigger/entry at open, used to move a trailing stop.
	TrailRatio float64 `yaml:"trail_ratio" json:"trail_ratio"`
}

// NewPositionFromOrder opens a position from a filled order.
func NewPositionFromOrder(id uint32, order Order, openIndex int, entryFee float64) Position {
	ratio := 0.0
	if order.ExitRule.Type == ExitRuleTrailingStop && order.EntryPrice > 0 {
		ratio = order.ExitRule.Price / order.EntryPrice
	}

	return Position{
		ID:         id,
		Side:       order.PositionSide(),
		EntryPrice: order.EntryPrice,
		Quantity:   order.Quantity,
		ExitRule:   order.ExitRule,
		OpenIndex:  openIndex,
		EntryFee:   entryFee,
		TrailRatio: ratio,
	}
}

// Cost is the notional deployed into the position.
func (p Position) Cost() float64 {
	return p.EntryPrice * p.Quantity
}

// EstimateProfit returns the gross profit if the position closed at exitPrice.
func (p Position) EstimateProfit(exitPrice float64) float64 {
	if p.Side == PositionSideShort {
		return (p.EntryPrice - exitPrice) * p.Quantity
	}

	return (exitPrice - p.EntryPrice) * p.Quantity
}

// ProfitChange returns the percent change of the position value at exitPrice.
// For shorts the entry and exit notionals are swapped.
func (p Position) ProfitChange(exitPrice float64) float64 {
	entry := p.EntryPrice * p.Quantity
	exit := exitPrice * p.Quantity

	if p.Side == PositionSideShort {
		entry, exit = exit, entry
	}

	if entry == 0 {
		return 0
	}

	return (exit - entry) / entry * 100
}
