package types

import "github.com/moznion/go-optional"

type EventType string

const (
	EventTypeAddOrder    EventType = "ADD_ORDER"
	EventTypeDelOrder    EventType = "DEL_ORDER"
	EventTypeAddPosition EventType = "ADD_POSITION"
	EventTypeDelPosition EventType = "DEL_POSITION"
)

// Event is one entry of the append-only backtest audit log.
type Event struct {
	Type EventType `yaml:"type" json:"type"`
	// Index is the candle index the event happened on.
	Index    int                      `yaml:"index" json:"index"`
	Order    optional.Option[Order]    `yaml:"order" json:"order"`
	Position optional.Option[Position] `yaml:"position" json:"position"`
	// ExitPrice and Profit are set on DEL_POSITION. Profit is net of fees.
	ExitPrice float64 `yaml:"exit_price" json:"exit_price"`
	Profit    float64 `yaml:"profit" json:"profit"`
	Fee       float64 `yaml:"fee" json:"fee"`
}

func NewOrderEvent(eventType EventType, index int, order Order) Event {
	return Event{
		Type:     eventType,
		Index:    index,
		Order:    optional.Some(order),
		Position: optional.None[Position](),
	}
}

func NewAddPositionEvent(index int, position Position) Event {
	return Event{
		Type:     EventTypeAddPosition,
		Index:    index,
		Order:    optional.None[Order](),
		Position: optional.Some(position),
		Fee:      position.EntryFee,
	}
}

func NewDelPositionEvent(index int, position Position, exitPrice float64, profit float64, fee float64) Event {
	return Event{
		Type:      EventTypeDelPosition,
		Index:     index,
		Order:     optional.None[Order](),
		Position:  optional.Some(position),
		ExitPrice: exitPrice,
		Profit:    profit,
		Fee:       fee,
	}
}
