package engine

import (
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// BacktestLog is the append-only record of order and position events of a run.
type BacktestLog struct {
	events []types.Event
}

// NewBacktestLog creates an empty event log.
func NewBacktestLog() *BacktestLog {
	return &BacktestLog{
		events: nil,
	}
}

// Append records an event.
func (l *BacktestLog) Append(event types.Event) {
	l.events = append(l.events, event)
}

// Events returns a copy of every recorded event in insertion order.
func (l *BacktestLog) Events() []types.Event {
	return append([]types.Event(nil), l.events...)
}

// Filter returns a copy of the events of the given type.
func (l *BacktestLog) Filter(eventType types.EventType) []types.Event {
	var filtered []types.Event

	for _, event := range l.events {
		if event.Type == eventType {
			filtered = append(filtered, event)
		}
	}

	return filtered
}

func (l *BacktestLog) Len() int {
	return len(l.events)
}

// Clear removes every event, keeping the allocated capacity.
func (l *BacktestLog) Clear() {
	l.events = l.events[:0]
}
