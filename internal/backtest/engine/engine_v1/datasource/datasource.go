package datasource

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

type DataSource interface {
	// Initialize loads the candles stored at path
	Initialize(path string) error
	// ReadAll yields the candles whose open time is inside [start, end] in file order.
	// Candles without an open time are always yielded.
	ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) func(yield func(types.Candle, error) bool)
	// ReadLastData returns the last candle of the source
	ReadLastData() (types.Candle, error)
	// Count returns the number of candles ReadAll would yield
	Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error)
	// Close releases the loaded candles
	Close() error
}
