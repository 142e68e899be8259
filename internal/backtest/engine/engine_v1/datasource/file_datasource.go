package datasource

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"go.uber.org/zap"
)

// FileDataSource serves candles loaded from a csv or json file.
type FileDataSource struct {
	path    string
	candles []types.Candle
	logger  *logger.Logger
}

func NewFileDataSource(log *logger.Logger) *FileDataSource {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &FileDataSource{
		path:    "",
		candles: nil,
		logger:  log,
	}
}

// NewInMemoryDataSource serves candles that are already loaded, such as generated series.
func NewInMemoryDataSource(candles []types.Candle) *FileDataSource {
	return &FileDataSource{
		path:    "",
		candles: append([]types.Candle(nil), candles...),
		logger:  logger.NewNopLogger(),
	}
}

func (d *FileDataSource) Initialize(path string) error {
	candles, err := Load(path)
	if err != nil {
		return err
	}

	d.path = path
	d.candles = candles

	d.logger.Debug("Loaded candles", zap.String("path", path), zap.Int("count", len(candles)))

	return nil
}

func (d *FileDataSource) ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) func(yield func(types.Candle, error) bool) {
	return func(yield func(types.Candle, error) bool) {
		if d.candles == nil {
			yield(types.Candle{}, errors.New(errors.ErrCodeCandleDataEmpty, "data source is not initialized"))

			return
		}

		for _, candle := range d.candles {
			if !inWindow(candle, start, end) {
				continue
			}

			if !yield(candle, nil) {
				return
			}
		}
	}
}

func (d *FileDataSource) ReadLastData() (types.Candle, error) {
	if len(d.candles) == 0 {
		return types.Candle{}, errors.New(errors.ErrCodeCandleDataEmpty, "data source has no candles")
	}

	return d.candles[len(d.candles)-1], nil
}

func (d *FileDataSource) Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error) {
	if d.candles == nil {
		return 0, errors.New(errors.ErrCodeCandleDataEmpty, "data source is not initialized")
	}

	count := 0

	for _, candle := range d.candles {
		if inWindow(candle, start, end) {
			count++
		}
	}

	return count, nil
}

func (d *FileDataSource) Close() error {
	d.candles = nil

	return nil
}

// ReadCandles drains ReadAll into a slice.
func ReadCandles(ds DataSource, start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.Candle, error) {
	var candles []types.Candle

	for candle, err := range ds.ReadAll(start, end) {
		if err != nil {
			return nil, err
		}

		candles = append(candles, candle)
	}

	if len(candles) == 0 {
		return nil, errors.New(errors.ErrCodeCandleDataEmpty, "no candles in the requested window")
	}

	return candles, nil
}

func inWindow(candle types.Candle, start optional.Option[time.Time], end optional.Option[time.Time]) bool {
	if candle.OpenTime.IsNone() {
		return true
	}

	openTime := candle.OpenTime.Unwrap()

	if start.IsSome() && openTime.Before(start.Unwrap()) {
		return false
	}

	if end.IsSome() && openTime.After(end.Unwrap()) {
		return false
	}

	return true
}
