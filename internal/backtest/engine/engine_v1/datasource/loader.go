package datasource

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// candleRecord is the on-disk shape of a candle. Times are RFC3339 and may be empty.
type candleRecord struct {
	Open      float64 `csv:"open" json:"open"`
	High      float64 `csv:"high" json:"high"`
	Low       float64 `csv:"low" json:"low"`
	Close     float64 `csv:"close" json:"close"`
	Volume    float64 `csv:"volume" json:"volume"`
	Bid       float64 `csv:"bid" json:"bid"`
	OpenTime  string  `csv:"open_time" json:"open_time"`
	CloseTime string  `csv:"close_time" json:"close_time"`
}

func (r candleRecord) toCandle() (types.Candle, error) {
	candle := types.Candle{
		Open:      r.Open,
		High:      r.High,
		Low:       r.Low,
		Close:     r.Close,
		Volume:    r.Volume,
		Bid:       r.Bid,
		OpenTime:  optional.None[time.Time](),
		CloseTime: optional.None[time.Time](),
	}

	if r.OpenTime != "" {
		openTime, err := time.Parse(time.RFC3339, r.OpenTime)
		if err != nil {
			return types.Candle{}, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "invalid open_time %q", r.OpenTime)
		}

		candle.OpenTime = optional.Some(openTime)
	}

	if r.CloseTime != "" {
		closeTime, err := time.Parse(time.RFC3339, r.CloseTime)
		if err != nil {
			return types.Candle{}, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "invalid close_time %q", r.CloseTime)
		}

		candle.CloseTime = optional.Some(closeTime)
	}

	return candle, nil
}

func newCandleRecord(candle types.Candle) candleRecord {
	record := candleRecord{
		Open:   candle.Open,
		High:   candle.High,
		Low:    candle.Low,
		Close:  candle.Close,
		Volume: candle.Volume,
		Bid:    candle.Bid,
	}

	if candle.OpenTime.IsSome() {
		record.OpenTime = candle.OpenTime.Unwrap().Format(time.RFC3339)
	}

	if candle.CloseTime.IsSome() {
		record.CloseTime = candle.CloseTime.Unwrap().Format(time.RFC3339)
	}

	return record
}

// FormatFromPath picks the file format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.ErrCodeUnsupportedFormat, "unsupported candle file %s, expected .csv or .json", path)
	}
}

// Load reads and validates the candles at path, choosing the decoder by extension.
func Load(path string) ([]types.Candle, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return LoadJSON(path)
	default:
		return LoadCSV(path)
	}
}

// LoadCSV reads candles from a csv file with an open,high,low,close,volume,bid,open_time,close_time header.
func LoadCSV(path string) ([]types.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataReadFailed, err, "failed to open %s", path)
	}
	defer f.Close()

	var records []candleRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, errors.Newf(errors.ErrCodeCandleDataEmpty, "no candles in %s", path)
		}

		return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "failed to parse %s", path)
	}

	return toCandles(path, records)
}

// LoadJSON reads candles from a json array of objects keyed like the csv header.
func LoadJSON(path string) ([]types.Candle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataReadFailed, err, "failed to read %s", path)
	}

	var records []candleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "failed to parse %s", path)
	}

	return toCandles(path, records)
}

// WriteCSV writes candles in the format LoadCSV reads.
func WriteCSV(path string, candles []types.Candle) error {
	records := make([]candleRecord, 0, len(candles))
	for _, candle := range candles {
		records = append(records, newCandleRecord(candle))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeDataWriteFailed, err, "failed to create %s", path)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return errors.Wrapf(errors.ErrCodeDataWriteFailed, err, "failed to write %s", path)
	}

	return nil
}

func toCandles(path string, records []candleRecord) ([]types.Candle, error) {
	if len(records) == 0 {
		return nil, errors.Newf(errors.ErrCodeCandleDataEmpty, "no candles in %s", path)
	}

	candles := make([]types.Candle, 0, len(records))

	for i, record := range records {
		candle, err := record.toCandle()
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+1, path, err)
		}

		if err := candle.Validate(); err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+1, path, err)
		}

		candles = append(candles, candle)
	}

	return candles, nil
}
