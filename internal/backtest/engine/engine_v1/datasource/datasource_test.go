package datasource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type DataSourceTestSuite struct {
	suite.Suite
	dir string
}

func TestDataSourceSuite(t *testing.T) {
	suite.Run(t, new(DataSourceTestSuite))
}

func (suite *DataSourceTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *DataSourceTestSuite) writeFile(name string, content string) string {
	path := filepath.Join(suite.dir, name)
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0644))

	return path
}

const validCSV = `open,high,low,close,volume,bid,open_time,close_time
100,105,95,102,1000,400,2024-01-01T00:00:00Z,2024-01-01T00:59:59Z
102,110,101,108,1500,900,2024-01-01T01:00:00Z,2024-01-01T01:59:59Z
108,109,100,101,800,0,2024-01-01T02:00:00Z,2024-01-01T02:59:59Z
`

func (suite *DataSourceTestSuite) TestLoadCSV() {
	path := suite.writeFile("candles.csv", validCSV)

	candles, err := LoadCSV(path)
	suite.Require().NoError(err)
	suite.Require().Len(candles, 3)

	suite.Equal(100.0, candles[0].Open)
	suite.Equal(105.0, candles[0].High)
	suite.Equal(600.0, candles[0].Ask())
	suite.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), candles[0].OpenTime.Unwrap().UTC())
	suite.Equal(101.0, candles[2].Close)
}

func (suite *DataSourceTestSuite) TestLoadCSVWithoutTimes() {
	path := suite.writeFile("candles.csv", "open,high,low,close,volume\n10,11,9,10,5\n")

	candles, err := LoadCSV(path)
	suite.Require().NoError(err)
	suite.Require().Len(candles, 1)
	suite.True(candles[0].OpenTime.IsNone())
	suite.Equal(0.0, candles[0].Bid)
}

func (suite *DataSourceTestSuite) TestLoadErrors() {
	testCases := []struct {
		name    string
		file    string
		content string
		code    errors.ErrorCode
	}{
		{
			name:    "high below low",
			file:    "bad.csv",
			content: "open,high,low,close,volume\n10,8,9,10,5\n",
			code:    errors.ErrCodeInvalidCandle,
		},
		{
			name:    "non positive price",
			file:    "bad.csv",
			content: "open,high,low,close,volume\n0,11,9,10,5\n",
			code:    errors.ErrCodeInvalidCandle,
		},
		{
			name:    "negative volume",
			file:    "bad.csv",
			content: "open,high,low,close,volume\n10,11,9,10,-1\n",
			code:    errors.ErrCodeInvalidCandle,
		},
		{
			name:    "header only",
			file:    "empty.csv",
			content: "open,high,low,close,volume\n",
			code:    errors.ErrCodeCandleDataEmpty,
		},
		{
			name:    "bad timestamp",
			file:    "bad.csv",
			content: "open,high,low,close,volume,open_time\n10,11,9,10,5,yesterday\n",
			code:    errors.ErrCodeDataParseFailed,
		},
		{
			name:    "empty json array",
			file:    "empty.json",
			content: "[]",
			code:    errors.ErrCodeCandleDataEmpty,
		},
		{
			name:    "malformed json",
			file:    "bad.json",
			content: "[{\"open\": 1,",
			code:    errors.ErrCodeDataParseFailed,
		},
		{
			name:    "unsupported extension",
			file:    "candles.parquet",
			content: "",
			code:    errors.ErrCodeUnsupportedFormat,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			path := suite.writeFile(tc.file, tc.content)

			_, err := Load(path)
			suite.Require().Error(err)
			suite.True(errors.HasCode(err, tc.code), "got %v", err)
		})
	}
}

func (suite *DataSourceTestSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(suite.dir, "missing.csv"))
	suite.True(errors.HasCode(err, errors.ErrCodeDataReadFailed))
}

func (suite *DataSourceTestSuite) TestLoadJSON() {
	path := suite.writeFile("candles.json", `[
		{"open": 100, "high": 105, "low": 95, "close": 102, "volume": 1000, "bid": 400, "open_time": "2024-01-01T00:00:00Z"},
		{"open": 102, "high": 110, "low": 101, "close": 108, "volume": 1500}
	]`)

	candles, err := Load(path)
	suite.Require().NoError(err)
	suite.Require().Len(candles, 2)
	suite.True(candles[0].OpenTime.IsSome())
	suite.True(candles[1].OpenTime.IsNone())
	suite.Equal(108.0, candles[1].Close)
}

func (suite *DataSourceTestSuite) TestWriteCSVRoundTrip() {
	candles, err := LoadCSV(suite.writeFile("candles.csv", validCSV))
	suite.Require().NoError(err)

	path := filepath.Join(suite.dir, "out.csv")
	suite.Require().NoError(WriteCSV(path, candles))

	reloaded, err := LoadCSV(path)
	suite.Require().NoError(err)
	suite.Require().Len(reloaded, len(candles))

	for i := range candles {
		suite.Equal(candles[i].Close, reloaded[i].Close)
		suite.True(candles[i].OpenTime.Unwrap().Equal(reloaded[i].OpenTime.Unwrap()))
	}
}

func (suite *DataSourceTestSuite) TestFileDataSource() {
	ds := NewFileDataSource(nil)

	_, err := ds.Count(optional.None[time.Time](), optional.None[time.Time]())
	suite.True(errors.HasCode(err, errors.ErrCodeCandleDataEmpty))

	suite.Require().NoError(ds.Initialize(suite.writeFile("candles.csv", validCSV)))

	count, err := ds.Count(optional.None[time.Time](), optional.None[time.Time]())
	suite.NoError(err)
	suite.Equal(3, count)

	start := optional.Some(time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC))
	candles, err := ReadCandles(ds, start, optional.None[time.Time]())
	suite.Require().NoError(err)
	suite.Len(candles, 2)
	suite.Equal(102.0, candles[0].Open)

	last, err := ds.ReadLastData()
	suite.NoError(err)
	suite.Equal(101.0, last.Close)

	suite.NoError(ds.Close())
	_, err = ReadCandles(ds, optional.None[time.Time](), optional.None[time.Time]())
	suite.True(errors.HasCode(err, errors.ErrCodeCandleDataEmpty))
}

func (suite *DataSourceTestSuite) TestInMemoryDataSourceStopsEarly() {
	ds := NewInMemoryDataSource([]types.Candle{
		types.NewCandle(1, 2, 1, 2, 1),
		types.NewCandle(2, 3, 2, 3, 1),
		types.NewCandle(3, 4, 3, 4, 1),
	})

	seen := 0
	for _, err := range ds.ReadAll(optional.None[time.Time](), optional.None[time.Time]()) {
		suite.Require().NoError(err)

		seen++
		if seen == 2 {
			break
		}
	}

	suite.Equal(2, seen)
}
