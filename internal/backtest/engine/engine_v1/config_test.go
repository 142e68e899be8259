package engine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestEmptyConfig() {
	config := EmptyConfig()

	suite.Equal(0.0, config.InitialBalance)
	suite.Equal(commission_fee.BrokerZero, config.Broker)
	suite.Equal(TrailingStopRatchet, config.TrailingStop)
	suite.False(config.LiquidateOnEnd)
	suite.True(config.Version.IsNone())
	suite.True(config.StartTime.IsNone())
	suite.True(config.EndTime.IsNone())
}

func (suite *ConfigTestSuite) TestTestConfig() {
	config := TestConfig(1000)

	suite.Equal(1000.0, config.InitialBalance)
	suite.Equal(commission_fee.BrokerZero, config.Broker)
	suite.NoError(config.Validate())
}

func (suite *ConfigTestSuite) TestParseConfigComplete() {
	content := `
version: v1.0.0
initial_balance: 5000
broker: percent
fee_percent: 0.1
trailing_stop: static
liquidate_on_end: true
start_time: 2024-01-01T00:00:00Z
end_time: 2024-06-30T00:00:00Z
`
	config, err := ParseConfig(content)
	suite.Require().NoError(err)

	suite.Equal("v1.0.0", config.Version.Unwrap())
	suite.Equal(5000.0, config.InitialBalance)
	suite.Equal(commission_fee.BrokerPercent, config.Broker)
	suite.Equal(0.1, config.FeePercent)
	suite.Equal(TrailingStopStatic, config.TrailingStop)
	suite.True(config.LiquidateOnEnd)
	suite.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), config.StartTime.Unwrap().UTC())
	suite.Equal(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), config.EndTime.Unwrap().UTC())

	fee := config.CommissionFee()
	suite.InDelta(0.1, fee.Calculate(100, 1), 1e-12)
}

func (suite *ConfigTestSuite) TestParseConfigDefaults() {
	config, err := ParseConfig("initial_balance: 100\n")
	suite.Require().NoError(err)

	suite.Equal(commission_fee.BrokerZero, config.Broker)
	suite.Equal(TrailingStopRatchet, config.TrailingStop)
	suite.True(config.Version.IsNone())
	suite.True(config.StartTime.IsNone())
}

func (suite *ConfigTestSuite) TestParseConfigErrors() {
	testCases := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{
			name:    "missing balance",
			content: "broker: zero_commission\n",
			code:    errors.ErrCodeNonPositiveBalance,
		},
		{
			name:    "negative balance",
			content: "initial_balance: -10\n",
			code:    errors.ErrCodeNonPositiveBalance,
		},
		{
			name:    "unknown trailing stop mode",
			content: "initial_balance: 100\ntrailing_stop: sideways\n",
			code:    errors.ErrCodeInvalidConfiguration,
		},
		{
			name:    "fee percent out of range",
			content: "initial_balance: 100\nfee_percent: 150\n",
			code:    errors.ErrCodeInvalidConfiguration,
		},
		{
			name:    "end before start",
			content: "initial_balance: 100\nstart_time: 2024-02-01T00:00:00Z\nend_time: 2024-01-01T00:00:00Z\n",
			code:    errors.ErrCodeInvalidConfiguration,
		},
		{
			name:    "malformed yaml",
			content: "initial_balance: [1, 2\n",
			code:    errors.ErrCodeInvalidConfiguration,
		},
		{
			name:    "incompatible version",
			content: "initial_balance: 100\nversion: v2.0.0\n",
			code:    errors.ErrCodeVersionMismatch,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := ParseConfig(tc.content)
			suite.Require().Error(err)
			suite.True(errors.HasCode(err, tc.code), "got %v", err)
		})
	}
}

func (suite *ConfigTestSuite) TestGenerateSchema() {
	config := &BacktestConfig{}
	schema, err := config.GenerateSchema()

	suite.NoError(err)
	suite.NotNil(schema)
	suite.Equal("backtest-config", schema.Title)
	suite.Equal("Configuration schema for the backtest engine", schema.Description)
	suite.Equal("http://json-schema.org/draft-07/schema#", schema.Version)
}

func (suite *ConfigTestSuite) TestGenerateSchemaJSON() {
	config := &BacktestConfig{}
	schemaJSON, err := config.GenerateSchemaJSON()

	suite.NoError(err)
	suite.NotEmpty(schemaJSON)

	var parsed map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(schemaJSON), &parsed))

	properties, ok := parsed["properties"].(map[string]any)
	suite.Require().True(ok)
	suite.Contains(properties, "initial_balance")
	suite.Contains(properties, "broker")
	suite.Contains(properties, "trailing_stop")

	trailing, ok := properties["trailing_stop"].(map[string]any)
	suite.Require().True(ok)
	suite.ElementsMatch([]any{"ratchet", "static"}, trailing["enum"])
}
