package engine

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/internal/version"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"gopkg.in/yaml.v2"
)

type TrailingStopMode string

const (
	// TrailingStopRatchet moves the trigger with favorable price after every exit pass.
	TrailingStopRatchet TrailingStopMode = "ratchet"
	// TrailingStopStatic keeps the trigger fixed at the price given when the order was placed.
	TrailingStopStatic TrailingStopMode = "static"
)

var AllTrailingStopModes = []any{
	TrailingStopRatchet,
	TrailingStopStatic,
}

type BacktestConfig struct {
	Version        optional.Option[string]    `yaml:"version" json:"version" jsonschema:"title=Version,description=Engine version or semver constraint the config was written for"`
	InitialBalance float64                    `yaml:"initial_balance" json:"initial_balance" validate:"gt=0" jsonschema:"title=Initial Balance,description=Starting wallet balance,exclusiveMinimum=0"`
	Broker         commission_fee.Broker      `yaml:"broker" json:"broker" validate:"required" jsonschema:"title=Broker,description=The broker to use for commission calculations"`
	FeePercent     float64                    `yaml:"fee_percent" json:"fee_percent" validate:"gte=0,lt=100" jsonschema:"title=Fee Percent,description=Percent of notional charged per fill when broker is percent,minimum=0"`
	TrailingStop   TrailingStopMode           `yaml:"trailing_stop" json:"trailing_stop" validate:"required,oneof=ratchet static" jsonschema:"title=Trailing Stop,description=Whether trailing stop triggers follow price"`
	LiquidateOnEnd bool                       `yaml:"liquidate_on_end" json:"liquidate_on_end" jsonschema:"title=Liquidate On End,description=Cancel pending orders and close positions at the last close when the run ends"`
	StartTime      optional.Option[time.Time] `yaml:"start_time" json:"start_time" jsonschema:"title=Start Time,description=Optional start time for the backtest period"`
	EndTime        optional.Option[time.Time] `yaml:"end_time" json:"end_time" jsonschema:"title=End Time,description=Optional end time for the backtest period"`
}

// UnmarshalYAML implements custom unmarshaling for BacktestConfig.
// Missing keys keep the defaults of EmptyConfig.
func (c *BacktestConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type Config struct {
		Version        *string               `yaml:"version"`
		InitialBalance float64               `yaml:"initial_balance"`
		Broker         commission_fee.Broker `yaml:"broker"`
		FeePercent     float64               `yaml:"fee_percent"`
		TrailingStop   TrailingStopMode      `yaml:"trailing_stop"`
		LiquidateOnEnd bool                  `yaml:"liquidate_on_end"`
		StartTime      *time.Time            `yaml:"start_time"`
		EndTime        *time.Time            `yaml:"end_time"`
	}

	var config Config
	if err := unmarshal(&config); err != nil {
		return err
	}

	*c = EmptyConfig()
	c.InitialBalance = config.InitialBalance
	c.FeePercent = config.FeePercent
	c.LiquidateOnEnd = config.LiquidateOnEnd

	if config.Broker != "" {
		c.Broker = config.Broker
	}

	if config.TrailingStop != "" {
		c.TrailingStop = config.TrailingStop
	}

	if config.Version != nil {
		c.Version = optional.Some(*config.Version)
	}

	if config.StartTime != nil {
		c.StartTime = optional.Some(*config.StartTime)
	}

	if config.EndTime != nil {
		c.EndTime = optional.Some(*config.EndTime)
	}

	return nil
}

// ParseConfig decodes and validates a yaml config.
func ParseConfig(content string) (BacktestConfig, error) {
	config := EmptyConfig()

	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return BacktestConfig{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse backtest config", err)
	}

	if err := config.Validate(); err != nil {
		return BacktestConfig{}, err
	}

	return config, nil
}

// Validate checks field ranges, the time window and the version requirement.
func (c *BacktestConfig) Validate() error {
	if c.InitialBalance <= 0 {
		return errors.Newf(errors.ErrCodeNonPositiveBalance, "initial balance must be positive, got %f", c.InitialBalance)
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid backtest config", err)
	}

	if c.StartTime.IsSome() && c.EndTime.IsSome() && c.EndTime.Unwrap().Before(c.StartTime.Unwrap()) {
		return errors.New(errors.ErrCodeInvalidConfiguration, "end time is before start time")
	}

	if c.Version.IsSome() {
		if err := version.CheckCompatibility(version.GetVersion(), c.Version.Unwrap()); err != nil {
			return err
		}
	}

	return nil
}

// CommissionFee returns the fee model selected by the config.
func (c *BacktestConfig) CommissionFee() commission_fee.CommissionFee {
	return commission_fee.GetCommissionFeeHandler(c.Broker, c.FeePercent)
}

// GenerateSchema generates a JSON schema for the BacktestConfig.
func (c *BacktestConfig) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			switch {
			case t.String() == "optional.Option[time.Time]":
				return &jsonschema.Schema{
					Type:   "string",
					Format: "date-time",
				}
			case t.String() == "optional.Option[string]":
				return &jsonschema.Schema{
					Type: "string",
				}
			case strings.Contains(t.String(), "commission_fee.Broker"):
				return &jsonschema.Schema{
					Type: "string",
					Enum: commission_fee.AllBrokers,
				}
			case strings.Contains(t.String(), "TrailingStopMode"):
				return &jsonschema.Schema{
					Type: "string",
					Enum: AllTrailingStopModes,
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)

	schema.Title = "backtest-config"
	schema.Description = "Configuration schema for the backtest engine"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the BacktestConfig.
func (c *BacktestConfig) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}

// TestConfig returns a zero-fee config with the given initial balance.
func TestConfig(initialBalance float64) BacktestConfig {
	config := EmptyConfig()
	config.InitialBalance = initialBalance

	return config
}

// EmptyConfig returns a BacktestConfig with default values.
func EmptyConfig() BacktestConfig {
	return BacktestConfig{
		Version:        optional.None[string](),
		InitialBalance: 0,
		Broker:         commission_fee.BrokerZero,
		FeePercent:     0,
		TrailingStop:   TrailingStopRatchet,
		LiquidateOnEnd: false,
		StartTime:      optional.None[time.Time](),
		EndTime:        optional.None[time.Time](),
	}
}
