package optimizer

import (
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"gopkg.in/yaml.v2"
)

// OptimizerConfig controls how a parameter sweep is scheduled and summarized.
type OptimizerConfig struct {
	// Workers is the number of chunks run in parallel. Defaults to the number of CPUs.
	Workers optional.Option[int] `yaml:"workers" json:"workers" jsonschema:"title=Workers,description=Number of parallel workers, defaults to the number of CPUs"`
	// TopK is the capacity of the best and error lists.
	TopK int `yaml:"top_k" json:"top_k" validate:"gt=0" jsonschema:"title=Top K,description=Number of best and error results kept,minimum=1"`
	// ProgressEvery reports progress every N combinations. 0 reports after every combination.
	ProgressEvery int `yaml:"progress_every" json:"progress_every" validate:"gte=0" jsonschema:"title=Progress Every,description=Report progress every N combinations,minimum=0"`
}

// UnmarshalYAML implements custom unmarshaling for OptimizerConfig.
func (c *OptimizerConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type Config struct {
		Workers       *int `yaml:"workers"`
		TopK          *int `yaml:"top_k"`
		ProgressEvery *int `yaml:"progress_every"`
	}

	var config Config
	if err := unmarshal(&config); err != nil {
		return err
	}

	*c = DefaultOptimizerConfig()

	if config.Workers != nil {
		c.Workers = optional.Some(*config.Workers)
	}

	if config.TopK != nil {
		c.TopK = *config.TopK
	}

	if config.ProgressEvery != nil {
		c.ProgressEvery = *config.ProgressEvery
	}

	return nil
}

// DefaultOptimizerConfig keeps the top 5 results and reports every 1000 combinations on every CPU.
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		Workers:       optional.None[int](),
		TopK:          5,
		ProgressEvery: 1000,
	}
}

// ParseOptimizerConfig reads the optimizer section of a yaml config file.
// A file without one yields the defaults.
func ParseOptimizerConfig(content string) (OptimizerConfig, error) {
	var file struct {
		Optimizer *OptimizerConfig `yaml:"optimizer"`
	}

	if err := yaml.Unmarshal([]byte(content), &file); err != nil {
		return OptimizerConfig{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse optimizer config", err)
	}

	config := DefaultOptimizerConfig()
	if file.Optimizer != nil {
		config = *file.Optimizer
	}

	if err := config.Validate(); err != nil {
		return OptimizerConfig{}, err
	}

	return config, nil
}

func (c *OptimizerConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid optimizer config", err)
	}

	if c.Workers.IsSome() && c.Workers.Unwrap() <= 0 {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "workers must be positive, got %d", c.Workers.Unwrap())
	}

	return nil
}

// WorkerCount returns the configured worker count, or the number of CPUs.
func (c *OptimizerConfig) WorkerCount() int {
	if c.Workers.IsSome() && c.Workers.Unwrap() > 0 {
		return c.Workers.Unwrap()
	}

	return runtime.NumCPU()
}
