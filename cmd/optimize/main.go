package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/moznion/go-optional"
	engine_v1 "github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/optimizer"
	"github.com/rxtech-lab/argo-backtest/internal/strategy"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/internal/version"
	"github.com/rxtech-lab/argo-backtest/mocks"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// optimizeAction sweeps every EMA and MACD period between min and max and prints the best combinations.
func optimizeAction(ctx context.Context, cmd *cli.Command) error {
	minPeriod, maxPeriod := int(cmd.Int("min")), int(cmd.Int("max"))
	if minPeriod > maxPeriod {
		return fmt.Errorf("max (%d) must be greater than or equal to min (%d)", maxPeriod, minPeriod)
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync() //nolint:errcheck // stdout sync errors are not actionable

	backtestConfig, optimizerConfig, err := loadConfigs(cmd.String("config"), cmd.Float("balance"))
	if err != nil {
		return err
	}

	if cmd.IsSet("workers") {
		optimizerConfig.Workers = optional.Some(int(cmd.Int("workers")))
	}

	candles, err := loadCandles(appLogger, cmd.String("data"), int(cmd.Int("generate")), int(cmd.Int("seed")))
	if err != nil {
		return err
	}

	definition, err := strategy.Get(cmd.String("strategy"))
	if err != nil {
		return err
	}

	opt, err := optimizer.NewOptimizer[strategy.EMAMACDParams, strategy.EMAMACDState](
		candles, backtestConfig, optimizerConfig, appLogger.Named("optimizer"),
	)
	if err != nil {
		return fmt.Errorf("failed to create optimizer: %w", err)
	}

	periods := optimizer.IntRange(minPeriod, maxPeriod, 1)
	generate := func() []strategy.EMAMACDParams {
		return optimizer.Product4(periods, periods, periods, periods, func(fast, slow, signal, ema int) strategy.EMAMACDParams {
			return strategy.EMAMACDParams{EMA: ema, Fast: fast, Slow: slow, Signal: signal}
		})
	}

	var bar *progressbar.ProgressBar

	onStart := optimizer.OnOptimizeStartCallback(func(combinations int, workers int) {
		bar = progressbar.NewOptions64(int64(combinations),
			progressbar.OptionSetDescription(fmt.Sprintf("Optimizing %s on %d workers", definition.Name, workers)),
			progressbar.OptionShowCount(),
		)
	})
	onProgress := optimizer.OnProgressCallback(func(current int64, _ int64) {
		_ = bar.Set64(current)
	})

	result, err := opt.Run(generate, strategy.NewEMAMACDState, definition.Step, optimizer.Callbacks{
		OnOptimizeStart: &onStart,
		OnProgress:      &onProgress,
	})
	if err != nil {
		return err
	}

	_ = bar.Finish()

	report := optimizer.NewReport(result, backtestConfig.InitialBalance, strategy.EMAMACDParams.String)

	fmt.Printf("\n\nPARAMETERS: MIN %d, MAX %d, NB TICKS %d\n\n", minPeriod, maxPeriod, len(candles))
	report.RenderTable(os.Stdout)

	if output := cmd.String("output"); output != "" {
		if err := report.WriteReport(output); err != nil {
			return err
		}

		appLogger.Info("Report written", zap.String("path", output), zap.String("run_id", report.RunID))
	}

	return nil
}

func loadConfigs(path string, balance float64) (engine_v1.BacktestConfig, optimizer.OptimizerConfig, error) {
	if path == "" {
		config := engine_v1.TestConfig(balance)

		return config, optimizer.DefaultOptimizerConfig(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return engine_v1.BacktestConfig{}, optimizer.OptimizerConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	backtestConfig, err := engine_v1.ParseConfig(string(content))
	if err != nil {
		return engine_v1.BacktestConfig{}, optimizer.OptimizerConfig{}, err
	}

	optimizerConfig, err := optimizer.ParseOptimizerConfig(string(content))
	if err != nil {
		return engine_v1.BacktestConfig{}, optimizer.OptimizerConfig{}, err
	}

	return backtestConfig, optimizerConfig, nil
}

func loadCandles(log *logger.Logger, path string, generate int, seed int) ([]types.Candle, error) {
	if path == "" {
		return mocks.GenerateSampleCandles(generate, seed, 100), nil
	}

	source := datasource.NewFileDataSource(log)
	if err := source.Initialize(path); err != nil {
		return nil, fmt.Errorf("failed to load candles: %w", err)
	}
	defer source.Close() //nolint:errcheck // in-memory source

	return datasource.ReadCandles(source, optional.None[time.Time](), optional.None[time.Time]())
}

func main() {
	cmd := &cli.Command{
		Name:    "optimize",
		Usage:   "Search EMA and MACD periods for the best final balance",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Path to a `csv or json` candle file. Sample candles are generated when empty",
			},
			&cli.IntFlag{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "Number of sample candles to generate when no data file is given",
				Value:   3000,
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "Seed of the sample candle generator",
				Value: 42,
			},
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Usage:   fmt.Sprintf("Strategy to optimize (%v)", strategy.Names()),
				Value:   strategy.NameEMAMACDTrailing,
			},
			&cli.IntFlag{
				Name:  "min",
				Usage: "Smallest period of every indicator",
				Value: 8,
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: "Largest period of every indicator",
				Value: 13,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the `yaml` config with backtest and optimizer sections",
			},
			&cli.FloatFlag{
				Name:  "balance",
				Usage: "Initial balance when no config is given",
				Value: 1000,
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Number of parallel workers, defaults to the config or the number of CPUs",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path of the yaml report to write",
			},
		},
		Action: optimizeAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
