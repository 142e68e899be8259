package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine"
	engine_v1 "github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/strategy"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/internal/version"
	"github.com/rxtech-lab/argo-backtest/mocks"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// backtestAction loads candles and a config, runs one strategy over them and reports its stats.
func backtestAction(ctx context.Context, cmd *cli.Command) error {
	zapLevel := zapcore.InfoLevel
	if cmd.Bool("debug") {
		zapLevel = zapcore.DebugLevel
	}

	appLogger, err := logger.NewLoggerWithLevel(zapLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync() //nolint:errcheck // stdout sync errors are not actionable

	config, err := loadConfig(cmd.String("config"), cmd.Float("balance"))
	if err != nil {
		return err
	}

	candles, err := loadCandles(appLogger, cmd.String("data"), int(cmd.Int("generate")), int(cmd.Int("seed")))
	if err != nil {
		return err
	}

	definition, err := strategy.Get(cmd.String("strategy"))
	if err != nil {
		return err
	}

	params := paramsFromFlags(cmd, definition.DefaultParams)

	step, err := definition.Bind(params)
	if err != nil {
		return fmt.Errorf("failed to create strategy: %w", err)
	}

	backtest, err := engine_v1.NewBacktest(candles, config, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create backtest: %w", err)
	}

	bar := progressbar.Default(int64(len(backtest.Candles())))
	bar.Describe(fmt.Sprintf("Running %s (%s)", definition.Name, params))

	onProcessData := engine.OnProcessDataCallback(func(_ int, _ int) error {
		return bar.Add(1)
	})

	if err := backtest.Run(step, engine.LifecycleCallbacks{OnProcessData: &onProcessData}); err != nil {
		appLogger.Error("Backtest failed", zap.String("strategy", definition.Name), zap.Error(err))

		return err
	}

	tradeStats, err := backtest.GetStats(definition.Name)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	summary, err := yaml.Marshal(tradeStats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	fmt.Printf("\n%s", summary)

	if output := cmd.String("output"); output != "" {
		if err := types.WriteTradeStats(output, []types.TradeStats{tradeStats}); err != nil {
			return err
		}

		appLogger.Info("Stats written", zap.String("path", output))
	}

	return nil
}

// schemaAction prints the JSON schema of the backtest config, or of the strategy parameters.
func schemaAction(ctx context.Context, cmd *cli.Command) error {
	var (
		schema string
		err    error
	)

	if cmd.Bool("params") {
		definition, getErr := strategy.Get(cmd.String("strategy"))
		if getErr != nil {
			return getErr
		}

		schema, err = definition.ParamsSchema()
	} else {
		config := engine_v1.EmptyConfig()
		schema, err = config.GenerateSchemaJSON()
	}

	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	fmt.Println(schema)

	return nil
}

func loadConfig(path string, balance float64) (engine_v1.BacktestConfig, error) {
	if path == "" {
		config := engine_v1.TestConfig(balance)
		config.LiquidateOnEnd = true

		return config, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return engine_v1.BacktestConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	return engine_v1.ParseConfig(string(content))
}

// loadCandles reads the data file when one is given, and generates sample candles otherwise.
func loadCandles(log *logger.Logger, path string, generate int, seed int) ([]types.Candle, error) {
	if path == "" {
		log.Info("Generating sample candles", zap.Int("count", generate), zap.Int("seed", seed))

		return mocks.GenerateSampleCandles(generate, seed, 100), nil
	}

	source := datasource.NewFileDataSource(log)
	if err := source.Initialize(path); err != nil {
		return nil, fmt.Errorf("failed to load candles: %w", err)
	}
	defer source.Close() //nolint:errcheck // in-memory source

	return datasource.ReadCandles(source, optional.None[time.Time](), optional.None[time.Time]())
}

func paramsFromFlags(cmd *cli.Command, defaults strategy.EMAMACDParams) strategy.EMAMACDParams {
	params := defaults

	if cmd.IsSet("ema") {
		params.EMA = int(cmd.Int("ema"))
	}

	if cmd.IsSet("fast") {
		params.Fast = int(cmd.Int("fast"))
	}

	if cmd.IsSet("slow") {
		params.Slow = int(cmd.Int("slow"))
	}

	if cmd.IsSet("signal") {
		params.Signal = int(cmd.Int("signal"))
	}

	return params
}

func main() {
	cmd := &cli.Command{
		Name:    "backtest",
		Usage:   "Run a strategy over historical candles",
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
				Usage:   fmt.Sprintf("Strategy to run (%v)", strategy.Names()),
				Value:   strategy.NameEMAMACDTrailing,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the backtest `yaml` config",
			},
			&cli.FloatFlag{
				Name:  "balance",
				Usage: "Initial balance when no config is given",
				Value: 1000,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path of the yaml stats file to write",
			},
			&cli.IntFlag{Name: "ema", Usage: "EMA period"},
			&cli.IntFlag{Name: "fast", Usage: "MACD fast period"},
			&cli.IntFlag{Name: "slow", Usage: "MACD slow period"},
			&cli.IntFlag{Name: "signal", Usage: "MACD signal period"},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log every order and position",
			},
		},
		Action: backtestAction,
		Commands: []*cli.Command{
			{
				Name:  "schema",
				Usage: "Print the JSON schema of the backtest config",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "params",
						Usage: "Print the schema of the strategy parameters instead",
					},
					&cli.StringFlag{
						Name:  "strategy",
						Usage: "Strategy whose parameters are printed",
						Value: strategy.NameEMAMACDTrailing,
					},
				},
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
