// Command qbscore ranks quarterbacks by a context-adjusted QBScore and
// compares it with passer rating.
//
// Usage:
//
//	qbscore report --input qb_stats.xlsx --output qb_report.png
//	qbscore report --headless=false
//	qbscore rank --format json
//	qbscore serve
//	qbscore publish --season 2024
//
// Every flag falls back to its environment variable (see internal/config);
// a .env file in the working directory is loaded first.

// @title QBScore API
// @version 1.0.0
// @description Passer rating vs context-adjusted QBScore rankings, top movers and the report chart.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http
// @contact.name QBScore
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/qbscore/internal/config"
	"github.com/albapepper/qbscore/internal/pipeline"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "qbscore",
		Short:         "Context-adjusted quarterback rankings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(reportCmd())
	root.AddCommand(rankCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(publishCmd())

	if err := root.Execute(); err != nil {
		logger.Error("qbscore failed", "error", err)
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// inputFlags are the dataset flags every command takes.
type inputFlags struct {
	input string
	sheet string
	topN  int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Workbook path (default $QBSCORE_INPUT or qb_stats.xlsx)")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Sheet name (default first sheet)")
	cmd.Flags().IntVar(&f.topN, "top", 0, "Players per mover group (default $QBSCORE_TOP_N or 5)")
}

func (f *inputFlags) apply(cfg *config.Config) {
	if f.input != "" {
		cfg.InputPath = f.input
	}
	if f.sheet != "" {
		cfg.Sheet = f.sheet
	}
	if f.topN > 0 {
		cfg.TopN = f.topN
	}
}

// runPipeline handles config loading, logger level, signal-aware context and
// the load → score → rank stages shared by every command.
func runPipeline(flags *inputFlags, fn func(ctx context.Context, cfg *config.Config, res *pipeline.Result) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags.apply(cfg)

	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	start := time.Now()
	res, err := pipeline.LoadAndRun(cfg.InputPath, cfg.Sheet, pipeline.Options{TopN: cfg.TopN}, logger)
	if err != nil {
		return err
	}
	logger.Debug("Pipeline finished", "duration", time.Since(start))

	return fn(ctx, cfg, res)
}
