package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/albapepper/qbscore/internal/config"
	"github.com/albapepper/qbscore/internal/db"
	"github.com/albapepper/qbscore/internal/pipeline"
	"github.com/albapepper/qbscore/internal/publish"
)

// --------------------------------------------------------------------------
// publish command
// --------------------------------------------------------------------------

func publishCmd() *cobra.Command {
	var (
		flags  inputFlags
		season int
	)
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upsert computed QBScores into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(&flags, func(ctx context.Context, cfg *config.Config, res *pipeline.Result) error {
				if season > 0 {
					cfg.Season = season
				}
				if err := cfg.RequireDatabase(); err != nil {
					return err
				}

				pool, err := db.New(ctx, cfg)
				if err != nil {
					return fmt.Errorf("connect to database: %w", err)
				}
				defer pool.Close()

				exists, err := publish.Preflight(ctx, pool, logger)
				if err != nil {
					return fmt.Errorf("database pre-flight: %w", err)
				}
				logger.Info("Database connected", "max_conns", cfg.DBPoolMaxConns, "table_exists", exists)

				start := time.Now()
				result, err := publish.Publish(ctx, pool, cfg.Season, res.Players, logger)
				if err != nil {
					return err
				}
				logger.Info("Publish finished",
					"season", cfg.Season,
					"duration", time.Since(start).Round(time.Millisecond),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("publish error", "error", e)
				}
				if len(result.Errors) > 0 {
					return fmt.Errorf("%d of %d scores failed to publish", len(result.Errors), len(res.Players))
				}
				return nil
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&season, "season", 0, "Season year (default $QBSCORE_SEASON or current year)")
	return cmd
}
