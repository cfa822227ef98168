package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/albapepper/qbscore/docs" // swagger docs
	"github.com/albapepper/qbscore/internal/api"
	"github.com/albapepper/qbscore/internal/cache"
	"github.com/albapepper/qbscore/internal/config"
	"github.com/albapepper/qbscore/internal/pipeline"
)

// --------------------------------------------------------------------------
// serve command
// --------------------------------------------------------------------------

func serveCmd() *cobra.Command {
	var (
		flags inputFlags
		port  int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rankings, movers and the report over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(&flags, func(ctx context.Context, cfg *config.Config, res *pipeline.Result) error {
				if port > 0 {
					cfg.APIPort = port
				}
				return serve(ctx, cfg, res)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default $API_PORT or 8000)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, res *pipeline.Result) error {
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled, "ttl", cfg.CacheTTL)
	if cfg.CacheEnabled {
		go evictLoop(ctx, appCache)
	}

	router := api.NewRouter(res, appCache, cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting QBScore API",
			"addr", addr,
			"players", len(res.Players),
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// evictLoop periodically removes expired cache entries.
func evictLoop(ctx context.Context, c *cache.Cache) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Evict(); n > 0 {
				logger.Debug("Cache evicted", "entries", n)
			}
		}
	}
}
