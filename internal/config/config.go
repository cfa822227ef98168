// Package config provides centralized configuration loaded from environment
// variables. Command-line flags in cmd/qbscore override these values.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"runtime"
	"strings"
	"time"

	"github.com/albapepper/qbscore/internal/loader"
	"github.com/albapepper/qbscore/internal/ranking"
)

// --------------------------------------------------------------------------
// Table names — single source of truth for the publish schema
// --------------------------------------------------------------------------

const (
	ScoresTable = "qb_scores"
)

// DefaultOutputPath is where the report is written when QBSCORE_OUTPUT is unset.
const DefaultOutputPath = "qb_report.png"

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Input
	InputPath string
	Sheet     string
	TopN      int

	// Report
	OutputPath string
	Headless   bool
	WidthIn    float64
	HeightIn   float64

	// Logging
	LogLevel slog.Level

	// API server
	APIHost string
	APIPort int

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool
	CacheTTL     time.Duration

	// Database (publish only)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration
	Season         int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		InputPath: envOr("QBSCORE_INPUT", loader.DefaultPath),
		Sheet:     envOr("QBSCORE_SHEET", ""),
		TopN:      envInt("QBSCORE_TOP_N", ranking.DefaultTopN),

		OutputPath: envOr("QBSCORE_OUTPUT", DefaultOutputPath),
		Headless:   envBool("QBSCORE_HEADLESS", !HasDisplay()),
		WidthIn:    envFloat("QBSCORE_WIDTH_IN", 22),
		HeightIn:   envFloat("QBSCORE_HEIGHT_IN", 14),

		LogLevel: envLevel("LOG_LEVEL", slog.LevelInfo),

		APIHost: envOr("API_HOST", "0.0.0.0"),
		APIPort: envInt("API_PORT", envInt("PORT", 8000)),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),
		CacheTTL:     time.Duration(envInt("CACHE_TTL_SECONDS", 600)) * time.Second,

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 4),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,
		Season:         envInt("QBSCORE_SEASON", time.Now().Year()),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no command could use.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("QBSCORE_INPUT must not be empty")
	}
	if c.TopN <= 0 {
		return fmt.Errorf("QBSCORE_TOP_N must be positive, got %d", c.TopN)
	}
	if c.WidthIn <= 0 || c.HeightIn <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g in", c.WidthIn, c.HeightIn)
	}
	if c.RateLimitEnabled && (c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0) {
		return fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// RequireDatabase returns an error when no database URL is configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	return nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			return lvl
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// HasDisplay reports whether a graphical session is likely available. It
// decides the QBSCORE_HEADLESS default.
func HasDisplay() bool {
	return hasDisplay(runtime.GOOS, os.Getenv)
}

func hasDisplay(goos string, getenv func(string) string) bool {
	switch goos {
	case "darwin", "windows":
		return true
	default:
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	}
}
