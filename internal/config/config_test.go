package config_test

import (
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/albapepper/qbscore/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"QBSCORE_INPUT", "QBSCORE_SHEET", "QBSCORE_TOP_N", "QBSCORE_OUTPUT",
		"QBSCORE_WIDTH_IN", "QBSCORE_HEIGHT_IN", "LOG_LEVEL", "API_PORT", "PORT",
		"CORS_ALLOW_ORIGINS", "RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS",
		"RATE_LIMIT_WINDOW", "CACHE_TTL_SECONDS", "DATABASE_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InputPath != "qb_stats.xlsx" {
		t.Errorf("InputPath = %q, want qb_stats.xlsx", cfg.InputPath)
	}
	if cfg.TopN != 5 {
		t.Errorf("TopN = %d, want 5", cfg.TopN)
	}
	if cfg.OutputPath != "qb_report.png" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
	if cfg.WidthIn != 22 || cfg.HeightIn != 14 {
		t.Errorf("size = %gx%g, want 22x14", cfg.WidthIn, cfg.HeightIn)
	}
	if cfg.APIPort != 8000 {
		t.Errorf("APIPort = %d, want 8000", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v, want 1m", cfg.RateLimitWindow)
	}
	if err := cfg.RequireDatabase(); err == nil {
		t.Error("RequireDatabase: expected error with no DATABASE_URL")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("QBSCORE_INPUT", "/data/2024.xlsx")
	t.Setenv("QBSCORE_SHEET", "Regular")
	t.Setenv("QBSCORE_TOP_N", "3")
	t.Setenv("QBSCORE_HEADLESS", "true")
	t.Setenv("QBSCORE_WIDTH_IN", "11.5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("API_PORT", "9090")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DATABASE_URL", "postgres://localhost/qb")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InputPath != "/data/2024.xlsx" || cfg.Sheet != "Regular" || cfg.TopN != 3 {
		t.Errorf("input = %q/%q/%d", cfg.InputPath, cfg.Sheet, cfg.TopN)
	}
	if !cfg.Headless {
		t.Error("Headless = false, want true")
	}
	if cfg.WidthIn != 11.5 {
		t.Errorf("WidthIn = %g, want 11.5", cfg.WidthIn)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if cfg.APIPort != 9090 {
		t.Errorf("APIPort = %d, want 9090", cfg.APIPort)
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.CORSAllowOrigins, want) {
		t.Errorf("CORSAllowOrigins = %v, want %v", cfg.CORSAllowOrigins, want)
	}
	if err := cfg.RequireDatabase(); err != nil {
		t.Errorf("RequireDatabase: %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "zero top n", key: "QBSCORE_TOP_N", val: "0"},
		{name: "negative width", key: "QBSCORE_WIDTH_IN", val: "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := config.Load(); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}
