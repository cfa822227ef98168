// Package pipeline runs the QBScore stages in order: normalize, score, rank,
// pick movers. Each stage returns a new collection, the input dataset is
// never modified.
package pipeline

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/albapepper/qbscore/internal/loader"
	"github.com/albapepper/qbscore/internal/ranking"
	"github.com/albapepper/qbscore/internal/scoring"
	"github.com/albapepper/qbscore/internal/stats"
)

// Options tunes a run. Zero values fall back to the defaults.
type Options struct {
	Policy scoring.Policy
	TopN   int
}

func (o Options) withDefaults() Options {
	if o.Policy == nil {
		o.Policy = scoring.DefaultPolicy
	}
	if o.TopN <= 0 {
		o.TopN = ranking.DefaultTopN
	}
	return o
}

// Result is everything the reporter and the API need from one run.
type Result struct {
	Source     string                 `json:"source,omitempty"`
	Players    []ranking.RankedPlayer `json:"players"`
	Movers     ranking.Movers         `json:"movers"`
	Degenerate []stats.Metric         `json:"degenerate_metrics,omitempty"`
	ComputedAt time.Time              `json:"computed_at"`
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	degenerate := make([]string, len(r.Degenerate))
	for i, m := range r.Degenerate {
		degenerate[i] = string(m)
	}
	return fmt.Sprintf(
		"players=%d improved=%d worsened=%d degenerate=[%s]",
		len(r.Players), len(r.Movers.Improved), len(r.Movers.Worsened),
		strings.Join(degenerate, ","),
	)
}

// Run scores and ranks ds.
func Run(ds stats.Dataset, opts Options, logger *slog.Logger) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.Policy.Validate(); err != nil {
		return nil, err
	}

	// 1. Normalize
	normalized, degenerate := scoring.NormalizeDataset(ds, opts.Policy, logger)

	// 2. Score
	scored, err := scoring.Score(normalized, opts.Policy)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}

	// 3. Rank
	ranked := ranking.Assign(scored)

	// 4. Movers
	movers := ranking.TopMovers(ranked, opts.TopN)

	res := &Result{
		Players:    ranked,
		Movers:     movers,
		Degenerate: degenerate,
		ComputedAt: time.Now().UTC(),
	}
	logger.Info("QBScore computed", "summary", res.Summary())
	return res, nil
}

// LoadAndRun reads the workbook at path and runs the pipeline on it.
func LoadAndRun(path, sheet string, opts Options, logger *slog.Logger) (*Result, error) {
	logger.Info("Loading season stats...", "path", path, "sheet", sheet)
	ds, err := loader.Load(path, sheet)
	if err != nil {
		return nil, err
	}
	logger.Info("Season stats loaded", "players", len(ds))

	res, err := Run(ds, opts, logger)
	if err != nil {
		return nil, err
	}
	res.Source = path
	return res, nil
}
