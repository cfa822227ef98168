// Package publish writes computed QBScores to Postgres so other tools can
// read a season's rankings without re-running the pipeline.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/albapepper/qbscore/internal/config"
	"github.com/albapepper/qbscore/internal/ranking"
)

// Execer is the subset of pgxpool.Pool used here.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Checker is the pre-flight side of db.Pool.
type Checker interface {
	HealthCheck(ctx context.Context) error
	TableExists(ctx context.Context, name string) (bool, error)
}

// Result tracks counts and errors from a publish run.
type Result struct {
	ScoresUpserted int
	Errors         []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the publish run.
func (r *Result) Summary() string {
	return fmt.Sprintf("scores=%d errors=%d", r.ScoresUpserted, len(r.Errors))
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS ` + config.ScoresTable + ` (
		player        TEXT NOT NULL,
		season        INTEGER NOT NULL,
		passer_rating DOUBLE PRECISION NOT NULL,
		qb_score      DOUBLE PRECISION NOT NULL,
		passer_rank   INTEGER NOT NULL,
		qb_score_rank INTEGER NOT NULL,
		rank_diff     INTEGER NOT NULL,
		normalized    JSONB NOT NULL DEFAULT '{}',
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (player, season)
	)`

// Preflight verifies the database answers before anything is written and
// reports whether the scores table already exists.
func Preflight(ctx context.Context, c Checker, logger *slog.Logger) (bool, error) {
	if err := c.HealthCheck(ctx); err != nil {
		return false, err
	}
	exists, err := c.TableExists(ctx, config.ScoresTable)
	if err != nil {
		return false, err
	}
	if !exists {
		logger.Info("Scores table missing, it will be created", "table", config.ScoresTable)
	}
	return exists, nil
}

// EnsureSchema creates the scores table when it does not exist.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create %s: %w", config.ScoresTable, err)
	}
	return nil
}

// UpsertScore writes one player's ranks for season.
func UpsertScore(ctx context.Context, db Execer, season int, p ranking.RankedPlayer) error {
	normalized, err := json.Marshal(p.Normalized)
	if err != nil {
		return fmt.Errorf("encode normalized metrics: %w", err)
	}
	_, err = db.Exec(ctx, `
		INSERT INTO `+config.ScoresTable+` (
			player, season, passer_rating, qb_score,
			passer_rank, qb_score_rank, rank_diff, normalized
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (player, season) DO UPDATE SET
			passer_rating = EXCLUDED.passer_rating,
			qb_score = EXCLUDED.qb_score,
			passer_rank = EXCLUDED.passer_rank,
			qb_score_rank = EXCLUDED.qb_score_rank,
			rank_diff = EXCLUDED.rank_diff,
			normalized = EXCLUDED.normalized,
			updated_at = NOW()`,
		p.Player, season, p.PasserRating, p.QBScore,
		p.PasserRank, p.QBScoreRank, p.RankDiff, normalized,
	)
	return err
}

// Publish ensures the schema and upserts every player. Per-player failures
// are collected in the result; only a schema failure aborts the run.
func Publish(ctx context.Context, db Execer, season int, players []ranking.RankedPlayer, logger *slog.Logger) (Result, error) {
	var result Result
	if err := EnsureSchema(ctx, db); err != nil {
		return result, err
	}

	logger.Info("Publishing QBScores...", "season", season, "players", len(players))
	for _, p := range players {
		if err := UpsertScore(ctx, db, season, p); err != nil {
			result.AddErrorf("upsert %s: %v", p.Player, err)
			continue
		}
		result.ScoresUpserted++
	}
	logger.Info("Publish complete", "summary", result.Summary())
	return result, nil
}
