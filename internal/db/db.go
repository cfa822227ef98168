// Package db opens the Postgres pool the publish command writes through and
// answers its pre-flight questions.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/qbscore/internal/config"
)

// Statement names prepared on every connection. None of them reference the
// scores table, which may not exist until the first publish.
const (
	stmtHealth      = "health_check"
	stmtTableExists = "table_exists"
)

// Pool wraps pgxpool.Pool with the checks publish runs before writing.
type Pool struct {
	*pgxpool.Pool
}

// New connects using the DATABASE_URL and DB_POOL_* settings in cfg.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.AfterConnect = prepare

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return &Pool{Pool: pool}, nil
}

// HealthCheck acquires a connection and runs SELECT 1 through it.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	if err := p.QueryRow(ctx, stmtHealth).Scan(&n); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

// TableExists reports whether name resolves to a relation on the search path.
func (p *Pool) TableExists(ctx context.Context, name string) (bool, error) {
	var ok bool
	if err := p.QueryRow(ctx, stmtTableExists, name).Scan(&ok); err != nil {
		return false, fmt.Errorf("lookup %s: %w", name, err)
	}
	return ok, nil
}

func prepare(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		stmtHealth:      "SELECT 1",
		stmtTableExists: "SELECT to_regclass($1) IS NOT NULL",
	}
	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
