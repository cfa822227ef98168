package publish_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/albapepper/qbscore/internal/publish"
	"github.com/albapepper/qbscore/internal/ranking"
	"github.com/albapepper/qbscore/internal/scoring"
	"github.com/albapepper/qbscore/internal/stats"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// MockDB records statements and fails for configured players.
type MockDB struct {
	statements []string
	args       [][]any
	failFor    string
	failSchema bool
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if strings.Contains(sql, "CREATE TABLE") && m.failSchema {
		return pgconn.CommandTag{}, errors.New("permission denied")
	}
	if len(args) > 0 && args[0] == m.failFor {
		return pgconn.CommandTag{}, errors.New("constraint violation")
	}
	m.statements = append(m.statements, sql)
	m.args = append(m.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func player(name string, diff int) ranking.RankedPlayer {
	return ranking.RankedPlayer{
		ScoredPlayer: scoring.ScoredPlayer{
			NormalizedPlayer: scoring.NormalizedPlayer{
				PlayerRecord: stats.PlayerRecord{Player: name, PasserRating: 100},
				Normalized:   map[stats.Metric]float64{stats.PassTD: 0.5},
			},
			QBScore: 42,
		},
		PasserRank:  3,
		QBScoreRank: 3 - diff,
		RankDiff:    diff,
	}
}

func TestPublish(t *testing.T) {
	db := &MockDB{failFor: "Bad"}
	players := []ranking.RankedPlayer{player("Good", 1), player("Bad", 0), player("Other", -2)}

	result, err := publish.Publish(context.Background(), db, 2024, players, discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ScoresUpserted != 2 || len(result.Errors) != 1 {
		t.Errorf("summary = %s, want 2 upserted 1 error", result.Summary())
	}
	if !strings.Contains(db.statements[0], "CREATE TABLE IF NOT EXISTS qb_scores") {
		t.Errorf("first statement = %q, want schema", db.statements[0])
	}

	args := db.args[1]
	if args[0] != "Good" || args[1] != 2024 || args[4] != 3 || args[5] != 2 || args[6] != 1 {
		t.Errorf("upsert args = %v", args)
	}
	if string(args[7].([]byte)) != `{"PassTD":0.5}` {
		t.Errorf("normalized = %s", args[7])
	}
}

func TestPublishSchemaFailure(t *testing.T) {
	db := &MockDB{failSchema: true}
	_, err := publish.Publish(context.Background(), db, 2024, []ranking.RankedPlayer{player("A", 0)}, discard)
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if len(db.statements) != 0 {
		t.Errorf("statements after schema failure = %d, want 0", len(db.statements))
	}
}

func TestPublishUnencodableMetrics(t *testing.T) {
	db := &MockDB{}
	bad := player("NaN", 0)
	bad.Normalized = map[stats.Metric]float64{stats.PassTD: math.NaN()}

	result, err := publish.Publish(context.Background(), db, 2024, []ranking.RankedPlayer{bad, player("Good", 0)}, discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ScoresUpserted != 1 || len(result.Errors) != 1 {
		t.Fatalf("summary = %s, want 1 upserted 1 error", result.Summary())
	}
	if !strings.Contains(result.Errors[0], "NaN") || !strings.Contains(result.Errors[0], "encode normalized") {
		t.Errorf("error = %q", result.Errors[0])
	}
	// schema + Good only
	if len(db.statements) != 2 {
		t.Errorf("statements = %d, want 2", len(db.statements))
	}
}

// MockChecker answers the pre-flight queries.
type MockChecker struct {
	healthErr error
	exists    bool
	lookedUp  string
}

func (m *MockChecker) HealthCheck(ctx context.Context) error { return m.healthErr }

func (m *MockChecker) TableExists(ctx context.Context, name string) (bool, error) {
	m.lookedUp = name
	return m.exists, nil
}

func TestPreflight(t *testing.T) {
	tests := []struct {
		name       string
		checker    *MockChecker
		wantExists bool
		wantErr    bool
	}{
		{name: "table present", checker: &MockChecker{exists: true}, wantExists: true},
		{name: "table missing", checker: &MockChecker{}, wantExists: false},
		{name: "database down", checker: &MockChecker{healthErr: errors.New("connection refused")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := publish.Preflight(context.Background(), tt.checker, discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if exists != tt.wantExists {
				t.Errorf("exists = %v, want %v", exists, tt.wantExists)
			}
			if !tt.wantErr && tt.checker.lookedUp != "qb_scores" {
				t.Errorf("looked up %q, want qb_scores", tt.checker.lookedUp)
			}
			if tt.wantErr && tt.checker.lookedUp != "" {
				t.Error("table lookup ran after failed health check")
			}
		})
	}
}
