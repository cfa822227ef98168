package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/albapepper/qbscore/internal/api"
	"github.com/albapepper/qbscore/internal/api/handler"
	"github.com/albapepper/qbscore/internal/cache"
	"github.com/albapepper/qbscore/internal/config"
	"github.com/albapepper/qbscore/internal/pipeline"
	"github.com/albapepper/qbscore/internal/ranking"
	"github.com/albapepper/qbscore/internal/stats"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig() *config.Config {
	return &config.Config{
		TopN:              2,
		WidthIn:           4,
		HeightIn:          3,
		CORSAllowOrigins:  []string{"http://localhost:3000"},
		RateLimitEnabled:  true,
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		CacheEnabled:      true,
		CacheTTL:          time.Minute,
	}
}

func testResult(t *testing.T) *pipeline.Result {
	t.Helper()
	ds := stats.Dataset{
		{Player: "Alpha", PassYds: 4500, PassTD: 35, Interceptions: 14, CompletionPct: 66, YardsPerAttempt: 7.0, PasserRating: 105, SackRate: 8, RushYds: 50, RushTD: 0, OLRank: 3},
		{Player: "Bravo", PassYds: 3900, PassTD: 28, Interceptions: 5, CompletionPct: 64, YardsPerAttempt: 8.2, PasserRating: 98, SackRate: 5, RushYds: 700, RushTD: 7, OLRank: 28},
		{Player: "Charlie", PassYds: 3300, PassTD: 18, Interceptions: 11, CompletionPct: 62, YardsPerAttempt: 6.5, PasserRating: 88, SackRate: 7, RushYds: 200, RushTD: 2, OLRank: 15},
		{Player: "Delta", PassYds: 4100, PassTD: 30, Interceptions: 9, CompletionPct: 68, YardsPerAttempt: 7.6, PasserRating: 101, SackRate: 6, RushYds: 350, RushTD: 4, OLRank: 20},
	}
	res, err := pipeline.Run(ds, pipeline.Options{TopN: 2}, discard)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	res.Source = "test.xlsx"
	return res
}

func newServer(t *testing.T) http.Handler {
	t.Helper()
	return api.NewRouter(testResult(t), cache.New(true), testConfig(), discard)
}

func get(t *testing.T, h http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newServer(t), "/health/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Process-Time") == "" {
		t.Error("missing X-Process-Time header")
	}
}

func TestGetRankings(t *testing.T) {
	rec := get(t, newServer(t), "/api/v1/rankings?sort=passer", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body handler.RankingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Players) != 4 {
		t.Fatalf("players = %d, want 4", len(body.Players))
	}
	for i, p := range body.Players {
		if p.PasserRank != i+1 {
			t.Errorf("players[%d].PasserRank = %d, want %d", i, p.PasserRank, i+1)
		}
		if p.RankDiff != p.PasserRank-p.QBScoreRank {
			t.Errorf("%s: RankDiff = %d, want %d", p.Player, p.RankDiff, p.PasserRank-p.QBScoreRank)
		}
	}
	if body.Players[0].Player != "Alpha" {
		t.Errorf("best passer = %s, want Alpha", body.Players[0].Player)
	}
	if body.Source != "test.xlsx" || body.Sort != "passer" {
		t.Errorf("source/sort = %q/%q", body.Source, body.Sort)
	}
}

func TestGetRankingsETag(t *testing.T) {
	srv := newServer(t)
	first := get(t, srv, "/api/v1/rankings", nil)
	etag := first.Header().Get("ETag")
	if etag == "" || first.Header().Get("X-Cache") != "MISS" {
		t.Fatalf("first response etag=%q x-cache=%q", etag, first.Header().Get("X-Cache"))
	}

	second := get(t, srv, "/api/v1/rankings", nil)
	if second.Header().Get("X-Cache") != "HIT" {
		t.Errorf("X-Cache = %q, want HIT", second.Header().Get("X-Cache"))
	}

	third := get(t, srv, "/api/v1/rankings", http.Header{"If-None-Match": []string{etag}})
	if third.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", third.Code)
	}
}

func TestGetRankingsInvalidSort(t *testing.T) {
	rec := get(t, newServer(t), "/api/v1/rankings?sort=bogus", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetMovers(t *testing.T) {
	srv := newServer(t)

	rec := get(t, srv, "/api/v1/movers", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var movers ranking.Movers
	if err := json.Unmarshal(rec.Body.Bytes(), &movers); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(movers.Improved) != 2 || len(movers.Worsened) != 2 {
		t.Errorf("groups = %d/%d, want 2/2", len(movers.Improved), len(movers.Worsened))
	}
	if movers.Improved[0].RankDiff < movers.Improved[1].RankDiff {
		t.Error("improved not sorted by delta descending")
	}

	rec = get(t, srv, "/api/v1/movers?n=10", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &movers); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(movers.Improved) != 4 {
		t.Errorf("n=10 improved = %d, want all 4", len(movers.Improved))
	}

	if rec := get(t, srv, "/api/v1/movers?n=-1", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("n=-1 status = %d, want 400", rec.Code)
	}
}

func TestGetMoversCapsGroupSize(t *testing.T) {
	appCache := cache.New(true)
	srv := api.NewRouter(testResult(t), appCache, testConfig(), discard)

	for _, n := range []string{"4", "10", "500", "999999"} {
		rec := get(t, srv, "/api/v1/movers?n="+n, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("n=%s status = %d, want 200", n, rec.Code)
		}
	}
	if got := appCache.Stats()["total_keys"]; got != 1 {
		t.Errorf("cache keys = %v, want 1", got)
	}
	if _, ok := appCache.Get("movers:4"); !ok {
		t.Error("movers:4 not cached")
	}
}

func TestGetPlayer(t *testing.T) {
	srv := newServer(t)
	if rec := get(t, srv, "/api/v1/players/bravo", nil); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec := get(t, srv, "/api/v1/players/Nobody", nil); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetReport(t *testing.T) {
	rec := get(t, newServer(t), "/api/v1/report.png", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("body is not a PNG")
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRequests = 2
	srv := api.NewRouter(testResult(t), cache.New(true), cfg, discard)

	// burst is half the window allowance
	get(t, srv, "/health/", nil)
	rec := get(t, srv, "/health/", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
}
