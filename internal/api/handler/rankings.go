package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"gonum.org/v1/plot/vg"

	"github.com/albapepper/qbscore/internal/api/respond"
	"github.com/albapepper/qbscore/internal/ranking"
	"github.com/albapepper/qbscore/internal/report"
)

// RankingsResponse is the body of GET /rankings.
type RankingsResponse struct {
	Source     string                 `json:"source,omitempty"`
	ComputedAt string                 `json:"computed_at"`
	Sort       string                 `json:"sort"`
	Trend      report.Trend           `json:"trend"`
	Players    []ranking.RankedPlayer `json:"players"`
}

// GetRankings returns every player with both ranks and the rank delta.
// @Summary List rankings
// @Description Players with passer rating rank, QBScore rank and delta.
// @Tags rankings
// @Produce json
// @Param sort query string false "Order" Enums(qbscore, passer, delta, source)
// @Success 200 {object} RankingsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /rankings [get]
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	order := r.URL.Query().Get("sort")
	if order == "" {
		order = "qbscore"
	}
	less, ok := sorters[order]
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_SORT", "sort must be one of qbscore, passer, delta, source")
		return
	}

	h.serveCached(w, r, "rankings:"+order, "application/json", func() ([]byte, error) {
		players := append([]ranking.RankedPlayer(nil), h.result.Players...)
		if less != nil {
			sort.SliceStable(players, func(a, b int) bool { return less(players[a], players[b]) })
		}
		return json.Marshal(RankingsResponse{
			Source:     h.result.Source,
			ComputedAt: h.result.ComputedAt.Format(time.RFC3339),
			Sort:       order,
			Trend:      h.trend(),
			Players:    players,
		})
	})
}

// sorters maps the sort query value to an ordering; nil keeps source order.
var sorters = map[string]func(a, b ranking.RankedPlayer) bool{
	"qbscore": func(a, b ranking.RankedPlayer) bool { return a.QBScoreRank < b.QBScoreRank },
	"passer":  func(a, b ranking.RankedPlayer) bool { return a.PasserRank < b.PasserRank },
	"delta":   func(a, b ranking.RankedPlayer) bool { return a.RankDiff > b.RankDiff },
	"source":  nil,
}

// GetPlayer returns one player by name (case-insensitive).
// @Summary Get player
// @Tags rankings
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} ranking.RankedPlayer
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{name} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	for _, p := range h.result.Players {
		if strings.EqualFold(p.Player, name) {
			respond.WriteJSONObject(w, http.StatusOK, p)
			return
		}
	}
	respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("No player named %q", name))
}

// GetMovers returns the biggest rank improvements and declines.
// @Summary Top movers
// @Tags rankings
// @Produce json
// @Param n query int false "Players per group (default from config)"
// @Success 200 {object} ranking.Movers
// @Failure 400 {object} respond.ErrorResponse
// @Router /movers [get]
func (h *Handler) GetMovers(w http.ResponseWriter, r *http.Request) {
	n := h.cfg.TopN
	if s := r.URL.Query().Get("n"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_N", "n must be a positive integer")
			return
		}
		n = v
	}
	// Larger groups are identical to the full list, so they share one key.
	n = min(n, len(h.result.Players))

	h.serveCached(w, r, fmt.Sprintf("movers:%d", n), "application/json", func() ([]byte, error) {
		movers := h.result.Movers
		if n != len(movers.Improved) || n != len(movers.Worsened) {
			movers = ranking.TopMovers(h.result.Players, n)
		}
		return json.Marshal(movers)
	})
}

// GetReport returns the rendered chart as PNG.
// @Summary Report image
// @Tags report
// @Produce png
// @Success 200 {file} binary
// @Failure 500 {object} respond.ErrorResponse
// @Router /report.png [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "report:png", "image/png", func() ([]byte, error) {
		var buf bytes.Buffer
		opts := report.Options{
			Width:  vg.Length(h.cfg.WidthIn) * vg.Inch,
			Height: vg.Length(h.cfg.HeightIn) * vg.Inch,
		}
		if err := report.Write(h.result, &buf, "png", opts); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

func (h *Handler) trend() report.Trend {
	xs := make([]float64, len(h.result.Players))
	ys := make([]float64, len(h.result.Players))
	for i, p := range h.result.Players {
		xs[i], ys[i] = p.PasserRating, p.QBScore
	}
	return report.Fit(xs, ys)
}
