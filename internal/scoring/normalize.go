package scoring

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/albapepper/qbscore/internal/stats"
)

// DegenerateFallback is assigned to every row of a column with no variance.
const DegenerateFallback = 0.5

// NormalizedColumn holds one value in [0,1] per dataset row.
type NormalizedColumn []float64

// Normalize min-max scales values into [0,1]; with invert the scale is
// flipped so the minimum maps to 1. A column whose values are all equal maps
// every row to DegenerateFallback and reports degenerate=true.
func Normalize(values []float64, invert bool) (col NormalizedColumn, degenerate bool) {
	col = make(NormalizedColumn, len(values))
	if len(values) == 0 {
		return col, false
	}

	lo, hi := floats.Min(values), floats.Max(values)
	span := hi - lo
	if span == 0 {
		for i := range col {
			col[i] = DegenerateFallback
		}
		return col, true
	}

	for i, v := range values {
		norm := (v - lo) / span
		if invert {
			norm = 1 - norm
		}
		col[i] = norm
	}
	return col, false
}

// NormalizedPlayer is a record with its per-metric normalized values.
type NormalizedPlayer struct {
	stats.PlayerRecord
	Normalized map[stats.Metric]float64 `json:"normalized"`
}

// NormalizeDataset normalizes every metric in the policy across ds and
// returns new records; ds is not modified. Degenerate metrics are returned
// and logged as warnings.
func NormalizeDataset(ds stats.Dataset, p Policy, logger *slog.Logger) ([]NormalizedPlayer, []stats.Metric) {
	out := make([]NormalizedPlayer, len(ds))
	for i, rec := range ds {
		out[i] = NormalizedPlayer{
			PlayerRecord: rec,
			Normalized:   make(map[stats.Metric]float64, len(p)),
		}
	}

	var degenerate []stats.Metric
	for _, w := range p {
		col, flat := Normalize(ds.Column(w.Metric), w.Invert)
		if flat && len(ds) > 0 {
			degenerate = append(degenerate, w.Metric)
			logger.Warn("Metric has no variance, using fallback",
				"metric", string(w.Metric), "value", ds[0].Value(w.Metric), "fallback", DegenerateFallback)
		}
		for i, v := range col {
			out[i].Normalized[w.Metric] = v
		}
	}
	return out, degenerate
}
