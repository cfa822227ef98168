// Package stats defines the quarterback season record shape. Loaders produce
// these records, the scoring pipeline consumes them, and publishers write the
// derived values next to them.
package stats

// Metric names a raw numeric column of the source sheet. The string value is
// the exact header text expected in the workbook.
type Metric string

const (
	PassYds         Metric = "PassYds"
	PassTD          Metric = "PassTD"
	Interceptions   Metric = "INT"
	CompletionPct   Metric = "Cmp%"
	YardsPerAttempt Metric = "Y/A"
	PasserRating    Metric = "PasserRating"
	SackRate        Metric = "SackRate%"
	RushYds         Metric = "RushYds"
	RushTD          Metric = "RushTD"
	OLRank          Metric = "OLRank"
)

// PlayerColumn is the header of the player name column.
const PlayerColumn = "Player"

// Metrics lists every raw column in sheet order.
var Metrics = []Metric{
	PassYds, PassTD, Interceptions, CompletionPct, YardsPerAttempt,
	PasserRating, SackRate, RushYds, RushTD, OLRank,
}

// PlayerRecord is one row of the season sheet.
type PlayerRecord struct {
	Player          string  `json:"player"`
	PassYds         float64 `json:"pass_yds"`
	PassTD          float64 `json:"pass_td"`
	Interceptions   float64 `json:"int"`
	CompletionPct   float64 `json:"cmp_pct"`
	YardsPerAttempt float64 `json:"yards_per_attempt"`
	PasserRating    float64 `json:"passer_rating"`
	SackRate        float64 `json:"sack_rate_pct"`
	RushYds         float64 `json:"rush_yds"`
	RushTD          float64 `json:"rush_td"`
	OLRank          float64 `json:"ol_rank"`
}

// Value returns the raw value of metric m. Unknown metrics return 0.
func (r PlayerRecord) Value(m Metric) float64 {
	switch m {
	case PassYds:
		return r.PassYds
	case PassTD:
		return r.PassTD
	case Interceptions:
		return r.Interceptions
	case CompletionPct:
		return r.CompletionPct
	case YardsPerAttempt:
		return r.YardsPerAttempt
	case PasserRating:
		return r.PasserRating
	case SackRate:
		return r.SackRate
	case RushYds:
		return r.RushYds
	case RushTD:
		return r.RushTD
	case OLRank:
		return r.OLRank
	}
	return 0
}

// WithValue returns a copy of r with metric m set to v.
func (r PlayerRecord) WithValue(m Metric, v float64) PlayerRecord {
	switch m {
	case PassYds:
		r.PassYds = v
	case PassTD:
		r.PassTD = v
	case Interceptions:
		r.Interceptions = v
	case CompletionPct:
		r.CompletionPct = v
	case YardsPerAttempt:
		r.YardsPerAttempt = v
	case PasserRating:
		r.PasserRating = v
	case SackRate:
		r.SackRate = v
	case RushYds:
		r.RushYds = v
	case RushTD:
		r.RushTD = v
	case OLRank:
		r.OLRank = v
	}
	return r
}

// Dataset is an ordered set of records. Source order is kept so that ties
// resolve the same way on every run.
type Dataset []PlayerRecord

// Column extracts metric m for every record, in dataset order.
func (d Dataset) Column(m Metric) []float64 {
	out := make([]float64, len(d))
	for i, r := range d {
		out[i] = r.Value(m)
	}
	return out
}

// Names returns the player names in dataset order.
func (d Dataset) Names() []string {
	out := make([]string, len(d))
	for i, r := range d {
		out[i] = r.Player
	}
	return out
}
