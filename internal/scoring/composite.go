package scoring

import "github.com/albapepper/qbscore/internal/stats"

// DisplayScale maps the [0,1] composite onto the 0-100 display range.
const DisplayScale = 100

// ScoredPlayer is a normalized player with its composite score.
type ScoredPlayer struct {
	NormalizedPlayer
	Composite float64 `json:"composite"`
	QBScore   float64 `json:"qb_score"`
}

// Composite is the weighted sum of the normalized metrics in p.
func Composite(norm map[stats.Metric]float64, p Policy) float64 {
	var sum float64
	for _, w := range p {
		sum += norm[w.Metric] * w.Weight
	}
	return sum
}

// Score computes the composite and display score for every player. The
// policy is validated first so a bad table never produces a score.
func Score(players []NormalizedPlayer, p Policy) ([]ScoredPlayer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := make([]ScoredPlayer, len(players))
	for i, np := range players {
		c := Composite(np.Normalized, p)
		out[i] = ScoredPlayer{
			NormalizedPlayer: np,
			Composite:        c,
			QBScore:          c * DisplayScale,
		}
	}
	return out, nil
}
