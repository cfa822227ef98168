// Package scoring turns raw season stats into the context-adjusted QBScore:
// each metric is normalized to [0,1] across the dataset and combined with a
// fixed weight table.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/albapepper/qbscore/internal/stats"
)

// WeightTolerance is how far the weight sum may drift from 1.
const WeightTolerance = 1e-9

var ErrInvalidPolicy = errors.New("invalid scoring policy")

// Weight is one entry of the policy table. Invert flips the normalized value
// so that a lower raw number scores higher.
type Weight struct {
	Metric stats.Metric
	Weight float64
	Invert bool
}

// Policy is the metric → weight table. Entries with zero weight are still
// normalized and reported, they just do not move the score.
type Policy []Weight

// DefaultPolicy is the context-adjusted QBScore table with reduced rushing
// weight, rescaled so the weights sum to 1. The listed values are the
// relative weights (they total 1.22). OLRank is normalized without inversion.
var DefaultPolicy = Policy{
	{Metric: stats.YardsPerAttempt, Weight: 0.25},
	{Metric: stats.PassTD, Weight: 0.15},
	{Metric: stats.Interceptions, Weight: 0.20, Invert: true},
	{Metric: stats.PasserRating, Weight: 0.12},
	{Metric: stats.RushYds, Weight: 0.07},
	{Metric: stats.RushTD, Weight: 0.07},
	{Metric: stats.SackRate, Weight: 0.12, Invert: true},
	{Metric: stats.OLRank, Weight: 0.12},
	{Metric: stats.PassYds, Weight: 0.12},
	{Metric: stats.CompletionPct, Weight: 0},
}.Rescaled()

// Sum returns the total weight.
func (p Policy) Sum() float64 {
	var sum float64
	for _, w := range p {
		sum += w.Weight
	}
	return sum
}

// Rescaled returns a copy of p with every weight divided by Sum, keeping the
// relative weights. A table whose sum is zero or not finite is returned as
// is and left for Validate to reject.
func (p Policy) Rescaled() Policy {
	out := make(Policy, len(p))
	copy(out, p)
	sum := p.Sum()
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return out
	}
	for i := range out {
		out[i].Weight /= sum
	}
	return out
}

// Lookup returns the entry for metric m.
func (p Policy) Lookup(m stats.Metric) (Weight, bool) {
	for _, w := range p {
		if w.Metric == m {
			return w, true
		}
	}
	return Weight{}, false
}

// Validate checks that weights are non-negative, metrics are unique and the
// weights sum to 1 within WeightTolerance.
func (p Policy) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidPolicy)
	}
	seen := make(map[stats.Metric]bool, len(p))
	for _, w := range p {
		if seen[w.Metric] {
			return fmt.Errorf("%w: duplicate metric %s", ErrInvalidPolicy, w.Metric)
		}
		seen[w.Metric] = true
		if w.Weight < 0 || math.IsNaN(w.Weight) {
			return fmt.Errorf("%w: weight for %s is %v", ErrInvalidPolicy, w.Metric, w.Weight)
		}
	}
	if sum := p.Sum(); math.Abs(sum-1) > WeightTolerance {
		return fmt.Errorf("%w: weights sum to %.12f, want 1", ErrInvalidPolicy, sum)
	}
	return nil
}
