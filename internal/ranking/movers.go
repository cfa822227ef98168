package ranking

import "sort"

// DefaultTopN is how many players each mover group holds.
const DefaultTopN = 5

// Movers holds the biggest rank changes in each direction.
type Movers struct {
	Improved []RankedPlayer `json:"improved"`
	Worsened []RankedPlayer `json:"worsened"`
}

// TopMovers returns the n players with the largest RankDiff (Improved) and
// the n with the smallest (Worsened). The sort is stable, so ties at the
// cutoff go to the player that comes first in the input. With fewer than n
// players both groups hold everyone.
func TopMovers(players []RankedPlayer, n int) Movers {
	if n <= 0 {
		n = DefaultTopN
	}

	improved := append([]RankedPlayer(nil), players...)
	sort.SliceStable(improved, func(a, b int) bool {
		return improved[a].RankDiff > improved[b].RankDiff
	})

	worsened := append([]RankedPlayer(nil), players...)
	sort.SliceStable(worsened, func(a, b int) bool {
		return worsened[a].RankDiff < worsened[b].RankDiff
	})

	return Movers{
		Improved: improved[:min(n, len(improved))],
		Worsened: worsened[:min(n, len(worsened))],
	}
}
