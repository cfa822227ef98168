// Package ranking orders scored players by passer rating and by QBScore and
// picks out the players whose position moves the most between the two.
package ranking

import (
	"sort"

	"github.com/albapepper/qbscore/internal/scoring"
)

// MinRank ranks values descending (highest = 1). Equal values share the
// lowest position they occupy and the next distinct value skips ahead, so
// [90, 100, 100, 80] ranks as [3, 1, 1, 4].
func MinRank(values []float64) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] > values[order[b]]
	})

	ranks := make([]int, len(values))
	for pos, idx := range order {
		if pos > 0 && values[idx] == values[order[pos-1]] {
			ranks[idx] = ranks[order[pos-1]]
			continue
		}
		ranks[idx] = pos + 1
	}
	return ranks
}

// RankedPlayer is a scored player with both rank positions.
// RankDiff = PasserRank - QBScoreRank; positive means QBScore rates the
// player better than passer rating does.
type RankedPlayer struct {
	scoring.ScoredPlayer
	PasserRank  int `json:"passer_rank"`
	QBScoreRank int `json:"qb_score_rank"`
	RankDiff    int `json:"rank_diff"`
}

// Assign ranks players by passer rating and by QBScore. The returned slice
// keeps the input order.
func Assign(players []scoring.ScoredPlayer) []RankedPlayer {
	ratings := make([]float64, len(players))
	scores := make([]float64, len(players))
	for i, p := range players {
		ratings[i] = p.PasserRating
		scores[i] = p.QBScore
	}
	passerRanks := MinRank(ratings)
	scoreRanks := MinRank(scores)

	out := make([]RankedPlayer, len(players))
	for i, p := range players {
		out[i] = RankedPlayer{
			ScoredPlayer: p,
			PasserRank:   passerRanks[i],
			QBScoreRank:  scoreRanks[i],
			RankDiff:     passerRanks[i] - scoreRanks[i],
		}
	}
	return out
}

// ByQBScore returns a copy of players ordered by QBScore rank, best first.
// Ties keep input order.
func ByQBScore(players []RankedPlayer) []RankedPlayer {
	out := append([]RankedPlayer(nil), players...)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].QBScoreRank < out[b].QBScoreRank
	})
	return out
}
