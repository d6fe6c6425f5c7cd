package difficulty

import (
	"math"

	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/questionbank"
)

// Candidate is a question with its computed difficulty.
type Candidate struct {
	Question   questionbank.Question
	Difficulty float64
}

// RecommendNext returns the candidate whose difficulty is closest to
// target. Ties go to the earliest candidate. The bool is false for an empty
// pool.
func RecommendNext(target float64, pool []Candidate) (Candidate, bool) {
	if len(pool) == 0 {
		return Candidate{}, false
	}
	best := 0
	bestDist := math.Abs(pool[0].Difficulty - target)
	for i := 1; i < len(pool); i++ {
		if d := math.Abs(pool[i].Difficulty - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return pool[best], true
}

// Score computes candidates for every question in qs. history may be nil or
// return nil for questions never seen.
func Score(qs []questionbank.Question, p progress.Snapshot, history func(id string) *History) []Candidate {
	out := make([]Candidate, 0, len(qs))
	for _, q := range qs {
		var h *History
		if history != nil {
			h = history(q.ID)
		}
		out = append(out, Candidate{Question: q, Difficulty: CalculateDifficulty(FeaturesOf(q), p, h)})
	}
	return out
}
