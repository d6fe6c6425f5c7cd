package assessment

import (
	"slices"

	"github.com/abhisek/touchline/internal/questionbank"
)

// generate draws the question set for the tier. Each category gets an equal
// share spread over the tier's difficulties; any shortfall is filled from
// the rest of the tier pool, then the whole set is shuffled.
func (a *Assessment) generate() []questionbank.Question {
	cfg := a.config
	pool := a.bank.Filter(func(q questionbank.Question) bool { return cfg.Allows(q.Difficulty) })
	if len(pool) == 0 || cfg.TotalQuestions <= 0 {
		return nil
	}

	categories := a.bank.Categories()
	perCategory := cfg.TotalQuestions / len(categories)
	perDifficulty := ceilDiv(perCategory, len(cfg.Difficulties))

	selected := make([]questionbank.Question, 0, cfg.TotalQuestions)
	used := make(map[string]bool)

	for _, cat := range categories {
		taken := 0
		for _, d := range cfg.Difficulties {
			if taken >= perCategory {
				break
			}
			bucket := a.shuffled(filter(pool, func(q questionbank.Question) bool {
				return q.Category == cat && q.Difficulty == d
			}))
			n := min(perDifficulty, perCategory-taken, len(bucket))
			for _, q := range bucket[:n] {
				selected = append(selected, q)
				used[q.ID] = true
			}
			taken += n
		}
	}

	if len(selected) < cfg.TotalQuestions {
		selected = append(selected, a.fill(pool, used, cfg.TotalQuestions-len(selected))...)
	}

	a.shuffle(selected)
	if len(selected) > cfg.TotalQuestions {
		selected = selected[:cfg.TotalQuestions]
	}
	return selected
}

// fill takes up to n unused questions. Each pick prefers the live
// difficulty; when that runs dry it rotates over the tier's difficulties.
func (a *Assessment) fill(pool []questionbank.Question, used map[string]bool, n int) []questionbank.Question {
	buckets := make(map[questionbank.Difficulty][]questionbank.Question)
	for _, d := range a.config.Difficulties {
		buckets[d] = a.shuffled(filter(pool, func(q questionbank.Question) bool {
			return q.Difficulty == d && !used[q.ID]
		}))
	}

	var out []questionbank.Question
	turn := 0
	for len(out) < n {
		d, ok := a.pickDifficulty(buckets, &turn)
		if !ok {
			break
		}
		out = append(out, buckets[d][0])
		buckets[d] = buckets[d][1:]
	}
	return out
}

func (a *Assessment) pickDifficulty(buckets map[questionbank.Difficulty][]questionbank.Question, turn *int) (questionbank.Difficulty, bool) {
	if len(buckets[a.current]) > 0 {
		return a.current, true
	}
	diffs := a.config.Difficulties
	for range diffs {
		d := diffs[*turn%len(diffs)]
		*turn++
		if len(buckets[d]) > 0 {
			return d, true
		}
	}
	return "", false
}

func (a *Assessment) shuffled(qs []questionbank.Question) []questionbank.Question {
	a.shuffle(qs)
	return qs
}

func (a *Assessment) shuffle(qs []questionbank.Question) {
	a.rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
}

func filter(qs []questionbank.Question, keep func(questionbank.Question) bool) []questionbank.Question {
	out := slices.Clone(qs)
	return slices.DeleteFunc(out, func(q questionbank.Question) bool { return !keep(q) })
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
