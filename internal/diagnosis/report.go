package diagnosis

import (
	"context"
	"fmt"

	"github.com/abhisek/touchline/internal/assessment"
	"github.com/abhisek/touchline/internal/store"
)

// StatsSource provides aggregated answer history.
type StatsSource interface {
	QuestionStats(ctx context.Context, questionIDs []string) (map[string]store.QuestionStat, error)
}

// Report groups the diagnoses of one assessment.
type Report struct {
	Mistakes []Result
	Counts   map[Category]int
}

// Dominant returns the most frequent category. Ties go to the category
// listed first by Categories.
func (r Report) Dominant() (Category, bool) {
	var (
		best Category
		n    int
	)
	for _, c := range Categories() {
		if r.Counts[c] > n {
			best, n = c, r.Counts[c]
		}
	}
	return best, n > 0
}

// Diagnose classifies every wrong response. stats may already include the
// responses being diagnosed; they are subtracted so only earlier attempts
// count. A nil stats source treats every question as new.
func Diagnose(ctx context.Context, stats StatsSource, responses []assessment.Response) (Report, error) {
	report := Report{Counts: make(map[Category]int)}

	var wrong []assessment.Response
	for _, r := range responses {
		if !r.Correct {
			wrong = append(wrong, r)
		}
	}
	if len(wrong) == 0 {
		return report, nil
	}

	var history map[string]store.QuestionStat
	if stats != nil {
		ids := make([]string, len(wrong))
		for i, r := range wrong {
			ids[i] = r.QuestionID
		}
		h, err := stats.QuestionStats(ctx, ids)
		if err != nil {
			return report, fmt.Errorf("load answer history: %w", err)
		}
		history = h
	}

	classifiers := DefaultClassifiers()
	for _, r := range wrong {
		in := &Input{Response: r}
		if st, ok := history[r.QuestionID]; ok && st.Attempts > 0 {
			st.Attempts--
			in.Prior = st
		}
		res := Classify(classifiers, in)
		report.Mistakes = append(report.Mistakes, res)
		report.Counts[res.Category]++
	}
	return report, nil
}
