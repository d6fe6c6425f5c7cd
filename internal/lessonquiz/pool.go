package lessonquiz

import (
	"slices"

	"github.com/abhisek/touchline/internal/questionbank"
)

// Topic narrows the bank to a lesson's material. Empty fields match
// everything.
type Topic struct {
	Category questionbank.Category
	Concept  string
}

// Pool returns the bank questions matching t, in bank order.
func Pool(b *questionbank.Bank, t Topic) []questionbank.Question {
	return b.Filter(func(q questionbank.Question) bool {
		if t.Category != "" && q.Category != t.Category {
			return false
		}
		if t.Concept != "" && !slices.Contains(q.Concepts, t.Concept) {
			return false
		}
		return true
	})
}
