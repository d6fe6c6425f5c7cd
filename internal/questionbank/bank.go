package questionbank

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Bank is an ordered, read-only collection of questions. A Bank is safe
// for concurrent use since it is never mutated after construction.
type Bank struct {
	questions []Question
	byID      map[string]int
}

// New validates the questions and builds a Bank from them.
func New(questions []Question) (*Bank, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}
	b := &Bank{
		questions: make([]Question, len(questions)),
		byID:      make(map[string]int, len(questions)),
	}
	for i, q := range questions {
		q.Options = slices.Clone(q.Options)
		q.Concepts = slices.Clone(q.Concepts)
		b.questions[i] = q
		b.byID[q.ID] = i
	}
	return b, nil
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the built-in football question bank.
func Default() *Bank {
	defaultOnce.Do(func() {
		b, err := New(seedQuestions)
		if err != nil {
			panic(fmt.Sprintf("questionbank: invalid built-in bank: %v", err))
		}
		defaultBank = b
	})
	return defaultBank
}

// All returns a copy of every question in bank order.
func (b *Bank) All() []Question {
	return slices.Clone(b.questions)
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// ByID looks up a question by ID.
func (b *Bank) ByID(id string) (Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// Filter returns the questions matching keep, in bank order.
func (b *Bank) Filter(keep func(Question) bool) []Question {
	var out []Question
	for _, q := range b.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// Categories returns the categories present in the bank, in display order.
func (b *Bank) Categories() []Category {
	present := make(map[Category]bool)
	for _, q := range b.questions {
		present[q.Category] = true
	}
	var out []Category
	for _, c := range AllCategories() {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}

// Concepts returns the distinct concept tags used by the bank, sorted.
func (b *Bank) Concepts() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range b.questions {
		for _, c := range q.Concepts {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	slices.Sort(out)
	return out
}

// Count is the number of questions at a category/difficulty pair.
type Count struct {
	Category   Category
	Difficulty Difficulty
	Questions  int
}

// Composition counts questions per category and difficulty, in display order.
func (b *Bank) Composition() []Count {
	counts := make(map[Category]map[Difficulty]int)
	for _, q := range b.questions {
		if counts[q.Category] == nil {
			counts[q.Category] = make(map[Difficulty]int)
		}
		counts[q.Category][q.Difficulty]++
	}
	var out []Count
	for _, c := range AllCategories() {
		for _, d := range AllDifficulties() {
			if n := counts[c][d]; n > 0 {
				out = append(out, Count{Category: c, Difficulty: d, Questions: n})
			}
		}
	}
	return out
}

// Validate checks every question and returns a combined error describing
// all problems found, or nil if the set is valid.
func Validate(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "question bank is empty")
	}

	ids := make(map[string]bool, len(questions))
	for i, q := range questions {
		label := q.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i)
			errs = append(errs, fmt.Sprintf("question %s: missing id", label))
		} else if ids[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		ids[q.ID] = true

		if !q.Category.Valid() {
			errs = append(errs, fmt.Sprintf("question %s: unknown category %q", label, q.Category))
		}
		if !q.Difficulty.Valid() {
			errs = append(errs, fmt.Sprintf("question %s: unknown difficulty %q", label, q.Difficulty))
		}
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("question %s: empty question text", label))
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %s: needs at least 2 options, has %d", label, len(q.Options)))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("question %s: correct index %d out of range", label, q.Correct))
		}
		if q.Points <= 0 {
			errs = append(errs, fmt.Sprintf("question %s: points must be positive, got %d", label, q.Points))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
