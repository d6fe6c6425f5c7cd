// Package lessonquiz runs the short practice quiz attached to a lesson. It
// asks whichever unasked question best matches the learner's current level
// and moves that level after every answer.
package lessonquiz

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/abhisek/touchline/internal/difficulty"
	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/store"
)

// DefaultLength is the number of questions in a practice quiz.
const DefaultLength = 6

// ErrUnknownQuestion is returned when an answer names a question outside
// the quiz pool.
var ErrUnknownQuestion = errors.New("question not in quiz")

// StatsSource provides per-question answer history.
type StatsSource interface {
	QuestionStats(ctx context.Context, questionIDs []string) (map[string]store.QuestionStat, error)
}

// Quiz is one practice run. Not safe for concurrent use.
type Quiz struct {
	pool     []questionbank.Question
	snapshot progress.Snapshot
	history  map[string]*difficulty.History
	adjuster difficulty.Adjuster
	length   int

	// strain is the adjuster's output: how hard the recent questions felt.
	// It falls as the learner answers correctly.
	strain   float64
	asked    map[string]bool
	outcomes []difficulty.Outcome
	current  *difficulty.Candidate
}

// New builds a quiz over pool. stats may be nil; a failing stats lookup is
// returned as an error since the caller chose to supply it.
func New(ctx context.Context, pool []questionbank.Question, p progress.Snapshot, stats StatsSource, length int) (*Quiz, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("practice pool is empty")
	}
	if length <= 0 || length > len(pool) {
		length = min(DefaultLength, len(pool))
	}

	q := &Quiz{
		pool:     slices.Clone(pool),
		snapshot: p,
		history:  make(map[string]*difficulty.History),
		adjuster: difficulty.DefaultAdjuster(),
		length:   length,
		strain:   0.5,
		asked:    make(map[string]bool),
	}

	if stats != nil {
		ids := make([]string, len(pool))
		for i, pq := range pool {
			ids[i] = pq.ID
		}
		byID, err := stats.QuestionStats(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("loading question stats: %w", err)
		}
		for id, st := range byID {
			q.history[id] = historyFrom(st)
		}
	}
	return q, nil
}

func historyFrom(st store.QuestionStat) *difficulty.History {
	if st.Attempts == 0 {
		return nil
	}
	avg := time.Duration(st.AvgTimeMs * float64(time.Millisecond))
	rate := float64(st.Correct) / float64(st.Attempts)
	return &difficulty.History{AverageResponseTime: &avg, SuccessRate: &rate}
}

// Target is the question difficulty the quiz aims for next. It mirrors
// strain so that a learner who keeps answering correctly gets harder
// questions.
func (q *Quiz) Target() float64 {
	return difficulty.Min + difficulty.Max - q.strain
}

// Next selects the next question. The bool is false once the quiz is over.
func (q *Quiz) Next() (questionbank.Question, bool) {
	if q.Done() {
		return questionbank.Question{}, false
	}
	if q.current != nil {
		return q.current.Question, true
	}

	var remaining []questionbank.Question
	for _, pq := range q.pool {
		if !q.asked[pq.ID] {
			remaining = append(remaining, pq)
		}
	}
	cands := difficulty.Score(remaining, q.snapshot, func(id string) *difficulty.History {
		return q.history[id]
	})
	best, ok := difficulty.RecommendNext(q.Target(), cands)
	if !ok {
		return questionbank.Question{}, false
	}
	q.current = &best
	return best.Question, true
}

// Result is the outcome of one answer.
type Result struct {
	Question   questionbank.Question
	Selected   int
	Correct    bool
	Difficulty float64
}

// Answer records the learner's choice for questionID. selected may be -1
// for a timed-out question.
func (q *Quiz) Answer(questionID string, selected int, elapsed time.Duration) (Result, error) {
	var cand difficulty.Candidate
	if q.current != nil && q.current.Question.ID == questionID {
		cand = *q.current
	} else {
		idx := slices.IndexFunc(q.pool, func(pq questionbank.Question) bool { return pq.ID == questionID })
		if idx < 0 || q.asked[questionID] {
			return Result{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
		}
		pq := q.pool[idx]
		cand = difficulty.Candidate{
			Question:   pq,
			Difficulty: difficulty.CalculateDifficulty(difficulty.FeaturesOf(pq), q.snapshot, q.history[pq.ID]),
		}
	}

	correct := cand.Question.IsCorrect(selected)
	q.asked[questionID] = true
	q.current = nil
	q.outcomes = append(q.outcomes, difficulty.Outcome{
		QuestionID:   questionID,
		Correct:      correct,
		ResponseTime: elapsed,
	})
	q.strain = q.adjuster.Adjust(q.strain, difficulty.Recent(q.outcomes))

	return Result{
		Question:   cand.Question,
		Selected:   selected,
		Correct:    correct,
		Difficulty: cand.Difficulty,
	}, nil
}

// Done reports whether the quiz has asked all its questions.
func (q *Quiz) Done() bool {
	return len(q.outcomes) >= q.length
}

// Length is the number of questions the quiz will ask.
func (q *Quiz) Length() int { return q.length }

// Answered is the number of questions answered so far.
func (q *Quiz) Answered() int { return len(q.outcomes) }

// Summary describes a finished or partial quiz.
type Summary struct {
	Asked    int
	Correct  int
	Accuracy float64
	Target   float64

	// Concepts lists concept tags of correctly answered questions, in the
	// order first seen.
	Concepts []string
}

// Summary reports progress so far.
func (q *Quiz) Summary() Summary {
	s := Summary{
		Asked:    len(q.outcomes),
		Accuracy: difficulty.Accuracy(q.outcomes),
		Target:   q.Target(),
	}
	for _, o := range q.outcomes {
		if !o.Correct {
			continue
		}
		s.Correct++
		idx := slices.IndexFunc(q.pool, func(pq questionbank.Question) bool { return pq.ID == o.QuestionID })
		for _, c := range q.pool[idx].Concepts {
			if !slices.Contains(s.Concepts, c) {
				s.Concepts = append(s.Concepts, c)
			}
		}
	}
	return s
}

// LessonID is the lesson identifier recorded when a concept is practised
// successfully. Difficulty scoring matches concepts against these IDs.
func LessonID(concept string) string {
	return "lesson-" + concept
}
