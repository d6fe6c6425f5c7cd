// Package assessment runs tiered adaptive assessments: it draws a question
// set for a tier from the bank, records answers while tracking a running
// difficulty estimate, and produces the results report that decides whether
// the next tier unlocks.
package assessment

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/tiers"
)

// ErrNoQuestions is returned by Start when the bank has nothing for the
// tier's difficulties.
var ErrNoQuestions = errors.New("no questions available for tier")

// AdaptWindow is the number of latest responses that drive difficulty
// changes.
const AdaptWindow = 5

const (
	stepUpAccuracy   = 0.8
	stepDownAccuracy = 0.4
)

// State is the lifecycle stage of an assessment.
type State string

const (
	StateCreated    State = "created"
	StateInProgress State = "in-progress"
	StateComplete   State = "complete"
)

// Response is one recorded answer.
type Response struct {
	QuestionID    string
	Selected      int // -1 when time ran out
	CorrectAnswer int
	Correct       bool
	TimeSpent     time.Duration
	Difficulty    questionbank.Difficulty
	Category      questionbank.Category
	Points        int // 0 unless correct
	Timestamp     time.Time
}

// TimedOut reports whether the response is the no-answer sentinel.
func (r Response) TimedOut() bool { return r.Selected < 0 }

// CategoryScore is the running tally for one category.
type CategoryScore struct {
	Correct int
	Total   int
	Points  int
}

// Option configures an Assessment.
type Option func(*Assessment)

// WithBank uses b instead of the built-in question bank.
func WithBank(b *questionbank.Bank) Option {
	return func(a *Assessment) { a.bank = b }
}

// WithRand sets the shuffling source. Tests pass a seeded generator.
func WithRand(r *rand.Rand) Option {
	return func(a *Assessment) { a.rng = r }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Assessment) { a.now = now }
}

// WithLogger sets the logger used for recoverable anomalies.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assessment) { a.logger = l }
}

// Assessment is a single attempt at a tier. Not safe for concurrent use.
type Assessment struct {
	id     string
	mode   string
	config tiers.Config

	bank   *questionbank.Bank
	rng    *rand.Rand
	now    func() time.Time
	logger *slog.Logger

	state      State
	questions  []questionbank.Question
	responses  []Response
	current    questionbank.Difficulty
	scores     map[questionbank.Category]*CategoryScore
	categories []questionbank.Category // first-seen order of scored categories
	started    time.Time
}

// New prepares an assessment of the named tier for the learner. Unknown
// tier names fall back to the first tier with a warning.
func New(p progress.Snapshot, mode string, opts ...Option) *Assessment {
	a := &Assessment{
		id:     uuid.NewString(),
		mode:   mode,
		now:    time.Now,
		state:  StateCreated,
		scores: make(map[questionbank.Category]*CategoryScore),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.bank == nil {
		a.bank = questionbank.Default()
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	cfg, ok := tiers.Resolve(mode)
	if !ok {
		a.logger.Warn("unknown assessment tier, using fallback",
			"requested", mode, "fallback", cfg.Name)
	}
	a.config = cfg
	a.current = StartingDifficulty(len(p.Lessons.Completed))
	return a
}

// StartingDifficulty estimates the opening difficulty from the number of
// completed lessons.
func StartingDifficulty(completedLessons int) questionbank.Difficulty {
	switch {
	case completedLessons < 3:
		return questionbank.DifficultyEasy
	case completedLessons < 7:
		return questionbank.DifficultyMedium
	default:
		return questionbank.DifficultyHard
	}
}

// Start records the start time and draws the question set. It may return
// fewer questions than the tier asks for when the bank is short; it fails
// only when no question at all fits the tier.
func (a *Assessment) Start() error {
	a.started = a.now()
	a.questions = a.generate()
	a.state = StateInProgress
	if len(a.questions) == 0 {
		return ErrNoQuestions
	}
	if len(a.questions) < a.config.TotalQuestions {
		a.logger.Warn("question set under-filled",
			"tier", a.config.Name, "want", a.config.TotalQuestions, "got", len(a.questions))
	}
	return nil
}

// CurrentQuestion returns the next unanswered question. The bool is false
// once every question has a response.
func (a *Assessment) CurrentQuestion() (questionbank.Question, bool) {
	i := len(a.responses)
	if i >= len(a.questions) {
		return questionbank.Question{}, false
	}
	return a.questions[i], true
}

// RecordResponse scores an answer to questionID. selected is an option
// index or -1 for a timeout. The bool is false, and nothing changes, when
// the question is not part of this assessment or was already answered.
// Repeats are refused rather than appended, so each question scores at
// most once.
func (a *Assessment) RecordResponse(questionID string, selected int, timeSpent time.Duration) (Response, bool) {
	idx := slices.IndexFunc(a.questions, func(q questionbank.Question) bool { return q.ID == questionID })
	if idx < 0 {
		return Response{}, false
	}
	if slices.ContainsFunc(a.responses, func(r Response) bool { return r.QuestionID == questionID }) {
		return Response{}, false
	}

	q := a.questions[idx]
	r := Response{
		QuestionID:    q.ID,
		Selected:      selected,
		CorrectAnswer: q.Correct,
		Correct:       q.IsCorrect(selected),
		TimeSpent:     timeSpent,
		Difficulty:    q.Difficulty,
		Category:      q.Category,
		Timestamp:     a.now(),
	}
	if r.Correct {
		r.Points = q.Points
	}
	a.responses = append(a.responses, r)

	sc, ok := a.scores[q.Category]
	if !ok {
		sc = &CategoryScore{}
		a.scores[q.Category] = sc
		a.categories = append(a.categories, q.Category)
	}
	sc.Total++
	if r.Correct {
		sc.Correct++
		sc.Points += r.Points
	}

	a.adapt()
	return r, true
}

func (a *Assessment) adapt() {
	if len(a.responses) < AdaptWindow {
		return
	}
	correct := 0
	for _, r := range a.responses[len(a.responses)-AdaptWindow:] {
		if r.Correct {
			correct++
		}
	}
	accuracy := float64(correct) / AdaptWindow
	switch {
	case accuracy > stepUpAccuracy:
		a.current = a.current.Next()
	case accuracy < stepDownAccuracy:
		a.current = a.current.Prev()
	}
}

// ID is the session identifier.
func (a *Assessment) ID() string { return a.id }

// Mode is the tier name as requested, which may differ from Config().Name
// after a fallback.
func (a *Assessment) Mode() string { return a.mode }

// Config is the resolved tier configuration.
func (a *Assessment) Config() tiers.Config { return a.config }

// Questions returns a copy of the question set.
func (a *Assessment) Questions() []questionbank.Question { return slices.Clone(a.questions) }

// Responses returns a copy of the recorded responses.
func (a *Assessment) Responses() []Response { return slices.Clone(a.responses) }

// CurrentDifficulty is the live difficulty estimate.
func (a *Assessment) CurrentDifficulty() questionbank.Difficulty { return a.current }

// CategoryScores returns a copy of the per-category tallies.
func (a *Assessment) CategoryScores() map[questionbank.Category]CategoryScore {
	out := make(map[questionbank.Category]CategoryScore, len(a.scores))
	for c, s := range a.scores {
		out[c] = *s
	}
	return out
}

// State returns the lifecycle stage.
func (a *Assessment) State() State { return a.state }

// IsComplete reports whether results have been calculated.
func (a *Assessment) IsComplete() bool { return a.state == StateComplete }

// Remaining is the number of unanswered questions.
func (a *Assessment) Remaining() int { return max(len(a.questions)-len(a.responses), 0) }

// StartedAt is when Start was called, zero before.
func (a *Assessment) StartedAt() time.Time { return a.started }
