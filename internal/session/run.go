package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/abhisek/touchline/internal/assessment"
	"github.com/abhisek/touchline/internal/badges"
	"github.com/abhisek/touchline/internal/diagnosis"
	"github.com/abhisek/touchline/internal/lessonquiz"
	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/store"
	"github.com/abhisek/touchline/internal/tiers"
)

// ErrFinished is returned when answering a run that has no question left.
var ErrFinished = errors.New("run already finished")

// ErrResponseRejected is returned when the engine refuses an answer.
var ErrResponseRejected = errors.New("response rejected")

// Run is one sitting the quiz screen drives, either an assessment or a
// practice quiz.
type Run interface {
	ID() string
	Title() string
	// Current returns the question awaiting an answer.
	Current() (questionbank.Question, bool)
	// Answer records selected for questionID; -1 means time ran out.
	Answer(ctx context.Context, questionID string, selected int, elapsed time.Duration) (Feedback, error)
	// Position reports answered and planned question counts.
	Position() (answered, total int)
	// QuestionTime is the per-question countdown, 0 when untimed.
	QuestionTime() time.Duration
	Done() bool
	// Finish scores the run and saves progress. Calling it again returns
	// the same outcome.
	Finish(ctx context.Context) (*Outcome, error)
	// Abandon records that the learner quit early.
	Abandon(ctx context.Context)
}

// Feedback is shown after each answer.
type Feedback struct {
	Question questionbank.Question
	Selected int
	Correct  bool
}

// TimedOut reports whether the answer was the timeout sentinel.
func (f Feedback) TimedOut() bool { return f.Selected < 0 }

// Outcome is the end-of-run report. Exactly one of Results and Practice
// is set.
type Outcome struct {
	Results  *assessment.Results
	Practice *lessonquiz.Summary
	Badges   []badges.Award
	Progress progress.Snapshot
	// Unlocked lists tiers that became available with this run.
	Unlocked []string
	// Mistakes sorts an assessment's wrong answers. Nil for practice.
	Mistakes *diagnosis.Report
}

// AssessmentRun adapts an assessment to Run.
type AssessmentRun struct {
	svc     *Service
	a       *assessment.Assessment
	outcome *Outcome
}

var _ Run = (*AssessmentRun)(nil)

func (r *AssessmentRun) ID() string { return r.a.ID() }

func (r *AssessmentRun) Title() string {
	return r.a.Config().DisplayName() + " Assessment"
}

// Assessment exposes the underlying engine.
func (r *AssessmentRun) Assessment() *assessment.Assessment { return r.a }

func (r *AssessmentRun) Current() (questionbank.Question, bool) {
	if r.outcome != nil {
		return questionbank.Question{}, false
	}
	return r.a.CurrentQuestion()
}

func (r *AssessmentRun) Answer(ctx context.Context, questionID string, selected int, elapsed time.Duration) (Feedback, error) {
	q, ok := r.Current()
	if !ok {
		return Feedback{}, ErrFinished
	}
	if q.ID != questionID {
		return Feedback{}, fmt.Errorf("%w: question %s is not current", ErrResponseRejected, questionID)
	}
	resp, ok := r.a.RecordResponse(questionID, selected, elapsed)
	if !ok {
		return Feedback{}, fmt.Errorf("%w: %s", ErrResponseRejected, questionID)
	}
	r.svc.appendAnswer(ctx, store.AnswerEventData{
		SessionID:     r.a.ID(),
		Mode:          store.ModeAssessment,
		QuestionID:    questionID,
		Category:      string(resp.Category),
		Difficulty:    string(resp.Difficulty),
		Selected:      resp.Selected,
		CorrectAnswer: resp.CorrectAnswer,
		Correct:       resp.Correct,
		TimeMs:        resp.TimeSpent.Milliseconds(),
	})
	return Feedback{Question: q, Selected: resp.Selected, Correct: resp.Correct}, nil
}

func (r *AssessmentRun) Position() (int, int) {
	return len(r.a.Responses()), len(r.a.Questions())
}

func (r *AssessmentRun) QuestionTime() time.Duration {
	if r.svc.d.Untimed {
		return 0
	}
	return r.a.Config().QuestionTime()
}

func (r *AssessmentRun) Done() bool {
	_, ok := r.a.CurrentQuestion()
	return !ok
}

// Finish scores the answers given so far, merges the attempt into the
// learner's progress, awards badges and records the completion.
func (r *AssessmentRun) Finish(ctx context.Context) (*Outcome, error) {
	if r.outcome != nil {
		return r.outcome, nil
	}
	svc := r.svc
	before, err := svc.LoadProgress(ctx)
	if err != nil {
		return nil, err
	}
	res := r.a.CalculateResults()

	p := before.Clone()
	if res.TotalQuestions > 0 {
		p.RecordAssessment(res.SessionID, res.Record(svc.d.Now()))
		if err := svc.SaveProgress(ctx, p); err != nil {
			return nil, err
		}
	}

	svc.appendAssessment(ctx, store.AssessmentEventData{
		SessionID:      res.SessionID,
		Tier:           res.Tier,
		Action:         store.ActionComplete,
		Questions:      res.TotalQuestions,
		CorrectAnswers: res.CorrectAnswers,
		Percentage:     res.Percentage,
		Passed:         res.Passed,
		Points:         res.TotalPoints,
		SkillLevel:     res.SkillLevel.ID,
		DurationSecs:   int(res.TimeElapsed.Seconds()),
	})

	r.outcome = &Outcome{
		Results:  &res,
		Badges:   svc.d.Badges.AwardForResults(ctx, res.SessionID, res),
		Progress: p,
		Unlocked: newlyUnlocked(before, p),
	}
	if rep, err := diagnosis.Diagnose(ctx, svc.d.Events, r.a.Responses()); err != nil {
		svc.d.Logger.Warn("diagnose mistakes", "session", res.SessionID, "err", err)
	} else {
		r.outcome.Mistakes = &rep
	}
	svc.d.Logger.Info("assessment complete",
		"session", res.SessionID, "tier", res.Tier, "percentage", res.Percentage,
		"passed", res.Passed, "badges", len(r.outcome.Badges))
	return r.outcome, nil
}

func (r *AssessmentRun) Abandon(ctx context.Context) {
	if r.outcome != nil {
		return
	}
	r.svc.appendAssessment(ctx, store.AssessmentEventData{
		SessionID: r.a.ID(),
		Tier:      r.a.Config().Name,
		Action:    store.ActionAbandon,
		Questions: len(r.a.Responses()),
	})
}

func newlyUnlocked(before, after progress.Snapshot) []string {
	had := tiers.UnlockedTiers(before)
	var out []string
	for _, name := range tiers.UnlockedTiers(after) {
		if !slices.Contains(had, name) {
			out = append(out, name)
		}
	}
	return out
}

// PracticeRun adapts a practice quiz to Run.
type PracticeRun struct {
	svc     *Service
	q       *lessonquiz.Quiz
	topic   lessonquiz.Topic
	id      string
	outcome *Outcome
}

var _ Run = (*PracticeRun)(nil)

func (r *PracticeRun) ID() string { return r.id }

func (r *PracticeRun) Title() string {
	switch {
	case r.topic.Concept != "":
		return "Practice: " + r.topic.Concept
	case r.topic.Category != "":
		return "Practice: " + r.topic.Category.DisplayName()
	}
	return "Practice"
}

// Quiz exposes the underlying quiz.
func (r *PracticeRun) Quiz() *lessonquiz.Quiz { return r.q }

func (r *PracticeRun) Current() (questionbank.Question, bool) {
	if r.outcome != nil {
		return questionbank.Question{}, false
	}
	return r.q.Next()
}

func (r *PracticeRun) Answer(ctx context.Context, questionID string, selected int, elapsed time.Duration) (Feedback, error) {
	if r.q.Done() || r.outcome != nil {
		return Feedback{}, ErrFinished
	}
	res, err := r.q.Answer(questionID, selected, elapsed)
	if err != nil {
		return Feedback{}, err
	}
	r.svc.appendAnswer(ctx, store.AnswerEventData{
		SessionID:     r.id,
		Mode:          store.ModePractice,
		QuestionID:    questionID,
		Category:      string(res.Question.Category),
		Difficulty:    string(res.Question.Difficulty),
		Selected:      selected,
		CorrectAnswer: res.Question.Correct,
		Correct:       res.Correct,
		TimeMs:        elapsed.Milliseconds(),
	})
	return Feedback{Question: res.Question, Selected: selected, Correct: res.Correct}, nil
}

func (r *PracticeRun) Position() (int, int) {
	return r.q.Answered(), r.q.Length()
}

// QuestionTime is always zero: practice is untimed.
func (r *PracticeRun) QuestionTime() time.Duration { return 0 }

func (r *PracticeRun) Done() bool { return r.q.Done() }

// Finish marks the lessons behind every correctly answered concept as
// completed and saves progress.
func (r *PracticeRun) Finish(ctx context.Context) (*Outcome, error) {
	if r.outcome != nil {
		return r.outcome, nil
	}
	p, err := r.svc.LoadProgress(ctx)
	if err != nil {
		return nil, err
	}
	sum := r.q.Summary()

	changed := false
	for _, c := range sum.Concepts {
		if p.CompleteLesson(lessonquiz.LessonID(c)) {
			changed = true
		}
	}
	if changed {
		if err := r.svc.SaveProgress(ctx, p); err != nil {
			return nil, err
		}
	}
	r.outcome = &Outcome{Practice: &sum, Progress: p}
	return r.outcome, nil
}

// Abandon is a no-op: unfinished practice leaves no trace beyond its
// answer events.
func (r *PracticeRun) Abandon(context.Context) {}
