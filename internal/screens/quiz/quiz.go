// Package quiz is the screen that asks the questions of an assessment or a
// practice run, one at a time.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/router"
	"github.com/abhisek/touchline/internal/screen"
	"github.com/abhisek/touchline/internal/session"
	"github.com/abhisek/touchline/internal/ui/components"
	"github.com/abhisek/touchline/internal/ui/layout"
)

const tickInterval = time.Second

// ResultsFactory builds the screen shown once a run is finished.
type ResultsFactory func(*session.Outcome) screen.Screen

// QuizScreen implements screen.Screen for an active run.
type QuizScreen struct {
	run     session.Run
	results ResultsFactory
	now     func() time.Time

	question questionbank.Question
	choice   components.MultiChoice
	started  time.Time
	left     int // seconds left on the countdown
	token    int

	feedback    *session.Feedback
	confirmQuit bool
	finishing   bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for run.
func New(run session.Run, results ResultsFactory) *QuizScreen {
	return &QuizScreen{run: run, results: results, now: time.Now}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.nextQuestion()
}

func (s *QuizScreen) Title() string {
	return s.run.Title()
}

// InterceptEscape keeps Esc for the quit confirmation.
func (s *QuizScreen) InterceptEscape() bool {
	return s.errMsg == ""
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep playing"},
		}
	case s.finishing:
		return nil
	case s.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "A-" + components.OptionLabel(max(len(s.question.Options)-1, 0)), Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Pick"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownMsg:
		return s, s.handleTick(msg)
	case finishedMsg:
		return s, s.handleFinished(msg)
	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

// nextQuestion opens the run's current question, or finishes the run when
// there is none left.
func (s *QuizScreen) nextQuestion() tea.Cmd {
	s.feedback = nil
	q, ok := s.run.Current()
	if !ok || s.run.Done() {
		return s.finish()
	}

	s.question = q
	s.choice = components.NewMultiChoice(q.Text, q.Options, q.Correct)
	s.started = s.now()
	s.token++

	limit := s.run.QuestionTime()
	if limit <= 0 {
		s.left = 0
		return nil
	}
	s.left = int(limit / time.Second)
	return s.tick()
}

func (s *QuizScreen) tick() tea.Cmd {
	token := s.token
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return countdownMsg{token: token}
	})
}

func (s *QuizScreen) handleTick(msg countdownMsg) tea.Cmd {
	if msg.token != s.token || s.feedback != nil || s.finishing {
		return nil
	}
	// The clock keeps running behind the quit dialog.
	s.left--
	if s.left > 0 {
		return s.tick()
	}
	s.confirmQuit = false
	return s.submit(-1)
}

// submit records selected for the open question. -1 is a timeout.
func (s *QuizScreen) submit(selected int) tea.Cmd {
	elapsed := s.now().Sub(s.started)
	if selected < 0 {
		elapsed = s.run.QuestionTime()
	}
	fb, err := s.run.Answer(context.Background(), s.question.ID, selected, elapsed)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.choice = s.choice.Submit(selected)
	s.feedback = &fb
	return nil
}

func (s *QuizScreen) finish() tea.Cmd {
	if s.finishing {
		return nil
	}
	s.finishing = true
	run := s.run
	return func() tea.Msg {
		out, err := run.Finish(context.Background())
		return finishedMsg{Outcome: out, Err: err}
	}
}

func (s *QuizScreen) handleFinished(msg finishedMsg) tea.Cmd {
	if msg.Err != nil {
		s.finishing = false
		s.errMsg = "Could not save your result: " + msg.Err.Error()
		return nil
	}
	next := s.results(msg.Outcome)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *QuizScreen) leave() tea.Cmd {
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if s.errMsg != "" {
		return s.leave()
	}
	if s.finishing {
		return nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			s.run.Abandon(context.Background())
			return s.leave()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return nil
	}

	if s.feedback != nil {
		return s.nextQuestion()
	}

	if key == "esc" {
		s.confirmQuit = true
		return nil
	}

	var submitted bool
	s.choice, submitted = s.choice.Update(msg)
	if submitted {
		return s.submit(s.choice.ChosenIndex)
	}
	return nil
}
