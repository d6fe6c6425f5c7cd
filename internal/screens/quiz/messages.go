package quiz

import "github.com/abhisek/touchline/internal/session"

// countdownMsg ticks once a second while a question is open. token ties
// the tick to the question it was started for.
type countdownMsg struct {
	token int
}

// finishedMsg carries the outcome of Run.Finish.
type finishedMsg struct {
	Outcome *session.Outcome
	Err     error
}
