// Package home is the main menu: the tier ladder plus practice, trophies
// and history.
package home

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/router"
	"github.com/abhisek/touchline/internal/screen"
	"github.com/abhisek/touchline/internal/screens/history"
	"github.com/abhisek/touchline/internal/screens/practice"
	"github.com/abhisek/touchline/internal/screens/quiz"
	"github.com/abhisek/touchline/internal/screens/results"
	"github.com/abhisek/touchline/internal/screens/trophies"
	"github.com/abhisek/touchline/internal/session"
	"github.com/abhisek/touchline/internal/tiers"
	"github.com/abhisek/touchline/internal/ui/components"
	"github.com/abhisek/touchline/internal/ui/layout"
)

// Deps are the services the home screen and the screens it opens use.
type Deps struct {
	Session *session.Service
	Advisor results.Advisor
	Logger  *slog.Logger
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps     Deps
	menu     components.Menu
	progress progress.Snapshot
	statuses []tiers.Status
	badges   int
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates a new HomeScreen and loads the learner's progress.
func New(deps Deps) *HomeScreen {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	h := &HomeScreen{deps: deps}
	h.load()
	return h
}

func (h *HomeScreen) load() {
	ctx := context.Background()
	p, err := h.deps.Session.LoadProgress(ctx)
	if err != nil {
		h.deps.Logger.Error("load progress", "err", err)
		p = progress.New()
	}
	h.progress = p
	h.statuses = tiers.Statuses(p)

	h.badges = 0
	if repo := h.deps.Session.Events(); repo != nil {
		if _, total, err := repo.BadgeCounts(ctx); err == nil {
			h.badges = total
		} else {
			h.deps.Logger.Warn("count badges", "err", err)
		}
	}

	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	if selected > 0 && selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	var items []components.MenuItem
	for _, st := range h.statuses {
		name := st.Config.Name
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%s %s ASSESSMENT", st.State.Icon(), strings.ToUpper(st.Config.DisplayName())),
			Detail:   statusDetail(st),
			Disabled: st.State == tiers.StateLocked,
			Action:   func() tea.Cmd { return h.startAssessment(name) },
		})
	}
	items = append(items,
		components.MenuItem{Label: "PRACTICE", Action: func() tea.Cmd {
			return push(practice.New(h.deps.Session, h.resultsFactory()))
		}},
		components.MenuItem{Label: "TROPHY CABINET", Action: func() tea.Cmd {
			return push(trophies.New(h.deps.Session.Events()))
		}},
		components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
			return push(history.New(h.deps.Session.Events()))
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	)
	return items
}

func statusDetail(st tiers.Status) string {
	switch {
	case st.State == tiers.StateLocked:
		return "locked"
	case st.Attempts == 0:
		return fmt.Sprintf("%d questions · pass %d%%", st.Config.TotalQuestions, st.Config.EffectivePassingScore())
	default:
		return fmt.Sprintf("best %d%% · %d attempts", st.Best, st.Attempts)
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) resultsFactory() quiz.ResultsFactory {
	return func(o *session.Outcome) screen.Screen {
		return results.New(o, h.deps.Advisor)
	}
}

func (h *HomeScreen) startAssessment(tier string) tea.Cmd {
	run, err := h.deps.Session.StartAssessment(context.Background(), tier)
	if err != nil {
		if errors.Is(err, session.ErrTierLocked) {
			h.errMsg = "That tier is still locked. Pass the one before it first."
		} else {
			h.errMsg = "Could not start the assessment: " + err.Error()
		}
		return nil
	}
	h.errMsg = ""
	return push(quiz.New(run, h.resultsFactory()))
}

// Refresh reloads progress after a run or a visit to another screen.
func (h *HomeScreen) Refresh() tea.Cmd {
	h.load()
	return nil
}

// Stats returns the figures shown in the application header.
func (h *HomeScreen) Stats() layout.Stats {
	return layout.Stats{
		Learner: h.progress.Learner,
		Points:  h.progress.Points,
		Badges:  h.badges,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}
