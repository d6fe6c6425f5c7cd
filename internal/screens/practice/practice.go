// Package practice lets the learner pick a topic for an untimed practice
// quiz.
package practice

import (
	"context"
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/lessonquiz"
	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/router"
	"github.com/abhisek/touchline/internal/screen"
	"github.com/abhisek/touchline/internal/screens/quiz"
	"github.com/abhisek/touchline/internal/session"
	"github.com/abhisek/touchline/internal/ui/components"
	"github.com/abhisek/touchline/internal/ui/layout"
	"github.com/abhisek/touchline/internal/ui/theme"
)

// minConceptPool is the fewest questions a concept needs to be offered on
// its own.
const minConceptPool = 3

// PracticeScreen picks a category, then optionally a concept within it.
type PracticeScreen struct {
	svc      *session.Service
	results  quiz.ResultsFactory
	menu     components.Menu
	category questionbank.Category // set on the concept step
	lessons  []string
	errMsg   string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen.
func New(svc *session.Service, results quiz.ResultsFactory) *PracticeScreen {
	s := &PracticeScreen{svc: svc, results: results}
	if p, err := svc.LoadProgress(context.Background()); err == nil {
		s.lessons = p.Lessons.Completed
	}
	s.menu = components.NewMenu(s.categoryItems())
	return s
}

func (s *PracticeScreen) categoryItems() []components.MenuItem {
	bank := s.svc.Bank()
	items := []components.MenuItem{{
		Label:  "Mixed",
		Detail: fmt.Sprintf("%d questions", bank.Len()),
		Action: func() tea.Cmd { return s.start(lessonquiz.Topic{}) },
	}}
	for _, c := range bank.Categories() {
		n := len(lessonquiz.Pool(bank, lessonquiz.Topic{Category: c}))
		items = append(items, components.MenuItem{
			Label:  c.DisplayName(),
			Detail: fmt.Sprintf("%d questions", n),
			Action: func() tea.Cmd {
				s.category = c
				s.menu = components.NewMenu(s.conceptItems(c))
				return nil
			},
		})
	}
	return items
}

func (s *PracticeScreen) conceptItems(c questionbank.Category) []components.MenuItem {
	bank := s.svc.Bank()
	items := []components.MenuItem{{
		Label:  "All of " + c.DisplayName(),
		Action: func() tea.Cmd { return s.start(lessonquiz.Topic{Category: c}) },
	}}
	for _, concept := range bank.Concepts() {
		topic := lessonquiz.Topic{Category: c, Concept: concept}
		n := len(lessonquiz.Pool(bank, topic))
		if n < minConceptPool {
			continue
		}
		detail := fmt.Sprintf("%d questions", n)
		if slices.Contains(s.lessons, lessonquiz.LessonID(concept)) {
			detail += " · ✓ done"
		}
		items = append(items, components.MenuItem{
			Label:  concept,
			Detail: detail,
			Action: func() tea.Cmd { return s.start(topic) },
		})
	}
	return items
}

func (s *PracticeScreen) start(topic lessonquiz.Topic) tea.Cmd {
	run, err := s.svc.StartPractice(context.Background(), topic, lessonquiz.DefaultLength)
	if err != nil {
		s.errMsg = "Could not start practice: " + err.Error()
		return nil
	}
	s.errMsg = ""
	next := quiz.New(run, s.results)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// InterceptEscape steps back from the concept list to the categories.
func (s *PracticeScreen) InterceptEscape() bool {
	return s.category != ""
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" && s.category != "" {
		s.category = ""
		s.menu = components.NewMenu(s.categoryItems())
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	heading := "Pick a topic"
	if s.category != "" {
		heading = s.category.DisplayName()
	}

	content := theme.Title.Render(heading) + "\n" +
		theme.Hint.Render("Untimed. The questions adapt to how you're doing.") + "\n\n" +
		components.Card(s.menu.View(), cw)
	if s.errMsg != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
