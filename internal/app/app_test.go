package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/router"
	"github.com/abhisek/touchline/internal/screen"
	"github.com/abhisek/touchline/internal/screens/home"
	"github.com/abhisek/touchline/internal/session"
	"github.com/abhisek/touchline/internal/ui/layout"
)

type stubScreen struct {
	title     string
	intercept bool
	keys      []string
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		s.keys = append(s.keys, k.String())
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string  { return s.title }
func (s *stubScreen) Title() string         { return s.title }
func (s *stubScreen) InterceptEscape() bool { return s.intercept }

func newTestApp(t *testing.T) *AppModel {
	t.Helper()
	svc := session.NewService(session.Deps{Bank: questionbank.Default()})
	m, err := newAppModel(Options{Session: svc})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return m
}

func esc() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEscape} }

func TestEscPopsScreen(t *testing.T) {
	m := newTestApp(t)
	m.router.Push(&stubScreen{title: "child"})

	_, cmd := m.Update(esc())
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscInterceptedByScreen(t *testing.T) {
	m := newTestApp(t)
	child := &stubScreen{title: "quiz", intercept: true}
	m.router.Push(child)

	m.Update(esc())
	if len(child.keys) != 1 || child.keys[0] != "esc" {
		t.Errorf("screen keys = %v, want [esc]", child.keys)
	}
}

func TestWelcomeHandsOverToHome(t *testing.T) {
	m := newTestApp(t)

	// New learner: the first key opens the name prompt.
	m.Update(tea.KeyPressMsg{Code: ' '})
	for _, r := range "Sam" {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition")
	}
	m.Update(cmd())

	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("active = %T, want home", m.router.Active())
	}
	if m.home == nil {
		t.Fatal("home not recorded for header stats")
	}
}

func TestStatsDefaultBeforeHome(t *testing.T) {
	m := newTestApp(t)
	if got := m.stats(); got != (layout.Stats{}) {
		t.Errorf("stats = %+v, want zero", got)
	}
}
