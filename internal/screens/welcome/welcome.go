package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/router"
	"github.com/abhisek/touchline/internal/screen"
	"github.com/abhisek/touchline/internal/ui/components"
	"github.com/abhisek/touchline/internal/ui/layout"
	"github.com/abhisek/touchline/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond

	maxNameLen = 24
)

const ballArt = `    ▄▄████▄▄
  ▄██▀▀  ▀▀██▄
 ██▀  ▄██▄  ▀██
 ██  ▀████▀  ██
 ██▄  ▀▀▀▀  ▄██
  ▀██▄▄  ▄▄██▀
    ▀▀████▀▀`

// bounce offsets cycle the ball up and down
var bounceFrames = []int{0, 1, 2, 1}

type tickMsg time.Time

// SaveNameFunc persists the learner's chosen name.
type SaveNameFunc func(name string) error

// WelcomeScreen shows a splash animation, asks a first-time learner for a
// name and then hands over to the home screen.
type WelcomeScreen struct {
	learner      string
	saveName     SaveNameFunc
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	asking       bool
	input        components.TextInput
	err          string
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. An empty learner name makes the screen ask
// for one before moving on.
func New(learner string, saveName SaveNameFunc, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		learner:     learner,
		saveName:    saveName,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.asking || w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		if w.asking {
			return w, w.updateName(msg)
		}
		if w.learner == "" {
			w.asking = true
			w.input = components.NewTextInput("Your name", maxNameLen)
			return w, w.input.Init()
		}
		return w, w.transition()
	}

	if w.asking {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *WelcomeScreen) updateName(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		w.err = ""
		return cmd
	}

	name := w.input.Value()
	if name == "" {
		w.err = "Please enter a name."
		return nil
	}
	if w.saveName != nil {
		if err := w.saveName(name); err != nil {
			w.err = "Could not save your name: " + err.Error()
			return nil
		}
	}
	w.learner = name
	return w.transition()
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// InterceptEscape keeps Esc inside the name prompt.
func (w *WelcomeScreen) InterceptEscape() bool {
	return w.asking
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.asking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	if w.asking {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, w.nameView(width))
	}

	var sections []string

	ball := lipgloss.NewStyle().Foreground(theme.Text).Render(ballArt)
	if w.elapsed >= phase1End && w.elapsed < totalDur {
		ball = strings.Repeat("\n", bounceFrames[w.tickCount%len(bounceFrames)]) + ball
	}
	sections = append(sections, ball)

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Know the game. Prove it.")
		sections = append(sections, tagline)

		if w.learner != "" {
			sections = append(sections, "", lipgloss.NewStyle().
				Foreground(theme.Accent).
				Render("Welcome back, "+w.learner+"!"))
		}

		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) nameView(width int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString(RenderBanner(width))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render("What should we call you?"))
	b.WriteString("\n\n")
	b.WriteString(components.Card(w.input.View(), cw))
	if w.err != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(w.err))
	}
	return b.String()
}
