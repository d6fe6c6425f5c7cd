// Package app hosts the Bubble Tea program: the screen router framed by
// the header and footer.
package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/router"
	"github.com/abhisek/touchline/internal/screen"
	"github.com/abhisek/touchline/internal/screens/home"
	"github.com/abhisek/touchline/internal/screens/results"
	"github.com/abhisek/touchline/internal/screens/welcome"
	"github.com/abhisek/touchline/internal/session"
	"github.com/abhisek/touchline/internal/ui/layout"
)

// Options configure the application.
type Options struct {
	Session *session.Service
	// Advisor writes the study plan on the results screen. Nil uses the
	// built-in plan.
	Advisor results.Advisor
	Logger  *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	home   *home.HomeScreen
	width  int
	height int
}

// newAppModel creates an AppModel that opens on the welcome screen.
func newAppModel(opts Options) (*AppModel, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	ctx := context.Background()
	p, err := opts.Session.LoadProgress(ctx)
	if err != nil {
		return nil, err
	}

	m := &AppModel{}
	saveName := func(name string) error {
		p, err := opts.Session.LoadProgress(ctx)
		if err != nil {
			return err
		}
		p.Learner = name
		return opts.Session.SaveProgress(ctx, p)
	}
	homeFactory := func() screen.Screen {
		m.home = home.New(home.Deps{
			Session: opts.Session,
			Advisor: opts.Advisor,
			Logger:  opts.Logger,
		})
		return m.home
	}
	m.router = router.New(welcome.New(p.Learner, saveName, homeFactory))
	return m, nil
}

func (m *AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if ei, ok := m.router.Active().(screen.EscapeInterceptor); ok && ei.InterceptEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) stats() layout.Stats {
	if m.home == nil {
		return layout.Stats{}
	}
	return m.home.Stats()
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
