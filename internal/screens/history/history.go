// Package history lists past assessment attempts.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/badges"
	"github.com/abhisek/touchline/internal/screen"
	"github.com/abhisek/touchline/internal/store"
	"github.com/abhisek/touchline/internal/tiers"
	"github.com/abhisek/touchline/internal/ui/layout"
	"github.com/abhisek/touchline/internal/ui/theme"
)

// maxAttempts bounds how many attempts are listed.
const maxAttempts = 50

type historyLoadedMsg struct {
	Attempts []store.AssessmentEventRecord
	Badges   map[string][]store.BadgeEventRecord // sessionID → badges
	Err      error
}

// HistoryScreen displays completed assessments and the badges each earned.
type HistoryScreen struct {
	eventRepo store.EventRepo
	attempts  []store.AssessmentEventRecord
	badges    map[string][]store.BadgeEventRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. A nil repo shows an empty list.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		ctx := context.Background()

		attempts, err := store.CompletedAssessments(ctx, repo, maxAttempts)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		bySession := make(map[string][]store.BadgeEventRecord)
		all, err := repo.QueryBadgeEvents(ctx, store.QueryOpts{})
		if err != nil {
			// Attempts are still worth showing without their badges.
			return historyLoadedMsg{Attempts: attempts, Badges: bySession}
		}
		for _, b := range all {
			bySession[b.SessionID] = append(bySession[b.SessionID], b)
		}
		return historyLoadedMsg{Attempts: attempts, Badges: bySession}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Badges"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.badges = msg.Badges
		}
		s.loaded = true

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered("\n\nError: "+s.errMsg, width, theme.Error)
	}
	if !s.loaded {
		return layout.Centered("\n\nLoading history...", width, theme.TextDim)
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\nNo assessments yet. Kick off with the Beginner tier!")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, a := range s.attempts {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderAttempt(i, a)))
		b.WriteString("\n")
		if s.expanded[i] {
			b.WriteString(s.renderBadges(a.SessionID, width))
		}
	}
	return b.String()
}

func (s *HistoryScreen) renderAttempt(i int, a store.AssessmentEventRecord) string {
	cfg, _ := tiers.Resolve(a.Tier)
	verdict := "✗"
	if a.Passed {
		verdict = "✓"
	}
	prefix := "  "
	if i == s.selected {
		prefix = "▸ "
	}
	line := fmt.Sprintf("%s%s  %-12s %s %3d%%  %2d/%-2d  %d:%02d  %s",
		prefix,
		a.Timestamp.Local().Format("Jan 02, 2006"),
		cfg.DisplayName(),
		verdict,
		a.Percentage,
		a.CorrectAnswers, a.Questions,
		a.DurationSecs/60, a.DurationSecs%60,
		a.SkillLevel,
	)

	passing := cfg.EffectivePassingScore()
	style := lipgloss.NewStyle().Foreground(theme.ScoreColor(a.Percentage, passing))
	if i == s.selected {
		style = style.Bold(true)
	}
	return style.Render(line)
}

func (s *HistoryScreen) renderBadges(sessionID string, width int) string {
	earned := s.badges[sessionID]
	if len(earned) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("    No badges this time")) + "\n"
	}
	var b strings.Builder
	for _, e := range earned {
		t := badges.Type(e.BadgeType)
		line := fmt.Sprintf("    %s %s %s · %s", t.Icon(), badges.Rarity(e.Rarity).DisplayName(), t.DisplayName(), e.Reason)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.RarityColor(e.Rarity)).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
