// Package trophies is the trophy cabinet: every badge the learner has
// earned, grouped by type.
package trophies

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/badges"
	"github.com/abhisek/touchline/internal/screen"
	"github.com/abhisek/touchline/internal/store"
	"github.com/abhisek/touchline/internal/ui/layout"
	"github.com/abhisek/touchline/internal/ui/theme"
)

type badgesLoadedMsg struct {
	Records []store.BadgeEventRecord
	Err     error
}

// TrophyScreen displays the learner's badge collection.
type TrophyScreen struct {
	eventRepo    store.EventRepo
	all          []store.BadgeEventRecord
	selectedType int // index into badges.AllTypes
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*TrophyScreen)(nil)
var _ screen.KeyHintProvider = (*TrophyScreen)(nil)

// New creates a TrophyScreen. A nil repo shows an empty cabinet.
func New(eventRepo store.EventRepo) *TrophyScreen {
	return &TrophyScreen{eventRepo: eventRepo}
}

func (s *TrophyScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		if repo == nil {
			return badgesLoadedMsg{}
		}
		records, err := repo.QueryBadgeEvents(context.Background(), store.QueryOpts{})
		return badgesLoadedMsg{Records: records, Err: err}
	}
}

func (s *TrophyScreen) Title() string {
	return "Trophy Cabinet"
}

func (s *TrophyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch type"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TrophyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.all = msg.Records
		}
		s.loaded = true

	case tea.KeyPressMsg:
		types := badges.AllTypes()
		switch msg.String() {
		case "tab", "right", "l":
			s.selectedType = (s.selectedType + 1) % len(types)
			s.scrollOffset = 0
		case "shift+tab", "left", "h":
			s.selectedType = (s.selectedType - 1 + len(types)) % len(types)
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.filtered())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *TrophyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered("\n\nError: "+s.errMsg, width, theme.Error)
	}
	if !s.loaded {
		return layout.Centered("\n\nOpening the cabinet...", width, theme.TextDim)
	}

	var b strings.Builder
	b.WriteString(layout.Centered(fmt.Sprintf("\n🏆 %d badges earned\n", len(s.all)), width, theme.Text))
	b.WriteString("\n")

	var tabs []string
	for i, t := range badges.AllTypes() {
		label := fmt.Sprintf("%s %s (%d)", t.Icon(), t.DisplayName(), s.countByType(t))
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.selectedType {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		tabs = append(tabs, style.Render(label))
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(strings.Join(tabs, "   ")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, layout.Divider(min(width-8, 60))))
	b.WriteString("\n\n")

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("None of these yet. Keep playing!"))
		return b.String()
	}

	maxVisible := max(height-12, 3)
	start := s.scrollOffset
	end := min(start+maxVisible, len(filtered))
	for _, rec := range filtered[start:end] {
		rarity := badges.Rarity(rec.Rarity)
		line := fmt.Sprintf("%-10s %-36s %s", rarity.DisplayName(), rec.Reason, rec.Timestamp.Local().Format("Jan 02, 2006"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.RarityColor(rec.Rarity)).Render(line)))
		b.WriteString("\n")
	}
	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(layout.Centered(fmt.Sprintf("... %d more", len(filtered)-end), width, theme.TextDim))
	}
	return b.String()
}

func (s *TrophyScreen) filtered() []store.BadgeEventRecord {
	selected := string(badges.AllTypes()[s.selectedType])
	var out []store.BadgeEventRecord
	for _, r := range s.all {
		if r.BadgeType == selected {
			out = append(out, r)
		}
	}
	return out
}

func (s *TrophyScreen) countByType(t badges.Type) int {
	n := 0
	for _, r := range s.all {
		if r.BadgeType == string(t) {
			n++
		}
	}
	return n
}
