package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/tiers"
	"github.com/abhisek/touchline/internal/ui/components"
	"github.com/abhisek/touchline/internal/ui/theme"
)

const titleCompact = "⚽  T · O · U · C · H · L · I · N · E  ⚽"

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(titleCompact),
		h.renderStatsBar(cw),
		components.Card(h.menu.View(), cw),
	}
	if h.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(h.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return components.PitchFrame(content, width, height)
}

func (h *HomeScreen) renderStatsBar(cw int) string {
	completed := 0
	for _, st := range h.statuses {
		if st.State == tiers.StateCompleted {
			completed++
		}
	}

	tierStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	pointStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	stats := fmt.Sprintf("%s  %s  %s",
		tierStyle.Render(fmt.Sprintf("✓ %d/%d TIERS", completed, len(h.statuses))),
		pointStyle.Render(fmt.Sprintf("★ %d POINTS", h.progress.Points)),
		streakStyle.Render(fmt.Sprintf("🔥 %d STREAK", h.progress.Streak)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
