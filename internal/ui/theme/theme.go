package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: floodlit pitch at night
var (
	Primary   = lipgloss.Color("#22C55E") // Pitch Green
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#FACC15") // Trophy Gold
	Success   = lipgloss.Color("#4ADE80") // Light Green
	Error     = lipgloss.Color("#F43F5E") // Red Card
	Warning   = lipgloss.Color("#F59E0B") // Yellow Card
	Text      = lipgloss.Color("#F8FAFC") // Chalk
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Night
	BgCard    = lipgloss.Color("#1E293B") // Dugout
	Border    = lipgloss.Color("#334155") // Slate
	Legendary = lipgloss.Color("#C084FC") // Purple
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// RarityColor maps a badge rarity name to its display color.
func RarityColor(rarity string) color.Color {
	switch rarity {
	case "rare":
		return Secondary
	case "epic":
		return Accent
	case "legendary":
		return Legendary
	default:
		return Text
	}
}

// ScoreColor colors a percentage against a passing score.
func ScoreColor(pct, passing int) color.Color {
	switch {
	case pct >= passing:
		return Success
	case pct >= passing-15:
		return Warning
	default:
		return Error
	}
}
