package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections so
// that boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for the border (2) and inner padding (4).
	return min(max(frameWidth-6, 20), 60)
}

// PitchFrame wraps content in a double-border frame, centered in the given
// dimensions.
func PitchFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 2).
		Render(content)
}
