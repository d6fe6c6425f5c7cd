package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/ui/theme"
)

const bannerArt = `
 ████████╗ ██████╗ ██╗   ██╗ ██████╗██╗  ██╗██╗     ██╗███╗   ██╗███████╗
 ╚══██╔══╝██╔═══██╗██║   ██║██╔════╝██║  ██║██║     ██║████╗  ██║██╔════╝
    ██║   ██║   ██║██║   ██║██║     ███████║██║     ██║██╔██╗ ██║█████╗
    ██║   ██║   ██║██║   ██║██║     ██╔══██║██║     ██║██║╚██╗██║██╔══╝
    ██║   ╚██████╔╝╚██████╔╝╚██████╗██║  ██║███████╗██║██║ ╚████║███████╗
    ╚═╝    ╚═════╝  ╚═════╝  ╚═════╝╚═╝  ╚═╝╚══════╝╚═╝╚═╝  ╚═══╝╚══════╝`

const bannerCompact = "T O U C H L I N E"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 73

// RenderBanner returns the TOUCHLINE banner styled in the primary color,
// falling back to spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
