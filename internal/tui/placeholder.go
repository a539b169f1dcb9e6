package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/odintv/internal/navigator"
)

// RenderPlaceholder renders the screens that have no real content:
// search/browser show the engine splash, the rest a "system modules" stub.
func RenderPlaceholder(screen navigator.Screen, width, height int) string {
	var body string

	switch screen {
	case navigator.ScreenSearch, navigator.ScreenBrowser:
		title := lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true).Render("GeckoView Core 124")
		buttons := lipgloss.JoinHorizontal(lipgloss.Top,
			FocusedControlStyle.Padding(0, 2).Render("OPEN BROWSER"),
			"  ",
			ControlStyle.Padding(0, 2).Render("SETTINGS"),
		)
		body = strings.Join([]string{
			"🌐",
			"",
			title,
			MutedStyle.Render("Optimized for 4K TV displays. Hardware-accelerated rendering."),
			"",
			buttons,
		}, "\n")

	default:
		body = strings.Join([]string{
			"⚙️",
			"",
			SubtleStyle.Bold(true).Render(spaced("SYSTEM MODULES")),
			SubtleStyle.Render(screen.Title()),
		}, "\n")
	}

	return lipgloss.Place(max(width, 1), max(height, 1), lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(body))
}

// spaced letter-spaces s ("AB" -> "A B")
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
