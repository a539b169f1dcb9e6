package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/odintv/internal/navigator"
)

const collapsedSidebarWidth = 6

// RenderSidebar renders the navigation menu. It expands to show labels only
// while it owns the cursor.
func RenderSidebar(s navigator.State, height int) string {
	expanded := s.Focus.Area == navigator.AreaSidebar
	width := collapsedSidebarWidth
	if expanded {
		width = SidebarWidth
	}
	inner := width - 1 // right border

	var b strings.Builder

	logo := lipgloss.NewStyle().
		Foreground(TextColor).
		Background(PrimaryColor).
		Bold(true).
		Padding(0, 1).
		Render("O")
	if expanded {
		logo += " " + SectionTitleStyle.Render("ODIN")
	}
	b.WriteString(logo)
	b.WriteString("\n\n")

	for i, entry := range navigator.SidebarEntries() {
		focused := expanded && s.Focus.Index == i
		active := s.Screen == entry.Screen

		text := entry.Icon
		if expanded {
			text += " " + entry.Label
		}

		style := SidebarItemStyle
		switch {
		case focused:
			style = FocusedSidebarItemStyle
		case active:
			style = ActiveSidebarItemStyle
		}
		b.WriteString(style.Width(inner).Render(truncate(text, inner-1)))
		b.WriteString("\n\n")
	}

	if expanded {
		b.WriteString("\n")
		b.WriteString(BadgeStyle.PaddingLeft(1).Render("PRO EDITION"))
		b.WriteString("\n")
		b.WriteString(SubtleStyle.PaddingLeft(1).Render("AdBlock: Active\nVPN: Disabled"))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Right: "│"}).
		BorderRight(true).
		BorderForeground(BorderColor).
		Width(inner).
		Height(max(height, 1)).
		Render(b.String())
}
