package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/odintv/internal/version"
)

// AppName is shown in the header
const AppName = "ODIN TV BROWSER"

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	MinTerminalWidth = 72 // Minimum supported terminal width
	SidebarWidth     = 18 // Sidebar column width including border
	TileHeight       = 5  // Height of a pinned-site tile
)

// Color palette
var (
	PrimaryColor    = lipgloss.Color("#007BFF") // Focus blue
	AccentColor     = lipgloss.Color("#FFD700") // Gold
	SuccessColor    = lipgloss.Color("#43BF6D") // Green
	LiveColor       = lipgloss.Color("#DC2626") // Red
	TextColor       = lipgloss.Color("#FFFFFF")
	MutedColor      = lipgloss.Color("#9CA3AF")
	SubtleColor     = lipgloss.Color("#626262")
	SurfaceColor    = lipgloss.Color("#12121E")
	BackgroundColor = lipgloss.Color("#04040A")
	BorderColor     = lipgloss.Color("#2A2A3E")
)

var (
	// Section headings ("Recommended", "Utilities & Social")
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// Small pill labels ("PINNED", "AI", "LIVE")
	BadgeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	LiveBadgeStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(LiveColor).
			Bold(true).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Tile styles
	TileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Foreground(MutedColor).
			Align(lipgloss.Center)

	FocusedTileStyle = TileStyle.
				BorderForeground(PrimaryColor).
				Foreground(TextColor).
				Bold(true)

	// Top search bar
	TopBarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Foreground(MutedColor).
			Padding(0, 1)

	FocusedTopBarStyle = TopBarStyle.
				BorderForeground(PrimaryColor).
				Foreground(TextColor)

	// Sidebar rows
	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				PaddingLeft(1)

	ActiveSidebarItemStyle = SidebarItemStyle.
				Foreground(PrimaryColor)

	FocusedSidebarItemStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				PaddingLeft(1)

	// Trending cards
	TrendingCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderColor).
				Padding(0, 1)

	TrendingTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Player
	ControlStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	FocusedControlStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	DisabledControlStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Faint(true).
				Padding(0, 1)

	MenuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Background(SurfaceColor).
			Padding(1, 2)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)

	FocusedMenuItemStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				PaddingLeft(2)

	ToastStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// truncate shortens s to at most width terminal cells, adding an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// BuildHeaderContent creates header content with app name, version and status
func BuildHeaderContent(status string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(status)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen with the application header and
// footer and fills the terminal.
func RenderApplicationContainer(content, status, footerText string, terminalWidth, terminalHeight int) string {
	inner := terminalWidth - 4
	if inner < 1 {
		inner = 1
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(inner).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(inner).
		Padding(0, 1)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent(status, inner-2)),
		lipgloss.NewStyle().Width(inner).Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	height := terminalHeight - 2
	if height < 1 {
		height = 1
	}
	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(height).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}

// RenderModal centers content over a dimmed background
func RenderModal(modalContent string, terminalWidth, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("236")),
	)
}
