package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/odintv/internal/catalog"
	"github.com/muurk/odintv/internal/navigator"
	"github.com/muurk/odintv/internal/trending"
)

const (
	defaultPlayerTitle = "Sintel: Open Movie Project"
	playbackPosition   = 0.35
	playbackElapsed    = "12:44"
	playbackDuration   = "24:00"
)

// PlayerView is the presentation input of the player besides navigator state
type PlayerView struct {
	Item catalog.Item
	Hint trending.VideoHint

	// ChromeVisible is the auto-hide flag for the title header and progress bar
	ChromeVisible bool
}

var controlIcons = map[navigator.Control]string{
	navigator.ControlAudio:     "🗣",
	navigator.ControlPrevious:  "⏮",
	navigator.ControlPlayPause: "⏸",
	navigator.ControlNext:      "⏭",
	navigator.ControlQuality:   "⚙",
}

// RenderPlayer renders the full-screen player overlay
func RenderPlayer(s navigator.State, view PlayerView, width, height int) string {
	control := s.Player.FocusedControl()
	cursor, menuOpen := s.Player.MenuOpen()

	var sections []string

	if view.ChromeVisible || control == navigator.ControlNone || menuOpen {
		sections = append(sections, renderPlayerHeader(s.Player.CurrentQuality, view, width))
	}

	if menuOpen {
		sections = append(sections, "", renderQualityMenu(cursor, s.Player.CurrentQuality, width))
	} else {
		sections = append(sections, "", lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(SubtleColor).
			Render("\n▶ "+strings.ToUpper(playerTitle(view.Item))+"\n"))
	}

	var bottom []string
	if !menuOpen && view.ChromeVisible {
		bottom = append(bottom, renderProgress(width))
	}
	if view.ChromeVisible || control != navigator.ControlNone || menuOpen {
		bottom = append(bottom, renderControls(control, menuOpen, s.Player.CurrentQuality, width))
	}
	if !menuOpen {
		toast := ToastStyle.Render(lipgloss.NewStyle().Foreground(SuccessColor).Render("✓") + " Shield Active: Ads Cleaned")
		bottom = append(bottom, lipgloss.PlaceHorizontal(width, lipgloss.Right, toast))
	}

	top := strings.Join(sections, "\n")
	foot := strings.Join(bottom, "\n\n")

	gap := height - lipgloss.Height(top) - lipgloss.Height(foot)
	if gap < 1 {
		gap = 1
	}
	return top + strings.Repeat("\n", gap) + foot
}

func playerTitle(item catalog.Item) string {
	if item.Name == "" {
		return defaultPlayerTitle
	}
	return item.Name
}

func renderPlayerHeader(q navigator.Quality, view PlayerView, width int) string {
	title := SectionTitleStyle.Render(truncate(playerTitle(view.Item), width-8))

	streamType := "HLS"
	if view.Hint.HasVideo && view.Hint.VideoType != "" {
		streamType = view.Hint.VideoType
	}
	badges := []string{
		BadgeStyle.Render(string(q) + " ULTRA HD"),
		lipgloss.NewStyle().Foreground(SuccessColor).Bold(true).Padding(0, 1).Render("60 FPS"),
		MutedStyle.Render(streamType + " Stream (AES-128)"),
	}
	left := title + "\n" + strings.Join(badges, " ")
	if view.Hint.HasVideo && view.Hint.OptimizationTip != "" {
		tip := fmt.Sprintf("✦ %s", view.Hint.OptimizationTip)
		if view.Hint.Confidence > 0 {
			tip += fmt.Sprintf(" (%.0f%%)", view.Hint.Confidence*100)
		}
		left += "\n" + SubtleStyle.Render(truncate(tip, width-8))
	}

	live := LiveBadgeStyle.Render("LIVE")
	gap := width - lipgloss.Width(left) - lipgloss.Width(live)
	if gap < 1 {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), live)
}

func renderQualityMenu(cursor int, current navigator.Quality, width int) string {
	var b strings.Builder
	b.WriteString(SubtleStyle.Bold(true).Render("SELECT QUALITY"))
	b.WriteString("\n\n")

	const itemWidth = 24
	for i, q := range navigator.QualityOptions() {
		line := string(q)
		if q == current {
			line += strings.Repeat(" ", itemWidth-len(line)-4) + "✓"
		}
		style := MenuItemStyle
		if i == cursor {
			style = FocusedMenuItemStyle
		}
		b.WriteString(style.Width(itemWidth).Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Faint(true).Render("Auto-selection optimized for 120Hz Displays"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, MenuBoxStyle.Render(b.String()))
}

func renderProgress(width int) string {
	bar := progress.New(progress.WithSolidFill(string(PrimaryColor)), progress.WithoutPercentage())
	bar.Width = max(width-lipgloss.Width(playbackElapsed)-lipgloss.Width(playbackDuration)-2, 10)
	return MutedStyle.Render(playbackElapsed) + " " + bar.ViewAs(playbackPosition) + " " + MutedStyle.Render(playbackDuration)
}

func renderControls(focused navigator.Control, menuOpen bool, current navigator.Quality, width int) string {
	buttons := make([]string, 0, len(navigator.Controls())*2)
	for i, c := range navigator.Controls() {
		label := c.Label()
		if c == navigator.ControlQuality {
			label = string(current)
		}
		text := controlIcons[c] + " " + label

		style := ControlStyle
		switch {
		case menuOpen && c == navigator.ControlQuality:
			style = DisabledControlStyle
		case !menuOpen && c == focused:
			style = FocusedControlStyle
		}

		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, style.Render(text))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
}
