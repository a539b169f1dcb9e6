package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/odintv/internal/catalog"
	"github.com/muurk/odintv/internal/navigator"
	"github.com/muurk/odintv/internal/trending"
)

const (
	tileGap           = 1
	maxTrendingCards  = 3
	newsPlaceholder   = "Connecting to News Cloud..."
	searchPlaceholder = "Search or enter web address"
)

// TrendingView is what the dashboard knows about trending topics.
// An empty Items list renders the loading placeholder; Spinner is the current
// spinner frame while the fetch is still in flight.
type TrendingView struct {
	Items   []trending.Item
	Spinner string
}

// RenderDashboard renders the home screen: search bar, site grid and trending topics.
// The grid is laid out row by row from the navigator's geometry so the
// highlighted tile is always the one arrow keys will move from.
func RenderDashboard(s navigator.State, cat *catalog.Catalog, news TrendingView, width int) string {
	var b strings.Builder

	b.WriteString(renderTopBar(s.Focus.Area == navigator.AreaTopBar, width))
	b.WriteString("\n\n")

	pinnedRows := 0
	if cat != nil && len(cat.Pinned) > 0 {
		pinnedRows = (len(cat.Pinned) + s.Grid.ColumnCount() - 1) / s.Grid.ColumnCount()
	}

	b.WriteString(sectionHeading("Recommended", "PINNED", width))
	b.WriteString("\n")
	if s.Grid.Count == 0 {
		b.WriteString(MutedStyle.Render("  No sites configured. Add some to sites.yaml."))
		b.WriteString("\n")
	}

	for row := 0; row < s.Grid.RowCount(); row++ {
		if row == pinnedRows {
			b.WriteString("\n")
			b.WriteString(renderTrending(news, width))
			b.WriteString("\n\n")
			b.WriteString(sectionHeading("Utilities & Social", "", width))
			b.WriteString("\n")
		}
		b.WriteString(renderGridRow(s, cat, row, width))
		b.WriteString("\n")
	}

	if pinnedRows >= s.Grid.RowCount() {
		b.WriteString("\n")
		b.WriteString(renderTrending(news, width))
		b.WriteString("\n")
	}

	return b.String()
}

func renderTopBar(focused bool, width int) string {
	style := TopBarStyle
	if focused {
		style = FocusedTopBarStyle
	}
	inner := width - style.GetHorizontalFrameSize()

	left := "🔍 " + searchPlaceholder
	right := lipgloss.NewStyle().Foreground(SuccessColor).Bold(true).Render("● SHIELD ACTIVE") + "  🎙"

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := truncate(left, inner)
	if gap > 0 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return style.Width(width - style.GetHorizontalBorderSize()).Render(line)
}

func sectionHeading(title, badge string, width int) string {
	heading := SectionTitleStyle.Render(title)
	if badge == "" {
		return heading
	}
	pill := BadgeStyle.Render(badge)
	gap := width - lipgloss.Width(heading) - lipgloss.Width(pill)
	if gap < 1 {
		gap = 1
	}
	return heading + strings.Repeat(" ", gap) + pill
}

// tileWidth is the outer width of one grid column
func tileWidth(columns, width int) int {
	w := (width - tileGap*(columns-1)) / columns
	if w < 8 {
		w = 8
	}
	return w
}

func renderGridRow(s navigator.State, cat *catalog.Catalog, row, width int) string {
	columns := s.Grid.ColumnCount()
	w := tileWidth(columns, width)

	tiles := make([]string, 0, columns*2)
	for col := 0; col < columns; col++ {
		i, ok := s.Grid.ItemAt(row, col)
		if !ok {
			break
		}
		item, _ := cat.ItemAt(i)
		focused := s.Screen == navigator.ScreenDashboard &&
			s.Focus.Area == navigator.AreaContent && s.Focus.Index == i

		if col > 0 {
			tiles = append(tiles, strings.Repeat(" ", tileGap))
		}
		tiles = append(tiles, renderTile(item, cat.IsPinned(i), focused, w))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// renderTile draws a pinned site as a tall card and a utility as a compact row
func renderTile(item catalog.Item, pinned, focused bool, width int) string {
	style := TileStyle
	if focused {
		style = FocusedTileStyle
	}
	inner := width - style.GetHorizontalFrameSize()

	var body string
	if pinned {
		name := truncate(item.Name, inner)
		body = lipgloss.JoinVertical(lipgloss.Center, item.Icon, name)
		style = style.Height(TileHeight - style.GetVerticalFrameSize())
	} else {
		name := truncate(item.Icon+" "+item.Name, inner)
		category := SubtleStyle.Render(truncate(strings.ToUpper(item.Category), inner))
		body = lipgloss.JoinVertical(lipgloss.Left, name, category)
		style = style.Align(lipgloss.Left)
	}

	if focused {
		body += "\n" + lipgloss.NewStyle().Foreground(PrimaryColor).Render(strings.Repeat("▔", max(1, inner/2)))
	}
	return style.Width(inner).AlignVertical(lipgloss.Center).Render(body)
}

func renderTrending(news TrendingView, width int) string {
	heading := SectionTitleStyle.Render("Latest from Gemini News") + " " +
		lipgloss.NewStyle().Foreground(AccentColor).Bold(true).Italic(true).Render("AI")

	if len(news.Items) == 0 {
		text := newsPlaceholder
		if news.Spinner != "" {
			text = news.Spinner + " " + text
		}
		box := TrendingCardStyle.
			Width(width - TrendingCardStyle.GetHorizontalBorderSize()).
			Align(lipgloss.Center).
			Foreground(SubtleColor).
			Bold(true).
			Render("\n" + text + "\n")
		return heading + "\n" + box
	}

	count := min(len(news.Items), maxTrendingCards)
	cardWidth := (width - tileGap*(count-1)) / count
	inner := cardWidth - TrendingCardStyle.GetHorizontalFrameSize()

	cards := make([]string, 0, count*2)
	for i := 0; i < count; i++ {
		item := news.Items[i]
		body := TrendingTitleStyle.Render(truncate(item.Title, inner)) + "\n" +
			MutedStyle.Render(wrapLines(item.Summary, inner, 2))
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", tileGap))
		}
		cards = append(cards, TrendingCardStyle.Width(cardWidth-TrendingCardStyle.GetHorizontalBorderSize()).Render(body))
	}
	return heading + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// wrapLines word-wraps s to width cells, keeping at most maxLines lines
func wrapLines(s string, width, maxLines int) string {
	words := strings.Fields(s)
	var lines []string
	var line string
	for _, w := range words {
		switch {
		case line == "":
			line = w
		case lipgloss.Width(line)+1+lipgloss.Width(w) <= width:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncate(lines[maxLines-1]+" …", width)
	}
	for i := range lines {
		lines[i] = truncate(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
