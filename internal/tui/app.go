package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/odintv/internal/catalog"
	"github.com/muurk/odintv/internal/logging"
	"github.com/muurk/odintv/internal/navigator"
	"github.com/muurk/odintv/internal/trending"
)

// providerTimeout bounds the startup trending fetch and each video detection
const providerTimeout = 30 * time.Second

// RemoteKeyMsg carries an event from a remote-control session.
// It is injected with tea.Program.Send and handled exactly like a key press.
type RemoteKeyMsg struct {
	Event navigator.Event
}

// CatalogUpdatedMsg delivers a reloaded catalog. A message with Err set is
// logged and ignored; the current catalog stays in use.
type CatalogUpdatedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

type trendingLoadedMsg struct {
	items []trending.Item
}

type videoHintMsg struct {
	itemID string
	hint   trending.VideoHint
}

type hideChromeMsg struct {
	seq int
}

// Options configures a new AppModel
type Options struct {
	Catalog  *catalog.Catalog
	Provider trending.Provider
	Quality  navigator.Quality

	// AutoHide is the player chrome idle timeout; 0 keeps it visible
	AutoHide time.Duration

	// RemoteAddr is shown in the header when the remote server is running
	RemoteAddr string
}

// AppModel is the top-level Bubble Tea model. The navigator state is its only
// source of truth for focus; everything else is data or presentation.
type AppModel struct {
	State   navigator.State
	Catalog *catalog.Catalog

	Provider       trending.Provider
	Trending       []trending.Item
	TrendingLoaded bool

	// Video hint for the item currently in the player
	Hint    trending.VideoHint
	hintFor string

	ChromeVisible bool
	AutoHide      time.Duration
	hideSeq       int

	RemoteAddr string

	// UI state
	Width  int
	Height int

	Help    help.Model
	Keys    keyMap
	Spinner spinner.Model
}

// NewAppModel creates the application model at the dashboard
func NewAppModel(opts Options) AppModel {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return AppModel{
		State:         navigator.New(cat.Len(), navigator.WithQuality(opts.Quality)),
		Catalog:       cat,
		Provider:      opts.Provider,
		Trending:      []trending.Item{},
		ChromeVisible: true,
		AutoHide:      opts.AutoHide,
		RemoteAddr:    opts.RemoteAddr,
		Width:         MinTerminalWidth,
		Height:        24,
		Help:          help.New(),
		Keys:          newKeyMap(),
		Spinner:       s,
	}
}

// Init starts the one-shot trending fetch and the loading spinner
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(fetchTrending(m.Provider), m.Spinner.Tick)
}

func fetchTrending(p trending.Provider) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), providerTimeout)
		defer cancel()
		return trendingLoadedMsg{items: trending.FetchOrEmpty(ctx, p)}
	}
}

func detectVideo(p trending.Provider, item catalog.Item) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), providerTimeout)
		defer cancel()
		return videoHintMsg{itemID: item.ID, hint: trending.DetectOrNone(ctx, p, item.Name, item.URL)}
	}
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}
		if ev, ok := m.Keys.eventFor(msg); ok {
			return m.apply(ev)
		}
		return m, nil

	case RemoteKeyMsg:
		return m.apply(msg.Event)

	case trendingLoadedMsg:
		m.Trending = msg.items
		m.TrendingLoaded = true
		logging.Debug("Trending topics loaded", zap.Int("count", len(msg.items)))
		return m, nil

	case videoHintMsg:
		if msg.itemID == m.hintFor {
			m.Hint = msg.hint
		}
		return m, nil

	case CatalogUpdatedMsg:
		if msg.Err != nil || msg.Catalog == nil {
			return m, nil
		}
		m.Catalog = msg.Catalog
		m.State = m.State.WithContentCount(msg.Catalog.Len())
		return m, nil

	case hideChromeMsg:
		if _, open := m.State.Player.MenuOpen(); msg.seq == m.hideSeq && !open {
			m.ChromeVisible = false
		}
		return m, nil

	case spinner.TickMsg:
		if m.TrendingLoaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// apply runs one navigator transition and the presentation side effects it implies
func (m AppModel) apply(ev navigator.Event) (tea.Model, tea.Cmd) {
	prev := m.State
	m.State = navigator.Transition(prev, ev)

	logging.LogTransition(
		string(prev.Screen), describeFocus(prev),
		ev.String(),
		string(m.State.Screen), describeFocus(m.State),
	)

	if m.State.Screen != navigator.ScreenPlayer {
		return m, nil
	}

	var cmds []tea.Cmd
	if prev.Screen != navigator.ScreenPlayer {
		item := m.playingItem()
		m.Hint = trending.VideoHint{}
		m.hintFor = item.ID
		cmds = append(cmds, detectVideo(m.Provider, item))
	}

	m.ChromeVisible = true
	if m.AutoHide > 0 {
		m.hideSeq++
		seq := m.hideSeq
		cmds = append(cmds, tea.Tick(m.AutoHide, func(time.Time) tea.Msg {
			return hideChromeMsg{seq: seq}
		}))
	}
	return m, tea.Batch(cmds...)
}

func (m AppModel) playingItem() catalog.Item {
	if i, ok := m.State.FocusedItem(); ok {
		if item, ok := m.Catalog.ItemAt(i); ok {
			return item
		}
	}
	return catalog.Item{}
}

// describeFocus summarizes the focus part of a state for logs
func describeFocus(s navigator.State) string {
	if s.Screen == navigator.ScreenPlayer {
		if cursor, open := s.Player.MenuOpen(); open {
			return fmt.Sprintf("quality[%d]", cursor)
		}
		return fmt.Sprintf("control[%d]", s.Player.FocusedControl())
	}
	return fmt.Sprintf("%s[%d]", s.Focus.Area, s.Focus.Index)
}

// View renders the active screen
func (m AppModel) View() string {
	helpText := m.Help.View(m.Keys)

	if m.State.Screen == navigator.ScreenPlayer {
		view := PlayerView{
			Item:          m.playingItem(),
			Hint:          m.Hint,
			ChromeVisible: m.ChromeVisible,
		}
		content := RenderPlayer(m.State, view, m.Width-4, m.contentHeight())
		return RenderApplicationContainer(content, m.status(), helpText, m.Width, m.Height)
	}

	sidebar := RenderSidebar(m.State, m.contentHeight())
	mainWidth := m.Width - 4 - lipgloss.Width(sidebar) - 2

	var main string
	if m.State.Screen == navigator.ScreenDashboard {
		news := TrendingView{Items: m.Trending}
		if !m.TrendingLoaded {
			news.Spinner = m.Spinner.View()
		}
		main = RenderDashboard(m.State, m.Catalog, news, mainWidth)
	} else {
		main = RenderPlaceholder(m.State.Screen, mainWidth, m.contentHeight())
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main)
	return RenderApplicationContainer(content, m.status(), helpText, m.Width, m.Height)
}

// contentHeight is the terminal height minus container chrome
func (m AppModel) contentHeight() int {
	return max(m.Height-8, 1)
}

func (m AppModel) status() string {
	status := "● SYSTEM STABLE"
	if m.RemoteAddr != "" {
		status = "📡 " + m.RemoteAddr + "  " + status
	}
	return status
}
