package navigator

// Screen identifies the active screen
type Screen string

const (
	ScreenDashboard Screen = "dashboard"
	ScreenSearch    Screen = "search"
	ScreenBrowser   Screen = "browser"
	ScreenPlayer    Screen = "player"
	ScreenBookmarks Screen = "bookmarks"
	ScreenHistory   Screen = "history"
	ScreenSettings  Screen = "settings"
)

// Title returns the human-readable screen name
func (s Screen) Title() string {
	switch s {
	case ScreenDashboard:
		return "Home"
	case ScreenSearch:
		return "Search"
	case ScreenBrowser:
		return "Browser"
	case ScreenPlayer:
		return "Player"
	case ScreenBookmarks:
		return "Bookmarks"
	case ScreenHistory:
		return "History"
	case ScreenSettings:
		return "Settings"
	default:
		return string(s)
	}
}

// SidebarEntry is one row of the sidebar menu
type SidebarEntry struct {
	Screen Screen
	Icon   string
	Label  string
}

var sidebarEntries = []SidebarEntry{
	{Screen: ScreenDashboard, Icon: "🏠", Label: "Home"},
	{Screen: ScreenSearch, Icon: "🔍", Label: "Search"},
	{Screen: ScreenBookmarks, Icon: "⭐", Label: "Bookmarks"},
	{Screen: ScreenHistory, Icon: "🕒", Label: "History"},
	{Screen: ScreenSettings, Icon: "⚙️", Label: "Settings"},
}

// SidebarLast is the highest sidebar index
const SidebarLast = 4

// SidebarEntries returns the sidebar menu in display order
func SidebarEntries() []SidebarEntry {
	out := make([]SidebarEntry, len(sidebarEntries))
	copy(out, sidebarEntries)
	return out
}

// Area is the dashboard region that owns the cursor
type Area int

const (
	AreaContent Area = iota
	AreaSidebar
	AreaTopBar
)

// String returns the area name
func (a Area) String() string {
	switch a {
	case AreaSidebar:
		return "sidebar"
	case AreaContent:
		return "content"
	case AreaTopBar:
		return "topbar"
	default:
		return "unknown"
	}
}

// DashboardFocus is the cursor position on non-player screens.
// Index is 0-4 in the sidebar, 0..N-1 in the content grid and unused in the top bar.
type DashboardFocus struct {
	Area  Area
	Index int
}

// State is the complete navigation state. It is a value: Transition returns a
// new State and never modifies its argument.
type State struct {
	Screen Screen
	Focus  DashboardFocus
	Player PlayerFocus
	Grid   Grid
}

// Option customizes the initial State
type Option func(*State)

// WithQuality sets the committed player quality. Unknown tiers are ignored.
func WithQuality(q Quality) Option {
	return func(s *State) {
		if QualityIndex(q) >= 0 {
			s.Player.CurrentQuality = q
		}
	}
}

// New returns the startup state for a content grid of contentCount items:
// Dashboard screen, cursor on the first content tile, no player control focused.
func New(contentCount int, opts ...Option) State {
	s := State{
		Screen: ScreenDashboard,
		Focus:  DashboardFocus{Area: AreaContent, Index: 0},
		Player: PlayerFocus{
			Mode:           Idle{Control: ControlNone},
			CurrentQuality: DefaultQuality,
		},
		Grid: NewGrid(contentCount),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithContentCount returns s resized to a grid of n items, clamping the
// content index so it stays valid.
func (s State) WithContentCount(n int) State {
	s.Grid = NewGrid(n)
	if s.Focus.Area == AreaContent {
		s.Focus.Index = s.Grid.Clamp(s.Focus.Index)
	}
	return s
}

// FocusedItem returns the content index under the cursor. The cursor stays on
// the launching tile while the player is open, so this also identifies what is playing.
func (s State) FocusedItem() (int, bool) {
	if s.Focus.Area != AreaContent || s.Grid.Count == 0 {
		return 0, false
	}
	return s.Focus.Index, true
}
