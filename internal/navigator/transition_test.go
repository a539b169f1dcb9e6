package navigator

import (
	"testing"
)

func dashboardAt(area Area, index, count int) State {
	s := New(count)
	s.Focus = DashboardFocus{Area: area, Index: index}
	return s
}

func playerWith(mode PlayerMode, quality Quality) State {
	s := New(8)
	s.Screen = ScreenPlayer
	s.Player = PlayerFocus{Mode: mode, CurrentQuality: quality}
	return s
}

func TestNew(t *testing.T) {
	s := New(8)

	if s.Screen != ScreenDashboard {
		t.Errorf("Screen = %v, want %v", s.Screen, ScreenDashboard)
	}
	if s.Focus != (DashboardFocus{Area: AreaContent, Index: 0}) {
		t.Errorf("Focus = %+v, want content/0", s.Focus)
	}
	if got := s.Player.FocusedControl(); got != ControlNone {
		t.Errorf("FocusedControl() = %v, want ControlNone", got)
	}
	if s.Player.CurrentQuality != DefaultQuality {
		t.Errorf("CurrentQuality = %v, want %v", s.Player.CurrentQuality, DefaultQuality)
	}
	if s.Grid.Count != 8 || s.Grid.ColumnCount() != 4 {
		t.Errorf("Grid = %+v, want 8 items in 4 columns", s.Grid)
	}
}

func TestNewWithQuality(t *testing.T) {
	if got := New(8, WithQuality(Quality4K)).Player.CurrentQuality; got != Quality4K {
		t.Errorf("WithQuality(4K) CurrentQuality = %v, want 4K", got)
	}
	if got := New(8, WithQuality("8K")).Player.CurrentQuality; got != DefaultQuality {
		t.Errorf("WithQuality(8K) CurrentQuality = %v, want default", got)
	}
}

func TestTransitionDashboard(t *testing.T) {
	tests := []struct {
		name       string
		state      State
		event      Event
		wantScreen Screen
		wantFocus  DashboardFocus
	}{
		{
			name:       "right from sidebar enters content at 0",
			state:      dashboardAt(AreaSidebar, 3, 8),
			event:      Right,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaContent, 0},
		},
		{
			name:       "right at end of first row wraps into second row",
			state:      dashboardAt(AreaContent, 3, 8),
			event:      Right,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaContent, 4},
		},
		{
			name:       "right on last item is clamped",
			state:      dashboardAt(AreaContent, 7, 8),
			event:      Right,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaContent, 7},
		},
		{
			name:       "right on top bar is a no-op",
			state:      dashboardAt(AreaTopBar, 0, 8),
			event:      Right,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaTopBar, 0},
		},
		{
			name:       "left from first column enters sidebar",
			state:      dashboardAt(AreaContent, 4, 8),
			event:      Left,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaSidebar, 0},
		},
		{
			name:       "left inside a row moves one tile",
			state:      dashboardAt(AreaContent, 6, 8),
			event:      Left,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaContent, 5},
		},
		{
			name:       "left from top bar lands on sidebar search",
			state:      dashboardAt(AreaTopBar, 0, 8),
			event:      Left,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaSidebar, 1},
		},
		{
			name:       "left on sidebar is a no-op",
			state:      dashboardAt(AreaSidebar, 2, 8),
			event:      Left,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaSidebar, 2},
		},
		{
			name:       "up from first row enters top bar",
			state:      dashboardAt(AreaContent, 2, 8),
			event:      Up,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaTopBar, 2},
		},
		{
			name:       "up from second row moves one row",
			state:      dashboardAt(AreaContent, 6, 8),
			event:      Up,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaContent, 2},
		},
		{
			name:       "up on sidebar top is clamped",
			state:      dashboardAt(AreaSidebar, 0, 8),
			event:      Up,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaSidebar, 0},
		},
		{
			name:       "up on sidebar moves one entry",
			state:      dashboardAt(AreaSidebar, 3, 8),
			event:      Up,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaSidebar, 2},
		},
		{
			name:       "down from top bar enters content at 0",
			state:      dashboardAt(AreaTopBar, 3, 8),
			event:      Down,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaContent, 0},
		},
		{
			name:       "down moves one row",
			state:      dashboardAt(AreaContent, 1, 8),
			event:      Down,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaContent, 5},
		},
		{
			name:       "down on partial last row clamps to last item",
			state:      dashboardAt(AreaContent, 3, 6),
			event:      Down,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaContent, 5},
		},
		{
			name:       "down on sidebar bottom is clamped",
			state:      dashboardAt(AreaSidebar, 4, 8),
			event:      Down,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaSidebar, 4},
		},
		{
			name:       "confirm on sidebar bookmarks opens bookmarks",
			state:      dashboardAt(AreaSidebar, 2, 8),
			event:      Confirm,
			wantScreen: ScreenBookmarks,
			wantFocus:  DashboardFocus{AreaContent, 0},
		},
		{
			name:       "confirm on top bar opens search",
			state:      dashboardAt(AreaTopBar, 0, 8),
			event:      Confirm,
			wantScreen: ScreenSearch,
			wantFocus:  DashboardFocus{AreaTopBar, 0},
		},
		{
			name:       "none is ignored",
			state:      dashboardAt(AreaContent, 5, 8),
			event:      None,
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaContent, 5},
		},
		{
			name:       "unknown event value is ignored",
			state:      dashboardAt(AreaContent, 5, 8),
			event:      Event(99),
			wantScreen: ScreenDashboard,
			wantFocus:  DashboardFocus{AreaContent, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(tt.state, tt.event)
			if got.Screen != tt.wantScreen {
				t.Errorf("Screen = %v, want %v", got.Screen, tt.wantScreen)
			}
			if got.Focus != tt.wantFocus {
				t.Errorf("Focus = %+v, want %+v", got.Focus, tt.wantFocus)
			}
		})
	}
}

func TestTransitionSidebarEntries(t *testing.T) {
	want := []Screen{ScreenDashboard, ScreenSearch, ScreenBookmarks, ScreenHistory, ScreenSettings}

	for i, screen := range want {
		s := dashboardAt(AreaSidebar, i, 8)
		s.Screen = ScreenHistory

		got := Transition(s, Confirm)
		if got.Screen != screen {
			t.Errorf("Confirm on sidebar %d: Screen = %v, want %v", i, got.Screen, screen)
		}
		if got.Focus != (DashboardFocus{AreaContent, 0}) {
			t.Errorf("Confirm on sidebar %d: Focus = %+v, want content/0", i, got.Focus)
		}
	}
}

func TestTransitionContentConfirm(t *testing.T) {
	t.Run("dashboard opens player with play/pause focused", func(t *testing.T) {
		got := Transition(dashboardAt(AreaContent, 5, 8), Confirm)
		if got.Screen != ScreenPlayer {
			t.Fatalf("Screen = %v, want player", got.Screen)
		}
		if c := got.Player.FocusedControl(); c != ControlPlayPause {
			t.Errorf("FocusedControl() = %v, want ControlPlayPause", c)
		}
		if item, ok := got.FocusedItem(); !ok || item != 5 {
			t.Errorf("FocusedItem() = %d, %v; want 5, true", item, ok)
		}
	})

	t.Run("other screens ignore content confirm", func(t *testing.T) {
		s := dashboardAt(AreaContent, 1, 8)
		s.Screen = ScreenSearch
		if got := Transition(s, Confirm); got != s {
			t.Errorf("Transition() = %+v, want unchanged", got)
		}
	})

	t.Run("empty grid ignores content confirm", func(t *testing.T) {
		s := dashboardAt(AreaContent, 0, 0)
		if got := Transition(s, Confirm); got.Screen != ScreenDashboard {
			t.Errorf("Screen = %v, want dashboard", got.Screen)
		}
	})
}

func TestTransitionCancel(t *testing.T) {
	s := dashboardAt(AreaSidebar, 3, 8)
	s.Screen = ScreenSettings

	got := Transition(s, Cancel)
	if got.Screen != ScreenDashboard {
		t.Errorf("Screen = %v, want dashboard", got.Screen)
	}
	if got.Focus != s.Focus {
		t.Errorf("Focus = %+v, want unchanged %+v", got.Focus, s.Focus)
	}

	// repeated cancel on the dashboard changes nothing
	again := Transition(got, Cancel)
	if again != got {
		t.Errorf("second Cancel = %+v, want %+v", again, got)
	}
}

func TestTransitionPlayerIdle(t *testing.T) {
	tests := []struct {
		name        string
		control     Control
		event       Event
		wantControl Control
		wantScreen  Screen
	}{
		{"right moves to next control", ControlPlayPause, Right, ControlNext, ScreenPlayer},
		{"right is clamped at quality", ControlQuality, Right, ControlQuality, ScreenPlayer},
		{"right from none focuses audio", ControlNone, Right, ControlAudio, ScreenPlayer},
		{"left moves to previous control", ControlPlayPause, Left, ControlPrevious, ScreenPlayer},
		{"left is clamped at audio", ControlAudio, Left, ControlAudio, ScreenPlayer},
		{"left from none focuses audio", ControlNone, Left, ControlAudio, ScreenPlayer},
		{"up is a no-op", ControlNext, Up, ControlNext, ScreenPlayer},
		{"down is a no-op", ControlNext, Down, ControlNext, ScreenPlayer},
		{"confirm on play/pause is a no-op", ControlPlayPause, Confirm, ControlPlayPause, ScreenPlayer},
		{"cancel closes the player", ControlNext, Cancel, ControlNone, ScreenDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(playerWith(Idle{Control: tt.control}, Quality1080p), tt.event)
			if got.Screen != tt.wantScreen {
				t.Errorf("Screen = %v, want %v", got.Screen, tt.wantScreen)
			}
			if c := got.Player.FocusedControl(); c != tt.wantControl {
				t.Errorf("FocusedControl() = %v, want %v", c, tt.wantControl)
			}
		})
	}
}

func TestTransitionNilPlayerModeActsIdle(t *testing.T) {
	s := playerWith(nil, Quality1080p)
	got := Transition(s, Right)
	if c := got.Player.FocusedControl(); c != ControlAudio {
		t.Errorf("FocusedControl() = %v, want ControlAudio", c)
	}
}

func TestTransitionQualityMenu(t *testing.T) {
	t.Run("open selects current quality", func(t *testing.T) {
		got := Transition(playerWith(Idle{Control: ControlQuality}, Quality1080p), Confirm)
		cursor, open := got.Player.MenuOpen()
		if !open {
			t.Fatal("MenuOpen() = false, want true")
		}
		if cursor != 2 {
			t.Errorf("cursor = %d, want 2", cursor)
		}
	})

	t.Run("open with unknown quality starts at 0", func(t *testing.T) {
		got := Transition(playerWith(Idle{Control: ControlQuality}, "480i"), Confirm)
		if cursor, open := got.Player.MenuOpen(); !open || cursor != 0 {
			t.Errorf("MenuOpen() = %d, %v; want 0, true", cursor, open)
		}
	})

	t.Run("down then confirm commits 4K", func(t *testing.T) {
		s := Transition(playerWith(QualityMenu{Cursor: 2}, Quality1080p), Down)
		if cursor, _ := s.Player.MenuOpen(); cursor != 3 {
			t.Fatalf("cursor = %d, want 3", cursor)
		}
		s = Transition(s, Confirm)
		if s.Player.CurrentQuality != Quality4K {
			t.Errorf("CurrentQuality = %v, want 4K", s.Player.CurrentQuality)
		}
		if _, open := s.Player.MenuOpen(); open {
			t.Error("menu still open after confirm")
		}
		if s.Screen != ScreenPlayer {
			t.Errorf("Screen = %v, want player", s.Screen)
		}
	})

	t.Run("cursor is clamped", func(t *testing.T) {
		s := Transition(playerWith(QualityMenu{Cursor: 0}, Quality240p), Up)
		if cursor, _ := s.Player.MenuOpen(); cursor != 0 {
			t.Errorf("up at top: cursor = %d, want 0", cursor)
		}
		s = Transition(playerWith(QualityMenu{Cursor: 3}, Quality240p), Down)
		if cursor, _ := s.Player.MenuOpen(); cursor != 3 {
			t.Errorf("down at bottom: cursor = %d, want 3", cursor)
		}
	})

	t.Run("left and right are ignored", func(t *testing.T) {
		s := playerWith(QualityMenu{Cursor: 1}, Quality1080p)
		for _, ev := range []Event{Left, Right} {
			if got := Transition(s, ev); got != s {
				t.Errorf("%v: Transition() = %+v, want unchanged", ev, got)
			}
		}
	})

	t.Run("cancel closes the menu but not the player", func(t *testing.T) {
		opened := Transition(playerWith(Idle{Control: ControlQuality}, Quality720p), Confirm)
		moved := Transition(opened, Down)
		closed := Transition(moved, Cancel)

		if closed.Screen != ScreenPlayer {
			t.Errorf("Screen = %v, want player", closed.Screen)
		}
		if _, open := closed.Player.MenuOpen(); open {
			t.Error("menu still open after cancel")
		}
		if closed.Player.CurrentQuality != Quality720p {
			t.Errorf("CurrentQuality = %v, want unchanged 720p", closed.Player.CurrentQuality)
		}
		if c := closed.Player.FocusedControl(); c != ControlQuality {
			t.Errorf("FocusedControl() = %v, want ControlQuality", c)
		}
	})
}

func TestTransitionScenarioE(t *testing.T) {
	s := dashboardAt(AreaTopBar, 0, 8)
	ev, ok := ParseEvent("Enter")
	if !ok {
		t.Fatal("ParseEvent(Enter) not recognized")
	}
	if got := Transition(s, ev); got.Screen != ScreenSearch {
		t.Errorf("Screen = %v, want search", got.Screen)
	}
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	s := playerWith(QualityMenu{Cursor: 1}, Quality720p)
	before := s

	_ = Transition(s, Confirm)
	_ = Transition(s, Down)

	if s != before {
		t.Errorf("input state modified: %+v, want %+v", s, before)
	}
}

func TestPlayerRoundTripResetsControls(t *testing.T) {
	s := New(8)
	s = Transition(s, Confirm) // open player
	s = Transition(s, Right)
	s = Transition(s, Right) // quality
	s = Transition(s, Confirm)
	s = Transition(s, Cancel) // close menu
	s = Transition(s, Cancel) // close player

	if s.Screen != ScreenDashboard {
		t.Fatalf("Screen = %v, want dashboard", s.Screen)
	}
	if c := s.Player.FocusedControl(); c != ControlNone {
		t.Errorf("FocusedControl() = %v, want ControlNone", c)
	}

	s = Transition(s, Confirm)
	if c := s.Player.FocusedControl(); c != ControlPlayPause {
		t.Errorf("reopened FocusedControl() = %v, want ControlPlayPause", c)
	}
}
