package tui

import (
	"strings"
	"testing"

	"github.com/muurk/odintv/internal/catalog"
	"github.com/muurk/odintv/internal/navigator"
	"github.com/muurk/odintv/internal/trending"
)

func TestRenderDashboard(t *testing.T) {
	cat := catalog.Default()
	s := navigator.New(cat.Len())

	tests := []struct {
		name    string
		news    TrendingView
		want    []string
		notWant []string
	}{
		{
			name: "loading",
			news: TrendingView{Items: []trending.Item{}, Spinner: "*"},
			want: []string{newsPlaceholder, "YouTube", "GitHub", "Utilities & Social"},
		},
		{
			name:    "loaded",
			news:    TrendingView{Items: []trending.Item{{Title: "Quantum chips", Summary: "New record"}}},
			want:    []string{"Quantum chips", "New record"},
			notWant: []string{newsPlaceholder},
		},
		{
			name: "only three cards",
			news: TrendingView{Items: []trending.Item{
				{Title: "one"}, {Title: "two"}, {Title: "three"}, {Title: "fourth topic"},
			}},
			want:    []string{"one", "two", "three"},
			notWant: []string{"fourth topic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderDashboard(s, cat, tt.news, 100)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output unexpectedly contains %q", w)
				}
			}
		})
	}
}

func TestRenderDashboardEmptyCatalog(t *testing.T) {
	out := RenderDashboard(navigator.New(0), &catalog.Catalog{Version: catalog.Version}, TrendingView{}, 80)
	if !strings.Contains(out, "Recommended") {
		t.Error("empty catalog should still render the section heading")
	}
}

func TestRenderSidebar(t *testing.T) {
	s := navigator.New(8)

	collapsed := RenderSidebar(s, 20)
	if strings.Contains(collapsed, "Bookmarks") {
		t.Error("collapsed sidebar shows labels")
	}

	s.Focus = navigator.DashboardFocus{Area: navigator.AreaSidebar, Index: 2}
	expanded := RenderSidebar(s, 20)
	for _, label := range []string{"Home", "Search", "Bookmarks", "History", "Settings"} {
		if !strings.Contains(expanded, label) {
			t.Errorf("expanded sidebar missing %q", label)
		}
	}
}

func TestRenderPlayer(t *testing.T) {
	item, _ := catalog.Default().ItemAt(0)
	s := navigator.Transition(navigator.New(8), navigator.Confirm)

	t.Run("chrome visible", func(t *testing.T) {
		view := PlayerView{
			Item:          item,
			Hint:          trending.VideoHint{HasVideo: true, VideoType: "HLS", Confidence: 0.9},
			ChromeVisible: true,
		}
		out := RenderPlayer(s, view, 100, 30)
		for _, w := range []string{"YouTube", "HLS", "Play/Pause"} {
			if !strings.Contains(out, w) {
				t.Errorf("player missing %q", w)
			}
		}
		controls := renderControls(navigator.ControlPlayPause, false, navigator.Quality1080p, 100)
		if !strings.Contains(controls, controlIcons[navigator.ControlQuality]+" 1080p") {
			t.Errorf("quality button does not show the current tier:\n%s", controls)
		}
		if strings.Contains(controls, "Quality") {
			t.Error("quality button shows its generic label instead of the tier")
		}
		if strings.Contains(out, "SELECT QUALITY") {
			t.Error("quality menu rendered while closed")
		}
	})

	t.Run("chrome hidden keeps controls", func(t *testing.T) {
		out := RenderPlayer(s, PlayerView{Item: item}, 100, 30)
		if strings.Contains(out, "YouTube") {
			t.Error("title bar shown while chrome hidden")
		}
		if !strings.Contains(out, "Play/Pause") {
			t.Error("focused controls row hidden")
		}
	})

	t.Run("quality menu", func(t *testing.T) {
		menu := s
		for _, ev := range []navigator.Event{navigator.Right, navigator.Right, navigator.Confirm, navigator.Up} {
			menu = navigator.Transition(menu, ev)
		}
		out := RenderPlayer(menu, PlayerView{Item: item}, 100, 30)
		for _, q := range navigator.QualityOptions() {
			if !strings.Contains(out, string(q)) {
				t.Errorf("menu missing %s", q)
			}
		}
		if !strings.Contains(out, "SELECT QUALITY") || !strings.Contains(out, "✓") {
			t.Error("menu header or current-quality mark missing")
		}
	})
}

func TestRenderPlaceholder(t *testing.T) {
	tests := []struct {
		screen navigator.Screen
		want   string
	}{
		{navigator.ScreenSearch, "GeckoView"},
		{navigator.ScreenBrowser, "GeckoView"},
		{navigator.ScreenBookmarks, "S Y S T E M"},
		{navigator.ScreenHistory, "S Y S T E M"},
	}

	for _, tt := range tests {
		if out := RenderPlaceholder(tt.screen, 80, 20); !strings.Contains(out, tt.want) {
			t.Errorf("RenderPlaceholder(%s) missing %q", tt.screen, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
