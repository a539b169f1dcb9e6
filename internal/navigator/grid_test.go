package navigator

import "testing"

func TestGridGeometry(t *testing.T) {
	g := NewGrid(10)

	if g.ColumnCount() != 4 {
		t.Errorf("ColumnCount() = %d, want 4", g.ColumnCount())
	}
	if g.RowCount() != 3 {
		t.Errorf("RowCount() = %d, want 3", g.RowCount())
	}
	if g.Row(5) != 1 || g.Column(5) != 1 {
		t.Errorf("item 5 at (%d,%d), want (1,1)", g.Row(5), g.Column(5))
	}
	if !g.IsFirstRow(3) || g.IsFirstRow(4) {
		t.Error("IsFirstRow boundary wrong at 3/4")
	}
	if !g.IsFirstColumn(8) || g.IsFirstColumn(9) {
		t.Error("IsFirstColumn wrong at 8/9")
	}
	if g.Last() != 9 {
		t.Errorf("Last() = %d, want 9", g.Last())
	}
}

func TestGridItemAt(t *testing.T) {
	g := NewGrid(6)

	tests := []struct {
		row, col int
		want     int
		wantOK   bool
	}{
		{0, 0, 0, true},
		{0, 3, 3, true},
		{1, 1, 5, true},
		{1, 2, 0, false},
		{0, 4, 0, false},
		{-1, 0, 0, false},
		{2, 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := g.ItemAt(tt.row, tt.col)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("ItemAt(%d,%d) = %d, %v; want %d, %v", tt.row, tt.col, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGridEmpty(t *testing.T) {
	g := NewGrid(-3)
	if g.Count != 0 || g.RowCount() != 0 || g.Last() != 0 {
		t.Errorf("NewGrid(-3) = %+v, rows %d, last %d; want empty", g, g.RowCount(), g.Last())
	}
	if g.Clamp(5) != 0 {
		t.Errorf("Clamp(5) on empty grid = %d, want 0", g.Clamp(5))
	}
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		key    string
		want   Event
		wantOK bool
	}{
		{"ArrowUp", Up, true},
		{"ArrowDown", Down, true},
		{"ArrowLeft", Left, true},
		{"ArrowRight", Right, true},
		{"Enter", Confirm, true},
		{"Escape", Cancel, true},
		{"Back", Cancel, true},
		{"Backspace", Cancel, true},
		{"esc", Cancel, true},
		{"up", Up, true},
		{"a", None, false},
		{"Tab", None, false},
		{"", None, false},
	}

	for _, tt := range tests {
		got, ok := ParseEvent(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseEvent(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestKeyNamesParse(t *testing.T) {
	for _, name := range KeyNames() {
		if _, ok := ParseEvent(name); !ok {
			t.Errorf("KeyNames() lists %q but ParseEvent rejects it", name)
		}
	}
}

func TestQualityHelpers(t *testing.T) {
	if QualityIndex(Quality1080p) != 2 {
		t.Errorf("QualityIndex(1080p) = %d, want 2", QualityIndex(Quality1080p))
	}
	if QualityIndex("8K") != -1 {
		t.Errorf("QualityIndex(8K) = %d, want -1", QualityIndex("8K"))
	}
	if _, ok := ParseQuality("4K"); !ok {
		t.Error("ParseQuality(4K) rejected")
	}

	opts := QualityOptions()
	opts[0] = "tampered"
	if QualityOptions()[0] != Quality240p {
		t.Error("QualityOptions() exposes internal slice")
	}
}
