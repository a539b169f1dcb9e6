package navigator

// GridColumns is the fixed column count of the content grid
const GridColumns = 4

// Grid describes the geometry of the content area: Count items laid out
// row-major in Columns columns. Item i sits at row i/Columns, column i%Columns.
type Grid struct {
	Columns int
	Count   int
}

// NewGrid returns a four-column grid holding count items.
// Negative counts are treated as an empty grid.
func NewGrid(count int) Grid {
	if count < 0 {
		count = 0
	}
	return Grid{Columns: GridColumns, Count: count}
}

// ColumnCount returns the number of columns
func (g Grid) ColumnCount() int {
	if g.Columns <= 0 {
		return GridColumns
	}
	return g.Columns
}

// RowCount returns the number of rows needed to hold every item
func (g Grid) RowCount() int {
	if g.Count <= 0 {
		return 0
	}
	cols := g.ColumnCount()
	return (g.Count + cols - 1) / cols
}

// Row returns the row of item i
func (g Grid) Row(i int) int {
	return i / g.ColumnCount()
}

// Column returns the column of item i
func (g Grid) Column(i int) int {
	return i % g.ColumnCount()
}

// ItemAt returns the flat index at (row, col), or false when that cell is empty
func (g Grid) ItemAt(row, col int) (int, bool) {
	cols := g.ColumnCount()
	if row < 0 || col < 0 || col >= cols {
		return 0, false
	}
	i := row*cols + col
	if i >= g.Count {
		return 0, false
	}
	return i, true
}

// IsFirstRow reports whether item i is in the top row
func (g Grid) IsFirstRow(i int) bool {
	return i < g.ColumnCount()
}

// IsFirstColumn reports whether item i is in the leftmost column
func (g Grid) IsFirstColumn(i int) bool {
	return g.Column(i) == 0
}

// Last returns the highest valid index, or 0 for an empty grid
func (g Grid) Last() int {
	if g.Count <= 0 {
		return 0
	}
	return g.Count - 1
}

// Clamp forces i into [0, Last()]
func (g Grid) Clamp(i int) int {
	return clamp(i, 0, g.Last())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
