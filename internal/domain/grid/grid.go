// Package grid holds small in-memory tables and renders them as ASCII box grids.
//
// A Grid is not safe for concurrent use; callers sharing one across
// goroutines must synchronize access themselves.
package grid

import (
	"github.com/mattn/go-runewidth"
)

// Grid represents an ordered set of rows under a fixed list of columns
type Grid struct {
	columns []string
	rows    []Row
	widths  map[string]int // widest display text seen per column name
}

// New creates an empty grid with the given column names
func New(columns ...string) *Grid {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Grid{
		columns: cols,
		rows:    make([]Row, 0),
		widths:  make(map[string]int),
	}
}

// Append converts each value with Of and adds the row to the end of the grid
func (g *Grid) Append(values ...interface{}) error {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = Of(v)
	}
	return g.appendOwned(row)
}

// AppendRow adds a copy of row to the end of the grid
func (g *Grid) AppendRow(row Row) error {
	owned := make(Row, len(row))
	copy(owned, row)
	return g.appendOwned(owned)
}

func (g *Grid) appendOwned(row Row) error {
	if len(row) != len(g.columns) {
		return &InvalidRowError{Expected: len(g.columns), Got: len(row)}
	}

	g.rows = append(g.rows, row)
	g.syncWidths(row)
	return nil
}

// syncWidths grows the tracked widths to fit row; it never shrinks them
func (g *Grid) syncWidths(row Row) {
	for i, v := range row {
		name := g.columns[i]
		w := displayWidth(v.String())
		if cur, ok := g.widths[name]; !ok || w > cur {
			g.widths[name] = w
		}
	}
}

func (g *Grid) RowCount() int {
	return len(g.rows)
}

func (g *Grid) ColumnCount() int {
	return len(g.columns)
}

func (g *Grid) IsEmpty() bool {
	return len(g.rows) == 0
}

// Columns returns a copy of the column names in order
func (g *Grid) Columns() []string {
	cols := make([]string, len(g.columns))
	copy(cols, g.columns)
	return cols
}

// Clear removes every row and resets the tracked widths
func (g *Grid) Clear() {
	g.rows = make([]Row, 0)
	g.widths = make(map[string]int)
}

// ColumnIndex returns the index of the first column named name
func (g *Grid) ColumnIndex(name string) (int, bool) {
	for i, c := range g.columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// columnWidth is max(header width, widest tracked cell) for column i
func (g *Grid) columnWidth(i int) int {
	name := g.columns[i]
	w := displayWidth(name)
	if tracked := g.widths[name]; tracked > w {
		w = tracked
	}
	return w
}

// widthCondition measures ambiguous-width runes as one cell whatever the
// process locale says.
var widthCondition = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

func displayWidth(s string) int {
	return widthCondition.StringWidth(s)
}
