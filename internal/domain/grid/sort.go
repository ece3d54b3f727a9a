package grid

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Direction specifies the order applied by Sort
type Direction int

const (
	// Ascending is the default sort order.
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// ParseDirection accepts asc, ascending, desc and descending in any case.
// An empty string means Ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("invalid sort direction %q", s)
	}
}

// Compare orders a and b in this direction
func (d Direction) Compare(a, b Value) int {
	if d == Descending {
		return Compare(b, a)
	}
	return Compare(a, b)
}

// Compare returns the ascending order of a and b: numbers by magnitude,
// instants chronologically, everything else by display text.
func Compare(a, b Value) int {
	switch {
	case a.IsNumeric() && b.IsNumeric():
		return compareNumeric(a, b)
	case a.kind == KindInstant && b.kind == KindInstant:
		return a.t.Compare(b.t)
	default:
		return strings.Compare(a.String(), b.String())
	}
}

func compareNumeric(a, b Value) int {
	switch {
	case a.kind == KindInteger && b.kind == KindInteger:
		return cmp.Compare(a.i, b.i)
	case a.kind == KindInteger:
		return compareIntFloat(a.i, b.f)
	case b.kind == KindInteger:
		return -compareIntFloat(b.i, a.f)
	default:
		return cmp.Compare(a.f, b.f)
	}
}

// compareIntFloat orders i against f without rounding i to a float64.
// NaN sorts before every integer, as cmp.Compare does for floats.
func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f >= 0x1p63:
		return -1
	case f < -0x1p63:
		return 1
	}
	whole := math.Trunc(f)
	if c := cmp.Compare(i, int64(whole)); c != 0 {
		return c
	}
	return cmp.Compare(whole, f)
}

// Sort stably reorders the rows by the column at index
func (g *Grid) Sort(index int, dir Direction) error {
	if index < 0 || index >= len(g.columns) {
		return &ColumnNotFoundError{Index: index}
	}

	slices.SortStableFunc(g.rows, func(a, b Row) int {
		return dir.Compare(a[index], b[index])
	})
	return nil
}

// SortBy stably reorders the rows by the first column named name
func (g *Grid) SortBy(name string, dir Direction) error {
	index, ok := g.ColumnIndex(name)
	if !ok {
		return &ColumnNotFoundError{Name: name, Index: -1}
	}
	return g.Sort(index, dir)
}
