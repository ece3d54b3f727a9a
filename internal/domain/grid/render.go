package grid

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Render returns the bordered text form of the grid
func (g *Grid) Render() string {
	var sb strings.Builder
	g.render(&sb)
	return sb.String()
}

// String implements fmt.Stringer
func (g *Grid) String() string {
	return g.Render()
}

// RenderTo writes the bordered text form of the grid to w
func (g *Grid) RenderTo(w io.Writer) error {
	_, err := io.WriteString(w, g.Render())
	return err
}

// Print writes the grid to standard output followed by a newline
func (g *Grid) Print() error {
	_, err := fmt.Fprintln(os.Stdout, g.Render())
	return err
}

func (g *Grid) render(sb *strings.Builder) {
	widths := make([]int, len(g.columns))
	for i := range g.columns {
		widths[i] = g.columnWidth(i)
	}

	separator := rowSeparator(widths)
	sb.WriteString(separator)
	sb.WriteByte('\n')

	sb.WriteByte('|')
	for i, name := range g.columns {
		sb.WriteString(pad(name, widths[i], false))
		sb.WriteByte('|')
	}
	sb.WriteByte('\n')

	sb.WriteString(separator)
	sb.WriteByte('\n')

	for _, row := range g.rows {
		sb.WriteByte('|')
		for i, v := range row {
			sb.WriteString(pad(v.String(), widths[i], v.IsNumeric()))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(separator)
	sb.WriteByte('\n')
}

func rowSeparator(widths []int) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteByte('+')
	}
	return sb.String()
}

// pad fits display into width cells with one space on each side.
// Right alignment puts the padding before the text.
func pad(display string, width int, right bool) string {
	fill := ""
	if n := width - displayWidth(display); n > 0 {
		fill = strings.Repeat(" ", n)
	}
	if right {
		return " " + fill + display + " "
	}
	return " " + display + fill + " "
}
