package executor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/leengari/datagrid/internal/domain/grid"
	"github.com/leengari/datagrid/internal/parser/ast"
	"github.com/leengari/datagrid/internal/storage"
)

// ErrNoGrid is returned for commands that need a grid before COLUMNS or LOAD ran
var ErrNoGrid = errors.New("no grid defined. Use 'COLUMNS a, b, ...' or 'LOAD <path>' first")

// Result is the outcome of one command
type Result struct {
	Columns  []string `json:"columns,omitempty"`
	RowCount int      `json:"row_count"`
	Output   string   `json:"output,omitempty"`  // rendered grid for PRINT
	Message  string   `json:"message,omitempty"` // status message
	Error    string   `json:"error,omitempty"`   // set only by transports
}

// State is the mutable session a command runs against
type State struct {
	Grid    *grid.Grid
	BaseDir string // relative LOAD paths resolve against this
}

func Execute(cmd ast.Command, state *State) (*Result, error) {
	switch c := cmd.(type) {
	case *ast.ColumnsCommand:
		return executeColumns(c, state)
	case *ast.LoadCommand:
		return executeLoad(c, state)
	}

	if state.Grid == nil {
		return nil, ErrNoGrid
	}
	g := state.Grid

	switch c := cmd.(type) {
	case *ast.AddCommand:
		return executeAdd(c, g)
	case *ast.SortCommand:
		return executeSort(c, g)
	case *ast.PrintCommand:
		return &Result{
			Columns:  g.Columns(),
			RowCount: g.RowCount(),
			Output:   g.Render(),
		}, nil
	case *ast.ClearCommand:
		removed := g.RowCount()
		g.Clear()
		return &Result{
			Columns: g.Columns(),
			Message: fmt.Sprintf("Cleared %d rows", removed),
		}, nil
	case *ast.CountCommand:
		return &Result{
			Columns:  g.Columns(),
			RowCount: g.RowCount(),
			Message:  fmt.Sprintf("%d rows, %d columns", g.RowCount(), g.ColumnCount()),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported command type: %T", cmd)
	}
}

func executeColumns(cmd *ast.ColumnsCommand, state *State) (*Result, error) {
	if len(cmd.Names) == 0 {
		if state.Grid == nil {
			return nil, ErrNoGrid
		}
		cols := state.Grid.Columns()
		return &Result{
			Columns:  cols,
			RowCount: state.Grid.RowCount(),
			Message:  "Columns: " + strings.Join(cols, ", "),
		}, nil
	}

	state.Grid = grid.New(cmd.Names...)
	return &Result{
		Columns: state.Grid.Columns(),
		Message: fmt.Sprintf("Created grid with %d columns", len(cmd.Names)),
	}, nil
}

func executeLoad(cmd *ast.LoadCommand, state *State) (*Result, error) {
	path := cmd.Path
	if !filepath.IsAbs(path) && state.BaseDir != "" {
		path = filepath.Join(state.BaseDir, path)
	}

	g, err := storage.LoadGrid(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cmd.Path, err)
	}
	state.Grid = g

	return &Result{
		Columns:  g.Columns(),
		RowCount: g.RowCount(),
		Message:  fmt.Sprintf("Loaded %d rows from %s", g.RowCount(), cmd.Path),
	}, nil
}

func executeAdd(cmd *ast.AddCommand, g *grid.Grid) (*Result, error) {
	row, err := literalsToRow(cmd.Values)
	if err != nil {
		return nil, err
	}
	if err := g.AppendRow(row); err != nil {
		return nil, err
	}
	return &Result{
		Columns:  g.Columns(),
		RowCount: g.RowCount(),
		Message:  "1 row added",
	}, nil
}

func executeSort(cmd *ast.SortCommand, g *grid.Grid) (*Result, error) {
	dir := grid.Ascending
	if cmd.Descending {
		dir = grid.Descending
	}

	var err error
	if cmd.Column.ByIndex {
		err = g.Sort(cmd.Column.Index, dir)
	} else {
		err = g.SortBy(cmd.Column.Name, dir)
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Columns:  g.Columns(),
		RowCount: g.RowCount(),
		Message:  fmt.Sprintf("Sorted %d rows by %s (%s)", g.RowCount(), cmd.Column.String(), dir),
	}, nil
}
