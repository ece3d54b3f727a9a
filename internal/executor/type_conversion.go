package executor

import (
	"fmt"
	"time"

	"github.com/leengari/datagrid/internal/domain/grid"
	"github.com/leengari/datagrid/internal/parser/ast"
)

// literalToValue converts a parsed literal into the grid cell it denotes.
// The parser has already normalized Value to the Go type matching Kind.
func literalToValue(lit *ast.Literal) (grid.Value, error) {
	switch lit.Kind {
	case ast.LiteralString:
		s, ok := lit.Value.(string)
		if !ok {
			return grid.Value{}, typeError(lit, "string")
		}
		return grid.Text(s), nil
	case ast.LiteralInt:
		i, ok := lit.Value.(int64)
		if !ok {
			return grid.Value{}, typeError(lit, "int64")
		}
		return grid.Int(i), nil
	case ast.LiteralFloat:
		f, ok := lit.Value.(float64)
		if !ok {
			return grid.Value{}, typeError(lit, "float64")
		}
		return grid.Float(f), nil
	case ast.LiteralDate:
		t, ok := lit.Value.(time.Time)
		if !ok {
			return grid.Value{}, typeError(lit, "time.Time")
		}
		return grid.Instant(t), nil
	case ast.LiteralBool, ast.LiteralNull:
		return grid.Other(lit.Value), nil
	default:
		return grid.Value{}, fmt.Errorf("unsupported literal kind %d", lit.Kind)
	}
}

func literalsToRow(lits []*ast.Literal) (grid.Row, error) {
	row := make(grid.Row, len(lits))
	for i, lit := range lits {
		v, err := literalToValue(lit)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		row[i] = v
	}
	return row, nil
}

func typeError(lit *ast.Literal, expected string) error {
	return fmt.Errorf("literal %s: expected %s, got %T", lit.String(), expected, lit.Value)
}
