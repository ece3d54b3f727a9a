package ast

import (
	"bytes"
	"strconv"
	"strings"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
}

// Command represents one console command (ADD, SORT, PRINT, ...)
type Command interface {
	Node
	commandNode()
}

// LiteralKind tells the executor how to interpret a literal's text
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralBool
	LiteralNull
	LiteralDate
)

// Literal represents a fixed value as written in the command
type Literal struct {
	TokenLiteralValue string
	Value             interface{} // string, int64, float64, bool, time.Time or nil
	Kind              LiteralKind
}

func (l *Literal) TokenLiteral() string { return l.TokenLiteralValue }
func (l *Literal) String() string {
	switch l.Kind {
	case LiteralString:
		return quote(l.TokenLiteralValue)
	case LiteralDate:
		return "DATE " + quote(l.TokenLiteralValue)
	default:
		return l.TokenLiteralValue
	}
}

// ColumnRef addresses a column by name or by 0-based index
type ColumnRef struct {
	Name    string
	Index   int
	ByIndex bool
}

func (c ColumnRef) String() string {
	if c.ByIndex {
		return strconv.Itoa(c.Index)
	}
	return c.Name
}

// ColumnsCommand: COLUMNS a, b, c  (no names lists the current columns)
type ColumnsCommand struct {
	Names []string
}

func (c *ColumnsCommand) commandNode()         {}
func (c *ColumnsCommand) TokenLiteral() string { return "COLUMNS" }
func (c *ColumnsCommand) String() string {
	if len(c.Names) == 0 {
		return "COLUMNS"
	}
	quoted := make([]string, len(c.Names))
	for i, n := range c.Names {
		quoted[i] = quote(n)
	}
	return "COLUMNS " + strings.Join(quoted, ", ")
}

// AddCommand: ADD 1, 'Fred', 2.5
type AddCommand struct {
	Values []*Literal
}

func (c *AddCommand) commandNode()         {}
func (c *AddCommand) TokenLiteral() string { return "ADD" }
func (c *AddCommand) String() string {
	var out bytes.Buffer
	out.WriteString("ADD ")
	for i, v := range c.Values {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(v.String())
	}
	return out.String()
}

// SortCommand: SORT BY column [ASC|DESC]
type SortCommand struct {
	Column     ColumnRef
	Descending bool
}

func (c *SortCommand) commandNode()         {}
func (c *SortCommand) TokenLiteral() string { return "SORT" }
func (c *SortCommand) String() string {
	dir := "ASC"
	if c.Descending {
		dir = "DESC"
	}
	return "SORT BY " + c.Column.String() + " " + dir
}

// LoadCommand: LOAD 'path/to/dataset'
type LoadCommand struct {
	Path string
}

func (c *LoadCommand) commandNode()         {}
func (c *LoadCommand) TokenLiteral() string { return "LOAD" }
func (c *LoadCommand) String() string       { return "LOAD " + quote(c.Path) }

type PrintCommand struct{}

func (c *PrintCommand) commandNode()         {}
func (c *PrintCommand) TokenLiteral() string { return "PRINT" }
func (c *PrintCommand) String() string       { return "PRINT" }

type ClearCommand struct{}

func (c *ClearCommand) commandNode()         {}
func (c *ClearCommand) TokenLiteral() string { return "CLEAR" }
func (c *ClearCommand) String() string       { return "CLEAR" }

type CountCommand struct{}

func (c *CountCommand) commandNode()         {}
func (c *CountCommand) TokenLiteral() string { return "COUNT" }
func (c *CountCommand) String() string       { return "COUNT" }

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
