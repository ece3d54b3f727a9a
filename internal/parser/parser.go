package parser

import (
	"fmt"
	"strconv"

	"github.com/leengari/datagrid/internal/parser/ast"
	"github.com/leengari/datagrid/internal/parser/lexer"
)

type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

// Parse parses exactly one command, optionally terminated by a semicolon
func (p *Parser) Parse() (ast.Command, error) {
	var (
		cmd ast.Command
		err error
	)

	switch p.curTok.Type {
	case lexer.COLUMNS:
		cmd, err = p.parseColumns()
	case lexer.ADD:
		cmd, err = p.parseAdd()
	case lexer.SORT:
		cmd, err = p.parseSort()
	case lexer.LOAD:
		cmd, err = p.parseLoad()
	case lexer.PRINT:
		p.nextToken()
		cmd = &ast.PrintCommand{}
	case lexer.CLEAR:
		p.nextToken()
		cmd = &ast.ClearCommand{}
	case lexer.COUNT:
		p.nextToken()
		cmd = &ast.CountCommand{}
	case lexer.EOF:
		return nil, fmt.Errorf("empty command")
	default:
		return nil, fmt.Errorf("unexpected token %q, expected COLUMNS, ADD, SORT, PRINT, CLEAR, COUNT or LOAD", p.curTok.Literal)
	}
	if err != nil {
		return nil, err
	}

	// Semicolon (Optional)
	if p.curTok.Type == lexer.SEMICOLON {
		p.nextToken()
	}
	if p.curTok.Type != lexer.EOF {
		return nil, fmt.Errorf("unexpected token %q after %s", p.curTok.Literal, cmd.TokenLiteral())
	}

	return cmd, nil
}

func (p *Parser) atEnd() bool {
	return p.curTok.Type == lexer.EOF || p.curTok.Type == lexer.SEMICOLON
}

func (p *Parser) parseColumns() (*ast.ColumnsCommand, error) {
	cmd := &ast.ColumnsCommand{}

	// COLUMNS
	p.nextToken()

	if p.atEnd() {
		return cmd, nil
	}

	names, err := p.parseNameList()
	if err != nil {
		return nil, err
	}
	cmd.Names = names
	return cmd, nil
}

func (p *Parser) parseNameList() ([]string, error) {
	var names []string

	if !isNameToken(p.curTok.Type) {
		return nil, fmt.Errorf("expected column name, got %q", p.curTok.Literal)
	}
	names = append(names, p.curTok.Literal)
	p.nextToken()

	for p.curTok.Type == lexer.COMMA {
		p.nextToken()
		if !isNameToken(p.curTok.Type) {
			return nil, fmt.Errorf("expected column name after comma, got %q", p.curTok.Literal)
		}
		names = append(names, p.curTok.Literal)
		p.nextToken()
	}

	return names, nil
}

func (p *Parser) parseAdd() (*ast.AddCommand, error) {
	cmd := &ast.AddCommand{Values: make([]*ast.Literal, 0)}

	// ADD
	p.nextToken()

	// an empty value list is a valid row for a grid without columns
	if p.atEnd() {
		return cmd, nil
	}

	lit, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	cmd.Values = append(cmd.Values, lit)

	for p.curTok.Type == lexer.COMMA {
		p.nextToken()
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		cmd.Values = append(cmd.Values, lit)
	}

	return cmd, nil
}

func (p *Parser) parseLiteral() (*ast.Literal, error) {
	if !isValueToken(p.curTok.Type) {
		return nil, fmt.Errorf("unexpected token in value list: %q", p.curTok.Literal)
	}

	tok := p.curTok
	p.nextToken()

	switch tok.Type {
	case lexer.STRING:
		return &ast.Literal{TokenLiteralValue: tok.Literal, Value: tok.Literal, Kind: ast.LiteralString}, nil
	case lexer.NUMBER:
		return parseNumber(tok.Literal)
	case lexer.TRUE:
		return &ast.Literal{TokenLiteralValue: "TRUE", Value: true, Kind: ast.LiteralBool}, nil
	case lexer.FALSE:
		return &ast.Literal{TokenLiteralValue: "FALSE", Value: false, Kind: ast.LiteralBool}, nil
	case lexer.NULL:
		return &ast.Literal{TokenLiteralValue: "NULL", Value: nil, Kind: ast.LiteralNull}, nil
	default: // DATE 'literal'
		if p.curTok.Type != lexer.STRING {
			return nil, fmt.Errorf("expected quoted string after DATE, got %q", p.curTok.Literal)
		}
		raw := p.curTok.Literal
		p.nextToken()
		t, err := parseDate(raw)
		if err != nil {
			return nil, err
		}
		return &ast.Literal{TokenLiteralValue: raw, Value: t, Kind: ast.LiteralDate}, nil
	}
}

func parseNumber(lit string) (*ast.Literal, error) {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return &ast.Literal{TokenLiteralValue: lit, Value: i, Kind: ast.LiteralInt}, nil
	}
	// integers beyond int64 fall back to float
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return &ast.Literal{TokenLiteralValue: lit, Value: f, Kind: ast.LiteralFloat}, nil
	}
	return nil, fmt.Errorf("invalid number: %s", lit)
}

func (p *Parser) parseSort() (*ast.SortCommand, error) {
	cmd := &ast.SortCommand{}

	// SORT
	p.nextToken()

	// BY
	if p.curTok.Type != lexer.BY {
		return nil, fmt.Errorf("expected BY, got %q", p.curTok.Literal)
	}
	p.nextToken()

	switch p.curTok.Type {
	case lexer.IDENTIFIER, lexer.STRING:
		cmd.Column = ast.ColumnRef{Name: p.curTok.Literal}
	case lexer.NUMBER:
		idx, err := strconv.Atoi(p.curTok.Literal)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid column index: %s", p.curTok.Literal)
		}
		cmd.Column = ast.ColumnRef{Index: idx, ByIndex: true}
	default:
		return nil, fmt.Errorf("expected column name or index, got %q", p.curTok.Literal)
	}
	p.nextToken()

	switch p.curTok.Type {
	case lexer.ASC:
		p.nextToken()
	case lexer.DESC:
		cmd.Descending = true
		p.nextToken()
	}

	return cmd, nil
}

func (p *Parser) parseLoad() (*ast.LoadCommand, error) {
	// LOAD
	p.nextToken()

	if p.curTok.Type != lexer.STRING {
		return nil, fmt.Errorf("expected quoted path after LOAD, got %q", p.curTok.Literal)
	}
	cmd := &ast.LoadCommand{Path: p.curTok.Literal}
	p.nextToken()
	return cmd, nil
}

// ParseCommand tokenizes and parses a single command line
func ParseCommand(input string) (ast.Command, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}
