package lexer

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	// Special
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENTIFIER // column_name
	STRING     // 'value'
	NUMBER     // 123, -4, 1.23

	// Keywords
	COLUMNS
	ADD
	SORT
	BY
	ASC
	DESC
	PRINT
	CLEAR
	COUNT
	LOAD
	TRUE
	FALSE
	NULL
	DATE

	// Punctuation
	COMMA     // ,
	SEMICOLON // ;
)

var keywords = map[string]TokenType{
	"COLUMNS": COLUMNS,
	"ADD":     ADD,
	"SORT":    SORT,
	"BY":      BY,
	"ASC":     ASC,
	"DESC":    DESC,
	"PRINT":   PRINT,
	"CLEAR":   CLEAR,
	"COUNT":   COUNT,
	"LOAD":    LOAD,
	"TRUE":    TRUE,
	"FALSE":   FALSE,
	"NULL":    NULL,
	"DATE":    DATE,
}

var tokenNames = map[TokenType]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	STRING:     "STRING",
	NUMBER:     "NUMBER",
	COMMA:      "COMMA",
	SEMICOLON:  "SEMICOLON",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	for kw, tt := range keywords {
		if tt == t {
			return kw
		}
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q)", t.Type, t.Literal)
}

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	line, col := l.line, l.column

	switch l.ch {
	case ',':
		tok = newToken(COMMA, l.ch, line, col)
	case ';':
		tok = newToken(SEMICOLON, l.ch, line, col)
	case '\'':
		lit, ok := l.readString()
		if !ok {
			return Token{Type: ILLEGAL, Literal: "unterminated string", Line: line, Column: col}
		}
		return Token{Type: STRING, Literal: lit, Line: line, Column: col}
	case 0:
		return Token{Type: EOF, Line: line, Column: col}
	case '-':
		if isDigit(l.peekChar()) {
			return Token{Type: NUMBER, Literal: l.readNumber(), Line: line, Column: col}
		}
		tok = newToken(ILLEGAL, l.ch, line, col)
	default:
		if isLetter(l.ch) {
			lit := l.readIdentifier()
			return Token{Type: LookupIdent(lit), Literal: lit, Line: line, Column: col}
		} else if isDigit(l.ch) {
			return Token{Type: NUMBER, Literal: l.readNumber(), Line: line, Column: col}
		}
		tok = newToken(ILLEGAL, l.ch, line, col)
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[position:l.position]
}

// readString consumes a single-quoted string; '' inside it is an escaped quote
func (l *Lexer) readString() (string, bool) {
	var sb strings.Builder
	for {
		l.readChar()
		switch l.ch {
		case 0:
			return "", false
		case '\'':
			if l.peekChar() == '\'' {
				sb.WriteByte('\'')
				l.readChar()
				continue
			}
			l.readChar()
			return sb.String(), true
		default:
			sb.WriteByte(l.ch)
		}
	}
}

func newToken(tokenType TokenType, ch byte, line, col int) Token {
	return Token{Type: tokenType, Literal: string(ch), Line: line, Column: col}
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToUpper(ident)]; ok {
		return tok
	}
	return IDENTIFIER
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize lexes the whole input, excluding the trailing EOF token
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		if tok.Type == ILLEGAL {
			return nil, fmt.Errorf("illegal token at line %d, col %d: %s", tok.Line, tok.Column, tok.Literal)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
