package parser

import (
	"github.com/leengari/datagrid/internal/parser/lexer"
)

// isNameToken checks if a token can name a column (bare identifier or quoted string)
func isNameToken(t lexer.TokenType) bool {
	return t == lexer.IDENTIFIER || t == lexer.STRING
}

// isValueToken checks if a token can start a value in an ADD list
func isValueToken(t lexer.TokenType) bool {
	switch t {
	case lexer.STRING, lexer.NUMBER, lexer.TRUE, lexer.FALSE, lexer.NULL, lexer.DATE:
		return true
	}
	return false
}
