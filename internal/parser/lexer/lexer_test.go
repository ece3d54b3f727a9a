package lexer

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestNextToken(t *testing.T) {
	input := `COLUMNS id, name, 'Email Addr';
add -3, 'O''Brien', 1.25, DATE '2013-03-05', true, NULL;
SORT BY name DESC`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{COLUMNS, "COLUMNS"},
		{IDENTIFIER, "id"},
		{COMMA, ","},
		{IDENTIFIER, "name"},
		{COMMA, ","},
		{STRING, "Email Addr"},
		{SEMICOLON, ";"},
		{ADD, "add"},
		{NUMBER, "-3"},
		{COMMA, ","},
		{STRING, "O'Brien"},
		{COMMA, ","},
		{NUMBER, "1.25"},
		{COMMA, ","},
		{DATE, "DATE"},
		{STRING, "2013-03-05"},
		{COMMA, ","},
		{TRUE, "true"},
		{COMMA, ","},
		{NULL, "NULL"},
		{SEMICOLON, ";"},
		{SORT, "SORT"},
		{BY, "BY"},
		{IDENTIFIER, "name"},
		{DESC, "DESC"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	l := New("PRINT\n  CLEAR")

	tok := l.NextToken()
	assert.Equal(t, tok.Line, 1)
	assert.Equal(t, tok.Column, 1)

	tok = l.NextToken()
	assert.Equal(t, tok.Type, CLEAR)
	assert.Equal(t, tok.Line, 2)
	assert.Equal(t, tok.Column, 3)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"illegal char", "ADD 1 # 2", "illegal token at line 1, col 7: #"},
		{"lone minus", "ADD -", "illegal token at line 1, col 5: -"},
		{"unterminated string", "ADD 'abc", "unterminated string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestTokenizeDropsEOF(t *testing.T) {
	tokens, err := Tokenize("count;")
	assert.NilError(t, err)
	assert.Equal(t, len(tokens), 2)
	assert.Equal(t, tokens[0].Type, COUNT)
	assert.Equal(t, tokens[1].Type, SEMICOLON)
}
