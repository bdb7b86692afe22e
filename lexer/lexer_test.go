/*
File   : pitlang/lexer/lexer_test.go
Package: lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func literalTokens(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = NewToken(t.Type, t.Literal)
	}
	return out
}

func TestLexer_Tokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `123 + 2 31 - 12`,
			Expected: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `let x = 3.14;`,
			Expected: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "3.14"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `a == b != c <= d >= e && f || !g`,
			Expected: []Token{
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(EQ_OP, "=="),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(NE_OP, "!="),
				NewToken(IDENTIFIER_ID, "c"),
				NewToken(LE_OP, "<="),
				NewToken(IDENTIFIER_ID, "d"),
				NewToken(GE_OP, ">="),
				NewToken(IDENTIFIER_ID, "e"),
				NewToken(AND_OP, "&&"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(OR_OP, "||"),
				NewToken(NOT_OP, "!"),
				NewToken(IDENTIFIER_ID, "g"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `++i; --j;`,
			Expected: []Token{
				NewToken(INC_OP, "++"),
				NewToken(IDENTIFIER_ID, "i"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(DEC_OP, "--"),
				NewToken(IDENTIFIER_ID, "j"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: "\"hello\\nworld\"",
			Expected: []Token{
				NewToken(STRING_LIT, "hello\nworld"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `// a comment
true false null`,
			Expected: []Token{
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(NULL_KEY, "null"),
				NewToken(EOF_TYPE, ""),
			},
		},
	}

	for _, tc := range tests {
		l := NewLexer(tc.Input)
		got := literalTokens(l.Tokens())
		assert.Equal(t, tc.Expected, got, "input: %s", tc.Input)
		assert.False(t, l.HasErrors())
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := NewLexer(`"abc`)
	l.Tokens()
	assert.True(t, l.HasErrors())
}

func TestLexer_UnknownCharacter(t *testing.T) {
	l := NewLexer(`a @ b`)
	l.Tokens()
	assert.True(t, l.HasErrors())
}

func TestLexer_Positions(t *testing.T) {
	l := NewLexer("let x\n  = 1;")
	toks := l.Tokens()
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Column)
	// '=' is on line 2, after two leading spaces
	eq := toks[2]
	assert.Equal(t, ASSIGN_OP, eq.Type)
	assert.Equal(t, 2, eq.Line)
	assert.Equal(t, 3, eq.Column)
}
