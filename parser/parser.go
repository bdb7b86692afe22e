/*
File   : pitlang/parser/parser.go
Package: parser

Parser is a recursive-descent statement parser with a Pratt
(precedence-climbing) expression parser. It consumes an eagerly scanned
token vector with one-token lookahead and produces a Program. Expression
parsing is table-driven: NewParser registers a unary (prefix/literal)
parse function and a binary (infix/postfix) parse function per token
type, and parseInternal drives them by operator precedence. Diagnostics
accumulate in an Errors slice with HasErrors/GetErrors accessors, but
the parser aborts at the first error: parseStatement returns nil and
Parse stops appending once an error has been recorded.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/pitlang/lexer"
)

// Parser holds the token stream, cursor and parse function tables used to
// build a Program.
type Parser struct {
	tokens []lexer.Token
	pos    int

	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and literals
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix and postfix operators

	Errors []lexer.Diagnostic
}

// NewParser returns a Parser over tokens, normally the output of
// lexer.Lexer.Tokens(), with the expression parse tables registered.
func NewParser(tokens []lexer.Token) *Parser {
	par := &Parser{tokens: tokens}
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)

	// literals and primaries
	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.NUMBER_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)
	par.registerUnaryFuncs(par.parseNullLiteral, lexer.NULL_KEY)
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)
	par.registerUnaryFuncs(par.parseArrayLit, lexer.LEFT_BRACKET)
	par.registerUnaryFuncs(par.parseObjectLit, lexer.LEFT_BRACE)
	par.registerUnaryFuncs(par.parseFunctionLit, lexer.FN_KEY)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// prefix operators
	par.registerUnaryFuncs(par.parseUnaryExpression,
		lexer.NOT_OP, lexer.MINUS_OP, lexer.INC_OP, lexer.DEC_OP)

	// infix operators
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.ASSIGN_OP)
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.OR_OP, lexer.AND_OP,
		lexer.EQ_OP, lexer.NE_OP,
		lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP,
		lexer.PLUS_OP, lexer.MINUS_OP,
		lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP)

	// postfix operators: member access, indexing, calls
	par.registerBinaryFuncs(par.parseMemberExpression, lexer.DOT_OP)
	par.registerBinaryFuncs(par.parseIndexExpression, lexer.LEFT_BRACKET)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	return par
}

// HasErrors reports whether any parse error was recorded.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// GetErrors returns every parse error recorded so far.
func (p *Parser) GetErrors() []lexer.Diagnostic {
	return p.Errors
}

func (p *Parser) addError(pos Pos, format string, a ...interface{}) {
	p.Errors = append(p.Errors, lexer.Diagnostic{
		Kind:    "ParseError",
		Line:    pos.Line,
		Col:     pos.Col,
		Message: fmt.Sprintf(format, a...),
	})
}

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF_TYPE}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF_TYPE}
	}
	return p.tokens[idx]
}

func (p *Parser) pos_() Pos {
	tok := p.current()
	return Pos{Line: tok.Line, Col: tok.Column}
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) at(tt lexer.TokenType) bool {
	return p.current().Type == tt
}

// expect consumes the current token if it matches tt, recording
// UnexpectedToken(expected, got, pos) otherwise.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, bool) {
	if p.at(tt) {
		return p.advance(), true
	}
	tok := p.current()
	p.addError(Pos{Line: tok.Line, Col: tok.Column}, "UnexpectedToken: expected %q, got %q", tt, tok.Type)
	return tok, false
}

// Parse runs the parser to completion and returns the resulting Program.
// Parsing aborts at the first error recorded anywhere below.
func (p *Parser) Parse() *Program {
	prog := &Program{Pos: p.pos_()}
	for !p.at(lexer.EOF_TYPE) && !p.HasErrors() {
		stmt := p.parseStatement()
		if stmt == nil {
			break
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog
}
