/*
File   : pitlang/parser/parser_precedence.go
Package: parser

Operator precedence constants and the per-token parse function tables
behind the Pratt expression parser. Higher number = higher precedence
(binds tighter).
*/
package parser

import "github.com/akashmaji946/pitlang/lexer"

// Precedence hierarchy (lowest to highest):
// 1. Assignment (right-to-left associativity)
// 2. Logical OR
// 3. Logical AND
// 4. Equality operators
// 5. Relational operators
// 6. Additive operators
// 7. Multiplicative operators
// 8. Unary/prefix operators
// 9. Member access, parentheses (calls), indexing (postfix)
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Assignment: = (right-to-left, a = b = 5 is a = (b = 5))
	ASSIGN_PRIORITY = 10

	// Logical OR: ||
	OR_PRIORITY = 40

	// Logical AND: && (binds tighter than ||)
	AND_PRIORITY = 50

	// Equality: == !=
	EQUALITY_PRIORITY = 90

	// Relational: < > <= >=
	RELATIONAL_PRIORITY = 100

	// Additive: + -
	PLUS_PRIORITY = 120

	// Multiplicative: * / %
	MUL_PRIORITY = 130

	// Unary/prefix: ! - ++ --
	PREFIX_PRIORITY = 140

	// Member access: .
	MEMBER_ACCESS_PRIORITY = 145

	// Parentheses in infix position, i.e. calls: f(x)
	PAREN_PRIORITY = 150

	// Indexing: arr[0]
	INDEX_PRIORITY = 160
)

// getPrecedence returns the precedence level for a token appearing in
// infix position, or -1 for tokens that are not operators. It is central
// to the Pratt parsing loop in parseInternal, deciding how tightly each
// operator binds to its operands.
func getPrecedence(token lexer.Token) int {
	switch token.Type {

	case lexer.LEFT_PAREN:
		return PAREN_PRIORITY

	case lexer.LEFT_BRACKET:
		return INDEX_PRIORITY

	case lexer.DOT_OP:
		return MEMBER_ACCESS_PRIORITY

	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return MUL_PRIORITY

	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
		return RELATIONAL_PRIORITY

	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	case lexer.AND_OP:
		return AND_PRIORITY

	case lexer.OR_OP:
		return OR_PRIORITY

	case lexer.ASSIGN_OP:
		return ASSIGN_PRIORITY

	default:
		return -1 // Not an operator token
	}
}

// binaryParseFunction parses an infix or postfix expression. The
// already-parsed left operand is passed in; the function consumes the
// operator and whatever follows it, returning the complete expression.
type binaryParseFunction func(Expr) Expr

// unaryParseFunction parses a prefix expression or a primary (literal,
// identifier, grouping) starting at the current token.
type unaryParseFunction func() Expr

// registerUnaryFuncs associates one unary parsing function with each of
// the given token types.
func (p *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		p.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs associates one binary parsing function with each of
// the given token types.
func (p *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		p.BinaryFuncs[tokenType] = f
	}
}
