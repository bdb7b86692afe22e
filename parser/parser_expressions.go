/*
File   : pitlang/parser/parser_expressions.go
Package: parser

The Pratt parsing loop plus the infix, postfix and prefix parse
functions registered in NewParser's tables.
*/
package parser

import "github.com/akashmaji946/pitlang/lexer"

// parseExpression is the entry point for any expression context.
func (p *Parser) parseExpression() Expr {
	return p.parseInternal(MINIMUM_PRIORITY)
}

// parseInternal is the core Pratt loop:
//  1. Parse a prefix expression or primary via the unary table.
//  2. While the current operator's precedence is at least currPrecedence,
//     hand the parsed left operand to the operator's binary function;
//     the result becomes the new left operand.
//  3. Return the final expression.
//
// Associativity falls out of the recursion depth the binary functions
// ask for: left-associative operators recurse one level tighter than
// their own precedence, assignment recurses at its own.
func (p *Parser) parseInternal(currPrecedence int) Expr {
	unary, has := p.UnaryFuncs[p.current().Type]
	if !has {
		tok := p.current()
		p.addError(Pos{tok.Line, tok.Column}, "UnexpectedToken: expected an expression, got %q", tok.Type)
		p.advance()
		return &NullLit{Pos: Pos{tok.Line, tok.Column}}
	}
	left := unary()
	if left == nil {
		return nil
	}
	for p.current().Type != lexer.EOF_TYPE && getPrecedence(p.current()) >= currPrecedence {
		binary, has := p.BinaryFuncs[p.current().Type]
		if !has {
			return left
		}
		left = binary(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// parseUnaryExpression parses `!x`, unary `-x`, and prefix `++x`/`--x`.
// The operand binds everything tighter than a prefix operator, so
// `-a.b` negates the member access and `-a * b` multiplies the negation.
func (p *Parser) parseUnaryExpression() Expr {
	tok := p.advance()
	operand := p.parseInternal(PREFIX_PRIORITY)
	if operand == nil {
		return nil
	}
	return &UnaryExpr{Pos: Pos{tok.Line, tok.Column}, Op: UnaryOp(tok.Literal), Operand: operand}
}

// parseBinaryExpression handles every plain infix operator. The right
// operand is parsed one level tighter than the operator itself, which
// makes the operator left-associative.
func (p *Parser) parseBinaryExpression(left Expr) Expr {
	tok := p.advance()
	right := p.parseInternal(getPrecedence(tok) + 1)
	if right == nil {
		return nil
	}
	return &BinaryExpr{Pos: Pos{tok.Line, tok.Column}, Op: BinaryOp(tok.Literal), Left: left, Right: right}
}

// parseAssignmentExpression handles `target = value`. The value is
// parsed at assignment's own precedence, making `a = b = 1` nest as
// `a = (b = 1)`. The left side must already have reduced to an
// Identifier, IndexExpr or MemberExpr; anything else is
// InvalidAssignmentTarget.
func (p *Parser) parseAssignmentExpression(left Expr) Expr {
	tok := p.advance() // =
	pos := Pos{Line: tok.Line, Col: tok.Column}
	switch left.(type) {
	case *Identifier, *IndexExpr, *MemberExpr:
	default:
		p.addError(pos, "InvalidAssignmentTarget: cannot assign to this expression")
		return left
	}
	value := p.parseInternal(ASSIGN_PRIORITY)
	if value == nil {
		return nil
	}
	return &AssignExpr{Pos: pos, Target: left, Value: value}
}

// parseMemberExpression parses the `.IDENT` postfix.
func (p *Parser) parseMemberExpression(left Expr) Expr {
	pos := p.pos_()
	p.advance() // .
	nameTok, ok := p.expect(lexer.IDENTIFIER_ID)
	if !ok {
		return nil
	}
	return &MemberExpr{Pos: pos, Target: left, Name: nameTok.Literal}
}

// parseIndexExpression parses the `[expr]` postfix.
func (p *Parser) parseIndexExpression(left Expr) Expr {
	pos := p.pos_()
	p.advance() // [
	index := p.parseExpression()
	if _, ok := p.expect(lexer.RIGHT_BRACKET); !ok {
		return nil
	}
	return &IndexExpr{Pos: pos, Target: left, Index: index}
}

// parseCallExpression parses the `(args)` postfix.
func (p *Parser) parseCallExpression(left Expr) Expr {
	pos := p.pos_()
	args, ok := p.parseArgs()
	if !ok {
		return nil
	}
	return &CallExpr{Pos: pos, Callee: left, Args: args}
}

// parseArgs parses a parenthesized, comma-separated argument list.
func (p *Parser) parseArgs() ([]Expr, bool) {
	if _, ok := p.expect(lexer.LEFT_PAREN); !ok {
		return nil, false
	}
	var args []Expr
	if !p.at(lexer.RIGHT_PAREN) {
		args = append(args, p.parseExpression())
		for p.at(lexer.COMMA_DELIM) {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	if _, ok := p.expect(lexer.RIGHT_PAREN); !ok {
		return nil, false
	}
	return args, true
}
