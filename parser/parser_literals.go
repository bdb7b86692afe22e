/*
File   : pitlang/parser/parser_literals.go
Package: parser

The unary-table parse functions for literals and primaries: numbers,
strings, booleans, null, identifiers, array and object literals,
anonymous function literals, and parenthesized expressions.
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/pitlang/lexer"
)

// parseNumberLiteral parses a numeric literal, always stored as float64.
func (p *Parser) parseNumberLiteral() Expr {
	tok := p.advance()
	pos := Pos{Line: tok.Line, Col: tok.Column}
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addError(pos, "invalid number literal %q", tok.Literal)
		return &NumberLit{Pos: pos}
	}
	return &NumberLit{Pos: pos, Value: val}
}

func (p *Parser) parseStringLiteral() Expr {
	tok := p.advance()
	return &StringLit{Pos: Pos{tok.Line, tok.Column}, Value: tok.Literal}
}

func (p *Parser) parseBooleanLiteral() Expr {
	tok := p.advance()
	return &BoolLit{Pos: Pos{tok.Line, tok.Column}, Value: tok.Type == lexer.TRUE_KEY}
}

func (p *Parser) parseNullLiteral() Expr {
	tok := p.advance()
	return &NullLit{Pos: Pos{tok.Line, tok.Column}}
}

func (p *Parser) parseIdentifierExpression() Expr {
	tok := p.advance()
	return &Identifier{Pos: Pos{tok.Line, tok.Column}, Name: tok.Literal}
}

// parseParenthesizedExpression parses `(expr)`; grouping only, the
// parentheses leave no node behind.
func (p *Parser) parseParenthesizedExpression() Expr {
	p.advance() // (
	expr := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN)
	return expr
}

// parseArrayLit parses `[ elem, ... ]`, tolerating a trailing comma.
func (p *Parser) parseArrayLit() Expr {
	pos := p.pos_()
	p.advance() // [
	lit := &ArrayLit{Pos: pos}
	if !p.at(lexer.RIGHT_BRACKET) {
		lit.Elements = append(lit.Elements, p.parseExpression())
		for p.at(lexer.COMMA_DELIM) {
			p.advance()
			if p.at(lexer.RIGHT_BRACKET) {
				break
			}
			lit.Elements = append(lit.Elements, p.parseExpression())
		}
	}
	p.expect(lexer.RIGHT_BRACKET)
	return lit
}

// parseObjectLit parses `{ k: v, ... }`; a key is an identifier or a
// string literal.
func (p *Parser) parseObjectLit() Expr {
	pos := p.pos_()
	p.advance() // {
	lit := &ObjectLit{Pos: pos}
	for !p.at(lexer.RIGHT_BRACE) && !p.at(lexer.EOF_TYPE) {
		keyTok := p.current()
		var key string
		switch keyTok.Type {
		case lexer.IDENTIFIER_ID, lexer.STRING_LIT:
			key = keyTok.Literal
			p.advance()
		default:
			p.addError(Pos{keyTok.Line, keyTok.Column}, "UnexpectedToken: expected an object key, got %q", keyTok.Type)
			return lit
		}
		if _, ok := p.expect(lexer.COLON_DELIM); !ok {
			return lit
		}
		value := p.parseExpression()
		lit.Keys = append(lit.Keys, key)
		lit.Values = append(lit.Values, value)
		if p.at(lexer.COMMA_DELIM) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.RIGHT_BRACE)
	return lit
}

// parseFunctionLit parses an anonymous `fn ( params ) block`.
func (p *Parser) parseFunctionLit() Expr {
	pos := p.pos_()
	p.advance() // fn
	params, ok := p.parseParamList()
	if !ok {
		return &FunctionLit{Pos: pos}
	}
	body := p.parseBlock()
	return &FunctionLit{Pos: pos, Params: params, Body: body}
}

// parseParamList parses a parenthesized, comma-separated parameter list.
func (p *Parser) parseParamList() ([]string, bool) {
	if _, ok := p.expect(lexer.LEFT_PAREN); !ok {
		return nil, false
	}
	var params []string
	if !p.at(lexer.RIGHT_PAREN) {
		tok, ok := p.expect(lexer.IDENTIFIER_ID)
		if !ok {
			return nil, false
		}
		params = append(params, tok.Literal)
		for p.at(lexer.COMMA_DELIM) {
			p.advance()
			tok, ok := p.expect(lexer.IDENTIFIER_ID)
			if !ok {
				return nil, false
			}
			params = append(params, tok.Literal)
		}
	}
	if _, ok := p.expect(lexer.RIGHT_PAREN); !ok {
		return nil, false
	}
	return params, true
}
