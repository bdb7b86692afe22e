/*
File   : pitlang/parser/parser_helpers.go
Package: parser
*/
package parser

import "github.com/akashmaji946/pitlang/lexer"

// ParseSource lexes and parses source in one step, returning the resulting
// Program plus any lex or parse errors encountered (lex errors are
// reported first, since parsing an invalid token stream only produces
// noise on top of them).
func ParseSource(source string) (*Program, []lexer.Diagnostic) {
	lx := lexer.NewLexer(source)
	tokens := lx.Tokens()
	if lx.HasErrors() {
		return nil, lx.GetErrors()
	}
	p := NewParser(tokens)
	prog := p.Parse()
	if p.HasErrors() {
		return nil, p.GetErrors()
	}
	return prog, nil
}
