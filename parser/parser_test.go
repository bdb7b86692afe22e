/*
File   : pitlang/parser/parser_test.go
Package: parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *Program {
	t.Helper()
	prog, diags := ParseSource(src)
	require.Empty(t, diags, "unexpected errors for %q", src)
	require.NotNil(t, prog)
	return prog
}

func parseFail(t *testing.T, src string) string {
	t.Helper()
	_, diags := ParseSource(src)
	require.NotEmpty(t, diags, "expected errors for %q", src)
	return diags[0].Message
}

func TestParser_LetStatement(t *testing.T) {
	prog := parseOK(t, "let x = 42;")
	require.Len(t, prog.Stmts, 1)
	let, ok := prog.Stmts[0].(*LetStmt)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	num, ok := let.Init.(*NumberLit)
	require.True(t, ok)
	assert.Equal(t, 42.0, num.Value)
}

func TestParser_FunctionDecl(t *testing.T) {
	prog := parseOK(t, "fn add(a, b) { return a + b; }")
	require.Len(t, prog.Stmts, 1)
	decl, ok := prog.Stmts[0].(*FunctionDeclStmt)
	require.True(t, ok)
	assert.Equal(t, "add", decl.Name)
	assert.Equal(t, []string{"a", "b"}, decl.Params)
	require.Len(t, decl.Body.Stmts, 1)
	_, ok = decl.Body.Stmts[0].(*ReturnStmt)
	assert.True(t, ok)
}

func TestParser_Precedence(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3).
	prog := parseOK(t, "1 + 2 * 3;")
	expr := prog.Stmts[0].(*ExprStmt).Expr
	add, ok := expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, OpAdd, add.Op)
	mul, ok := add.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, OpMul, mul.Op)

	// Comparison binds looser than arithmetic.
	prog = parseOK(t, "a + 1 < b * 2;")
	lt := prog.Stmts[0].(*ExprStmt).Expr.(*BinaryExpr)
	assert.Equal(t, OpLt, lt.Op)

	// && binds tighter than ||.
	prog = parseOK(t, "a || b && c;")
	or := prog.Stmts[0].(*ExprStmt).Expr.(*BinaryExpr)
	assert.Equal(t, OpOr, or.Op)
	and := or.Right.(*BinaryExpr)
	assert.Equal(t, OpAnd, and.Op)

	// Assignment is right-associative.
	prog = parseOK(t, "a = b = 1;")
	outer := prog.Stmts[0].(*ExprStmt).Expr.(*AssignExpr)
	_, ok = outer.Value.(*AssignExpr)
	assert.True(t, ok)

	// Unary binds tighter than multiplication.
	prog = parseOK(t, "-a * b;")
	mul = prog.Stmts[0].(*ExprStmt).Expr.(*BinaryExpr)
	assert.Equal(t, OpMul, mul.Op)
	_, ok = mul.Left.(*UnaryExpr)
	assert.True(t, ok)
}

func TestParser_PostfixChain(t *testing.T) {
	prog := parseOK(t, "a.b[0](x).c;")
	expr := prog.Stmts[0].(*ExprStmt).Expr
	member, ok := expr.(*MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "c", member.Name)
	call, ok := member.Target.(*CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	index, ok := call.Callee.(*IndexExpr)
	require.True(t, ok)
	inner, ok := index.Target.(*MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name)
}

func TestParser_Literals(t *testing.T) {
	prog := parseOK(t, `[1, "two", true, null];`)
	arr := prog.Stmts[0].(*ExprStmt).Expr.(*ArrayLit)
	require.Len(t, arr.Elements, 4)

	prog = parseOK(t, `{name: "John", "full name": "John Doe", age: 30};`)
	obj := prog.Stmts[0].(*ExprStmt).Expr.(*ObjectLit)
	assert.Equal(t, []string{"name", "full name", "age"}, obj.Keys)
	require.Len(t, obj.Values, 3)

	prog = parseOK(t, "let f = fn(x) { return x; };")
	fnLit := prog.Stmts[0].(*LetStmt).Init.(*FunctionLit)
	assert.Equal(t, []string{"x"}, fnLit.Params)
}

func TestParser_IfElseChain(t *testing.T) {
	prog := parseOK(t, "if a { } else if b { } else { }")
	ifStmt := prog.Stmts[0].(*IfStmt)
	elseIf, ok := ifStmt.Else.(*IfStmt)
	require.True(t, ok)
	_, ok = elseIf.Else.(*BlockStmt)
	assert.True(t, ok)
}

func TestParser_ForBothForms(t *testing.T) {
	trailing := parseOK(t, "for let i = 0; i < n; ++i; { body(); }")
	conventional := parseOK(t, "for let i = 0; i < n; ++i { body(); }")

	for _, prog := range []*Program{trailing, conventional} {
		forStmt, ok := prog.Stmts[0].(*ForStmt)
		require.True(t, ok)
		_, ok = forStmt.Init.(*LetStmt)
		assert.True(t, ok)
		_, ok = forStmt.Cond.(*BinaryExpr)
		assert.True(t, ok)
		_, ok = forStmt.Step.(*UnaryExpr)
		assert.True(t, ok)
		require.NotNil(t, forStmt.Body)
	}

	// Both surface forms produce the same tree.
	assert.Equal(t, Print(trailing), Print(conventional))
}

func TestParser_Positions(t *testing.T) {
	prog := parseOK(t, "let x = 1;\nlet y = 2;")
	require.Len(t, prog.Stmts, 2)
	assert.Equal(t, 1, prog.Stmts[0].Position().Line)
	assert.Equal(t, 2, prog.Stmts[1].Position().Line)
}

func TestParser_InvalidAssignmentTarget(t *testing.T) {
	msg := parseFail(t, "1 + 2 = 3;")
	assert.Contains(t, msg, "InvalidAssignmentTarget")
}

func TestParser_UnterminatedBlock(t *testing.T) {
	msg := parseFail(t, "while true { foo();")
	assert.Contains(t, msg, "UnterminatedBlock")
}

func TestParser_UnexpectedToken(t *testing.T) {
	msg := parseFail(t, "let = 5;")
	assert.Contains(t, msg, "UnexpectedToken")
}

func TestParser_AbortsAtFirstError(t *testing.T) {
	_, diags := ParseSource("let = 1; let = 2; let = 3;")
	require.NotEmpty(t, diags)
	assert.Len(t, diags, 1)
}

func TestParser_LexErrorsSurface(t *testing.T) {
	_, diags := ParseSource("let x = @;")
	require.NotEmpty(t, diags)
	assert.Equal(t, "LexError", diags[0].Kind)
}
