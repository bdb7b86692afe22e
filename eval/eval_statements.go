/*
File   : pitlang/eval/eval_statements.go
Package: eval

Program, let, fn declaration, return and block evaluation.
*/
package eval

import (
	"github.com/akashmaji946/pitlang/environment"
	"github.com/akashmaji946/pitlang/function"
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
)

// evalProgram runs the top-level statements and yields the last
// statement's value (the REPL prints it). A `return` at top level is
// tolerated: it stops the program, and its value is ignored.
func (e *Evaluator) evalProgram(n *parser.Program) object.Value {
	var result object.Value = object.NullValue
	for _, stmt := range n.Stmts {
		result = e.Eval(stmt)
		if isError(result) {
			return result
		}
		if isReturn(result) {
			return object.NullValue
		}
	}
	return result
}

// evalStatements runs stmts in the current environment without opening a
// new scope; the callers that need one (blocks, calls, for headers) open
// it themselves.
func (e *Evaluator) evalStatements(stmts []parser.Stmt) object.Value {
	var result object.Value = object.NullValue
	for _, stmt := range stmts {
		result = e.Eval(stmt)
		if isError(result) || isReturn(result) {
			return result
		}
	}
	return result
}

func (e *Evaluator) evalLetStmt(n *parser.LetStmt) object.Value {
	value := e.Eval(n.Init)
	if isError(value) {
		return value
	}
	e.Env.Define(n.Name, value)
	return object.NullValue
}

// evalFunctionDeclStmt desugars `fn name(...) {...}` into a let-bound
// FunctionLiteral: the function closes over the environment live at the
// declaration and its name shadows any outer binding.
func (e *Evaluator) evalFunctionDeclStmt(n *parser.FunctionDeclStmt) object.Value {
	fn := &function.Function{
		Name:   n.Name,
		Params: n.Params,
		Body:   n.Body,
		Env:    e.Env,
	}
	e.Env.Define(n.Name, fn)
	return object.NullValue
}

func (e *Evaluator) evalReturnStmt(n *parser.ReturnStmt) object.Value {
	var value object.Value = object.NullValue
	if n.Value != nil {
		value = e.Eval(n.Value)
		if isError(value) {
			return value
		}
	}
	return &object.ReturnSignal{Value: value}
}

// evalBlockStmt runs a block in a fresh scope chained to the current one.
func (e *Evaluator) evalBlockStmt(n *parser.BlockStmt) object.Value {
	prev := e.Env
	e.Env = environment.New(prev)
	result := e.evalStatements(n.Stmts)
	e.Env = prev
	return result
}
