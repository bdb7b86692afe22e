/*
File   : pitlang/eval/eval_loops.go
Package: eval

While and for loops. The for header opens its own scope so the init
declaration is visible to cond, step and body and dies at loop exit; the
step runs after every body iteration, including the one whose next cond
check exits.
*/
package eval

import (
	"github.com/akashmaji946/pitlang/environment"
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
)

func (e *Evaluator) evalWhileStmt(n *parser.WhileStmt) object.Value {
	for {
		cond := e.Eval(n.Cond)
		if isError(cond) {
			return cond
		}
		if !object.Truthy(cond) {
			return object.NullValue
		}
		result := e.evalBlockStmt(n.Body)
		if isError(result) || isReturn(result) {
			return result
		}
	}
}

func (e *Evaluator) evalForStmt(n *parser.ForStmt) object.Value {
	prev := e.Env
	e.Env = environment.New(prev)
	defer func() { e.Env = prev }()

	if n.Init != nil {
		init := e.Eval(n.Init)
		if isError(init) {
			return init
		}
	}
	for {
		if n.Cond != nil {
			cond := e.Eval(n.Cond)
			if isError(cond) {
				return cond
			}
			if !object.Truthy(cond) {
				return object.NullValue
			}
		}
		result := e.evalBlockStmt(n.Body)
		if isError(result) || isReturn(result) {
			return result
		}
		if n.Step != nil {
			step := e.Eval(n.Step)
			if isError(step) {
				return step
			}
		}
	}
}
