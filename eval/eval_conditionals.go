/*
File   : pitlang/eval/eval_conditionals.go
Package: eval
*/
package eval

import (
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
)

// evalIfStmt evaluates the condition for truthiness and runs the matching
// branch. Else is either a block or another IfStmt (an `else if` chain).
func (e *Evaluator) evalIfStmt(n *parser.IfStmt) object.Value {
	cond := e.Eval(n.Cond)
	if isError(cond) {
		return cond
	}
	if object.Truthy(cond) {
		return e.evalBlockStmt(n.Then)
	}
	if n.Else != nil {
		return e.Eval(n.Else)
	}
	return object.NullValue
}
