/*
File   : pitlang/eval/evaluator.go
Package: eval

Package eval is PitLang's tree-walking evaluator: a set of mutually
recursive procedures over the parser's AST, threading the current lexical
environment and producing object.Value results. Failed evaluations flow
back as *object.RuntimeError values; a function's `return` flows back as
*object.ReturnSignal and is unwrapped at the call frame, the only place a
non-local signal is converted back into a plain value.
*/
package eval

import (
	"io"

	"github.com/akashmaji946/pitlang/environment"
	"github.com/akashmaji946/pitlang/function"
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
	"github.com/akashmaji946/pitlang/std"
)

// DefaultMaxDepth is the call-depth ceiling past which a call raises
// StackOverflow. Go cannot recover a real stack-overflow fault, so the
// evaluator counts call frames cooperatively instead; the ceiling is
// configurable through .pitlang.yaml.
const DefaultMaxDepth = 5000

// Evaluator holds the state for evaluating PitLang AST nodes: the current
// environment, the std host, and the call-depth counter.
type Evaluator struct {
	Env      *environment.Environment
	Root     *environment.Environment
	Host     *std.Host
	MaxDepth int

	depth int
}

// NewEvaluator creates an Evaluator whose root environment binds `std`
// built against host. Pass nil to get a default host (stdout, stdin,
// empty argv).
func NewEvaluator(host *std.Host) *Evaluator {
	if host == nil {
		host = std.NewHost(nil)
	}
	root := environment.New(nil)
	root.Define("std", std.New(host))
	return &Evaluator{
		Env:      root,
		Root:     root,
		Host:     host,
		MaxDepth: DefaultMaxDepth,
	}
}

// SetWriter redirects std.print/std.println output.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Host.SetWriter(w)
}

// SetReader redirects std.get_line input.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Host.SetReader(r)
}

// SetMaxDepth overrides the call-depth ceiling.
func (e *Evaluator) SetMaxDepth(depth int) {
	if depth > 0 {
		e.MaxDepth = depth
	}
}

// CallFunction invokes a user function with args: a fresh scope chained to
// the function's captured environment, parameters bound positionally
// (extra arguments discarded, missing ones bound to Null), body executed,
// and the return signal unwrapped back into a plain value. pos is the call
// site, used for the StackOverflow diagnostic.
func (e *Evaluator) CallFunction(fn *function.Function, args []object.Value, pos parser.Pos) object.Value {
	if e.depth >= e.MaxDepth {
		return e.newError(pos, object.StackOverflow, "call depth exceeded %d frames", e.MaxDepth)
	}
	e.depth++
	defer func() { e.depth-- }()

	callEnv := environment.New(fn.Env)
	for i, param := range fn.Params {
		if i < len(args) {
			callEnv.Define(param, args[i])
		} else {
			callEnv.Define(param, object.NullValue)
		}
	}

	prev := e.Env
	e.Env = callEnv
	result := e.evalStatements(fn.Body.Stmts)
	e.Env = prev

	if isError(result) {
		return result
	}
	// Only an explicit `return` produces a value; a body that falls
	// through yields Null.
	if ret, ok := result.(*object.ReturnSignal); ok {
		return ret.Value
	}
	return object.NullValue
}
