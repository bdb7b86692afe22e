/*
File   : pitlang/eval/eval_helpers.go
Package: eval
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
)

func isError(v object.Value) bool {
	_, ok := v.(*object.RuntimeError)
	return ok
}

func isReturn(v object.Value) bool {
	_, ok := v.(*object.ReturnSignal)
	return ok
}

func (e *Evaluator) newError(pos parser.Pos, kind object.ErrorKindTag, format string, a ...interface{}) *object.RuntimeError {
	return &object.RuntimeError{
		ErrKind: kind,
		Message: fmt.Sprintf(format, a...),
		Line:    pos.Line,
		Col:     pos.Col,
	}
}

// withPos stamps pos onto an error that was created without position
// information (builtins do not know where they were called from).
func withPos(v object.Value, pos parser.Pos) object.Value {
	if err, ok := v.(*object.RuntimeError); ok && err.Line == 0 {
		err.Line = pos.Line
		err.Col = pos.Col
	}
	return v
}
