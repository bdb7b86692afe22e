/*
File   : pitlang/function/function.go
Package: function

Function lives in its own package, separate from object, so that the
captured-environment reference can point at environment.Environment
without object importing environment (and environment importing object
for the values it stores).
*/
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/pitlang/environment"
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
)

// Function is a user-defined PitLang function value: its parameter names,
// its body block, and the environment it closed over at the point its
// FunctionLiteral was evaluated. The Env reference is kept for the
// function's entire lifetime, which is what lets a later write to a
// captured variable be observed on the next call.
type Function struct {
	Name   string
	Params []string
	Body   *parser.BlockStmt
	Env    *environment.Environment
}

func (f *Function) Kind() object.Kind { return object.FunctionKind }

func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("func(%s)", name)
}

func (f *Function) Inspect() string {
	return fmt.Sprintf("<func %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}
