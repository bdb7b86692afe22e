/*
File   : pitlang/eval/eval_collections.go
Package: eval

Array and object literals. Members are evaluated in source order and the
container is a fresh heap allocation, so two evaluations of the same
literal never alias.
*/
package eval

import (
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
)

func (e *Evaluator) evalArrayLit(n *parser.ArrayLit) object.Value {
	elements := make([]object.Value, 0, len(n.Elements))
	for _, elem := range n.Elements {
		v := e.Eval(elem)
		if isError(v) {
			return v
		}
		elements = append(elements, v)
	}
	return &object.Array{Elements: elements}
}

func (e *Evaluator) evalObjectLit(n *parser.ObjectLit) object.Value {
	obj := object.NewObject()
	for i, key := range n.Keys {
		v := e.Eval(n.Values[i])
		if isError(v) {
			return v
		}
		obj.Set(key, v)
	}
	return obj
}
