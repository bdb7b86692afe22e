/*
File   : pitlang/eval/eval_assignments.go
Package: eval

Assignment and prefix ++/--, built on shared lvalue read/write helpers.
An assignment target is an Identifier, IndexExpr or MemberExpr; the
parser rejects everything else before the evaluator ever sees it.
*/
package eval

import (
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
)

func (e *Evaluator) evalAssignExpr(n *parser.AssignExpr) object.Value {
	value := e.Eval(n.Value)
	if isError(value) {
		return value
	}
	return e.writeLValue(n.Target, value)
}

// evalIncDec implements prefix ++/--: read the target, add delta, write
// back, yield the new value.
func (e *Evaluator) evalIncDec(n *parser.UnaryExpr, delta float64) object.Value {
	switch n.Operand.(type) {
	case *parser.Identifier, *parser.IndexExpr, *parser.MemberExpr:
	default:
		return e.newError(n.Pos, object.TypeError, "%q requires a variable, index or member target", n.Op)
	}
	current := e.Eval(n.Operand)
	if isError(current) {
		return current
	}
	num, ok := current.(*object.Number)
	if !ok {
		return e.newError(n.Pos, object.TypeError, "%q requires a number target, got %s", n.Op, current.Kind())
	}
	updated := &object.Number{Value: num.Value + delta}
	if result := e.writeLValue(n.Operand, updated); isError(result) {
		return result
	}
	return updated
}

// writeLValue stores value into target and yields value on success.
func (e *Evaluator) writeLValue(target parser.Expr, value object.Value) object.Value {
	switch t := target.(type) {
	case *parser.Identifier:
		if !e.Env.Assign(t.Name, value) {
			return e.newError(t.Pos, object.NameError, "cannot assign to undeclared identifier: (%s)", t.Name)
		}
		return value
	case *parser.IndexExpr:
		return e.writeIndex(t, value)
	case *parser.MemberExpr:
		container := e.Eval(t.Target)
		if isError(container) {
			return container
		}
		obj, ok := container.(*object.Object)
		if !ok {
			return e.newError(t.Pos, object.TypeError, "cannot set member %q on a %s", t.Name, container.Kind())
		}
		obj.Set(t.Name, value)
		return value
	default:
		return e.newError(target.Position(), object.TypeError, "invalid assignment target")
	}
}

func (e *Evaluator) writeIndex(t *parser.IndexExpr, value object.Value) object.Value {
	container := e.Eval(t.Target)
	if isError(container) {
		return container
	}
	index := e.Eval(t.Index)
	if isError(index) {
		return index
	}

	switch c := container.(type) {
	case *object.Array:
		num, ok := index.(*object.Number)
		if !ok {
			return e.newError(t.Pos, object.TypeError, "array index must be a number, got %s", index.Kind())
		}
		idx, ok := object.NormalizeIndex(int(num.Value), len(c.Elements))
		if !ok {
			return e.newError(t.Pos, object.IndexError, "array index %d out of range (length %d)", int(num.Value), len(c.Elements))
		}
		c.Elements[idx] = value
		return value
	case *object.Object:
		key, ok := index.(*object.String)
		if !ok {
			return e.newError(t.Pos, object.TypeError, "object index must be a string, got %s", index.Kind())
		}
		c.Set(key.Value, value)
		return value
	default:
		return e.newError(t.Pos, object.TypeError, "cannot index-assign into a %s", container.Kind())
	}
}
