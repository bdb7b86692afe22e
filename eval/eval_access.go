/*
File   : pitlang/eval/eval_access.go
Package: eval

Index and member access plus calls. Member access on an Object resolves
user keys only (a miss reads as Null); on every other receiver it consults
the kind's fixed method table in std, yielding a builtin already bound to
the receiver.
*/
package eval

import (
	"github.com/akashmaji946/pitlang/function"
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
	"github.com/akashmaji946/pitlang/std"
)

func (e *Evaluator) evalIndexExpr(n *parser.IndexExpr) object.Value {
	target := e.Eval(n.Target)
	if isError(target) {
		return target
	}
	index := e.Eval(n.Index)
	if isError(index) {
		return index
	}

	switch t := target.(type) {
	case *object.Array:
		num, ok := index.(*object.Number)
		if !ok {
			return e.newError(n.Pos, object.TypeError, "array index must be a number, got %s", index.Kind())
		}
		idx, ok := object.NormalizeIndex(int(num.Value), len(t.Elements))
		if !ok {
			return e.newError(n.Pos, object.IndexError, "array index %d out of range (length %d)", int(num.Value), len(t.Elements))
		}
		return t.Elements[idx]
	case *object.Object:
		key, ok := index.(*object.String)
		if !ok {
			return e.newError(n.Pos, object.TypeError, "object index must be a string, got %s", index.Kind())
		}
		if v, present := t.Get(key.Value); present {
			return v
		}
		// A missing key reads as Null, not an error.
		return object.NullValue
	case *object.String:
		num, ok := index.(*object.Number)
		if !ok {
			return e.newError(n.Pos, object.TypeError, "string index must be a number, got %s", index.Kind())
		}
		runes := []rune(t.Value)
		idx, ok := object.NormalizeIndex(int(num.Value), len(runes))
		if !ok {
			return e.newError(n.Pos, object.IndexError, "string index %d out of range (length %d)", int(num.Value), len(runes))
		}
		return &object.String{Value: string(runes[idx])}
	default:
		return e.newError(n.Pos, object.TypeError, "cannot index a %s", target.Kind())
	}
}

func (e *Evaluator) evalMemberExpr(n *parser.MemberExpr) object.Value {
	target := e.Eval(n.Target)
	if isError(target) {
		return target
	}
	return e.memberOf(target, n.Name, n.Pos)
}

// memberOf resolves name against target: user keys on Objects shadow
// everything, other kinds consult their method table, and an Object key
// miss reads as Null just like an index miss.
func (e *Evaluator) memberOf(target object.Value, name string, pos parser.Pos) object.Value {
	switch t := target.(type) {
	case *object.Object:
		if v, present := t.Get(name); present {
			return v
		}
		return object.NullValue
	case *object.Array:
		if m, ok := std.ArrayMethod(t, name); ok {
			return m
		}
	case *object.String:
		if m, ok := std.StringMethod(t, name); ok {
			return m
		}
	case *object.Number:
		if m, ok := std.NumberMethod(t, name); ok {
			return m
		}
	}
	return e.newError(pos, object.TypeError, "type %s has no member %q", target.Kind(), name)
}

func (e *Evaluator) evalCallExpr(n *parser.CallExpr) object.Value {
	callee := e.Eval(n.Callee)
	if isError(callee) {
		return callee
	}

	args := make([]object.Value, 0, len(n.Args))
	for _, argExpr := range n.Args {
		arg := e.Eval(argExpr)
		if isError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	switch fn := callee.(type) {
	case *function.Function:
		return e.CallFunction(fn, args, n.Pos)
	case *object.Builtin:
		return withPos(fn.Fn(args), n.Pos)
	default:
		return e.newError(n.Pos, object.TypeError, "cannot call a %s", callee.Kind())
	}
}
