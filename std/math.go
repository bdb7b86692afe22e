/*
File   : pitlang/std/math.go
Package: std

The Number method table and std.random(). pow uses math.Pow, which is
exact for integral bases and exponents well past 2^30.
*/
package std

import (
	"math"

	"github.com/akashmaji946/pitlang/object"
)

// NumberMethod returns the built-in method named name bound to n, or
// false if the Number table has no such method.
func NumberMethod(n *object.Number, name string) (*object.Builtin, bool) {
	var fn object.BuiltinFn
	switch name {
	case "to_string":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("number.to_string", "0", len(args))
			}
			return &object.String{Value: n.String()}
		}
	case "round":
		fn = numberUnary("number.round", n, math.Round)
	case "floor":
		fn = numberUnary("number.floor", n, math.Floor)
	case "ceil":
		fn = numberUnary("number.ceil", n, math.Ceil)
	case "sqrt":
		fn = numberUnary("number.sqrt", n, math.Sqrt)
	case "abs":
		fn = numberUnary("number.abs", n, math.Abs)
	case "pow":
		fn = numberBinary("number.pow", n, math.Pow)
	case "min":
		fn = numberBinary("number.min", n, math.Min)
	case "max":
		fn = numberBinary("number.max", n, math.Max)
	default:
		return nil, false
	}
	return &object.Builtin{Name: "number." + name, Fn: fn}, true
}

func numberUnary(name string, recv *object.Number, op func(float64) float64) object.BuiltinFn {
	return func(args []object.Value) object.Value {
		if len(args) != 0 {
			return arityError(name, "0", len(args))
		}
		return &object.Number{Value: op(recv.Value)}
	}
}

func numberBinary(name string, recv *object.Number, op func(float64, float64) float64) object.BuiltinFn {
	return func(args []object.Value) object.Value {
		if len(args) != 1 {
			return arityError(name, "1", len(args))
		}
		arg, err := numberArg(name, args, 0)
		if err != nil {
			return err
		}
		return &object.Number{Value: op(recv.Value, arg.Value)}
	}
}

// random returns a Number in [0, 1).
func (h *Host) random(args []object.Value) object.Value {
	if len(args) != 0 {
		return arityError("std.random", "0", len(args))
	}
	return &object.Number{Value: h.Rand.Float64()}
}
