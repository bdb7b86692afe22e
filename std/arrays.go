/*
File   : pitlang/std/arrays.go
Package: std

The Array method table. Every method is bound to its receiver at dispatch
time, so `a.push` evaluates to a callable that mutates `a` - and every
alias of `a` - in place.
*/
package std

import (
	"strings"

	"github.com/akashmaji946/pitlang/object"
)

// ArrayMethod returns the built-in method named name bound to arr, or
// false if the Array table has no such method.
func ArrayMethod(arr *object.Array, name string) (*object.Builtin, bool) {
	var fn object.BuiltinFn
	switch name {
	case "push":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("array.push", "1", len(args))
			}
			arr.Elements = append(arr.Elements, args[0])
			return arr
		}
	case "pop":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("array.pop", "0", len(args))
			}
			if len(arr.Elements) == 0 {
				return newError(object.IndexError, "pop from an empty array")
			}
			last := arr.Elements[len(arr.Elements)-1]
			arr.Elements = arr.Elements[:len(arr.Elements)-1]
			return last
		}
	case "get":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("array.get", "1", len(args))
			}
			n, err := numberArg("array.get", args, 0)
			if err != nil {
				return err
			}
			idx, ok := object.NormalizeIndex(int(n.Value), len(arr.Elements))
			if !ok {
				return newError(object.IndexError, "array index %d out of range (length %d)", int(n.Value), len(arr.Elements))
			}
			return arr.Elements[idx]
		}
	case "set":
		fn = func(args []object.Value) object.Value {
			if len(args) != 2 {
				return arityError("array.set", "2", len(args))
			}
			n, err := numberArg("array.set", args, 0)
			if err != nil {
				return err
			}
			idx, ok := object.NormalizeIndex(int(n.Value), len(arr.Elements))
			if !ok {
				return newError(object.IndexError, "array index %d out of range (length %d)", int(n.Value), len(arr.Elements))
			}
			arr.Elements[idx] = args[1]
			return args[1]
		}
	case "length":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("array.length", "0", len(args))
			}
			return &object.Number{Value: float64(len(arr.Elements))}
		}
	case "find":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("array.find", "1", len(args))
			}
			for i, e := range arr.Elements {
				if object.Equal(e, args[0]) {
					return &object.Number{Value: float64(i)}
				}
			}
			return &object.Number{Value: -1}
		}
	case "copy":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("array.copy", "0", len(args))
			}
			elements := make([]object.Value, len(arr.Elements))
			copy(elements, arr.Elements)
			return &object.Array{Elements: elements}
		}
	case "join":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("array.join", "1", len(args))
			}
			sep, err := stringArg("array.join", args, 0)
			if err != nil {
				return err
			}
			parts := make([]string, len(arr.Elements))
			for i, e := range arr.Elements {
				parts[i] = e.String()
			}
			return &object.String{Value: strings.Join(parts, sep.Value)}
		}
	case "slice":
		fn = func(args []object.Value) object.Value {
			if len(args) != 2 {
				return arityError("array.slice", "2", len(args))
			}
			start, err := numberArg("array.slice", args, 0)
			if err != nil {
				return err
			}
			end, err := numberArg("array.slice", args, 1)
			if err != nil {
				return err
			}
			lo, hi := clampRange(int(start.Value), int(end.Value), len(arr.Elements))
			elements := make([]object.Value, hi-lo)
			copy(elements, arr.Elements[lo:hi])
			return &object.Array{Elements: elements}
		}
	case "contains":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("array.contains", "1", len(args))
			}
			for _, e := range arr.Elements {
				if object.Equal(e, args[0]) {
					return object.TrueValue
				}
			}
			return object.FalseValue
		}
	default:
		return nil, false
	}
	return &object.Builtin{Name: "array." + name, Fn: fn}, true
}

// clampRange normalizes a [start, end) pair against length: negative
// bounds count from the end and everything is clamped into range, so
// slice never raises.
func clampRange(start, end, length int) (int, int) {
	if start < 0 {
		start += length
	}
	if end < 0 {
		end += length
	}
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start > end {
		return 0, 0
	}
	return start, end
}
