/*
File   : pitlang/std/strings.go
Package: std

The String method table. Indexing-style methods (get, ord, find, length)
work in code points, not bytes. The numeric coercions go through
spf13/cast so "3", "3.5" and " 7 " all parse the same lenient way.
*/
package std

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"

	"github.com/akashmaji946/pitlang/object"
)

// StringMethod returns the built-in method named name bound to s, or
// false if the String table has no such method.
func StringMethod(s *object.String, name string) (*object.Builtin, bool) {
	var fn object.BuiltinFn
	switch name {
	case "to_string":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("string.to_string", "0", len(args))
			}
			return s
		}
	case "to_number", "to_float":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("string."+name, "0", len(args))
			}
			parsed, err := cast.ToFloat64E(strings.TrimSpace(s.Value))
			if err != nil {
				return object.NullValue
			}
			return &object.Number{Value: parsed}
		}
	case "to_int":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("string.to_int", "0", len(args))
			}
			parsed, err := cast.ToFloat64E(strings.TrimSpace(s.Value))
			if err != nil {
				return object.NullValue
			}
			return &object.Number{Value: float64(int64(parsed))}
		}
	case "length":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("string.length", "0", len(args))
			}
			return &object.Number{Value: float64(utf8.RuneCountInString(s.Value))}
		}
	case "split":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("string.split", "1", len(args))
			}
			sep, err := stringArg("string.split", args, 0)
			if err != nil {
				return err
			}
			parts := strings.Split(s.Value, sep.Value)
			elements := make([]object.Value, len(parts))
			for i, p := range parts {
				elements[i] = &object.String{Value: p}
			}
			return &object.Array{Elements: elements}
		}
	case "trim":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("string.trim", "0", len(args))
			}
			return &object.String{Value: strings.TrimSpace(s.Value)}
		}
	case "replace":
		fn = func(args []object.Value) object.Value {
			if len(args) != 2 {
				return arityError("string.replace", "2", len(args))
			}
			old, err := stringArg("string.replace", args, 0)
			if err != nil {
				return err
			}
			new_, err := stringArg("string.replace", args, 1)
			if err != nil {
				return err
			}
			return &object.String{Value: strings.ReplaceAll(s.Value, old.Value, new_.Value)}
		}
	case "find":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("string.find", "1", len(args))
			}
			sub, err := stringArg("string.find", args, 0)
			if err != nil {
				return err
			}
			byteIdx := strings.Index(s.Value, sub.Value)
			if byteIdx < 0 {
				return &object.Number{Value: -1}
			}
			return &object.Number{Value: float64(utf8.RuneCountInString(s.Value[:byteIdx]))}
		}
	case "ord":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("string.ord", "0", len(args))
			}
			if s.Value == "" {
				return newError(object.IndexError, "ord of an empty string")
			}
			r, _ := utf8.DecodeRuneInString(s.Value)
			return &object.Number{Value: float64(r)}
		}
	case "get":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("string.get", "1", len(args))
			}
			n, err := numberArg("string.get", args, 0)
			if err != nil {
				return err
			}
			runes := []rune(s.Value)
			idx, ok := object.NormalizeIndex(int(n.Value), len(runes))
			if !ok {
				return newError(object.IndexError, "string index %d out of range (length %d)", int(n.Value), len(runes))
			}
			return &object.String{Value: string(runes[idx])}
		}
	case "upper":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("string.upper", "0", len(args))
			}
			return &object.String{Value: strings.ToUpper(s.Value)}
		}
	case "lower":
		fn = func(args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError("string.lower", "0", len(args))
			}
			return &object.String{Value: strings.ToLower(s.Value)}
		}
	case "contains":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("string.contains", "1", len(args))
			}
			sub, err := stringArg("string.contains", args, 0)
			if err != nil {
				return err
			}
			return object.BoolOf(strings.Contains(s.Value, sub.Value))
		}
	case "starts_with":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("string.starts_with", "1", len(args))
			}
			prefix, err := stringArg("string.starts_with", args, 0)
			if err != nil {
				return err
			}
			return object.BoolOf(strings.HasPrefix(s.Value, prefix.Value))
		}
	case "ends_with":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("string.ends_with", "1", len(args))
			}
			suffix, err := stringArg("string.ends_with", args, 0)
			if err != nil {
				return err
			}
			return object.BoolOf(strings.HasSuffix(s.Value, suffix.Value))
		}
	case "repeat":
		fn = func(args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError("string.repeat", "1", len(args))
			}
			n, err := numberArg("string.repeat", args, 0)
			if err != nil {
				return err
			}
			if n.Value < 0 {
				return newError(object.TypeError, "string.repeat: negative count %s", n.String())
			}
			return &object.String{Value: strings.Repeat(s.Value, int(n.Value))}
		}
	default:
		return nil, false
	}
	return &object.Builtin{Name: "string." + name, Fn: fn}, true
}
