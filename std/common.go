/*
File   : pitlang/std/common.go
Package: std

The console and process builtins (print, println, argv, get_line, exit)
plus the JSON round-trip pair. print concatenates each argument's
canonical string form with no separator; println adds a trailing newline.
*/
package std

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/akashmaji946/pitlang/object"
)

func (h *Host) print(args []object.Value) object.Value {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(a.String())
	}
	fmt.Fprint(h.Writer, sb.String())
	return object.NullValue
}

func (h *Host) println(args []object.Value) object.Value {
	h.print(args)
	fmt.Fprint(h.Writer, "\n")
	return object.NullValue
}

// argv returns a fresh Array each call: element 0 is the interpreter name,
// element 1 the script path, then the trailing arguments.
func (h *Host) argv(args []object.Value) object.Value {
	elements := make([]object.Value, len(h.Argv))
	for i, a := range h.Argv {
		elements[i] = &object.String{Value: a}
	}
	return &object.Array{Elements: elements}
}

// getLine reads one line from the host reader, excluding the newline.
// Returns Null on EOF.
func (h *Host) getLine(args []object.Value) object.Value {
	line, err := h.Reader.ReadString('\n')
	if err != nil && line == "" {
		return object.NullValue
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return &object.String{Value: line}
}

func (h *Host) exitBuiltin(args []object.Value) object.Value {
	code := 0
	if len(args) > 0 {
		n, err := numberArg("std.exit", args, 0)
		if err != nil {
			return err
		}
		code = int(n.Value)
	}
	h.Exit(code)
	return object.NullValue
}

// jsonEncode converts a PitLang value to its JSON text. Functions and file
// handles are not encodable; encoding them (or a cyclic container) yields
// Null rather than an error, matching the Null-sentinel convention of the
// I/O builtins.
func (h *Host) jsonEncode(args []object.Value) object.Value {
	if len(args) != 1 {
		return arityError("std.json_encode", "1", len(args))
	}
	goValue, ok := valueToGo(args[0], make(map[object.Value]bool))
	if !ok {
		return object.NullValue
	}
	data, err := json.Marshal(goValue)
	if err != nil {
		return object.NullValue
	}
	return &object.String{Value: string(data)}
}

// jsonDecode parses JSON text into PitLang values: objects become Objects
// (keys sorted for a deterministic member order), arrays become Arrays,
// numbers become Numbers. Returns Null on malformed input.
func (h *Host) jsonDecode(args []object.Value) object.Value {
	if len(args) != 1 {
		return arityError("std.json_decode", "1", len(args))
	}
	s, err := stringArg("std.json_decode", args, 0)
	if err != nil {
		return err
	}
	var goValue interface{}
	if jsonErr := json.Unmarshal([]byte(s.Value), &goValue); jsonErr != nil {
		return object.NullValue
	}
	return goToValue(goValue)
}

func valueToGo(v object.Value, seen map[object.Value]bool) (interface{}, bool) {
	switch val := v.(type) {
	case *object.Number:
		return val.Value, true
	case *object.Bool:
		return val.Value, true
	case *object.String:
		return val.Value, true
	case *object.Null:
		return nil, true
	case *object.Array:
		if seen[v] {
			return nil, false
		}
		seen[v] = true
		defer delete(seen, v)
		out := make([]interface{}, len(val.Elements))
		for i, e := range val.Elements {
			converted, ok := valueToGo(e, seen)
			if !ok {
				return nil, false
			}
			out[i] = converted
		}
		return out, true
	case *object.Object:
		if seen[v] {
			return nil, false
		}
		seen[v] = true
		defer delete(seen, v)
		out := make(map[string]interface{}, len(val.Keys))
		for _, k := range val.Keys {
			converted, ok := valueToGo(val.Values[k], seen)
			if !ok {
				return nil, false
			}
			out[k] = converted
		}
		return out, true
	default:
		return nil, false
	}
}

func goToValue(v interface{}) object.Value {
	switch val := v.(type) {
	case nil:
		return object.NullValue
	case bool:
		return object.BoolOf(val)
	case float64:
		return &object.Number{Value: val}
	case string:
		return &object.String{Value: val}
	case []interface{}:
		elements := make([]object.Value, len(val))
		for i, e := range val {
			elements[i] = goToValue(e)
		}
		return &object.Array{Elements: elements}
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := object.NewObject()
		for _, k := range keys {
			obj.Set(k, goToValue(val[k]))
		}
		return obj
	default:
		return object.NullValue
	}
}
