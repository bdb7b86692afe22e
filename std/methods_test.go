/*
File   : pitlang/std/methods_test.go
Package: std
*/
package std

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/pitlang/object"
)

func callMethod(t *testing.T, m *object.Builtin, args ...object.Value) object.Value {
	t.Helper()
	return m.Fn(args)
}

func TestArrayMethod_TableIsComplete(t *testing.T) {
	arr := &object.Array{}
	for _, name := range []string{"push", "pop", "get", "set", "length", "find", "copy"} {
		_, ok := ArrayMethod(arr, name)
		assert.True(t, ok, "missing array method %q", name)
	}
	_, ok := ArrayMethod(arr, "nope")
	assert.False(t, ok)
}

func TestArrayMethod_MutatesReceiverInPlace(t *testing.T) {
	arr := &object.Array{Elements: []object.Value{&object.Number{Value: 1}}}
	push, _ := ArrayMethod(arr, "push")
	callMethod(t, push, &object.Number{Value: 2})
	require.Len(t, arr.Elements, 2)

	pop, _ := ArrayMethod(arr, "pop")
	popped := callMethod(t, pop)
	assert.Equal(t, 2.0, popped.(*object.Number).Value)
	assert.Len(t, arr.Elements, 1)
}

func TestArrayMethod_SliceClamps(t *testing.T) {
	arr := &object.Array{Elements: []object.Value{
		&object.Number{Value: 1},
		&object.Number{Value: 2},
		&object.Number{Value: 3},
	}}
	slice, _ := ArrayMethod(arr, "slice")

	out := callMethod(t, slice, &object.Number{Value: 1}, &object.Number{Value: 99})
	assert.Len(t, out.(*object.Array).Elements, 2)

	out = callMethod(t, slice, &object.Number{Value: -2}, &object.Number{Value: 3})
	assert.Len(t, out.(*object.Array).Elements, 2)

	out = callMethod(t, slice, &object.Number{Value: 2}, &object.Number{Value: 1})
	assert.Len(t, out.(*object.Array).Elements, 0)
}

func TestStringMethod_TableIsComplete(t *testing.T) {
	s := &object.String{Value: "x"}
	for _, name := range []string{
		"to_string", "to_number", "to_float", "to_int", "length",
		"split", "trim", "replace", "find", "ord", "get",
	} {
		_, ok := StringMethod(s, name)
		assert.True(t, ok, "missing string method %q", name)
	}
	_, ok := StringMethod(s, "nope")
	assert.False(t, ok)
}

func TestStringMethod_CastCoercions(t *testing.T) {
	cases := []struct {
		input    string
		method   string
		expected float64
	}{
		{"42", "to_number", 42},
		{" 7 ", "to_number", 7},
		{"2.5", "to_float", 2.5},
		{"12.7", "to_int", 12},
		{"-3", "to_int", -3},
	}
	for _, tc := range cases {
		m, ok := StringMethod(&object.String{Value: tc.input}, tc.method)
		require.True(t, ok)
		result := callMethod(t, m)
		num, isNum := result.(*object.Number)
		require.True(t, isNum, "%s(%q) did not yield a number: %s", tc.method, tc.input, result.Inspect())
		assert.Equal(t, tc.expected, num.Value)
	}

	m, _ := StringMethod(&object.String{Value: "not a number"}, "to_number")
	assert.Equal(t, object.NullKind, callMethod(t, m).Kind())
}

func TestStringMethod_UnicodeAware(t *testing.T) {
	s := &object.String{Value: "héllo"}

	length, _ := StringMethod(s, "length")
	assert.Equal(t, 5.0, callMethod(t, length).(*object.Number).Value)

	get, _ := StringMethod(s, "get")
	assert.Equal(t, "é", callMethod(t, get, &object.Number{Value: 1}).(*object.String).Value)

	ord, _ := StringMethod(&object.String{Value: "é"}, "ord")
	assert.Equal(t, 233.0, callMethod(t, ord).(*object.Number).Value)
}

func TestNumberMethod_TableIsComplete(t *testing.T) {
	n := &object.Number{Value: 1}
	for _, name := range []string{"to_string", "round", "floor", "ceil"} {
		_, ok := NumberMethod(n, name)
		assert.True(t, ok, "missing number method %q", name)
	}
	_, ok := NumberMethod(n, "nope")
	assert.False(t, ok)
}

func TestNumberMethod_ToStringDropsIntegralFraction(t *testing.T) {
	m, _ := NumberMethod(&object.Number{Value: 31}, "to_string")
	assert.Equal(t, "31", callMethod(t, m).(*object.String).Value)

	m, _ = NumberMethod(&object.Number{Value: 2.5}, "to_string")
	assert.Equal(t, "2.5", callMethod(t, m).(*object.String).Value)
}
