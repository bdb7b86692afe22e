/*
File   : pitlang/object/object_test.go
Package: object
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_CanonicalString(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{31, "31"},
		{-4, "-4"},
		{2.5, "2.5"},
		{0.125, "0.125"},
	}
	for _, tt := range tests {
		n := &Number{Value: tt.value}
		assert.Equal(t, tt.expected, n.String())
	}
}

func TestContainer_CanonicalStrings(t *testing.T) {
	arr := &Array{Elements: []Value{
		&Number{Value: 1},
		&String{Value: "a"},
		TrueValue,
		NullValue,
	}}
	assert.Equal(t, "[1, a, true, null]", arr.String())

	obj := NewObject()
	obj.Set("a", &Number{Value: 1})
	obj.Set("b", &Number{Value: 2})
	assert.Equal(t, "{a: 1, b: 2}", obj.String())
}

func TestObject_PreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("z", NullValue)
	obj.Set("a", NullValue)
	obj.Set("m", NullValue)
	obj.Set("a", TrueValue) // update must not reorder
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys)
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(FalseValue))
	assert.False(t, Truthy(NullValue))
	assert.False(t, Truthy(&Number{Value: 0}))
	assert.False(t, Truthy(&String{Value: ""}))

	assert.True(t, Truthy(TrueValue))
	assert.True(t, Truthy(&Number{Value: 0.5}))
	assert.True(t, Truthy(&String{Value: "0"}))
	assert.True(t, Truthy(&Array{}))
	assert.True(t, Truthy(NewObject()))
}

func TestEqual_StructuralForScalars(t *testing.T) {
	assert.True(t, Equal(&Number{Value: 1}, &Number{Value: 1}))
	assert.False(t, Equal(&Number{Value: 1}, &Number{Value: 2}))
	assert.True(t, Equal(&String{Value: "a"}, &String{Value: "a"}))
	assert.True(t, Equal(NullValue, &Null{}))
	assert.False(t, Equal(&Number{Value: 1}, &String{Value: "1"}))
}

func TestEqual_IdentityForContainers(t *testing.T) {
	a := &Array{}
	b := &Array{}
	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, b))

	o := NewObject()
	p := NewObject()
	assert.True(t, Equal(o, o))
	assert.False(t, Equal(o, p))
}

func TestNormalizeIndex(t *testing.T) {
	idx, ok := NormalizeIndex(0, 3)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = NormalizeIndex(-1, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = NormalizeIndex(3, 3)
	assert.False(t, ok)
	_, ok = NormalizeIndex(-4, 3)
	assert.False(t, ok)
	_, ok = NormalizeIndex(0, 0)
	assert.False(t, ok)
}
