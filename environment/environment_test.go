/*
File   : pitlang/environment/environment_test.go
Package: environment
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/pitlang/object"
)

func TestEnvironment_DefineAndLookup(t *testing.T) {
	env := New(nil)
	env.Define("x", &object.Number{Value: 1})

	v, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*object.Number).Value)

	_, ok = env.Lookup("missing")
	assert.False(t, ok)
}

func TestEnvironment_LookupWalksParents(t *testing.T) {
	outer := New(nil)
	outer.Define("x", &object.Number{Value: 1})
	inner := New(outer)

	v, ok := inner.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*object.Number).Value)
}

func TestEnvironment_DefineShadows(t *testing.T) {
	outer := New(nil)
	outer.Define("x", &object.Number{Value: 1})
	inner := New(outer)
	inner.Define("x", &object.Number{Value: 2})

	v, _ := inner.Lookup("x")
	assert.Equal(t, 2.0, v.(*object.Number).Value)
	v, _ = outer.Lookup("x")
	assert.Equal(t, 1.0, v.(*object.Number).Value)
}

func TestEnvironment_AssignHitsNearestDefiningScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", &object.Number{Value: 1})
	inner := New(outer)

	ok := inner.Assign("x", &object.Number{Value: 9})
	require.True(t, ok)
	v, _ := outer.Lookup("x")
	assert.Equal(t, 9.0, v.(*object.Number).Value)
}

func TestEnvironment_AssignFailsWithoutDeclaration(t *testing.T) {
	env := New(New(nil))
	assert.False(t, env.Assign("ghost", object.NullValue))
}
