/*
File   : pitlang/environment/environment.go
Package: environment

Environment implements PitLang's lexical scope chain: a mapping from names
to object.Value plus an optional parent link. There is no const/var/
typed-let distinction here, only `let`, and no Copy operation: a Function
captures the live *Environment pointer directly, which is what makes
writes to a captured variable visible on the next call. A snapshot copy
at capture time would silently freeze closures instead.
*/
package environment

import "github.com/akashmaji946/pitlang/object"

// Environment is a single lexical scope frame: its own bindings plus an
// optional reference to the enclosing scope.
type Environment struct {
	vars   map[string]object.Value
	parent *Environment
}

// New creates an Environment with the given parent, or a root environment
// when parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]object.Value),
		parent: parent,
	}
}

// Define binds name to value in this scope, shadowing any outer binding of
// the same name. Used for `let`, function parameters, and the for-header's
// init declaration.
func (e *Environment) Define(name string, value object.Value) {
	e.vars[name] = value
}

// Lookup searches this scope and its parents for name, innermost first.
func (e *Environment) Lookup(name string) (object.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}
	return nil, false
}

// Assign locates the nearest enclosing scope that already defines name and
// overwrites the binding there. It reports false if no scope in the chain
// defines name - PitLang requires `let` to introduce a binding before it
// can be assigned.
func (e *Environment) Assign(name string, value object.Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = value
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return false
}
