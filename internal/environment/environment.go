// Package environment implements the lexically-scoped, chained name->value
// mapping described in spec.md §3/§4.4.
package environment

import "github.com/cwbudde/vaina/internal/value"

// Environment is a single scope frame: a store plus an optional parent link.
type Environment struct {
	store map[string]value.Value
	outer *Environment
}

// New creates a root-level environment with no outer scope.
func New() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// NewEnclosed creates an environment nested inside outer.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]value.Value), outer: outer}
}

// Get implements the *Read* operation (spec.md §4.4): search the current
// frame, then walk the parent chain. The bool is false if undefined
// anywhere in the chain (callers raise UndefinedVariable).
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Define implements the *Write* operation (spec.md §4.4): unconditional
// insertion into the current frame, shadowing any outer binding.
func (e *Environment) Define(name string, v value.Value) {
	e.store[name] = v
}

// Outer returns the parent frame, or nil at the root.
func (e *Environment) Outer() *Environment {
	return e.outer
}
