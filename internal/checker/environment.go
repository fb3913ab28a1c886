package checker

import (
	"fmt"

	"github.com/softwcons/qlcheck/internal/types"
)

// TypeLookup resolves a question identifier to its declared type.
// Unknown identifiers resolve to types.Undefined.
type TypeLookup interface {
	Resolve(name string) types.Type
}

// Environment maps question identifiers to their declared types.
// QL has one flat namespace per form, so there is no parent chain.
type Environment struct {
	symbols map[string]types.Type
	order   []string
}

// NewEnvironment creates an empty environment
func NewEnvironment() *Environment {
	return &Environment{
		symbols: make(map[string]types.Type),
	}
}

// Define binds name to t. It returns an error and leaves the existing
// binding untouched if name is already defined.
func (e *Environment) Define(name string, t types.Type) error {
	if _, exists := e.symbols[name]; exists {
		return fmt.Errorf("question '%s' already defined", name)
	}
	e.symbols[name] = t
	e.order = append(e.order, name)
	return nil
}

// Resolve returns the type bound to name, or types.Undefined
func (e *Environment) Resolve(name string) types.Type {
	if t, ok := e.symbols[name]; ok {
		return t
	}
	return types.Undefined
}

// Defined reports whether name has a binding
func (e *Environment) Defined(name string) bool {
	_, ok := e.symbols[name]
	return ok
}

// Names returns the defined identifiers in declaration order
func (e *Environment) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Snapshot returns a read-only copy of the bindings
func (e *Environment) Snapshot() TypeMap {
	m := make(TypeMap, len(e.symbols))
	for k, v := range e.symbols {
		m[k] = v
	}
	return m
}

// TypeMap is an immutable identifier -> type mapping handed to later passes
type TypeMap map[string]types.Type

// Resolve returns the type bound to name, or types.Undefined
func (m TypeMap) Resolve(name string) types.Type {
	if t, ok := m[name]; ok {
		return t
	}
	return types.Undefined
}
