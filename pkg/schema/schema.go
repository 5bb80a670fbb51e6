package schema

import (
	"fmt"

	"github.com/dmitrymomot/modelguard/pkg/rules"
)

// Accessor resolves a field's current value from an entity instance. It is
// written per field at type-registration time, so the traversal engine never
// inspects objects structurally at runtime.
//
// Contract: return nil (an untyped nil) when the field is unset — including
// unset relations — so the engine can apply declared defaults and skip
// recursion. Relation accessors return modelguard.Entity for a nested object
// or []modelguard.Entity for a collection.
type Accessor func(e any) any

// Field describes one data field of a registered type: its public name (used
// in violation paths), the rule descriptors attached to it, an optional
// default applied when the accessor reports nil, and the accessor itself.
//
// Infrastructure state (error bags, guard lists) is simply never declared as
// a Field, which keeps it out of traversal by construction.
type Field struct {
	Name    string
	Rules   []rules.Descriptor
	Default any
	Value   Accessor
}

// Type is the field-descriptor table for one entity kind.
type Type struct {
	Kind   string
	Fields []Field

	index map[string]int
}

// Field returns the descriptor for the named field.
func (t *Type) Field(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.Fields[i], true
}

// Registry holds the descriptor tables for all validatable types, keyed by
// kind. Build it once during initialization; lookups after that are
// read-only and safe to share.
type Registry struct {
	types map[string]*Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Register validates and adds a type table to the registry.
func (r *Registry) Register(t *Type) error {
	if t == nil || t.Kind == "" {
		return ErrEmptyKind
	}
	if _, ok := r.types[t.Kind]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, t.Kind)
	}

	t.index = make(map[string]int, len(t.Fields))
	for i, f := range t.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: kind %q, field %d", ErrEmptyFieldName, t.Kind, i)
		}
		if f.Value == nil {
			return fmt.Errorf("%w: kind %q, field %q", ErrNilAccessor, t.Kind, f.Name)
		}
		if _, ok := t.index[f.Name]; ok {
			return fmt.Errorf("%w: kind %q, field %q", ErrDuplicateField, t.Kind, f.Name)
		}
		t.index[f.Name] = i
	}

	r.types[t.Kind] = t
	return nil
}

// MustRegister is Register panicking on error, for init-time wiring where a
// broken table should prevent startup.
func (r *Registry) MustRegister(t *Type) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor table registered for kind.
func (r *Registry) Lookup(kind string) (*Type, bool) {
	t, ok := r.types[kind]
	return t, ok
}
