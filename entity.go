package modelguard

import "github.com/dmitrymomot/modelguard/pkg/errbag"

// Entity is the contract every validatable type satisfies. Kind names the
// type's schema table in the registry; the remaining surface comes from an
// embedded Model, which also seals the interface against accidental
// implementations.
type Entity interface {
	// Kind returns the schema kind the entity registered under.
	Kind() string

	model() *Model
}

// Identifiable is implemented by collection items that expose a stable
// identifier. When an item reports a key, violation paths use it instead of
// the item's positional index.
type Identifiable interface {
	// ItemKey returns the stable identifier and whether it is set.
	ItemKey() (string, bool)
}

// Model carries the validation bookkeeping an entity owns: its attached
// guards and the error bag produced by the last Validate call. Embed it in a
// domain struct to make the struct an Entity:
//
//	type Order struct {
//	    modelguard.Model `json:"-"`
//	    OrderNumber string
//	}
//
//	func (o *Order) Kind() string { return "order" }
//
// Model is deliberately invisible to the traversal engine — it is never
// declared as a schema field, so it can never recurse into itself.
type Model struct {
	guards []Guard
	errors *errbag.Bag
}

// AttachGuard registers a business-rule guard. Guards run in attachment
// order after syntactic validation succeeds; nil guards are ignored.
func (m *Model) AttachGuard(g Guard) {
	if g != nil {
		m.guards = append(m.guards, g)
	}
}

// Guards returns the attached guards in attachment order.
func (m *Model) Guards() []Guard {
	return m.guards
}

// Errors returns the error bag produced by the last Validate call. Before
// the first call it returns an empty bag.
func (m *Model) Errors() *errbag.Bag {
	if m.errors == nil {
		return errbag.New()
	}
	return m.errors
}

// HasErrors reports whether the last Validate call recorded any violations.
func (m *Model) HasErrors() bool {
	return m.errors != nil && m.errors.Any()
}

func (m *Model) model() *Model { return m }
