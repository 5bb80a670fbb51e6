package modelguard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/modelguard/pkg/errbag"
	"github.com/dmitrymomot/modelguard/pkg/schema"
)

// Engine is the syntactic validation stage: a pure traversal of an entity
// graph against the registered field-descriptor tables. It never touches
// guards and holds no per-call state, so one engine can serve any number of
// concurrent validations of distinct entities.
type Engine struct {
	schemas *schema.Registry
}

// NewEngine creates an engine over the given schema registry.
func NewEngine(reg *schema.Registry) *Engine {
	return &Engine{schemas: reg}
}

// Validate walks every declared field of e: nested entities and collections
// of entities recurse with dot-path prefixing, scalar leaves are checked
// against their rule descriptors. The returned bag holds all violations
// keyed by field path.
//
// Invalid data never produces an error. A non-nil error means structural
// misuse: an unregistered kind, a rule referencing a nonexistent sibling
// field, or a cycle in the entity graph.
func (en *Engine) Validate(e Entity) (*errbag.Bag, error) {
	if e == nil {
		return nil, ErrNilEntity
	}
	bag := errbag.New()
	if err := en.walk(e, "", bag, make(map[Entity]struct{})); err != nil {
		return nil, err
	}
	return bag, nil
}

// walk validates one entity, folding violations into bag under prefix.
// The path set detects cycles along the current traversal branch; entities
// legitimately shared between branches validate once per occurrence.
func (en *Engine) walk(e Entity, prefix string, bag *errbag.Bag, path map[Entity]struct{}) error {
	if _, onPath := path[e]; onPath {
		return fmt.Errorf("%w: kind %q at %q", ErrCyclicGraph, e.Kind(), strings.TrimSuffix(prefix, "."))
	}
	path[e] = struct{}{}
	defer delete(path, e)

	typ, ok := en.schemas.Lookup(e.Kind())
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind())
	}

	siblings := func(name string) (any, bool) {
		f, ok := typ.Field(name)
		if !ok {
			return nil, false
		}
		return resolve(f, e), true
	}

	for _, f := range typ.Fields {
		v := resolve(f, e)

		if child, ok := v.(Entity); ok {
			if err := en.walk(child, prefix+f.Name+".", bag, path); err != nil {
				return err
			}
			continue
		}

		if items, ok := v.([]Entity); ok && len(items) > 0 {
			for i, item := range items {
				if item == nil {
					continue
				}
				if err := en.walk(item, prefix+f.Name+"."+itemKey(item, i)+".", bag, path); err != nil {
					return err
				}
			}
			continue
		}

		// Scalar leaf, including nil, unset relations and empty collections:
		// evaluate every attached descriptor at the field's own path.
		for _, d := range f.Rules {
			viol, err := d.Eval(f.Name, v, siblings)
			if err != nil {
				return fmt.Errorf("kind %q: %w", e.Kind(), err)
			}
			if viol != nil {
				bag.AddViolation(prefix+f.Name, *viol)
			}
		}
	}
	return nil
}

// resolve reads the field's current value, falling back to its declared
// default when the accessor reports nil.
func resolve(f schema.Field, e Entity) any {
	v := f.Value(e)
	if v == nil && f.Default != nil {
		return f.Default
	}
	return v
}

// itemKey addresses a collection item by its stable identifier when it
// exposes one, else by zero-based position.
func itemKey(e Entity, i int) string {
	if id, ok := e.(Identifiable); ok {
		if key, set := id.ItemKey(); set && key != "" {
			return key
		}
	}
	return strconv.Itoa(i)
}
