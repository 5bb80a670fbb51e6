// Package modelguard is a declarative object-graph validation engine: given
// an entity whose fields carry constraint descriptors, it produces a
// path-addressed collection of violations by applying per-field syntactic
// rules, recursing into nested entities and collections of entities, and —
// only when that stage found nothing — running pluggable business-rule
// guards against the whole object.
//
// # Architecture
//
// The engine is split into small, separately testable stages:
//
//   - pkg/schema  – explicit field-descriptor tables per entity kind; no
//     runtime reflection, ever.
//   - pkg/rules   – immutable constraint descriptors with pure evaluators.
//   - pkg/errbag  – the per-call error collector, keyed by dot-separated
//     field path.
//   - Engine      – the pure syntactic traversal over schema tables.
//   - Validator   – the orchestrator composing the syntactic stage with the
//     guard stage and storing the result on the entity.
//
// Violation paths are built deterministically: a direct field name, or
// "field.subpath" for nested entities, or "field.<keyOrIndex>.subpath" for
// collection items — the stable item identifier when the item exposes one,
// its zero-based index otherwise.
//
// # Usage
//
//	type Order struct {
//	    modelguard.Model `json:"-"`
//	    OrderNumber string
//	}
//
//	func (o *Order) Kind() string { return "order" }
//
//	reg := schema.NewRegistry()
//	reg.MustRegister(&schema.Type{
//	    Kind: "order",
//	    Fields: []schema.Field{{
//	        Name:  "orderNumber",
//	        Rules: []rules.Descriptor{rules.Presence()},
//	        Value: func(e any) any { return e.(*Order).OrderNumber },
//	    }},
//	})
//
//	v := modelguard.New(reg)
//	order := &Order{}
//	order.AttachGuard(myUniquenessGuard)
//
//	ok, err := v.Validate(ctx, order)
//	if err != nil {
//	    // fault: schema misuse, cyclic graph, or failing guard I/O
//	}
//	if !ok {
//	    _ = order.Errors() // *errbag.Bag, queryable per field path
//	}
//
// # Error Handling
//
// Data violations and faults never mix. Invalid field values land in the
// entity's error bag and Validate returns false with a nil error. Structural
// misuse — an unregistered kind, a rule referencing a nonexistent sibling,
// a cyclic relation graph, a guard that fails or breaks its contract —
// aborts the call with a non-nil error and leaves the entity's error state
// untouched.
//
// # Concurrency
//
// A validation call is synchronous and single-threaded. Each call owns its
// error bag exclusively; validating two different entity instances
// concurrently is safe, validating the same instance concurrently is not.
// Guards may block on I/O — the engine imposes no timeout beyond the
// context the caller passes in.
package modelguard
