package errbag

import "encoding/json"

// Violation describes a single failed check at one field path. Context carries
// the same placeholder substitutions that produced Message, as structured data
// for programmatic consumers (API layers, translators).
type Violation struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// Bag accumulates violations keyed by dot-separated field path. Paths keep
// their insertion order, which matches traversal order, and violations within
// a path keep append order. A bag only grows; there is no removal operation.
//
// A bag is owned by a single validation pass and is not safe for concurrent
// use.
type Bag struct {
	paths []string
	items map[string][]Violation
}

// New creates an empty bag.
func New() *Bag {
	return &Bag{items: make(map[string][]Violation)}
}

// Add appends a violation built from a rendered message and its context.
func (b *Bag) Add(path, message string, context map[string]any) {
	b.AddViolation(path, Violation{Message: message, Context: context})
}

// AddViolation appends a violation at the given path.
func (b *Bag) AddViolation(path string, v Violation) {
	if _, ok := b.items[path]; !ok {
		b.paths = append(b.paths, path)
	}
	b.items[path] = append(b.items[path], v)
}

// For returns the violations recorded at path, empty if there are none.
func (b *Bag) For(path string) []Violation {
	return b.items[path]
}

// Any reports whether the bag holds at least one violation.
func (b *Bag) Any() bool {
	return len(b.paths) > 0
}

// Count returns the total number of violations across all paths, not the
// number of distinct paths.
func (b *Bag) Count() int {
	n := 0
	for _, vs := range b.items {
		n += len(vs)
	}
	return n
}

// Paths returns all paths with violations in insertion order.
func (b *Bag) Paths() []string {
	out := make([]string, len(b.paths))
	copy(out, b.paths)
	return out
}

// All returns the full path-to-violations mapping. The returned map is a
// shallow copy; mutating it does not affect the bag.
func (b *Bag) All() map[string][]Violation {
	out := make(map[string][]Violation, len(b.items))
	for path, vs := range b.items {
		out[path] = vs
	}
	return out
}

// Merge folds every violation of other into b, re-keying each path with
// prefix + ".". An empty prefix folds paths in verbatim. Nothing is ever
// dropped or deduplicated.
func (b *Bag) Merge(prefix string, other *Bag) {
	if other == nil {
		return
	}
	for _, path := range other.paths {
		key := path
		if prefix != "" {
			key = prefix + "." + path
		}
		for _, v := range other.items[path] {
			b.AddViolation(key, v)
		}
	}
}

// MarshalJSON renders the bag as {"path": [{"message": ..., "context": ...}]},
// the wire shape API layers render per-field errors from.
func (b *Bag) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.items)
}
