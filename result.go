package modelguard

// Result is the mergeable verdict a Guard returns: a validity flag plus
// per-field violation messages. It starts valid; any AddViolation flips it
// invalid for good.
type Result struct {
	valid  bool
	fields []string
	byPath map[string][]string
}

// OK constructs a valid empty result.
func OK() *Result {
	return &Result{valid: true, byPath: make(map[string][]string)}
}

// Fail constructs an already-invalid empty result, for guards that want to
// short-circuit without itemizing violations.
func Fail() *Result {
	r := OK()
	r.valid = false
	return r
}

// AddViolation appends a message to the field's list and marks the result
// invalid. The field is whatever path the guard chooses, including synthetic
// collection paths such as "items.3.startDate". Chainable.
func (r *Result) AddViolation(field, message string) *Result {
	if _, ok := r.byPath[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.byPath[field] = append(r.byPath[field], message)
	r.valid = false
	return r
}

// Merge folds other into r: failure propagates, and violation lists are
// unioned per field without dropping or deduplicating anything. Merging a
// valid empty result (or nil) is a no-op. Chainable.
func (r *Result) Merge(other *Result) *Result {
	if other == nil {
		return r
	}
	if !other.valid {
		r.valid = false
	}
	for _, field := range other.fields {
		for _, msg := range other.byPath[field] {
			if _, ok := r.byPath[field]; !ok {
				r.fields = append(r.fields, field)
			}
			r.byPath[field] = append(r.byPath[field], msg)
		}
	}
	return r
}

// Valid reports the verdict.
func (r *Result) Valid() bool {
	return r.valid
}

// Fields returns the violated field paths in append order.
func (r *Result) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Violations returns the messages recorded for the field, in append order.
func (r *Result) Violations(field string) []string {
	return r.byPath[field]
}
