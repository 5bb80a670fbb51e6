package modelguard

import "context"

// Guard is a pluggable business-rule check run against a whole entity after
// syntactic validation found nothing. Implementations may read external
// state (a database, a cache) but must not mutate the entity's data fields.
//
// A failing check is ordinary data: return a Result carrying violations and
// a nil error. A non-nil error is a fault — a broken query, a violated
// contract — and aborts the validation call instead of being absorbed into
// the error bag.
//
// Because guards only run on syntactically clean entities, implementations
// may assume their inputs already satisfy the field-level format rules.
type Guard interface {
	Validate(ctx context.Context, e Entity) (*Result, error)
}

// GuardFunc adapts a plain function to the Guard interface.
type GuardFunc func(ctx context.Context, e Entity) (*Result, error)

// Validate calls f.
func (f GuardFunc) Validate(ctx context.Context, e Entity) (*Result, error) {
	return f(ctx, e)
}
