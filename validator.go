package modelguard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/modelguard/pkg/schema"
)

// stage tracks where a validation call is in its lifecycle. The progression
// is linear: syntactic checking always runs, guards run only when it found
// nothing, and both stages fold into the same error bag.
type stage string

const (
	stageSyntactic stage = "syntactic"
	stageValid     stage = "valid"
	stageInvalid   stage = "invalid"
)

// Validator orchestrates the two validation stages over a shared schema
// registry. Construct one per application (or per test) and pass it around
// explicitly; there is no package-level singleton.
//
// A validator is stateless between calls and safe for concurrent use as long
// as each call validates a distinct entity instance.
type Validator struct {
	engine *Engine
	log    *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for per-stage debug records.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// New creates a validator over the given schema registry.
func New(reg *schema.Registry, opts ...Option) *Validator {
	v := &Validator{
		engine: NewEngine(reg),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs the full validation of e and stores the resulting error bag
// on the entity, where it stays queryable via Errors/HasErrors until the
// next call overwrites it.
//
// Stages:
//  1. Syntactic: the traversal engine checks every field and nested entity.
//     Any violation here is terminal — guards are skipped entirely.
//  2. Guards: attached guards run in attachment order; each result's
//     violations are appended to the same bag under the paths the guard
//     chose, verbatim.
//
// The boolean reports whether the bag is empty at the terminal stage. A
// non-nil error is a fault (schema misuse, cyclic graph, or a failing
// guard); the entity's error state is left untouched in that case.
//
// Validation is recomputed from current field state on every call: two calls
// on an unchanged entity produce identical bags.
func (v *Validator) Validate(ctx context.Context, e Entity) (bool, error) {
	if e == nil {
		return false, ErrNilEntity
	}

	bag, err := v.engine.Validate(e)
	if err != nil {
		return false, err
	}

	if bag.Any() {
		e.model().errors = bag
		v.log.DebugContext(ctx, "validation failed",
			slog.String("kind", e.Kind()),
			slog.String("stage", string(stageSyntactic)),
			slog.Int("violations", bag.Count()),
		)
		return false, nil
	}

	for i, g := range e.model().guards {
		res, err := g.Validate(ctx, e)
		if err != nil {
			return false, fmt.Errorf("guard %d (%T) on kind %q: %w", i, g, e.Kind(), err)
		}
		if res == nil {
			return false, fmt.Errorf("%w: guard %d (%T) returned neither result nor error", ErrGuardContract, i, g)
		}
		for _, field := range res.Fields() {
			for _, msg := range res.Violations(field) {
				bag.Add(field, msg, nil)
			}
		}
	}

	e.model().errors = bag

	final := stageValid
	if bag.Any() {
		final = stageInvalid
	}
	v.log.DebugContext(ctx, "validation finished",
		slog.String("kind", e.Kind()),
		slog.String("stage", string(final)),
		slog.Int("guards", len(e.model().guards)),
		slog.Int("violations", bag.Count()),
	)
	return !bag.Any(), nil
}
