package modelguard

import "errors"

var (
	// ErrNilEntity is returned when Validate is called with a nil entity.
	ErrNilEntity = errors.New("entity is nil")

	// ErrUnknownKind is returned when an entity's kind has no registered
	// schema table.
	ErrUnknownKind = errors.New("no schema registered for kind")

	// ErrCyclicGraph is returned when traversal meets an entity that is
	// already on the current path. Cyclic relation graphs are a modelling
	// error, not a validation failure.
	ErrCyclicGraph = errors.New("cyclic entity graph")

	// ErrGuardContract is returned when a guard violates its contract, for
	// example by returning neither a result nor an error.
	ErrGuardContract = errors.New("guard violated its contract")
)
