package schema

import "errors"

var (
	// ErrEmptyKind is returned when registering a nil type or one without a kind.
	ErrEmptyKind = errors.New("schema type must have a kind")

	// ErrDuplicateKind is returned when a kind is registered twice.
	ErrDuplicateKind = errors.New("schema kind already registered")

	// ErrEmptyFieldName is returned when a field has no name.
	ErrEmptyFieldName = errors.New("schema field must have a name")

	// ErrNilAccessor is returned when a field has no value accessor.
	ErrNilAccessor = errors.New("schema field must have a value accessor")

	// ErrDuplicateField is returned when two fields of one type share a name.
	ErrDuplicateField = errors.New("schema field name already declared")
)
