package rules

import "errors"

var (
	// ErrUnknownField is returned when a descriptor references a sibling
	// field that does not exist in the schema. This is a contract violation
	// by the schema author, not a data problem.
	ErrUnknownField = errors.New("rule references unknown sibling field")
)
