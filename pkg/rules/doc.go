// Package rules defines the declarative constraint descriptors the validation
// engine evaluates against scalar field values.
//
// A Descriptor couples a constraint kind (presence, length, range, format,
// cross-field comparison, conditional presence) with its parameters and a
// message template. Descriptors are immutable values built once at
// type-definition time and attached to schema fields; evaluating one is a
// pure function of the field value and a sibling-field lookup.
//
// # Usage
//
//	rules.Presence()
//	rules.MinLength(3).WithMessage("{name} needs {min}+ characters")
//	rules.SameAs("password")
//	rules.DateFormat("2006-01-02")
//	rules.RequiredIf("status", "completed")
//
// Violations render the template with the descriptor's parameters and carry
// the same values as structured context, so callers can re-render or
// translate messages without parsing them.
//
// # Error Handling
//
// Eval separates data violations from schema misuse: a bad field value yields
// a *errbag.Violation and a nil error, while a descriptor referencing a
// nonexistent sibling field yields ErrUnknownField. The engine treats the
// latter as fatal.
package rules
