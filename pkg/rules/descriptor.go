package rules

import (
	"fmt"
	"strings"
)

// Kind identifies the constraint a descriptor carries.
type Kind string

const (
	KindPresence   Kind = "presence"
	KindMinLength  Kind = "min_length"
	KindMinValue   Kind = "min_value"
	KindMaxValue   Kind = "max_value"
	KindEmail      Kind = "email"
	KindSameAs     Kind = "same_as"
	KindDateFormat Kind = "date_format"
	KindTimeFormat Kind = "time_format"
	KindRequiredIf Kind = "required_if"
)

// Descriptor is an immutable specification of one syntactic constraint on a
// field: a kind, its parameters, and a message template. Descriptors are
// built once at type-definition time via the constructor functions below and
// attached to schema fields; several descriptors may attach to one field.
//
// Message templates use named placeholders in braces — {name}, {min}, {max},
// {format}, {other}, {field}, {value} — which are substituted with the
// descriptor's parameters when a violation is rendered. The same
// substitutions are recorded in the violation context.
type Descriptor struct {
	kind     Kind
	template string

	minLen   int
	min, max float64
	other    string // SameAs target / RequiredIf condition field
	layout   string // Date/TimeFormat reference layout
	expect   any    // RequiredIf condition value
}

// Kind returns the constraint kind of the descriptor.
func (d Descriptor) Kind() Kind { return d.kind }

// WithMessage returns a copy of the descriptor with a custom message
// template. Placeholders available to the default template work here too.
func (d Descriptor) WithMessage(template string) Descriptor {
	d.template = template
	return d
}

// Presence requires a non-empty value. Nil, empty string, empty collection
// and boolean false all count as empty.
func Presence() Descriptor {
	return Descriptor{
		kind:     KindPresence,
		template: "{name} is required",
	}
}

// MinLength requires text of at least min characters (code points).
// Non-text values are not checked.
func MinLength(min int) Descriptor {
	return Descriptor{
		kind:     KindMinLength,
		template: "{name} must be at least {min} characters",
		minLen:   min,
	}
}

// MinValue requires a numeric value of at least min, boundary inclusive.
// Nil is exempt; combine with Presence to require a value.
func MinValue(min float64) Descriptor {
	return Descriptor{
		kind:     KindMinValue,
		template: "{name} must be at least {min}",
		min:      min,
	}
}

// MaxValue requires a numeric value of at most max, boundary inclusive.
// Nil is exempt.
func MaxValue(max float64) Descriptor {
	return Descriptor{
		kind:     KindMaxValue,
		template: "{name} must be at most {max}",
		max:      max,
	}
}

// Email requires a value shaped like an email address. Empty values are
// exempt.
func Email() Descriptor {
	return Descriptor{
		kind:     KindEmail,
		template: "{name} must be a valid email address",
	}
}

// SameAs requires the value to equal the sibling field other exactly.
// Both sides are resolved with their declared-default fallback.
func SameAs(other string) Descriptor {
	return Descriptor{
		kind:     KindSameAs,
		template: "{name} must match {other}",
		other:    other,
	}
}

// DateFormat requires text that survives a parse-then-reformat round trip
// against the given time layout without changing. This rejects both
// malformed and loosely parsed values. Empty values are exempt.
func DateFormat(layout string) Descriptor {
	return Descriptor{
		kind:     KindDateFormat,
		template: "{name} must be a valid date in format {format}",
		layout:   layout,
	}
}

// TimeFormat is DateFormat for time-of-day layouts.
func TimeFormat(layout string) Descriptor {
	return Descriptor{
		kind:     KindTimeFormat,
		template: "{name} must be a valid time in format {format}",
		layout:   layout,
	}
}

// RequiredIf requires a non-empty value whenever the sibling field's value
// equals expect exactly. When the condition does not match, the field is not
// checked at all.
func RequiredIf(field string, expect any) Descriptor {
	return Descriptor{
		kind:     KindRequiredIf,
		template: "{name} is required when {field} is {value}",
		other:    field,
		expect:   expect,
	}
}

// render substitutes every context entry into the template as {key}.
func render(template string, context map[string]any) string {
	out := template
	for key, val := range context {
		out = strings.ReplaceAll(out, "{"+key+"}", fmt.Sprint(val))
	}
	return out
}
