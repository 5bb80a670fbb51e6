package rules

import (
	"fmt"
	"net/mail"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/modelguard/pkg/errbag"
)

// Siblings resolves the current value of a sibling field by name, with the
// field's declared default applied. The second return reports whether the
// field exists in the schema at all.
type Siblings func(name string) (any, bool)

// Eval checks value against the descriptor and returns at most one violation.
// Evaluators are pure: they never mutate their inputs and produce identical
// results for identical inputs.
//
// A non-nil error means structural misuse of the schema (for example a SameAs
// target that does not exist), never invalid data.
func (d Descriptor) Eval(name string, value any, siblings Siblings) (*errbag.Violation, error) {
	switch d.kind {
	case KindPresence:
		if isEmpty(value) {
			return d.violation(map[string]any{"name": name}), nil
		}

	case KindMinLength:
		// Only text has a length; other value types are not checked.
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) < d.minLen {
			return d.violation(map[string]any{"name": name, "min": d.minLen}), nil
		}

	case KindMinValue:
		if n, ok := toFloat(value); ok && n < d.min {
			return d.violation(map[string]any{"name": name, "min": d.min}), nil
		}

	case KindMaxValue:
		if n, ok := toFloat(value); ok && n > d.max {
			return d.violation(map[string]any{"name": name, "max": d.max}), nil
		}

	case KindEmail:
		if value == nil {
			return nil, nil
		}
		s, ok := value.(string)
		if ok && s == "" {
			return nil, nil
		}
		if !ok || !isEmailShaped(s) {
			return d.violation(map[string]any{"name": name}), nil
		}

	case KindSameAs:
		other, ok := siblings(d.other)
		if !ok {
			return nil, fmt.Errorf("%w: %q referenced by %q", ErrUnknownField, d.other, name)
		}
		if !equal(value, other) {
			return d.violation(map[string]any{"name": name, "other": d.other}), nil
		}

	case KindDateFormat, KindTimeFormat:
		if value == nil {
			return nil, nil
		}
		ctx := map[string]any{"name": name, "format": d.layout}
		s, ok := value.(string)
		if !ok {
			return d.violation(ctx), nil
		}
		if s == "" {
			return nil, nil
		}
		// Round trip: the parsed value must re-render to the exact input.
		// This rejects loosely parsed values such as "2024-1-1" against a
		// zero-padded layout, on top of outright garbage.
		t, err := time.Parse(d.layout, s)
		if err != nil || t.Format(d.layout) != s {
			return d.violation(ctx), nil
		}

	case KindRequiredIf:
		cond, ok := siblings(d.other)
		if !ok {
			return nil, fmt.Errorf("%w: %q referenced by %q", ErrUnknownField, d.other, name)
		}
		if equal(cond, d.expect) && isEmpty(value) {
			return d.violation(map[string]any{"name": name, "field": d.other, "value": d.expect}), nil
		}

	default:
		return nil, fmt.Errorf("unknown rule kind %q on field %q", d.kind, name)
	}

	return nil, nil
}

func (d Descriptor) violation(context map[string]any) *errbag.Violation {
	return &errbag.Violation{
		Message: render(d.template, context),
		Context: context,
	}
}

// isEmpty treats all falsy empties uniformly: nil, empty string, boolean
// false, and empty collections of any element type. Numeric zero is a
// present value.
func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	}
	if l, ok := v.(interface{ Len() int }); ok {
		return l.Len() == 0
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// equal is exact type-and-value equality that never panics: slices, maps and
// other uncomparable dynamic types fall back to a deep comparison instead of
// the == operator.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// toFloat widens the supported numeric types for range comparisons.
// Non-numeric values report false and are exempt from range rules.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// isEmailShaped runs the RFC 5322 parser plus the stricter checks typical web
// input needs (a single @, non-empty local part, dotted domain).
func isEmailShaped(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	return strings.Contains(domain, ".")
}
