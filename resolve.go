package estimate

import "strconv"

// raw is an untyped JSON object, as decoded by encoding/json.
type raw map[string]any

// asRaw views an arbitrary decoded value as a raw object. Anything that is
// not a JSON object behaves like an empty one, so every field resolution
// falls through to its default.
func asRaw(v any) raw {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

// firstDefined returns the first defined value among the alias keys, in
// priority order. Defined means present and not an explicit null; the zero
// value for a type ("", 0, false) is defined and wins over lower-priority
// aliases.
func (r raw) firstDefined(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// stringOr resolves the alias keys to a string, or def when none is defined.
// Numeric values are accepted (some producers emit numeric ids).
func (r raw) stringOr(def string, keys ...string) string {
	v, ok := r.firstDefined(keys...)
	if !ok {
		return def
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return def
}

// taxFlag resolves the taxable flag for an item.
//
// tax and is_taxable are coerced with the usual truthiness rules. The legacy
// apply_global_tax key is consulted only when neither of them is defined,
// and only the numeral 1 and the string "1" count as true: some producers
// emit "0"/"1" in that field, and a broader truthiness rule would silently
// turn "0" (a non-empty string) into a taxed item.
func (r raw) taxFlag() bool {
	if v, ok := r.firstDefined("tax", "is_taxable"); ok {
		return toBoolean(v)
	}
	v, ok := r.firstDefined("apply_global_tax")
	if !ok {
		return false
	}
	switch x := v.(type) {
	case float64:
		return x == 1
	case string:
		return x == "1"
	}
	return false
}
