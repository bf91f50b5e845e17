package normalize

import (
	"fmt"
	"strings"
)

// Coercion helpers. Raw input frequently originates from lossy AI parsing of
// free text, so every helper tolerates wrong shapes and returns an empty
// value instead of failing.

// field returns the first present key from candidates, allowing snake_case
// and camelCase payloads to normalize identically.
func field(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// asString coerces scalars to a trimmed string; non-scalars become "".
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	case bool:
		return fmt.Sprintf("%t", s)
	}
	return ""
}

// strField reads a string field by any of the given keys.
func strField(m map[string]any, keys ...string) string {
	v, ok := field(m, keys...)
	if !ok {
		return ""
	}
	return asString(v)
}

// asMap coerces to an object; anything else yields nil.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asSlice coerces to a generic slice; anything else yields nil.
func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// asStringSlice coerces to a slice of non-empty strings. A bare string
// becomes a one-element slice; non-string elements are stringified when
// scalar and dropped otherwise.
func asStringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if t := strings.TrimSpace(item); t != "" {
				out = append(out, t)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if t := asString(item); t != "" {
				out = append(out, t)
			}
		}
		return out
	case string:
		if t := strings.TrimSpace(s); t != "" {
			return []string{t}
		}
	}
	return []string{}
}

// sliceField reads a string-slice field by any of the given keys.
func sliceField(m map[string]any, keys ...string) []string {
	v, ok := field(m, keys...)
	if !ok {
		return []string{}
	}
	return asStringSlice(v)
}

// asInt coerces JSON numbers (and numeric strings are not accepted) to int.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// asBool coerces to bool with a fallback for absent or wrong-typed values.
func asBool(v any, fallback bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return fallback
}
