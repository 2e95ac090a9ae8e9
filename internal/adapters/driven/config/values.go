package config

import (
	"maps"
	"slices"
	"strings"
)

// AsString returns v as a string, or "" when v is not a string.
func AsString(v any) string {
	s, _ := v.(string)
	return s
}

// AsInt returns v as an int. TOML decodes integers as int64; values set
// directly by callers are usually int.
func AsInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// AsBool returns v as a bool, or false when v is not a bool.
func AsBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// AsStrings returns v as a string slice. TOML decodes arrays as []any;
// non-string items are dropped.
func AsStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

// Flatten converts nested tables into dotted keys:
// {"build": {"source_root": "."}} becomes {"build.source_root": "."}.
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto(out, m, "")
	return out
}

func flattenInto(out, m map[string]any, prefix string) {
	for key, value := range m {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(out, nested, full)
			continue
		}
		out[full] = value
	}
}

// Nest is the inverse of Flatten. A key that is both a value and a table
// prefix keeps the value under its full dotted name.
func Nest(flat map[string]any) map[string]any {
	out := make(map[string]any)
	for _, key := range SortedKeys(flat) {
		parts := strings.Split(key, ".")
		table := out
		ok := true
		for _, part := range parts[:len(parts)-1] {
			next, exists := table[part]
			if !exists {
				child := make(map[string]any)
				table[part] = child
				table = child
				continue
			}
			child, isTable := next.(map[string]any)
			if !isTable {
				ok = false
				break
			}
			table = child
		}
		if !ok {
			out[key] = flat[key]
			continue
		}
		leaf := parts[len(parts)-1]
		if _, isTable := table[leaf].(map[string]any); isTable {
			out[key] = flat[key]
			continue
		}
		table[leaf] = flat[key]
	}
	return out
}
