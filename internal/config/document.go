package config

import (
	"fmt"
	"sort"
	"strings"
)

// Table is one level of the untyped document produced by the TOML decoder.
// Values are the decoder's native shapes: string, bool, int64, float64,
// []any, and map[string]any. Table never leaves the parsing layer.
type Table map[string]any

// asTable converts a decoded value to a Table.
func asTable(v any) (Table, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Table(m), true
}

// asTableArray converts a decoded array-of-tables value. Decoders produce
// either []any with table elements or []map[string]any; both are accepted.
// Elements that are not tables come back as nil entries so the caller can
// report them by index.
func asTableArray(v any) ([]Table, bool) {
	switch arr := v.(type) {
	case []map[string]any:
		out := make([]Table, len(arr))
		for i, m := range arr {
			out[i] = Table(m)
		}
		return out, true
	case []any:
		out := make([]Table, len(arr))
		for i, elem := range arr {
			if tbl, ok := asTable(elem); ok {
				out[i] = tbl
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// The field readers below are total functions: they either return a decoded
// value or emit exactly one finding (the array reader: one per bad element)
// and return a safe zero value. A missing optional key is not an error and
// emits nothing.

// requireString reads a mandatory non-empty string field.
func requireString(tbl Table, key, label string, fs *Findings) (string, bool) {
	v, ok := tbl[key]
	if !ok {
		fs.Fail(label+" is missing", "", "Add "+label+" to the config file")
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		fs.Fail(label+" must be a string", fmt.Sprintf("got %T", v), "")
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		fs.Fail(label+" is empty", "", "Provide a non-empty value for "+label)
		return "", false
	}
	return s, true
}

// optString reads an optional non-empty string field.
func optString(tbl Table, key, label string, fs *Findings) (string, bool) {
	v, ok := tbl[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		fs.Fail(label+" must be a string", fmt.Sprintf("got %T", v), "")
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		fs.Fail(label+" is empty", "", "Provide a non-empty value or remove "+label)
		return "", false
	}
	return s, true
}

// optBool reads an optional boolean field.
func optBool(tbl Table, key, label string, fs *Findings) (bool, bool) {
	v, ok := tbl[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	if !ok {
		fs.Fail(label+" must be a boolean", fmt.Sprintf("got %T", v), "")
		return false, false
	}
	return b, true
}

// optNumber reads an optional numeric field. Integer-typed input is widened
// to a float, so 24 and 24.0 are both acceptable.
func optNumber(tbl Table, key, label string, fs *Findings) (float64, bool) {
	v, ok := tbl[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		fs.Fail(label+" must be a number", fmt.Sprintf("got %T", v), "")
		return 0, false
	}
}

// optInteger reads an optional integer field. Floating input is rejected.
func optInteger(tbl Table, key, label string, fs *Findings) (int, bool) {
	v, ok := tbl[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(int64)
	if !ok {
		fs.Fail(label+" must be an integer", fmt.Sprintf("got %T", v), "")
		return 0, false
	}
	return int(n), true
}

// optStringArray reads an optional array-of-strings field element by
// element. A non-string element emits a per-index finding but decoding
// continues; only the successfully decoded elements are returned.
func optStringArray(tbl Table, key, label string, fs *Findings) ([]string, bool) {
	v, ok := tbl[key]
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok {
		fs.Fail(label+" must be an array of strings", fmt.Sprintf("got %T", v), "")
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for i, elem := range arr {
		s, ok := elem.(string)
		if !ok {
			fs.Fail(
				fmt.Sprintf("%s[%d] must be a string", label, i),
				fmt.Sprintf("got %T", elem),
				"",
			)
			continue
		}
		out = append(out, s)
	}
	return out, true
}

// knownKeys warns about table keys outside the recognized set. where names
// the containing scope for the message (e.g. "[layout]", "project[0]").
// Keys are visited in sorted order so findings are deterministic.
func knownKeys(tbl Table, where string, known []string, fs *Findings) {
	keys := make([]string, 0, len(tbl))
	for key := range tbl {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		recognized := false
		for _, k := range known {
			if key == k {
				recognized = true
				break
			}
		}
		if !recognized {
			fs.Warn(
				fmt.Sprintf("unknown key %q in %s", key, where),
				"",
				fmt.Sprintf("Remove %q or check its spelling", key),
			)
		}
	}
}
