// Package ident derives canonical identifiers from free-form names.
package ident

import "strings"

// Normalize turns a free-form name into a lowercase-hyphen identifier.
//
// Transformation rules:
//   - every character outside [a-z0-9] becomes a hyphen
//   - runs of hyphens collapse to one
//   - leading and trailing hyphens are trimmed
//
// The result may be empty (e.g. for "!!!"); callers treat an empty
// identifier as a validation failure. Normalize is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
