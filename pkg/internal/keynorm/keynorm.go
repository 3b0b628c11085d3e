// Package keynorm canonicalizes raw file names and labels into the stable
// keys used to match a loaded channel against its persisted calibration.
// Normalization is the only bridge between "file name on disk" and "key in
// configuration"; the two never need to match verbatim.
package keynorm

import (
	"path/filepath"
	"strings"
)

// Normalize canonicalizes raw into a matching key: trim whitespace, strip a
// trailing file extension, uppercase, replace every non ASCII letter/digit
// with '_', collapse '_' runs, and trim leading/trailing '_'. Empty or
// whitespace-only input yields the empty string.
//
// Normalize is pure and idempotent.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if ext := filepath.Ext(s); ext != "" {
		s = strings.TrimSuffix(s, ext)
	}
	s = strings.ToUpper(s)

	var b strings.Builder
	b.Grow(len(s))
	lastUnderscore := false
	for _, r := range s {
		switch {
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
			}
			lastUnderscore = true
		}
	}

	return strings.Trim(b.String(), "_")
}

// Tokens splits a normalized key on '_' and returns the set of tokens of
// length >= 2, the unit of comparison for fuzzy overlap matching.
func Tokens(key string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, t := range strings.Split(strings.ToUpper(key), "_") {
		if len(t) >= 2 {
			tokens[t] = struct{}{}
		}
	}
	return tokens
}
