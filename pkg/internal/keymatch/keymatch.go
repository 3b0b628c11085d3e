// Package keymatch recovers the best configuration key for a channel whose
// file may have been renamed or reordered since its calibration was saved.
//
// Matching degrades through three tiers: case-insensitive exact match,
// substring containment, then token overlap. A result is a best-effort hint;
// short or ambiguous tokens can produce false positives, so callers must
// treat a match as recoverable configuration, never as a guarantee.
package keymatch

import (
	"strings"

	"github.com/joeydtaylor/scopecore/pkg/internal/keynorm"
)

// FindBestKey returns the candidate that best matches query, or ok=false
// when no tier produces a positive score. Candidates are scanned in slice
// order; ties within a tier keep the first-encountered candidate, so a
// fixed candidate ordering makes the result deterministic.
func FindBestKey(query string, candidates []string) (string, bool) {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" || len(candidates) == 0 {
		return "", false
	}

	// Tier 1: a case-insensitive exact match wins immediately.
	for _, c := range candidates {
		if strings.EqualFold(q, c) {
			return c, true
		}
	}

	// Tier 2: containment either way, scored by the shorter string's length.
	best, bestScore := "", 0
	for _, c := range candidates {
		cu := strings.ToUpper(c)
		if cu == "" {
			continue
		}
		if strings.Contains(q, cu) || strings.Contains(cu, q) {
			score := len(q)
			if len(cu) < score {
				score = len(cu)
			}
			if score > bestScore {
				best, bestScore = c, score
			}
		}
	}
	if bestScore > 0 {
		return best, true
	}

	// Tier 3: token overlap after splitting on '_'.
	queryTokens := keynorm.Tokens(q)
	if len(queryTokens) == 0 {
		return "", false
	}
	best, bestScore = "", 0
	for _, c := range candidates {
		overlap := 0
		for t := range keynorm.Tokens(c) {
			if _, ok := queryTokens[t]; ok {
				overlap++
			}
		}
		if overlap > bestScore {
			best, bestScore = c, overlap
		}
	}
	if bestScore > 0 {
		return best, true
	}
	return "", false
}
