// Package match provides exercise-name normalization and similarity
// scoring used by the resolver's fuzzy fallback.
package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases a name, strips parenthetical content, converts
// hyphens to spaces, drops any remaining punctuation, and collapses
// whitespace. "Bench-Press (Barbell)" and "bench press" normalize to
// the same string.
func Normalize(s string) string {
	s = stripParens(strings.ToLower(s))

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == ' ':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// stripParens removes parenthetical segments, including nested ones.
// Unbalanced closers are dropped.
func stripParens(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// Similarity returns a score in [0,1] based on the Levenshtein distance
// between the normalized forms of a and b. Two empty strings score 1;
// an empty string against a non-empty one scores 0.
func Similarity(a, b string) float64 {
	return SimilarityNormalized(Normalize(a), Normalize(b))
}

// SimilarityNormalized scores two already-normalized strings. Callers
// that precompute normalized catalog names use this to avoid
// re-normalizing per comparison.
func SimilarityNormalized(na, nb string) float64 {
	if na == nb {
		return 1.0
	}

	maxLen := max(len(na), len(nb))
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshtein(na, nb)
	return 1.0 - float64(dist)/float64(maxLen)
}

// levenshtein computes the edit distance between two strings using two
// rolling rows instead of a full matrix.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
