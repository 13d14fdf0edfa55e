// Package resolve maps canonical template exercise names onto entries
// of an externally supplied exercise catalog. Resolution tries a static
// alias table first (exact match after normalization), then falls back
// to Levenshtein-based fuzzy matching gated by a confidence threshold.
package resolve

import (
	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/match"
)

// DefaultThreshold is the minimum fuzzy-match similarity accepted when
// no alias variant matched. Tuned against the seed catalog: 0.6 accepts
// "barbell bench pres" → "barbell bench press" but rejects matches that
// share only a word or two.
const DefaultThreshold = 0.6

// Resolver resolves template exercise names against a catalog.
// The zero value is not usable; construct with New.
type Resolver struct {
	threshold float64
}

// New creates a Resolver with the given fuzzy-match threshold.
// Thresholds outside (0,1] fall back to DefaultThreshold.
func New(threshold float64) *Resolver {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Resolver{threshold: threshold}
}

// Candidate is one ranked resolution result.
type Candidate struct {
	Exercise catalog.Exercise
	Score    float64
	Exact    bool // matched via the alias table rather than fuzzily
}

// Index holds a catalog with precomputed normalized names so that a
// single generation run normalizes each catalog entry once instead of
// once per template slot.
type Index struct {
	entries    []catalog.Exercise
	normalized []string
}

// NewIndex builds an Index over the given catalog. Input order is
// preserved; it is the tie-break order for fuzzy matches.
func NewIndex(entries []catalog.Exercise) *Index {
	idx := &Index{
		entries:    entries,
		normalized: make([]string, len(entries)),
	}
	for i, e := range entries {
		idx.normalized[i] = match.Normalize(e.Name)
	}
	return idx
}

// Len returns the number of catalog entries in the index.
func (idx *Index) Len() int { return len(idx.entries) }

// Resolve returns the single best catalog match for templateName, or
// nil when no alias variant matches exactly and no fuzzy candidate
// clears the threshold. A nil result is not an error: the caller is
// expected to degrade (placeholder slot) rather than abort.
func (r *Resolver) Resolve(templateName string, idx *Index) *catalog.Exercise {
	ranked := r.Rank(templateName, idx)
	if len(ranked) == 0 {
		return nil
	}
	ex := ranked[0].Exercise
	return &ex
}

// Rank returns all acceptable candidates for templateName, best first.
// Alias matches come before fuzzy matches; fuzzy matches are ordered by
// descending similarity with ties broken by catalog input order. Every
// candidate's score clears the threshold, so callers can take the first
// entry that also satisfies their own constraints (e.g. equipment
// restrictions) without re-checking confidence.
func (r *Resolver) Rank(templateName string, idx *Index) []Candidate {
	var out []Candidate
	seen := make(map[int]bool)

	// Alias table: exact match of any variant against catalog names.
	// The canonical name itself counts as a variant.
	variants := append([]string{templateName}, AliasVariants(templateName)...)
	for _, v := range variants {
		nv := match.Normalize(v)
		for i, nn := range idx.normalized {
			if nn == nv && !seen[i] {
				seen[i] = true
				out = append(out, Candidate{Exercise: idx.entries[i], Score: 1.0, Exact: true})
			}
		}
	}

	// Fuzzy fallback over the whole catalog.
	nt := match.Normalize(templateName)
	type scored struct {
		pos   int
		score float64
	}
	var fuzzy []scored
	for i, nn := range idx.normalized {
		if seen[i] {
			continue
		}
		s := match.SimilarityNormalized(nt, nn)
		if s >= r.threshold {
			fuzzy = append(fuzzy, scored{pos: i, score: s})
		}
	}

	// Selection sort by descending score keeps the catalog-order
	// tie-break deterministic without a comparator on float equality.
	for len(fuzzy) > 0 {
		best := 0
		for i := 1; i < len(fuzzy); i++ {
			if fuzzy[i].score > fuzzy[best].score {
				best = i
			}
		}
		out = append(out, Candidate{Exercise: idx.entries[fuzzy[best].pos], Score: fuzzy[best].score})
		fuzzy = append(fuzzy[:best], fuzzy[best+1:]...)
	}

	return out
}
