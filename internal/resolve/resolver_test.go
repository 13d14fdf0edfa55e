package resolve

import (
	"testing"

	"github.com/claude/planforge/internal/catalog"
)

func testCatalog() []catalog.Exercise {
	return []catalog.Exercise{
		{ID: "0001", Name: "barbell bench press", BodyPart: "chest", Target: "pectorals", Equipment: "barbell"},
		{ID: "0002", Name: "dumbbell bench press", BodyPart: "chest", Target: "pectorals", Equipment: "dumbbell"},
		{ID: "0003", Name: "push-up", BodyPart: "chest", Target: "pectorals", Equipment: "body weight"},
		{ID: "0004", Name: "barbell full squat", BodyPart: "upper legs", Target: "quads", Equipment: "barbell"},
		{ID: "0005", Name: "lever leg extension", BodyPart: "upper legs", Target: "quads", Equipment: "leverage machine"},
		{ID: "0006", Name: "cable lat pulldown", BodyPart: "back", Target: "lats", Equipment: "cable"},
	}
}

// TestResolveAliasExact verifies the alias table resolves a canonical
// template name to its catalog spelling without fuzzy matching.
func TestResolveAliasExact(t *testing.T) {
	r := New(DefaultThreshold)
	idx := NewIndex(testCatalog())

	got := r.Resolve("Barbell Bench Press", idx)
	if got == nil {
		t.Fatal("expected match, got nil")
	}
	if got.ID != "0001" {
		t.Errorf("resolved ID = %s, want 0001", got.ID)
	}

	got = r.Resolve("Lat Pulldown", idx)
	if got == nil || got.ID != "0006" {
		t.Errorf("Lat Pulldown resolved to %v, want catalog 0006", got)
	}
}

// TestResolveAliasCaseInsensitive verifies alias matching survives case
// and hyphen differences on both sides.
func TestResolveAliasCaseInsensitive(t *testing.T) {
	r := New(DefaultThreshold)
	idx := NewIndex([]catalog.Exercise{
		{ID: "0010", Name: "PUSH-UP", BodyPart: "chest", Target: "pectorals", Equipment: "body weight"},
	})

	got := r.Resolve("Push Up", idx)
	if got == nil || got.ID != "0010" {
		t.Errorf("Push Up resolved to %v, want catalog 0010", got)
	}
}

// TestResolveFuzzyFallback verifies that a name with no alias entry
// falls back to the closest catalog entry by similarity.
func TestResolveFuzzyFallback(t *testing.T) {
	r := New(DefaultThreshold)
	idx := NewIndex(testCatalog())

	// Misspelled, not in the alias table under this exact name.
	got := r.Resolve("barbel bench press", idx)
	if got == nil {
		t.Fatal("expected fuzzy match, got nil")
	}
	if got.ID != "0001" {
		t.Errorf("fuzzy resolved ID = %s, want 0001", got.ID)
	}
}

// TestResolveBelowThreshold verifies that nothing is returned when the
// best fuzzy candidate is below the confidence threshold.
func TestResolveBelowThreshold(t *testing.T) {
	r := New(DefaultThreshold)
	idx := NewIndex(testCatalog())

	if got := r.Resolve("Zercher Yoke Carry", idx); got != nil {
		t.Errorf("expected nil for unmatched name, got %s", got.Name)
	}
}

// TestResolveEmptyCatalog verifies resolution degrades to nil, not an
// error, with an empty catalog.
func TestResolveEmptyCatalog(t *testing.T) {
	r := New(DefaultThreshold)
	idx := NewIndex(nil)

	if got := r.Resolve("Barbell Bench Press", idx); got != nil {
		t.Errorf("expected nil on empty catalog, got %v", got)
	}
}

// TestResolveDeterministic verifies two identical calls produce the
// same result, and that fuzzy ties break on catalog input order.
func TestResolveDeterministic(t *testing.T) {
	r := New(DefaultThreshold)

	// Two entries equidistant from the query; first occurrence wins.
	tied := []catalog.Exercise{
		{ID: "a", Name: "cable curl one", Equipment: "cable"},
		{ID: "b", Name: "cable curl two", Equipment: "cable"},
	}
	idx := NewIndex(tied)

	first := r.Resolve("cable curl", idx)
	second := r.Resolve("cable curl", idx)
	if first == nil || second == nil {
		t.Fatal("expected matches")
	}
	if first.ID != second.ID {
		t.Errorf("non-deterministic resolution: %s then %s", first.ID, second.ID)
	}
	if first.ID != "a" {
		t.Errorf("tie-break picked %s, want first occurrence a", first.ID)
	}
}

// TestRankOrdersExactBeforeFuzzy verifies Rank puts alias matches ahead
// of fuzzy ones and orders fuzzy candidates by descending score.
func TestRankOrdersExactBeforeFuzzy(t *testing.T) {
	r := New(DefaultThreshold)
	idx := NewIndex(testCatalog())

	ranked := r.Rank("Dumbbell Bench Press", idx)
	if len(ranked) < 2 {
		t.Fatalf("ranked = %d candidates, want at least 2", len(ranked))
	}
	if !ranked[0].Exact || ranked[0].Exercise.ID != "0002" {
		t.Errorf("first candidate = %+v, want exact match on 0002", ranked[0])
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Exact {
			continue
		}
		if i > 1 && !ranked[i-1].Exact && ranked[i].Score > ranked[i-1].Score {
			t.Errorf("fuzzy candidates out of order at %d: %f > %f", i, ranked[i].Score, ranked[i-1].Score)
		}
		if ranked[i].Score < DefaultThreshold {
			t.Errorf("candidate %d below threshold: %f", i, ranked[i].Score)
		}
	}
}

// TestNewThresholdClamp verifies invalid thresholds fall back to the
// default instead of accepting everything or nothing.
func TestNewThresholdClamp(t *testing.T) {
	idx := NewIndex(testCatalog())
	for _, th := range []float64{-1, 0, 1.5} {
		r := New(th)
		if got := r.Resolve("Zercher Yoke Carry", idx); got != nil {
			t.Errorf("threshold %f: expected nil for junk name, got %s", th, got.Name)
		}
	}
}
