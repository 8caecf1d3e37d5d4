package search

import (
	"testing"

	"eve-navigator/internal/graph"
)

func testIndex() *Index {
	return NewIndex([]graph.System{
		{ID: 30000142, Name: "Jita"},
		{ID: 30002187, Name: "Amarr"},
		{ID: 30002659, Name: "Dodixie"},
		{ID: 30002510, Name: "Rens"},
		{ID: 30045322, Name: "Jitas Folly"}, // deliberately close to Jita
	})
}

func TestLookup_ExactIgnoresCase(t *testing.T) {
	ix := testIndex()

	tests := []struct {
		query string
		want  graph.SystemID
		found bool
	}{
		{query: "Jita", want: 30000142, found: true},
		{query: "jita", want: 30000142, found: true},
		{query: "AMARR", want: 30002187, found: true},
		{query: " Rens ", want: 30002510, found: true},
		{query: "Nonexistent", found: false},
	}
	for _, tt := range tests {
		got, ok := ix.Lookup(tt.query)
		if ok != tt.found || (ok && got != tt.want) {
			t.Fatalf("Lookup(%q) = %v, %v; want %v, %v", tt.query, got, ok, tt.want, tt.found)
		}
	}
}

func TestSearch_ExactMatchRanksFirst(t *testing.T) {
	ix := testIndex()

	results := ix.Search("jita")
	if len(results) == 0 {
		t.Fatal("Search(jita) returned nothing")
	}
	if results[0].ID != 30000142 {
		t.Fatalf("top hit = %v, want Jita", results[0])
	}
	if results[0].Score != 1.0 {
		t.Fatalf("exact match score = %v, want 1.0", results[0].Score)
	}
}

func TestSearch_PartialAndFuzzy(t *testing.T) {
	ix := testIndex()

	tests := []struct {
		name  string
		query string
		want  graph.SystemID
	}{
		{name: "prefix", query: "dodi", want: 30002659},
		{name: "infix", query: "marr", want: 30002187},
		{name: "one rune dropped", query: "dodxie", want: 30002659},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ix.Search(tt.query)
			if len(results) == 0 {
				t.Fatalf("Search(%q) returned nothing", tt.query)
			}
			if results[0].ID != tt.want {
				t.Fatalf("top hit = %+v, want id %d", results[0], tt.want)
			}
		})
	}
}

func TestSearch_EmptyAndUnmatched(t *testing.T) {
	ix := testIndex()

	if got := ix.Search(""); got != nil {
		t.Fatalf("Search(empty) = %v, want nil", got)
	}
	if got := ix.Search("zzqq"); len(got) != 0 {
		t.Fatalf("Search(zzqq) = %v, want no hits", got)
	}
}

func TestSearch_ZeroIDGetsNoExactBonus(t *testing.T) {
	// A system with id 0 must not inherit a perfect score just because an
	// inexact query looks up to the exact map's zero value.
	ix := NewIndex([]graph.System{
		{ID: 0, Name: "Polaris"},
		{ID: 30002659, Name: "Dodixie"},
	})

	// "solar" shares grams with "Polaris" but is not an exact name.
	results := ix.Search("solar")
	if len(results) == 0 {
		t.Fatal("Search(solar) returned nothing")
	}
	if results[0].ID != 0 {
		t.Fatalf("top hit = %+v, want Polaris by partial match", results[0])
	}
	if results[0].Score >= 1.0 {
		t.Fatalf("partial match scored %v, want < 1.0", results[0].Score)
	}

	// The genuine exact match still earns the full score.
	exact := ix.Search("polaris")
	if len(exact) == 0 || exact[0].ID != 0 || exact[0].Score != 1.0 {
		t.Fatalf("Search(polaris) = %+v, want id 0 at score 1.0", exact)
	}
}

func TestSearch_CapsResults(t *testing.T) {
	var systems []graph.System
	for i := 0; i < 30; i++ {
		systems = append(systems, graph.System{
			ID:   graph.SystemID(i + 1),
			Name: "Outpost",
		})
	}
	ix := NewIndex(systems)

	if got := len(ix.Search("Outpost")); got > 10 {
		t.Fatalf("Search returned %d results, cap is 10", got)
	}
}
