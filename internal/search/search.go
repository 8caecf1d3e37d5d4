// Package search resolves free-form queries to system ids. It keeps an
// in-RAM n-gram index over system names so partial and slightly misspelled
// input still finds the intended system. The index never reaches back into
// the universe it was built from; it maps names to ids and nothing else.
package search

import (
	"sort"
	"strings"

	"eve-navigator/internal/graph"
)

const (
	minGram    = 2
	maxGram    = 3
	maxResults = 10
)

// Result is one search hit. Score is the fraction of the query's n-grams
// found in the matched name, so 1.0 means every query fragment matched.
type Result struct {
	ID    graph.SystemID
	Name  string
	Score float64
}

// Index is an immutable name index over a set of systems. Build it once per
// universe; lookups are safe for concurrent use.
type Index struct {
	exact map[string]graph.SystemID
	grams map[string][]graph.SystemID
	names map[graph.SystemID]string
}

// NewIndex builds the index from the given systems.
func NewIndex(systems []graph.System) *Index {
	ix := &Index{
		exact: make(map[string]graph.SystemID, len(systems)),
		grams: make(map[string][]graph.SystemID),
		names: make(map[graph.SystemID]string, len(systems)),
	}
	for _, s := range systems {
		folded := fold(s.Name)
		ix.exact[folded] = s.ID
		ix.names[s.ID] = s.Name
		for _, g := range ngrams(folded) {
			ids := ix.grams[g]
			if len(ids) > 0 && ids[len(ids)-1] == s.ID {
				continue // same name repeats a gram
			}
			ix.grams[g] = append(ids, s.ID)
		}
	}
	return ix
}

// Lookup resolves a name exactly, ignoring case.
func (ix *Index) Lookup(name string) (graph.SystemID, bool) {
	id, ok := ix.exact[fold(name)]
	return id, ok
}

// Search returns up to ten systems ranked by how many of the query's
// n-grams their name contains. An exact name match always ranks first.
// Ties rank by ascending system id so output is reproducible.
func (ix *Index) Search(query string) []Result {
	folded := fold(query)
	if folded == "" {
		return nil
	}

	scores := make(map[graph.SystemID]int)
	queryGrams := ngrams(folded)
	for _, g := range queryGrams {
		for _, id := range ix.grams[g] {
			scores[id]++
		}
	}

	exactID, exact := ix.exact[folded]
	results := make([]Result, 0, len(scores))
	for id, hits := range scores {
		score := float64(hits) / float64(len(queryGrams))
		if exact && exactID == id {
			score = 1.0
		}
		results = append(results, Result{ID: id, Name: ix.names[id], Score: score})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ngrams returns the 2- and 3-grams of s. Names shorter than minGram index
// as a single gram of themselves.
func ngrams(s string) []string {
	runes := []rune(s)
	if len(runes) < minGram {
		return []string{s}
	}
	var out []string
	for size := minGram; size <= maxGram; size++ {
		for i := 0; i+size <= len(runes); i++ {
			out = append(out, string(runes[i:i+size]))
		}
	}
	return out
}
