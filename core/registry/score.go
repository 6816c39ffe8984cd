package registry

import (
	"sort"
	"strings"

	"ghg-engine/core/types"
)

// Free-text relevance weights. The absolute values only matter relative
// to each other: a name hit outranks a body hit, an exact fuel match
// outranks both, and per-word credit breaks ties between broad matches.
const (
	scoreSubstring = 10
	scoreNameHit   = 20
	scoreFuelExact = 15
	scorePerWord   = 5
)

// rank scores each factor against the query text and returns the
// non-zero scorers in descending score order. The sort is stable so
// equal scores preserve load order, which keeps results deterministic
// across runs.
func rank(factors []*types.EmissionFactor, text string) []*types.EmissionFactor {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return factors
	}
	words := strings.Fields(query)

	type scored struct {
		factor *types.EmissionFactor
		score  int
	}
	matches := make([]scored, 0, len(factors))
	for _, f := range factors {
		if s := score(f, query, words); s > 0 {
			matches = append(matches, scored{f, s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]*types.EmissionFactor, len(matches))
	for i, m := range matches {
		out[i] = m.factor
	}
	return out
}

func score(f *types.EmissionFactor, query string, words []string) int {
	name := strings.ToLower(f.Name)
	haystack := searchText(f)

	total := 0
	if strings.Contains(haystack, query) {
		total += scoreSubstring
	}
	if strings.Contains(name, query) {
		total += scoreNameHit
	}
	if f.FuelType != "" && strings.ToLower(f.FuelType) == query {
		total += scoreFuelExact
	}
	for _, word := range words {
		if strings.Contains(haystack, word) {
			total += scorePerWord
		}
	}
	return total
}

// searchText concatenates every text field a query can hit
func searchText(f *types.EmissionFactor) string {
	parts := []string{
		f.Name,
		f.Description,
		f.Category,
		f.Subcategory,
		f.FuelType,
	}
	parts = append(parts, f.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
