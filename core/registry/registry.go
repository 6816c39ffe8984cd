// Package registry indexes all loaded emission factors and answers
// exact-id lookups, filtered searches, and best-match resolution.
//
// The six source databases use incompatible unit systems, regional
// taxonomies, and fuel naming. Rather than normalizing them into a
// typed schema, the registry treats every factor uniformly: ANDed
// case-insensitive equality filters narrow the flat collection, then an
// optional free-text pass scores and ranks what is left. Domain
// fallback chains (subregion before country before national average,
// NAICS before sector text) live in the calculators, keeping the
// registry itself simple and auditable.
package registry

import (
	"strings"

	"ghg-engine/core/types"
)

// Registry holds all loaded factors. It is built once at load time and
// never mutated afterwards, so it can be shared across goroutines
// without locking.
type Registry struct {
	versions []types.FactorVersion
	factors  []*types.EmissionFactor
	byID     map[string]*types.EmissionFactor
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		byID: make(map[string]*types.EmissionFactor),
	}
}

// AddVersion merges one source document's factors into the registry.
// Ids are assumed globally unique across sources; a colliding id
// silently replaces the earlier record in the id index.
func (r *Registry) AddVersion(version types.FactorVersion) {
	r.versions = append(r.versions, version)
	for i := range version.Factors {
		factor := &version.Factors[i]
		r.factors = append(r.factors, factor)
		r.byID[factor.ID] = factor
	}
}

// Get returns a factor by its exact id, or nil when absent
func (r *Registry) Get(id string) *types.EmissionFactor {
	return r.byID[id]
}

// Count returns the number of loaded factors
func (r *Registry) Count() int {
	return len(r.factors)
}

// Versions returns the loaded source documents' metadata
func (r *Registry) Versions() []types.FactorVersion {
	return r.versions
}

// Sources returns the distinct loaded sources in load order
func (r *Registry) Sources() []types.FactorSource {
	seen := make(map[types.FactorSource]bool)
	var sources []types.FactorSource
	for _, v := range r.versions {
		if !seen[v.Source] {
			seen[v.Source] = true
			sources = append(sources, v.Source)
		}
	}
	return sources
}

// Query describes a factor search. Zero-valued fields are not applied.
type Query struct {
	// Text is a free-text query scored across name, description,
	// category, subcategory, fuel type, and tags
	Text string

	// Source filters by database provenance
	Source types.FactorSource

	// Category filters by category key
	Category string

	// FuelType filters by fuel/sector key
	FuelType string

	// Region filters by geographic code
	Region string

	// ActivityUnit filters by the factor's activity unit
	ActivityUnit string

	// Tags requires every listed tag to be present on the factor
	Tags []string

	// Limit caps the result count (default 50)
	Limit int
}

// DefaultLimit is applied when a query does not set one
const DefaultLimit = 50

// Search applies the query's filters sequentially (ANDed), then ranks
// remaining candidates by free-text score when Text is set. Ranking is
// a stable sort: ties keep the original load order. Candidates scoring
// zero against a non-empty Text are dropped.
func (r *Registry) Search(q Query) []*types.EmissionFactor {
	results := r.factors

	if q.Source != "" {
		results = filter(results, func(f *types.EmissionFactor) bool {
			return f.Source == q.Source
		})
	}
	if q.Category != "" {
		want := strings.ToLower(q.Category)
		results = filter(results, func(f *types.EmissionFactor) bool {
			return strings.ToLower(f.Category) == want
		})
	}
	if q.FuelType != "" {
		want := strings.ToLower(q.FuelType)
		results = filter(results, func(f *types.EmissionFactor) bool {
			return f.FuelType != "" && strings.ToLower(f.FuelType) == want
		})
	}
	if q.Region != "" {
		want := strings.ToLower(q.Region)
		results = filter(results, func(f *types.EmissionFactor) bool {
			return f.Region != "" && strings.ToLower(f.Region) == want
		})
	}
	if q.ActivityUnit != "" {
		want := strings.ToLower(q.ActivityUnit)
		results = filter(results, func(f *types.EmissionFactor) bool {
			return strings.ToLower(f.ActivityUnit) == want
		})
	}
	if len(q.Tags) > 0 {
		want := lowerSet(q.Tags)
		results = filter(results, func(f *types.EmissionFactor) bool {
			have := lowerSet(f.Tags)
			for tag := range want {
				if !have[tag] {
					return false
				}
			}
			return true
		})
	}

	if q.Text != "" {
		results = rank(results, q.Text)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// FindFactor resolves the single best factor for a calculation: an
// exact-filter search with no free text, returning the first match or
// nil. Callers own their own fallback chains; this performs none.
func (r *Registry) FindFactor(category, fuelType, region, activityUnit string, source types.FactorSource) *types.EmissionFactor {
	results := r.Search(Query{
		Category:     category,
		FuelType:     fuelType,
		Region:       region,
		ActivityUnit: activityUnit,
		Source:       source,
		Limit:        1,
	})
	if len(results) == 0 {
		return nil
	}
	return results[0]
}

func filter(factors []*types.EmissionFactor, keep func(*types.EmissionFactor) bool) []*types.EmissionFactor {
	out := make([]*types.EmissionFactor, 0, len(factors))
	for _, f := range factors {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}
