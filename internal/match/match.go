// Package match derives provider-specific identifiers for projects.
//
// Every adapter resolves its identifiers through one Strategy chain instead of
// inline heuristics, so false-positive matches stay unit-testable and the
// priority order (stored fragment id, known mapping, listing heuristics) is
// uniform across providers.
package match

import (
	"regexp"
	"strings"
)

// Candidate is the project-side input to identifier resolution
type Candidate struct {
	// Slug is the project's stable identifier
	Slug string
	// Name is the project's display name
	Name string
	// Fragment is the provider's fragment from a previous run, nil when absent
	Fragment map[string]interface{}
}

// Strategy resolves a provider identifier for a candidate project.
// A false return is an expected no-mapping outcome, not an error.
type Strategy interface {
	// Name identifies the strategy for logging
	Name() string
	// Resolve returns the provider identifier for the candidate, if any
	Resolve(c Candidate) (string, bool)
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a display name into slug form for heuristic comparison
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// fragmentKeyStrategy reads an identifier stored in a previous run's fragment
type fragmentKeyStrategy struct {
	key string
}

// FragmentKey returns a strategy reading the identifier a previous run stored
// under the given fragment key. Highest priority: once a mapping is known it is
// never re-derived heuristically.
func FragmentKey(key string) Strategy {
	return &fragmentKeyStrategy{key: key}
}

func (s *fragmentKeyStrategy) Name() string {
	return "fragment_key"
}

func (s *fragmentKeyStrategy) Resolve(c Candidate) (string, bool) {
	if c.Fragment == nil {
		return "", false
	}
	value, ok := c.Fragment[s.key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// mappingStrategy holds hard-coded identifiers for prominent entities
type mappingStrategy struct {
	mappings map[string]string
}

// KnownMappings returns a strategy resolving identifiers from a fixed
// slug-to-identifier table
func KnownMappings(mappings map[string]string) Strategy {
	return &mappingStrategy{mappings: mappings}
}

func (s *mappingStrategy) Name() string {
	return "known_mapping"
}

func (s *mappingStrategy) Resolve(c Candidate) (string, bool) {
	id, ok := s.mappings[c.Slug]
	return id, ok && id != ""
}

// ListingEntry is one entry of a provider's own listing
type ListingEntry struct {
	// ID is the provider-side identifier
	ID string
	// Name is the provider-side display name
	Name string
}

// listingStrategy matches candidates against a provider listing by slugified
// equality first, then by substring containment
type listingStrategy struct {
	entries []ListingEntry
}

// Listing returns a strategy matching the candidate against the provider's own
// listing: exact slugified-name match wins, then substring containment in either
// direction. Substring matches require at least minSubstringLen characters to
// avoid pairing short generic names.
func Listing(entries []ListingEntry) Strategy {
	return &listingStrategy{entries: entries}
}

const minSubstringLen = 4

func (s *listingStrategy) Name() string {
	return "listing_heuristic"
}

func (s *listingStrategy) Resolve(c Candidate) (string, bool) {
	candidateSlug := c.Slug
	if candidateSlug == "" {
		candidateSlug = Slugify(c.Name)
	}
	if candidateSlug == "" {
		return "", false
	}

	// Pass 1: exact slugified equality
	for _, entry := range s.entries {
		if Slugify(entry.Name) == candidateSlug || Slugify(entry.ID) == candidateSlug {
			return entry.ID, true
		}
	}

	// Pass 2: substring containment either way
	if len(candidateSlug) < minSubstringLen {
		return "", false
	}
	for _, entry := range s.entries {
		entrySlug := Slugify(entry.Name)
		if len(entrySlug) < minSubstringLen {
			continue
		}
		if strings.Contains(entrySlug, candidateSlug) || strings.Contains(candidateSlug, entrySlug) {
			return entry.ID, true
		}
	}

	return "", false
}

// chainStrategy tries strategies in priority order
type chainStrategy struct {
	strategies []Strategy
}

// Chain combines strategies; the first resolution wins
func Chain(strategies ...Strategy) Strategy {
	return &chainStrategy{strategies: strategies}
}

func (s *chainStrategy) Name() string {
	return "chain"
}

func (s *chainStrategy) Resolve(c Candidate) (string, bool) {
	for _, strategy := range s.strategies {
		if id, ok := strategy.Resolve(c); ok {
			return id, true
		}
	}
	return "", false
}
