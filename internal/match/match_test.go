package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidlabs/ecosystem-indexer/internal/match"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Ref Finance", expected: "ref-finance"},
		{name: "already_slug", input: "meta-pool", expected: "meta-pool"},
		{name: "punctuation", input: "Burrow.Cash!", expected: "burrow-cash"},
		{name: "surrounding_whitespace", input: "  NEAR Social  ", expected: "near-social"},
		{name: "consecutive_separators", input: "A --- B", expected: "a-b"},
		{name: "empty", input: "", expected: ""},
		{name: "only_symbols", input: "@#$%", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, match.Slugify(tc.input))
		})
	}
}

func TestFragmentKey(t *testing.T) {
	strategy := match.FragmentKey("protocol_slug")

	id, ok := strategy.Resolve(match.Candidate{
		Slug:     "ref-finance",
		Fragment: map[string]interface{}{"protocol_slug": "ref-finance"},
	})
	assert.True(t, ok)
	assert.Equal(t, "ref-finance", id)

	// Nil fragment, missing key, empty value and non-string value all miss
	_, ok = strategy.Resolve(match.Candidate{Slug: "ref-finance"})
	assert.False(t, ok)

	_, ok = strategy.Resolve(match.Candidate{Fragment: map[string]interface{}{"other": "x"}})
	assert.False(t, ok)

	_, ok = strategy.Resolve(match.Candidate{Fragment: map[string]interface{}{"protocol_slug": ""}})
	assert.False(t, ok)

	_, ok = strategy.Resolve(match.Candidate{Fragment: map[string]interface{}{"protocol_slug": 42}})
	assert.False(t, ok)
}

func TestKnownMappings(t *testing.T) {
	strategy := match.KnownMappings(map[string]string{
		"burrow-cash": "burrow",
		"empty-entry": "",
	})

	id, ok := strategy.Resolve(match.Candidate{Slug: "burrow-cash"})
	assert.True(t, ok)
	assert.Equal(t, "burrow", id)

	_, ok = strategy.Resolve(match.Candidate{Slug: "unknown"})
	assert.False(t, ok)

	// An empty mapped identifier counts as no mapping
	_, ok = strategy.Resolve(match.Candidate{Slug: "empty-entry"})
	assert.False(t, ok)
}

func TestListing_ExactMatch(t *testing.T) {
	strategy := match.Listing([]match.ListingEntry{
		{ID: "ref-finance", Name: "Ref Finance"},
		{ID: "meta-pool", Name: "Meta Pool"},
	})

	id, ok := strategy.Resolve(match.Candidate{Slug: "ref-finance"})
	assert.True(t, ok)
	assert.Equal(t, "ref-finance", id)

	// Slug empty falls back to the slugified display name
	id, ok = strategy.Resolve(match.Candidate{Name: "Meta Pool"})
	assert.True(t, ok)
	assert.Equal(t, "meta-pool", id)
}

func TestListing_SubstringMatch(t *testing.T) {
	strategy := match.Listing([]match.ListingEntry{
		{ID: "linear-protocol", Name: "LiNEAR Protocol"},
	})

	id, ok := strategy.Resolve(match.Candidate{Slug: "linear"})
	assert.True(t, ok)
	assert.Equal(t, "linear-protocol", id)
}

// TestListing_ShortNamesNeverSubstringMatch guards the false-positive fence:
// candidates under four characters only resolve through exact equality.
func TestListing_ShortNamesNeverSubstringMatch(t *testing.T) {
	strategy := match.Listing([]match.ListingEntry{
		{ID: "reference", Name: "Reference"},
	})

	_, ok := strategy.Resolve(match.Candidate{Slug: "ref"})
	assert.False(t, ok)

	// The exact pass still works for short names
	short := match.Listing([]match.ListingEntry{{ID: "ref", Name: "Ref"}})
	id, ok := short.Resolve(match.Candidate{Slug: "ref"})
	assert.True(t, ok)
	assert.Equal(t, "ref", id)
}

func TestListing_NoMatch(t *testing.T) {
	strategy := match.Listing([]match.ListingEntry{
		{ID: "ref-finance", Name: "Ref Finance"},
	})

	_, ok := strategy.Resolve(match.Candidate{Slug: "octopus-network"})
	assert.False(t, ok)

	_, ok = strategy.Resolve(match.Candidate{})
	assert.False(t, ok)
}

func TestChain_PriorityOrder(t *testing.T) {
	chain := match.Chain(
		match.FragmentKey("protocol_slug"),
		match.KnownMappings(map[string]string{"burrow-cash": "burrow"}),
		match.Listing([]match.ListingEntry{{ID: "burrow-listing", Name: "Burrow Cash"}}),
	)

	// Stored fragment identifier beats everything
	id, ok := chain.Resolve(match.Candidate{
		Slug:     "burrow-cash",
		Fragment: map[string]interface{}{"protocol_slug": "stored-id"},
	})
	assert.True(t, ok)
	assert.Equal(t, "stored-id", id)

	// No fragment: the known mapping beats the listing heuristic
	id, ok = chain.Resolve(match.Candidate{Slug: "burrow-cash"})
	assert.True(t, ok)
	assert.Equal(t, "burrow", id)

	// Neither fragment nor mapping: the listing heuristic resolves
	id, ok = chain.Resolve(match.Candidate{Slug: "burrow-cash-v2", Name: "Burrow Cash V2"})
	assert.True(t, ok)
	assert.Equal(t, "burrow-listing", id)

	_, ok = chain.Resolve(match.Candidate{Slug: "nothing-matches-here"})
	assert.False(t, ok)
}
