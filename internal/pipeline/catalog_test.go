package pipeline_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/pipeline"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestCatalog_SlugsAreUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for _, category := range pipeline.Catalog {
		_, dup := seen[category.Slug]
		assert.False(t, dup, "duplicate slug %s", category.Slug)
		seen[category.Slug] = struct{}{}

		assert.NotEmpty(t, category.Name, "category %s has no name", category.Slug)
		assert.GreaterOrEqual(t, category.StrategicMultiplier, 1.0, "category %s", category.Slug)
		if category.IsStrategic {
			assert.Greater(t, category.StrategicMultiplier, 1.0, "strategic category %s", category.Slug)
		}
	}
}

func TestCategorySlugForTag(t *testing.T) {
	// Aliases map onto catalog slugs
	assert.Equal(t, "defi", pipeline.CategorySlugForTag("dex"))
	assert.Equal(t, "defi", pipeline.CategorySlugForTag("lending"))
	assert.Equal(t, "nfts", pipeline.CategorySlugForTag("nft"))
	assert.Equal(t, "cross-chain", pipeline.CategorySlugForTag("bridge"))

	// Catalog slugs resolve to themselves
	assert.Equal(t, "gaming", pipeline.CategorySlugForTag("gaming"))
	assert.Equal(t, "ai-agents", pipeline.CategorySlugForTag("ai-agents"))

	// Unknown tags resolve to nothing
	assert.Equal(t, "", pipeline.CategorySlugForTag("metaverse"))
	assert.Equal(t, "", pipeline.CategorySlugForTag(""))
}

func TestDifficultyFor(t *testing.T) {
	assert.Equal(t, domain.DifficultyAdvanced, pipeline.DifficultyFor("privacy"))
	assert.Equal(t, domain.DifficultyAdvanced, pipeline.DifficultyFor("cross-chain"))
	assert.Equal(t, domain.DifficultyAdvanced, pipeline.DifficultyFor("ai-agents"))
	assert.Equal(t, domain.DifficultyIntermediate, pipeline.DifficultyFor("defi"))
	assert.Equal(t, domain.DifficultyBeginner, pipeline.DifficultyFor("social"))
	assert.Equal(t, domain.DifficultyBeginner, pipeline.DifficultyFor("unknown"))
}

func TestCompetitionFor(t *testing.T) {
	assert.Equal(t, domain.CompetitionLow, pipeline.CompetitionFor(0))
	assert.Equal(t, domain.CompetitionLow, pipeline.CompetitionFor(2))
	assert.Equal(t, domain.CompetitionMedium, pipeline.CompetitionFor(3))
	assert.Equal(t, domain.CompetitionMedium, pipeline.CompetitionFor(10))
	assert.Equal(t, domain.CompetitionHigh, pipeline.CompetitionFor(11))
}

func TestSuggestedFeaturesFor(t *testing.T) {
	features := pipeline.SuggestedFeaturesFor("payments")
	assert.Contains(t, features, "Stablecoin checkout")

	// Unknown categories fall back to the generic suggestions
	fallback := pipeline.SuggestedFeaturesFor("unknown")
	assert.NotEmpty(t, fallback)
	assert.Contains(t, fallback, "Ecosystem integration")
}
