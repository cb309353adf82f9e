package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/scoring"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
)

// OpportunityGenerator turns per-category aggregates into ranked opportunity
// rows. Each category gets exactly one row, refreshed in place on every run.
type OpportunityGenerator struct {
	store store.Store
}

// NewOpportunityGenerator creates an opportunity generator
func NewOpportunityGenerator(s store.Store) *OpportunityGenerator {
	return &OpportunityGenerator{store: s}
}

// Generate scores every category and upserts its opportunity row
func (g *OpportunityGenerator) Generate(ctx context.Context, runID string) (domain.OpportunityResult, error) {
	stats, err := g.store.GetCategoryStats(ctx)
	if err != nil {
		return domain.OpportunityResult{}, fmt.Errorf("failed to load category stats: %w", err)
	}

	result := domain.OpportunityResult{}
	for _, category := range stats {
		input := scoring.CategoryInput{
			TotalProjects:       category.TotalProjects,
			ActiveProjects:      category.ActiveProjects,
			TotalTVL:            category.TotalTVL,
			TopProjectTVL:       category.TopProjectTVL,
			TotalTxns:           category.TotalTxns,
			RecentlyPushedRepos: category.RecentlyPushedRepos,
			IsStrategic:         category.IsStrategic,
			StrategicMultiplier: category.StrategicMultiplier,
		}
		breakdown := scoring.Score(input)

		created, err := g.store.UpsertOpportunity(ctx, store.UpsertOpportunityInput{
			CategoryID:        category.CategoryID,
			Title:             fmt.Sprintf("%s gap on NEAR", category.Name),
			Description:       describeGap(category),
			Reasoning:         reasoningFor(breakdown),
			GapScore:          breakdown.FinalScore,
			DemandScore:       scoring.DemandScore(input),
			CompetitionLevel:  CompetitionFor(category.ActiveProjects),
			Difficulty:        DifficultyFor(category.Slug),
			SuggestedFeatures: SuggestedFeaturesFor(category.Slug),
		})
		if err != nil {
			return result, fmt.Errorf("failed to upsert opportunity for %s: %w", category.Slug, err)
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
		result.Total++
	}

	logger.InfoCtx(ctx, "opportunities generated",
		zap.String("run_id", runID),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated))
	return result, nil
}

// describeGap summarizes the category's current supply side
func describeGap(c store.CategoryStats) string {
	switch {
	case c.ActiveProjects == 0:
		return fmt.Sprintf("No active %s projects are building on NEAR right now.", c.Name)
	case c.ActiveProjects <= 2:
		return fmt.Sprintf("Only %d active %s project(s) on NEAR; the niche is effectively open.", c.ActiveProjects, c.Name)
	default:
		return fmt.Sprintf("%d active %s projects on NEAR out of %d tracked.", c.ActiveProjects, c.Name, c.TotalProjects)
	}
}

// reasoningFor renders the score breakdown as a readable audit trail
func reasoningFor(b scoring.Breakdown) string {
	parts := make([]string, 0, len(b.Signals))
	for _, signal := range b.Signals {
		parts = append(parts, fmt.Sprintf("%s=%.1f (weight %.2f)", signal.Name, signal.Value, signal.Weight))
	}
	return fmt.Sprintf("score %.1f: %s", b.FinalScore, strings.Join(parts, ", "))
}
