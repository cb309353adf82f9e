package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
)

// CategoryReconciler reconciles the database against the fixed catalog: every
// catalog entry is upserted by slug, then obsolete categories are removed with
// the full orphan-projects and delete-opportunities cascade.
type CategoryReconciler struct {
	store store.Store
}

// NewCategoryReconciler creates a category reconciler
func NewCategoryReconciler(s store.Store) *CategoryReconciler {
	return &CategoryReconciler{store: s}
}

// Run reconciles categories; it must run before any adapter stage so category
// assignments made during the run reference live rows
func (r *CategoryReconciler) Run(ctx context.Context, runID string) (domain.CategoryResult, error) {
	result := domain.CategoryResult{Total: len(Catalog)}

	for _, category := range Catalog {
		if err := r.store.UpsertCategory(ctx, category); err != nil {
			return result, fmt.Errorf("failed to upsert category %s: %w", category.Slug, err)
		}
		result.Upserted++
	}

	removed, err := r.RemoveObsoleteCategories(ctx)
	if err != nil {
		return result, err
	}
	result.Removed = removed

	logger.InfoCtx(ctx, "categories reconciled",
		zap.String("run_id", runID),
		zap.Int("upserted", result.Upserted),
		zap.Int("removed", result.Removed))
	return result, nil
}

// RemoveObsoleteCategories removes every category the catalog no longer names.
// Each removal orphans the category's projects, deletes its opportunity rows,
// then deletes the category itself.
func (r *CategoryReconciler) RemoveObsoleteCategories(ctx context.Context) (int, error) {
	existing, err := r.store.ListCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list categories: %w", err)
	}

	known := make(map[string]struct{}, len(Catalog))
	for _, category := range Catalog {
		known[category.Slug] = struct{}{}
	}

	removed := 0
	for _, category := range existing {
		if _, ok := known[category.Slug]; ok {
			continue
		}
		gone, err := r.store.RemoveCategory(ctx, category.Slug)
		if err != nil {
			return removed, fmt.Errorf("failed to remove category %s: %w", category.Slug, err)
		}
		if gone {
			logger.WarnCtx(ctx, "removed obsolete category", zap.String("slug", category.Slug))
			removed++
		}
	}
	return removed, nil
}
