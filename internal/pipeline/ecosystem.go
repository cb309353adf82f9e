package pipeline

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/nearcatalog"
	"github.com/voidlabs/ecosystem-indexer/internal/ratelimit"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
)

// EcosystemStage bootstraps project rows from the NEAR Catalog registry. It is
// the only stage allowed to create projects; every later stage enriches rows
// this one wrote.
type EcosystemStage struct {
	store       store.Store
	client      nearcatalog.Client
	pacer       ratelimit.Pacer
	clock       adapter.Clock
	callTimeout time.Duration
}

// NewEcosystemStage creates the registry bootstrap stage
func NewEcosystemStage(s store.Store, client nearcatalog.Client, pacer ratelimit.Pacer, clock adapter.Clock, callTimeout time.Duration) *EcosystemStage {
	return &EcosystemStage{
		store:       s,
		client:      client,
		pacer:       pacer,
		clock:       clock,
		callTimeout: callTimeout,
	}
}

// Name identifies the stage in results and logs
func (s *EcosystemStage) Name() string {
	return "ecosystem"
}

// Run fetches the registry listing and creates or refreshes one project row
// per listed slug
func (s *EcosystemStage) Run(ctx context.Context, runID string) domain.StageResult {
	listCtx, cancel := callCtx(ctx, s.callTimeout)
	listing, err := s.client.ListProjects(listCtx)
	cancel()
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("run_id", runID), zap.String("stage", s.Name()))
		return unavailableResult(err)
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return failedResult(err)
	}
	categoryIDs := make(map[string]int64, len(categories))
	for _, c := range categories {
		categoryIDs[c.Slug] = c.ID
	}

	// Stable iteration order keeps run behavior reproducible
	slugs := make([]string, 0, len(listing))
	for slug := range listing {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	result := domain.StageResult{Status: domain.StageStatusOK, Total: len(slugs)}
	for _, slug := range slugs {
		entry := listing[slug]
		if slug == "" || entry.Profile.Name == "" {
			result.Skipped++
			continue
		}

		detailCtx, cancel := callCtx(ctx, s.callTimeout)
		detail, err := s.client.GetProject(detailCtx, slug)
		cancel()
		if err != nil {
			// Fall back to the listing entry: a missing detail record
			// should not cost us the project row itself
			detail = &nearcatalog.ProjectDetail{Slug: slug, Profile: entry.Profile}
		}

		if err := s.upsertOne(ctx, slug, detail, categoryIDs); err != nil {
			logger.WarnCtx(ctx, "failed to upsert registry project",
				zap.String("slug", slug), zap.Error(err))
			result.Failed++
		} else {
			result.Enriched++
		}

		if err := s.pacer.Wait(ctx); err != nil {
			result.Error = err.Error()
			return result
		}
	}

	return result
}

func (s *EcosystemStage) upsertOne(ctx context.Context, slug string, detail *nearcatalog.ProjectDetail, categoryIDs map[string]int64) error {
	categoryID := categoryIDFor(detail.Profile.Tags, categoryIDs)
	_, err := s.store.UpsertProject(ctx, store.UpsertProjectInput{
		Slug:        slug,
		Name:        detail.Profile.Name,
		Description: detail.Profile.Tagline,
		CategoryID:  categoryID,
	})
	if err != nil {
		return err
	}

	project, err := s.store.GetProjectBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrProjectNotFound
	}

	// The registry stays the categorization authority: when its tag mapping
	// moved an existing project, reassign the row explicitly
	if !sameCategoryID(project.CategoryID, categoryID) {
		if err := s.store.UpdateProjectCategory(ctx, project.ID, categoryID); err != nil {
			return err
		}
	}

	fragment := map[string]interface{}{
		"name":    detail.Profile.Name,
		"tagline": detail.Profile.Tagline,
		"tags":    detail.Profile.Tags,
	}
	if detail.Profile.Dapp != "" {
		fragment["dapp"] = detail.Profile.Dapp
	}
	if len(detail.Profile.Linktree) > 0 {
		fragment["linktree"] = detail.Profile.Linktree
	}
	if len(detail.Contracts) > 0 {
		fragment["contracts"] = detail.Contracts
	}

	return s.store.SetProjectFragment(ctx, project.ID, domain.ProviderNearCatalog, stampFragment(s.clock, fragment))
}

func sameCategoryID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// categoryIDFor picks the first registry tag that maps to a catalog category,
// in sorted tag order for determinism
func categoryIDFor(tags map[string]string, categoryIDs map[string]int64) *int64 {
	tagSlugs := make([]string, 0, len(tags))
	for tag := range tags {
		tagSlugs = append(tagSlugs, tag)
	}
	sort.Strings(tagSlugs)

	for _, tag := range tagSlugs {
		categorySlug := CategorySlugForTag(tag)
		if categorySlug == "" {
			continue
		}
		if id, ok := categoryIDs[categorySlug]; ok {
			return &id
		}
	}
	return nil
}
