package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/match"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/mintbase"
	"github.com/voidlabs/ecosystem-indexer/internal/ratelimit"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// nftsCategorySlug scopes this stage: only NFT projects are queried against
// the marketplace index
const nftsCategorySlug = "nfts"

// mintbaseMappings pins store contract ids for prominent NFT projects
var mintbaseMappings = map[string]string{
	"mintbase": "mintbase1.near",
	"paras":    "x.paras.near",
}

// MintbaseStage enriches NFT-category projects with marketplace store stats
// from the Mintbase GraphQL index.
type MintbaseStage struct {
	store       store.Store
	client      mintbase.Client
	pacer       ratelimit.Pacer
	clock       adapter.Clock
	callTimeout time.Duration
}

// NewMintbaseStage creates the NFT marketplace stage
func NewMintbaseStage(s store.Store, client mintbase.Client, pacer ratelimit.Pacer, clock adapter.Clock, callTimeout time.Duration) *MintbaseStage {
	return &MintbaseStage{
		store:       s,
		client:      client,
		pacer:       pacer,
		clock:       clock,
		callTimeout: callTimeout,
	}
}

// Name identifies the stage in results and logs
func (s *MintbaseStage) Name() string {
	return "mintbase"
}

// Run resolves store contracts for NFT projects and writes their token stats
func (s *MintbaseStage) Run(ctx context.Context, runID string) domain.StageResult {
	category, err := s.store.GetCategoryBySlug(ctx, nftsCategorySlug)
	if err != nil {
		return failedResult(err)
	}
	if category == nil {
		return failedResult(fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, nftsCategorySlug))
	}

	projects, err := s.store.ListProjectsByCategorySlug(ctx, nftsCategorySlug)
	if err != nil {
		return failedResult(err)
	}

	resolver := match.Chain(
		match.FragmentKey("store_id"),
		match.KnownMappings(mintbaseMappings),
	)

	result := domain.StageResult{Status: domain.StageStatusOK, Total: len(projects)}
	for _, project := range projects {
		storeID, ok := resolver.Resolve(match.Candidate{
			Slug:     project.Slug,
			Name:     project.Name,
			Fragment: fragmentOf(project, domain.ProviderMintbase),
		})
		if !ok {
			// Last resort: try the conventional store naming scheme
			storeID = fmt.Sprintf("%s.mintbase1.near", match.Slugify(project.Name))
		}

		enriched, err := s.enrichOne(ctx, project, storeID)
		switch {
		case err != nil:
			logger.WarnCtx(ctx, "failed to enrich marketplace stats",
				zap.String("slug", project.Slug), zap.String("store", storeID), zap.Error(err))
			result.Failed++
		case enriched:
			result.Enriched++
		default:
			result.Skipped++
		}

		if err := s.pacer.Wait(ctx); err != nil {
			result.Error = err.Error()
			return result
		}
	}

	return result
}

// enrichOne returns false without error when the store contract is unknown to
// the marketplace index
func (s *MintbaseStage) enrichOne(ctx context.Context, project schema.Project, storeID string) (bool, error) {
	storeCtx, cancel := callCtx(ctx, s.callTimeout)
	stats, err := s.client.GetStore(storeCtx, storeID)
	cancel()
	if err != nil {
		return false, err
	}
	if stats == nil {
		return false, nil
	}

	fragment := map[string]interface{}{
		"store_id":    stats.Contract.ID,
		"token_count": stats.TokenCount,
		"is_mintbase": stats.Contract.IsMintbase,
	}
	if stats.Contract.Name != nil {
		fragment["store_name"] = *stats.Contract.Name
	}
	if stats.Contract.OwnerID != nil {
		fragment["owner_id"] = *stats.Contract.OwnerID
	}

	if err := s.store.SetProjectFragment(ctx, project.ID, domain.ProviderMintbase, stampFragment(s.clock, fragment)); err != nil {
		return false, err
	}
	return true, nil
}
