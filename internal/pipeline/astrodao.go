package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/match"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/astrodao"
	"github.com/voidlabs/ecosystem-indexer/internal/ratelimit"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// daosCategorySlug scopes this stage: only DAO projects are queried against
// the governance factory
const daosCategorySlug = "daos"

// daoListPageSize bounds the factory listing view call
const daoListPageSize = 1000

// astrodaoMappings pins DAO contract ids for prominent DAOs
var astrodaoMappings = map[string]string{
	"near-digital-collective": "ndc.sputnik-dao.near",
}

// AstroDAOStage enriches DAO-category projects with governance counters read
// through NEAR RPC view calls on Sputnik DAO contracts.
type AstroDAOStage struct {
	store       store.Store
	client      astrodao.Client
	pacer       ratelimit.Pacer
	clock       adapter.Clock
	callTimeout time.Duration
}

// NewAstroDAOStage creates the DAO governance stage
func NewAstroDAOStage(s store.Store, client astrodao.Client, pacer ratelimit.Pacer, clock adapter.Clock, callTimeout time.Duration) *AstroDAOStage {
	return &AstroDAOStage{
		store:       s,
		client:      client,
		pacer:       pacer,
		clock:       clock,
		callTimeout: callTimeout,
	}
}

// Name identifies the stage in results and logs
func (s *AstroDAOStage) Name() string {
	return "astrodao"
}

// Run matches DAO projects against the factory's registered DAO list and
// writes proposal and policy counters
func (s *AstroDAOStage) Run(ctx context.Context, runID string) domain.StageResult {
	category, err := s.store.GetCategoryBySlug(ctx, daosCategorySlug)
	if err != nil {
		return failedResult(err)
	}
	if category == nil {
		return failedResult(fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, daosCategorySlug))
	}

	listCtx, cancel := callCtx(ctx, s.callTimeout)
	daoIDs, err := s.client.ListDAOs(listCtx, 0, daoListPageSize)
	cancel()
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("run_id", runID), zap.String("stage", s.Name()))
		return unavailableResult(err)
	}

	entries := make([]match.ListingEntry, 0, len(daoIDs))
	for _, daoID := range daoIDs {
		entries = append(entries, match.ListingEntry{ID: daoID, Name: daoDisplayName(daoID)})
	}

	projects, err := s.store.ListProjectsByCategorySlug(ctx, daosCategorySlug)
	if err != nil {
		return failedResult(err)
	}

	resolver := match.Chain(
		match.FragmentKey("dao_id"),
		match.KnownMappings(astrodaoMappings),
		match.Listing(entries),
	)

	result := domain.StageResult{Status: domain.StageStatusOK, Total: len(projects)}
	for _, project := range projects {
		daoID, ok := resolver.Resolve(match.Candidate{
			Slug:     project.Slug,
			Name:     project.Name,
			Fragment: fragmentOf(project, domain.ProviderAstroDAO),
		})
		if !ok {
			result.Skipped++
			continue
		}

		if err := s.enrichOne(ctx, project, daoID); err != nil {
			logger.WarnCtx(ctx, "failed to enrich governance stats",
				zap.String("slug", project.Slug), zap.String("dao", daoID), zap.Error(err))
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

func (s *AstroDAOStage) enrichOne(ctx context.Context, project schema.Project, daoID string) error {
	statsCtx, cancel := callCtx(ctx, s.callTimeout)
	stats, err := s.client.GetDAOStats(statsCtx, daoID)
	cancel()
	if err != nil {
		return err
	}

	fragment := map[string]interface{}{
		"dao_id":           stats.DAOID,
		"last_proposal_id": stats.LastProposalID,
		"role_count":       stats.RoleCount,
	}
	return s.store.SetProjectFragment(ctx, project.ID, domain.ProviderAstroDAO, stampFragment(s.clock, fragment))
}

// daoDisplayName strips the factory suffix so listing heuristics compare
// against the DAO's chosen name
func daoDisplayName(daoID string) string {
	return strings.TrimSuffix(daoID, "."+astrodao.FactoryAccountID)
}
