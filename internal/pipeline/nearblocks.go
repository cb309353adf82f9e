package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/match"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/nearblocks"
	"github.com/voidlabs/ecosystem-indexer/internal/ratelimit"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// nearblocksMappings pins contract account ids for projects whose registry
// record lists no contracts
var nearblocksMappings = map[string]string{
	"ref-finance": "v2.ref-finance.near",
	"burrow-cash": "contract.main.burrow.near",
}

// NearblocksStage enriches projects with per-contract transaction counts from
// the chain explorer.
type NearblocksStage struct {
	store       store.Store
	client      nearblocks.Client
	pacer       ratelimit.Pacer
	clock       adapter.Clock
	callTimeout time.Duration
}

// NewNearblocksStage creates the chain-metrics stage
func NewNearblocksStage(s store.Store, client nearblocks.Client, pacer ratelimit.Pacer, clock adapter.Clock, callTimeout time.Duration) *NearblocksStage {
	return &NearblocksStage{
		store:       s,
		client:      client,
		pacer:       pacer,
		clock:       clock,
		callTimeout: callTimeout,
	}
}

// Name identifies the stage in results and logs
func (s *NearblocksStage) Name() string {
	return "nearblocks"
}

// Run resolves each project's primary contract account and writes its
// transaction count fragment
func (s *NearblocksStage) Run(ctx context.Context, runID string) domain.StageResult {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return failedResult(err)
	}

	resolver := match.Chain(
		match.FragmentKey("account_id"),
		match.KnownMappings(nearblocksMappings),
	)

	result := domain.StageResult{Status: domain.StageStatusOK, Total: len(projects)}
	for _, project := range projects {
		accountID, ok := resolver.Resolve(match.Candidate{
			Slug:     project.Slug,
			Name:     project.Name,
			Fragment: fragmentOf(project, domain.ProviderNearblocks),
		})
		if !ok {
			accountID, ok = accountFromRegistry(project)
		}
		if !ok {
			result.Skipped++
			continue
		}

		if err := s.enrichOne(ctx, project, accountID); err != nil {
			logger.WarnCtx(ctx, "failed to enrich chain metrics",
				zap.String("slug", project.Slug), zap.String("account", accountID), zap.Error(err))
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

func (s *NearblocksStage) enrichOne(ctx context.Context, project schema.Project, accountID string) error {
	countCtx, cancel := callCtx(ctx, s.callTimeout)
	txnCount, err := s.client.GetTxnCount(countCtx, accountID)
	cancel()
	if err != nil {
		return err
	}

	fragment := map[string]interface{}{
		"account_id": accountID,
		"txn_count":  txnCount,
	}

	accountCtx, cancel := callCtx(ctx, s.callTimeout)
	account, err := s.client.GetAccount(accountCtx, accountID)
	cancel()
	if err == nil && account != nil {
		fragment["balance"] = account.Amount
	}

	return s.store.SetProjectFragment(ctx, project.ID, domain.ProviderNearblocks, stampFragment(s.clock, fragment))
}
