package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/match"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/pikespeak"
	"github.com/voidlabs/ecosystem-indexer/internal/ratelimit"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// PikespeakStage enriches projects with wallet-analytics interaction metrics.
// A nonzero transaction count refreshes the liveness signal under this
// provider's attribution.
type PikespeakStage struct {
	store       store.Store
	client      pikespeak.Client
	pacer       ratelimit.Pacer
	clock       adapter.Clock
	callTimeout time.Duration
}

// NewPikespeakStage creates the wallet-analytics stage
func NewPikespeakStage(s store.Store, client pikespeak.Client, pacer ratelimit.Pacer, clock adapter.Clock, callTimeout time.Duration) *PikespeakStage {
	return &PikespeakStage{
		store:       s,
		client:      client,
		pacer:       pacer,
		clock:       clock,
		callTimeout: callTimeout,
	}
}

// Name identifies the stage in results and logs
func (s *PikespeakStage) Name() string {
	return "pikespeak"
}

// Run resolves each project's account and writes interaction metrics
func (s *PikespeakStage) Run(ctx context.Context, runID string) domain.StageResult {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return failedResult(err)
	}

	resolver := match.FragmentKey("account_id")

	result := domain.StageResult{Status: domain.StageStatusOK, Total: len(projects)}
	for _, project := range projects {
		accountID, ok := resolver.Resolve(match.Candidate{
			Slug:     project.Slug,
			Name:     project.Name,
			Fragment: fragmentOf(project, domain.ProviderPikespeak),
		})
		if !ok {
			accountID, ok = accountFromRegistry(project)
		}
		if !ok {
			result.Skipped++
			continue
		}

		if err := s.enrichOne(ctx, project, accountID); err != nil {
			logger.WarnCtx(ctx, "failed to enrich wallet analytics",
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

func (s *PikespeakStage) enrichOne(ctx context.Context, project schema.Project, accountID string) error {
	countCtx, cancel := callCtx(ctx, s.callTimeout)
	txCount, err := s.client.GetTxCount(countCtx, accountID)
	cancel()
	if err != nil {
		return err
	}

	if txCount > 0 {
		if err := s.store.UpdateProjectActivity(ctx, project.ID, true, domain.ProviderPikespeak); err != nil {
			return err
		}
	}

	fragment := map[string]interface{}{
		"account_id": accountID,
		"tx_count":   txCount,
	}

	wealthCtx, cancel := callCtx(ctx, s.callTimeout)
	wealth, err := s.client.GetAccountWealth(wealthCtx, accountID)
	cancel()
	if err == nil && wealth != nil {
		fragment["total_usd"] = wealth.TotalUSD
		fragment["asset_count"] = len(wealth.Balances)
	}

	return s.store.SetProjectFragment(ctx, project.ID, domain.ProviderPikespeak, stampFragment(s.clock, fragment))
}
