package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/match"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/fastnear"
	"github.com/voidlabs/ecosystem-indexer/internal/ratelimit"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// FastNearStage derives project liveness from on-chain account state: an
// account that exists with storage or token positions marks the project active.
type FastNearStage struct {
	store       store.Store
	client      fastnear.Client
	pacer       ratelimit.Pacer
	clock       adapter.Clock
	callTimeout time.Duration
}

// NewFastNearStage creates the on-chain liveness stage
func NewFastNearStage(s store.Store, client fastnear.Client, pacer ratelimit.Pacer, clock adapter.Clock, callTimeout time.Duration) *FastNearStage {
	return &FastNearStage{
		store:       s,
		client:      client,
		pacer:       pacer,
		clock:       clock,
		callTimeout: callTimeout,
	}
}

// Name identifies the stage in results and logs
func (s *FastNearStage) Name() string {
	return "fastnear"
}

// Run resolves each project's account and writes the liveness signal with
// provider attribution
func (s *FastNearStage) Run(ctx context.Context, runID string) domain.StageResult {
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
			Fragment: fragmentOf(project, domain.ProviderFastNear),
		})
		if !ok {
			accountID, ok = accountFromRegistry(project)
		}
		if !ok {
			result.Skipped++
			continue
		}

		if err := s.enrichOne(ctx, project, accountID); err != nil {
			logger.WarnCtx(ctx, "failed to enrich account state",
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

func (s *FastNearStage) enrichOne(ctx context.Context, project schema.Project, accountID string) error {
	accountCtx, cancel := callCtx(ctx, s.callTimeout)
	info, err := s.client.GetAccount(accountCtx, accountID)
	cancel()
	if err != nil {
		return err
	}

	active := info.Exists()
	if err := s.store.UpdateProjectActivity(ctx, project.ID, active, domain.ProviderFastNear); err != nil {
		return err
	}

	fragment := map[string]interface{}{
		"account_id":  accountID,
		"exists":      info.Exists(),
		"token_count": len(info.Tokens),
	}
	if info.State != nil {
		fragment["balance"] = info.State.Balance
		fragment["storage_bytes"] = info.State.StorageBytes
	}
	return s.store.SetProjectFragment(ctx, project.ID, domain.ProviderFastNear, stampFragment(s.clock, fragment))
}
