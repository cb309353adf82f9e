package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/match"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/defillama"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
)

// defillamaMappings pins protocol slugs for prominent projects whose registry
// and DefiLlama names diverge too far for the listing heuristic
var defillamaMappings = map[string]string{
	"ref-finance":     "ref-finance",
	"burrow-cash":     "burrow",
	"meta-pool":       "meta-pool",
	"linear-protocol": "linear-protocol",
}

// DefiLlamaStage attributes NEAR-chain TVL to projects from the DefiLlama
// protocol listing. One listing call serves the whole stage.
type DefiLlamaStage struct {
	store       store.Store
	client      defillama.Client
	clock       adapter.Clock
	callTimeout time.Duration
}

// NewDefiLlamaStage creates the TVL enrichment stage
func NewDefiLlamaStage(s store.Store, client defillama.Client, clock adapter.Clock, callTimeout time.Duration) *DefiLlamaStage {
	return &DefiLlamaStage{
		store:       s,
		client:      client,
		clock:       clock,
		callTimeout: callTimeout,
	}
}

// Name identifies the stage in results and logs
func (s *DefiLlamaStage) Name() string {
	return "defillama"
}

// Run matches projects against the NEAR protocol listing and writes tvl_usd
// with provider attribution
func (s *DefiLlamaStage) Run(ctx context.Context, runID string) domain.StageResult {
	listCtx, cancel := callCtx(ctx, s.callTimeout)
	protocols, err := s.client.ListProtocols(listCtx)
	cancel()
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("run_id", runID), zap.String("stage", s.Name()))
		return unavailableResult(err)
	}

	nearProtocols := make(map[string]defillama.Protocol)
	entries := make([]match.ListingEntry, 0)
	for _, p := range protocols {
		if !p.OnNear() {
			continue
		}
		nearProtocols[p.Slug] = p
		entries = append(entries, match.ListingEntry{ID: p.Slug, Name: p.Name})
	}

	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return failedResult(err)
	}

	resolver := match.Chain(
		match.FragmentKey("protocol_slug"),
		match.KnownMappings(defillamaMappings),
		match.Listing(entries),
	)

	result := domain.StageResult{Status: domain.StageStatusOK, Total: len(projects)}
	for _, project := range projects {
		protocolSlug, ok := resolver.Resolve(match.Candidate{
			Slug:     project.Slug,
			Name:     project.Name,
			Fragment: fragmentOf(project, domain.ProviderDefiLlama),
		})
		if !ok {
			result.Skipped++
			continue
		}
		protocol, ok := nearProtocols[protocolSlug]
		if !ok {
			result.Skipped++
			continue
		}

		if err := s.enrichOne(ctx, project.ID, protocol); err != nil {
			logger.WarnCtx(ctx, "failed to write TVL",
				zap.String("slug", project.Slug), zap.Error(err))
			result.Failed++
			continue
		}
		result.Enriched++
	}

	return result
}

func (s *DefiLlamaStage) enrichOne(ctx context.Context, projectID int64, protocol defillama.Protocol) error {
	if err := s.store.UpdateProjectTVL(ctx, projectID, protocol.NearTVL(), domain.ProviderDefiLlama); err != nil {
		return err
	}

	fragment := map[string]interface{}{
		"protocol_slug": protocol.Slug,
		"name":          protocol.Name,
		"category":      protocol.Category,
		"tvl_usd":       protocol.NearTVL(),
	}
	return s.store.SetProjectFragment(ctx, projectID, domain.ProviderDefiLlama, stampFragment(s.clock, fragment))
}
