package pipeline

import (
	"time"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/nearrpc"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/astrodao"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/defillama"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/fastnear"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/github"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/mintbase"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/nearblocks"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/nearcatalog"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/pikespeak"
	"github.com/voidlabs/ecosystem-indexer/internal/ratelimit"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
)

// Config holds everything needed to wire the standard stage lineup
type Config struct {
	NearCatalogURL   string
	DefiLlamaURL     string
	GithubURL        string
	GithubToken      string
	NearblocksURL    string
	NearblocksAPIKey string
	FastNearURL      string
	PikespeakURL     string
	PikespeakAPIKey  string
	MintbaseURL      string
	MintbaseAPIKey   string
	NearRPCURL       string

	// CallTimeout bounds every outbound provider call
	CallTimeout time.Duration
	// PaceRequestsPerSecond is the per-provider token-bucket refill rate
	PaceRequestsPerSecond float64
	// RunLockTTL is how long a run lock is honored before stale takeover
	RunLockTTL time.Duration
}

// NewDefaultOrchestrator wires the full pipeline: real provider clients, one
// pacer per provider, the fixed stage order, and the opportunity generator
func NewDefaultOrchestrator(s store.Store, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, clock adapter.Clock, cfg Config) *Orchestrator {
	pacer := func() ratelimit.Pacer {
		return ratelimit.NewPacer(cfg.PaceRequestsPerSecond)
	}

	rpcClient := nearrpc.NewClient(httpClient, cfg.NearRPCURL, jsonAdapter)

	stages := []Stage{
		NewEcosystemStage(s,
			nearcatalog.NewClient(httpClient, cfg.NearCatalogURL, jsonAdapter),
			pacer(), clock, cfg.CallTimeout),
		NewDefiLlamaStage(s,
			defillama.NewClient(httpClient, cfg.DefiLlamaURL, jsonAdapter),
			clock, cfg.CallTimeout),
		NewGithubStage(s,
			github.NewClient(httpClient, cfg.GithubURL, cfg.GithubToken, jsonAdapter),
			pacer(), clock, cfg.CallTimeout),
		NewNearblocksStage(s,
			nearblocks.NewClient(httpClient, cfg.NearblocksURL, cfg.NearblocksAPIKey, jsonAdapter),
			pacer(), clock, cfg.CallTimeout),
		NewFastNearStage(s,
			fastnear.NewClient(httpClient, cfg.FastNearURL, jsonAdapter),
			pacer(), clock, cfg.CallTimeout),
		NewPikespeakStage(s,
			pikespeak.NewClient(httpClient, cfg.PikespeakURL, cfg.PikespeakAPIKey, jsonAdapter),
			pacer(), clock, cfg.CallTimeout),
		NewMintbaseStage(s,
			mintbase.NewClient(httpClient, cfg.MintbaseURL, cfg.MintbaseAPIKey, jsonAdapter),
			pacer(), clock, cfg.CallTimeout),
		NewAstroDAOStage(s,
			astrodao.NewClient(rpcClient, jsonAdapter),
			pacer(), clock, cfg.CallTimeout),
	}

	return NewOrchestrator(
		s,
		NewCategoryReconciler(s),
		stages,
		NewOpportunityGenerator(s),
		clock,
		cfg.RunLockTTL,
	)
}
