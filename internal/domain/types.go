package domain

// Provider identifies an external data source feeding the pipeline
type Provider string

const (
	// ProviderNearCatalog represents the NEAR ecosystem project registry
	ProviderNearCatalog Provider = "nearcatalog"
	// ProviderDefiLlama represents the DefiLlama TVL aggregator
	ProviderDefiLlama Provider = "defillama"
	// ProviderGitHub represents the GitHub repository activity tracker
	ProviderGitHub Provider = "github"
	// ProviderNearblocks represents the Nearblocks chain-metrics service
	ProviderNearblocks Provider = "nearblocks"
	// ProviderFastNear represents the FastNear on-chain indexer
	ProviderFastNear Provider = "fastnear"
	// ProviderPikespeak represents the Pikespeak wallet-analytics service
	ProviderPikespeak Provider = "pikespeak"
	// ProviderMintbase represents the Mintbase NFT marketplace index
	ProviderMintbase Provider = "mintbase"
	// ProviderAstroDAO represents the AstroDAO governance contract index
	ProviderAstroDAO Provider = "astrodao"
)

// StageStatus represents the outcome class of a pipeline stage
type StageStatus string

const (
	// StageStatusOK means the stage ran to completion (individual items may still have failed)
	StageStatusOK StageStatus = "ok"
	// StageStatusAPIUnavailable means the provider's bootstrap call failed and the
	// stage short-circuited without touching any project
	StageStatusAPIUnavailable StageStatus = "api_unavailable"
	// StageStatusFailed means the stage itself errored before producing counts
	StageStatusFailed StageStatus = "failed"
)

// StageResult summarizes one pipeline stage run
type StageResult struct {
	Status   StageStatus `json:"status"`
	Enriched int         `json:"enriched"`
	Failed   int         `json:"failed"`
	Skipped  int         `json:"skipped"`
	Total    int         `json:"total"`
	Error    string      `json:"error,omitempty"`
}

// OpportunityResult summarizes an opportunity generation pass
type OpportunityResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Total   int `json:"total"`
}

// CategoryResult summarizes a category registry reconciliation
type CategoryResult struct {
	Upserted int `json:"upserted"`
	Removed  int `json:"removed"`
	Total    int `json:"total"`
}

// CompetitionLevel classifies how crowded a category is
type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "low"
	CompetitionMedium CompetitionLevel = "medium"
	CompetitionHigh   CompetitionLevel = "high"
)

// Difficulty classifies how hard building in a category is
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// SyncSource identifies which trigger started a pipeline run
type SyncSource string

const (
	// SyncSourceScheduler marks runs started by the external cron scheduler
	SyncSourceScheduler SyncSource = "scheduler"
	// SyncSourceManual marks runs started through the manual trigger endpoint
	SyncSourceManual SyncSource = "manual"
	// SyncSourceCLI marks runs started from the one-shot sync command
	SyncSourceCLI SyncSource = "cli"
)
