package pipeline

import (
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// Catalog is the fixed category registry reconciled into the database at the
// start of every run. Slug is the reconciliation key; categories present in
// the database but absent here are removed with their opportunities.
var Catalog = []schema.Category{
	{
		Slug:                "defi",
		Name:                "DeFi",
		Description:         "Lending, DEXes, derivatives and other open finance protocols",
		Icon:                "bank",
		StrategicMultiplier: 1.0,
	},
	{
		Slug:                "nfts",
		Name:                "NFTs",
		Description:         "NFT marketplaces, minting platforms and collection tooling",
		Icon:                "frame",
		StrategicMultiplier: 1.0,
	},
	{
		Slug:                "daos",
		Name:                "DAOs",
		Description:         "On-chain governance, treasuries and coordination tooling",
		Icon:                "ballot",
		StrategicMultiplier: 1.0,
	},
	{
		Slug:                "ai-agents",
		Name:                "AI Agents",
		Description:         "Autonomous agents transacting and coordinating on chain",
		Icon:                "robot",
		IsStrategic:         true,
		StrategicMultiplier: 2.0,
	},
	{
		Slug:                "gaming",
		Name:                "Gaming",
		Description:         "On-chain games and game asset infrastructure",
		Icon:                "gamepad",
		StrategicMultiplier: 1.0,
	},
	{
		Slug:                "infrastructure",
		Name:                "Infrastructure",
		Description:         "RPC providers, indexers, oracles and node tooling",
		Icon:                "server",
		StrategicMultiplier: 1.0,
	},
	{
		Slug:                "wallets",
		Name:                "Wallets",
		Description:         "Key management, account abstraction and wallet UX",
		Icon:                "wallet",
		StrategicMultiplier: 1.0,
	},
	{
		Slug:                "social",
		Name:                "Social",
		Description:         "Decentralized social graphs, content and reputation",
		Icon:                "chat",
		StrategicMultiplier: 1.0,
	},
	{
		Slug:                "privacy",
		Name:                "Privacy",
		Description:         "Confidential transactions, shielded state and ZK tooling",
		Icon:                "shield",
		IsStrategic:         true,
		StrategicMultiplier: 1.5,
	},
	{
		Slug:                "cross-chain",
		Name:                "Cross-chain",
		Description:         "Bridges, chain signatures and multichain account tooling",
		Icon:                "link",
		IsStrategic:         true,
		StrategicMultiplier: 1.5,
	},
	{
		Slug:                "developer-tools",
		Name:                "Developer Tools",
		Description:         "SDKs, testing frameworks and contract development tooling",
		Icon:                "wrench",
		StrategicMultiplier: 1.0,
	},
	{
		Slug:                "payments",
		Name:                "Payments",
		Description:         "Stablecoin rails, checkout flows and remittance products",
		Icon:                "card",
		StrategicMultiplier: 1.0,
	},
}

// tagAliases maps registry tag slugs onto catalog category slugs where the
// registry uses a different vocabulary
var tagAliases = map[string]string{
	"dex":         "defi",
	"lending":     "defi",
	"stableswap":  "defi",
	"nft":         "nfts",
	"marketplace": "nfts",
	"dao":         "daos",
	"governance":  "daos",
	"ai":          "ai-agents",
	"games":       "gaming",
	"game":        "gaming",
	"oracle":      "infrastructure",
	"indexer":     "infrastructure",
	"rpc":         "infrastructure",
	"wallet":      "wallets",
	"messaging":   "social",
	"zk":          "privacy",
	"bridge":      "cross-chain",
	"interop":     "cross-chain",
	"sdk":         "developer-tools",
	"tooling":     "developer-tools",
	"stablecoin":  "payments",
	"onramp":      "payments",
}

// CategorySlugForTag resolves a registry tag slug to a catalog category slug,
// empty when the tag maps to nothing we track
func CategorySlugForTag(tag string) string {
	if alias, ok := tagAliases[tag]; ok {
		return alias
	}
	for _, c := range Catalog {
		if c.Slug == tag {
			return c.Slug
		}
	}
	return ""
}

// advanced and intermediate difficulty category sets; everything else defaults
// to beginner. Categories built on novel cryptography or cross-chain logic are
// advanced regardless of how empty they look.
var categoryDifficulty = map[string]domain.Difficulty{
	"privacy":         domain.DifficultyAdvanced,
	"cross-chain":     domain.DifficultyAdvanced,
	"ai-agents":       domain.DifficultyAdvanced,
	"infrastructure":  domain.DifficultyIntermediate,
	"defi":            domain.DifficultyIntermediate,
	"developer-tools": domain.DifficultyIntermediate,
}

// DifficultyFor returns the build difficulty heuristic for a category
func DifficultyFor(categorySlug string) domain.Difficulty {
	if d, ok := categoryDifficulty[categorySlug]; ok {
		return d
	}
	return domain.DifficultyBeginner
}

// CompetitionFor classifies crowding from the active-project count
func CompetitionFor(activeProjects int) domain.CompetitionLevel {
	switch {
	case activeProjects <= 2:
		return domain.CompetitionLow
	case activeProjects <= 10:
		return domain.CompetitionMedium
	default:
		return domain.CompetitionHigh
	}
}

// suggestedFeatures holds per-category product suggestions surfaced on the
// generated opportunity
var suggestedFeatures = map[string][]string{
	"defi":            {"Intent-based swaps", "Cross-margin lending", "Liquid staking integrations"},
	"nfts":            {"Lazy minting", "Creator royalties enforcement", "Collection analytics"},
	"daos":            {"Delegated voting", "Streaming treasury payouts", "Proposal simulation"},
	"ai-agents":       {"Agent wallets with spend limits", "On-chain task escrow", "Verifiable inference receipts"},
	"gaming":          {"Session keys", "Asset rental markets", "On-chain matchmaking"},
	"infrastructure":  {"Historical state APIs", "Event webhooks", "Multi-region RPC failover"},
	"wallets":         {"Social recovery", "Passkey signing", "Fiat onramp integration"},
	"social":          {"Portable social graph", "Token-gated spaces", "Creator subscriptions"},
	"privacy":         {"Shielded transfers", "Private voting", "Selective disclosure credentials"},
	"cross-chain":     {"Chain-signature custody", "Unified gas abstraction", "Cross-chain messaging"},
	"developer-tools": {"Contract test harness", "Local sandbox chains", "Deployment pipelines"},
	"payments":        {"Stablecoin checkout", "Payment links", "Recurring billing"},
}

// SuggestedFeaturesFor returns the product suggestions for a category
func SuggestedFeaturesFor(categorySlug string) []string {
	if features, ok := suggestedFeatures[categorySlug]; ok {
		return features
	}
	return []string{"Ecosystem integration", "Developer documentation", "Mobile-first UX"}
}
