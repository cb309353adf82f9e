// Package pipeline wires the sync run: category reconciliation, the eight
// provider adapter stages, opportunity generation, and the orchestrator that
// sequences them under one audit log entry.
package pipeline

import (
	"context"
	"time"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// Stage is one named, ordered unit of the sync run. Run never panics past the
// stage and reports per-item failures through the result counters rather than
// an error return; a non-nil result error marks the whole stage as unusable.
type Stage interface {
	// Name identifies the stage in results and logs
	Name() string
	// Run executes the stage for one pipeline run
	Run(ctx context.Context, runID string) domain.StageResult
}

// callCtx bounds one outbound provider call
func callCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// fragmentOf extracts the provider's namespaced fragment from a project's raw
// data, nil when the provider has not written one yet
func fragmentOf(p schema.Project, provider domain.Provider) map[string]interface{} {
	if p.RawData == nil {
		return nil
	}
	fragment, ok := p.RawData[string(provider)].(map[string]interface{})
	if !ok {
		return nil
	}
	return fragment
}

// stampFragment adds the synced_at timestamp every fragment write carries
func stampFragment(clock adapter.Clock, fragment map[string]interface{}) map[string]interface{} {
	fragment["synced_at"] = clock.Now().UTC().Format(time.RFC3339)
	return fragment
}

// accountFromRegistry pulls the first on-chain account id the registry
// recorded for a project, used when a chain-facing stage has no stored or
// mapped identifier of its own
func accountFromRegistry(p schema.Project) (string, bool) {
	registry := fragmentOf(p, domain.ProviderNearCatalog)
	if registry == nil {
		return "", false
	}
	contracts, ok := registry["contracts"].([]interface{})
	if !ok || len(contracts) == 0 {
		return "", false
	}
	account, ok := contracts[0].(string)
	return account, ok && account != ""
}

// unavailableResult is the short-circuit result when a provider's bootstrap
// call fails before any project is touched
func unavailableResult(err error) domain.StageResult {
	return domain.StageResult{
		Status: domain.StageStatusAPIUnavailable,
		Error:  err.Error(),
	}
}

// failedResult marks a stage that errored before producing counts
func failedResult(err error) domain.StageResult {
	return domain.StageResult{
		Status: domain.StageStatusFailed,
		Error:  err.Error(),
	}
}
