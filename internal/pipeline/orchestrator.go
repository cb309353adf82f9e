package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
)

// Results aggregates everything one sync run produced, keyed the way the
// trigger endpoints expose it
type Results struct {
	Categories    domain.CategoryResult    `json:"categories"`
	Ecosystem     domain.StageResult       `json:"ecosystem"`
	DefiLlama     domain.StageResult       `json:"defillama"`
	Github        domain.StageResult       `json:"github"`
	Nearblocks    domain.StageResult       `json:"nearblocks"`
	FastNear      domain.StageResult       `json:"fastnear"`
	Pikespeak     domain.StageResult       `json:"pikespeak"`
	Mintbase      domain.StageResult       `json:"mintbase"`
	AstroDAO      domain.StageResult       `json:"astrodao"`
	Opportunities domain.OpportunityResult `json:"opportunities"`
}

func (r *Results) setStage(name string, res domain.StageResult) {
	switch name {
	case "ecosystem":
		r.Ecosystem = res
	case "defillama":
		r.DefiLlama = res
	case "github":
		r.Github = res
	case "nearblocks":
		r.Nearblocks = res
	case "fastnear":
		r.FastNear = res
	case "pikespeak":
		r.Pikespeak = res
	case "mintbase":
		r.Mintbase = res
	case "astrodao":
		r.AstroDAO = res
	}
}

// recordsProcessed is the aggregate count written to the run's audit row
func (r *Results) recordsProcessed() int {
	stages := []domain.StageResult{
		r.Ecosystem, r.DefiLlama, r.Github, r.Nearblocks,
		r.FastNear, r.Pikespeak, r.Mintbase, r.AstroDAO,
	}
	total := r.Categories.Upserted + r.Opportunities.Total
	for _, s := range stages {
		total += s.Enriched
	}
	return total
}

// Orchestrator sequences one sync run: run lock, audit row, category
// reconciliation, the adapter stages in fixed order, opportunity generation.
// Adapter stage failures are captured in the results and never abort the run;
// only reconciliation, generation, or an escaped panic fail the run itself.
type Orchestrator struct {
	store      store.Store
	reconciler *CategoryReconciler
	stages     []Stage
	generator  *OpportunityGenerator
	clock      adapter.Clock
	lockTTL    time.Duration
}

// NewOrchestrator creates an orchestrator running the given adapter stages in
// the order provided
func NewOrchestrator(s store.Store, reconciler *CategoryReconciler, stages []Stage, generator *OpportunityGenerator, clock adapter.Clock, lockTTL time.Duration) *Orchestrator {
	return &Orchestrator{
		store:      s,
		reconciler: reconciler,
		stages:     stages,
		generator:  generator,
		clock:      clock,
		lockTTL:    lockTTL,
	}
}

// Run executes one full sync run. A run already in progress returns
// domain.ErrRunInProgress without touching any data.
func (o *Orchestrator) Run(ctx context.Context, source domain.SyncSource) (*Results, error) {
	runID := uuid.NewString()

	acquired, err := o.store.AcquireRunLock(ctx, runID, o.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !acquired {
		return nil, domain.ErrRunInProgress
	}
	defer func() {
		if err := o.store.ReleaseRunLock(ctx, runID); err != nil {
			logger.WarnCtx(ctx, "failed to release run lock",
				zap.String("run_id", runID), zap.Error(err))
		}
	}()

	startedAt := o.clock.Now()
	if err := o.store.CreateSyncLog(ctx, runID, source, startedAt); err != nil {
		return nil, fmt.Errorf("failed to create sync log: %w", err)
	}

	logger.InfoCtx(ctx, "sync run started",
		zap.String("run_id", runID), zap.String("source", string(source)))

	results := &Results{}
	if err := o.runSequence(ctx, runID, results); err != nil {
		// Best effort: a failure writing the audit row must not mask the
		// run failure itself
		if failErr := o.store.FailSyncLog(ctx, runID, err.Error(), o.clock.Now()); failErr != nil {
			logger.ErrorCtx(ctx, failErr, zap.String("run_id", runID))
		}
		return nil, err
	}

	if err := o.store.CompleteSyncLog(ctx, runID, results.recordsProcessed(), o.clock.Now()); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("run_id", runID))
	}

	logger.InfoCtx(ctx, "sync run completed",
		zap.String("run_id", runID),
		zap.Int("records_processed", results.recordsProcessed()),
		zap.Duration("elapsed", o.clock.Since(startedAt)))
	return results, nil
}

// runSequence runs the pipeline body, converting an escaped panic into an
// error exactly once
func (o *Orchestrator) runSequence(ctx context.Context, runID string, results *Results) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline panic: %v", r)
		}
	}()

	categories, err := o.reconciler.Run(ctx, runID)
	if err != nil {
		return fmt.Errorf("category reconciliation failed: %w", err)
	}
	results.Categories = categories

	for _, stage := range o.stages {
		stageStarted := o.clock.Now()
		res := stage.Run(ctx, runID)
		results.setStage(stage.Name(), res)
		logger.InfoCtx(ctx, "stage finished",
			zap.String("run_id", runID),
			zap.String("stage", stage.Name()),
			zap.String("status", string(res.Status)),
			zap.Int("enriched", res.Enriched),
			zap.Int("failed", res.Failed),
			zap.Int("skipped", res.Skipped),
			zap.Duration("elapsed", o.clock.Since(stageStarted)))
	}

	opportunities, err := o.generator.Generate(ctx, runID)
	if err != nil {
		return fmt.Errorf("opportunity generation failed: %w", err)
	}
	results.Opportunities = opportunities

	return nil
}
