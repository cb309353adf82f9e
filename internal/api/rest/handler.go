package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/pipeline"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Runner triggers one full pipeline run
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler,Runner=MockRunner
type Runner interface {
	Run(ctx context.Context, source domain.SyncSource) (*pipeline.Results, error)
}

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// TriggerCronSync runs the pipeline for the external scheduler
	// POST /api/v1/sync/cron
	TriggerCronSync(c *gin.Context)

	// TriggerManualSync runs the pipeline for an operator
	// POST /api/v1/sync/run
	TriggerManualSync(c *gin.Context)

	// ListOpportunities retrieves the highest gap-score opportunities
	// GET /api/v1/opportunities?limit=<limit>
	ListOpportunities(c *gin.Context)

	// ListCategories retrieves the category registry
	// GET /api/v1/categories
	ListCategories(c *gin.Context)

	// GetProject retrieves a single project with its provider fragments
	// GET /api/v1/projects/:slug
	GetProject(c *gin.Context)

	// ListSyncLogs retrieves the most recent run audit rows
	// GET /api/v1/sync/logs?limit=<limit>
	ListSyncLogs(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store  store.Store
	runner Runner
}

// NewHandler creates a new REST API handler
func NewHandler(s store.Store, runner Runner) Handler {
	return &handler{
		store:  s,
		runner: runner,
	}
}

// TriggerCronSync runs the pipeline for the external scheduler
func (h *handler) TriggerCronSync(c *gin.Context) {
	h.triggerSync(c, domain.SyncSourceScheduler)
}

// TriggerManualSync runs the pipeline for an operator
func (h *handler) TriggerManualSync(c *gin.Context) {
	h.triggerSync(c, domain.SyncSourceManual)
}

// triggerSync executes one run and renders the shared response envelope.
// Per-adapter failures are already folded into the results and still return
// 200; only a pipeline-level failure is an error response.
func (h *handler) triggerSync(c *gin.Context, source domain.SyncSource) {
	results, err := h.runner.Run(c.Request.Context(), source)
	if err != nil {
		if errors.Is(err, domain.ErrRunInProgress) {
			respondConflict(c, "A sync run is already in progress")
			return
		}
		respondInternalError(c, err, "Sync run failed", zap.String("source", string(source)))
		return
	}

	c.JSON(http.StatusOK, syncResponse{Success: true, Results: results})
}

// ListOpportunities retrieves the highest gap-score opportunities
func (h *handler) ListOpportunities(c *gin.Context) {
	limit := parseLimit(c)
	opportunities, err := h.store.ListOpportunities(c.Request.Context(), limit)
	if err != nil {
		respondInternalError(c, err, "Failed to list opportunities")
		return
	}

	dtos := make([]opportunityDTO, 0, len(opportunities))
	for _, o := range opportunities {
		dtos = append(dtos, toOpportunityDTO(o))
	}
	c.JSON(http.StatusOK, gin.H{"opportunities": dtos})
}

// ListCategories retrieves the category registry
func (h *handler) ListCategories(c *gin.Context) {
	categories, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list categories")
		return
	}

	dtos := make([]categoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, toCategoryDTO(category))
	}
	c.JSON(http.StatusOK, gin.H{"categories": dtos})
}

// GetProject retrieves a single project with its provider fragments
func (h *handler) GetProject(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		respondBadRequest(c, "Project slug is required")
		return
	}

	project, err := h.store.GetProjectBySlug(c.Request.Context(), slug)
	if err != nil {
		respondInternalError(c, err, "Failed to get project", zap.String("slug", slug))
		return
	}
	if project == nil {
		respondNotFound(c, "Project not found")
		return
	}

	c.JSON(http.StatusOK, toProjectDTO(*project))
}

// ListSyncLogs retrieves the most recent run audit rows
func (h *handler) ListSyncLogs(c *gin.Context) {
	limit := parseLimit(c)
	logs, err := h.store.ListSyncLogs(c.Request.Context(), limit)
	if err != nil {
		respondInternalError(c, err, "Failed to list sync logs")
		return
	}

	dtos := make([]syncLogDTO, 0, len(logs))
	for _, l := range logs {
		dtos = append(dtos, toSyncLogDTO(l))
	}
	c.JSON(http.StatusOK, gin.H{"sync_logs": dtos})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseLimit reads the limit query parameter, clamped to the allowed range
func parseLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
