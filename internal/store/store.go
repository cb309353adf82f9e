package store

import (
	"context"
	"time"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// UpsertProjectInput holds the registry-sourced fields of a project.
// Slug is the upsert key; the slug of an existing row is never rewritten.
type UpsertProjectInput struct {
	Slug        string
	Name        string
	Description string
	CategoryID  *int64
}

// UpsertOpportunityInput holds the generated fields of a category opportunity
type UpsertOpportunityInput struct {
	CategoryID        int64
	Title             string
	Description       string
	Reasoning         string
	GapScore          float64
	DemandScore       float64
	CompetitionLevel  domain.CompetitionLevel
	Difficulty        domain.Difficulty
	SuggestedFeatures []string
}

// CategoryStats holds the per-category aggregates consumed by the gap score engine
type CategoryStats struct {
	CategoryID          int64   `gorm:"column:category_id"`
	Slug                string  `gorm:"column:slug"`
	Name                string  `gorm:"column:name"`
	IsStrategic         bool    `gorm:"column:is_strategic"`
	StrategicMultiplier float64 `gorm:"column:strategic_multiplier"`
	TotalProjects       int     `gorm:"column:total_projects"`
	ActiveProjects      int     `gorm:"column:active_projects"`
	TotalTVL            float64 `gorm:"column:total_tvl"`
	TopProjectTVL       float64 `gorm:"column:top_project_tvl"`
	TotalTxns           int64   `gorm:"column:total_txns"`
	RecentlyPushedRepos int     `gorm:"column:recently_pushed_repos"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertProject creates or refreshes a project row keyed by slug.
	// CategoryID applies on create only; refreshes reassign through
	// UpdateProjectCategory. Returns true when a new row was created.
	UpsertProject(ctx context.Context, input UpsertProjectInput) (bool, error)
	// GetProjectBySlug retrieves a project by its slug
	GetProjectBySlug(ctx context.Context, slug string) (*schema.Project, error)
	// ListProjects retrieves all projects ordered by slug
	ListProjects(ctx context.Context) ([]schema.Project, error)
	// ListProjectsByCategorySlug retrieves the projects assigned to one category
	ListProjectsByCategorySlug(ctx context.Context, categorySlug string) ([]schema.Project, error)
	// SetProjectFragment fully replaces one provider's namespaced fragment in raw_data,
	// leaving fragments written by other providers untouched
	SetProjectFragment(ctx context.Context, projectID int64, provider domain.Provider, fragment map[string]interface{}) error
	// UpdateProjectTVL sets tvl_usd with provider attribution
	UpdateProjectTVL(ctx context.Context, projectID int64, tvlUSD float64, source domain.Provider) error
	// UpdateProjectGithubStats sets the repository aggregates
	UpdateProjectGithubStats(ctx context.Context, projectID int64, stars, forks int, language string) error
	// UpdateProjectActivity sets the liveness signal with provider attribution
	UpdateProjectActivity(ctx context.Context, projectID int64, active bool, source domain.Provider) error
	// UpdateProjectCategory reassigns a project's category
	UpdateProjectCategory(ctx context.Context, projectID int64, categoryID *int64) error

	// UpsertCategory inserts or updates a catalog entry keyed by slug
	UpsertCategory(ctx context.Context, category schema.Category) error
	// GetCategoryBySlug retrieves a category by its slug
	GetCategoryBySlug(ctx context.Context, slug string) (*schema.Category, error)
	// ListCategories retrieves all categories ordered by slug
	ListCategories(ctx context.Context) ([]schema.Category, error)
	// RemoveCategory deletes an obsolete category: orphans its projects (category_id
	// set to null), deletes its opportunity rows, then deletes the category itself.
	// Returns true when a row was actually removed.
	RemoveCategory(ctx context.Context, slug string) (bool, error)
	// GetCategoryStats computes the per-category aggregates for scoring
	GetCategoryStats(ctx context.Context) ([]CategoryStats, error)

	// UpsertOpportunity creates or refreshes the opportunity row for a category.
	// Returns true when a new row was created.
	UpsertOpportunity(ctx context.Context, input UpsertOpportunityInput) (bool, error)
	// ListOpportunities retrieves the highest gap-score opportunities
	ListOpportunities(ctx context.Context, limit int) ([]schema.Opportunity, error)

	// CreateSyncLog appends a started audit row for a new run
	CreateSyncLog(ctx context.Context, runID string, source domain.SyncSource, startedAt time.Time) error
	// CompleteSyncLog transitions a run's audit row to completed
	CompleteSyncLog(ctx context.Context, runID string, recordsProcessed int, completedAt time.Time) error
	// FailSyncLog transitions a run's audit row to failed
	FailSyncLog(ctx context.Context, runID string, errorMessage string, completedAt time.Time) error
	// ListSyncLogs retrieves the most recent audit rows
	ListSyncLogs(ctx context.Context, limit int) ([]schema.SyncLog, error)

	// AcquireRunLock takes the advisory run lock, stealing it when the holder is
	// older than ttl. Returns false when another live run holds it.
	AcquireRunLock(ctx context.Context, runID string, ttl time.Duration) (bool, error)
	// ReleaseRunLock releases the advisory run lock if runID still holds it
	ReleaseRunLock(ctx context.Context, runID string) error
}
