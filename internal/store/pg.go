package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// runLockKey is the key_value_store row guarding against overlapping pipeline runs
const runLockKey = "sync:run_lock"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the database schema for all pipeline tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Category{},
		&schema.Project{},
		&schema.Opportunity{},
		&schema.SyncLog{},
		&schema.KeyValueStore{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database
// connection. Zero values fall back to defaults: 20 open, 5 idle, 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// UpsertProject creates or refreshes a project row keyed by slug
func (s *pgStore) UpsertProject(ctx context.Context, input UpsertProjectInput) (bool, error) {
	var existing schema.Project
	err := s.db.WithContext(ctx).Where("slug = ?", input.Slug).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("failed to get project: %w", err)
		}

		project := schema.Project{
			Slug:        input.Slug,
			Name:        input.Name,
			Description: input.Description,
			CategoryID:  input.CategoryID,
		}
		if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
			return false, fmt.Errorf("failed to create project: %w", err)
		}
		return true, nil
	}

	// Refresh leaves category_id alone; reassignment is an explicit
	// UpdateProjectCategory call
	updates := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"updated_at":  time.Now(),
	}
	if err := s.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return false, fmt.Errorf("failed to update project: %w", err)
	}

	return false, nil
}

// GetProjectBySlug retrieves a project by its slug
func (s *pgStore) GetProjectBySlug(ctx context.Context, slug string) (*schema.Project, error) {
	var project schema.Project
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// ListProjects retrieves all projects ordered by slug
func (s *pgStore) ListProjects(ctx context.Context) ([]schema.Project, error) {
	var projects []schema.Project
	err := s.db.WithContext(ctx).Order("slug ASC").Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListProjectsByCategorySlug retrieves the projects assigned to one category
func (s *pgStore) ListProjectsByCategorySlug(ctx context.Context, categorySlug string) ([]schema.Project, error) {
	var projects []schema.Project
	err := s.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = projects.category_id").
		Where("categories.slug = ?", categorySlug).
		Order("projects.slug ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by category: %w", err)
	}
	return projects, nil
}

// SetProjectFragment fully replaces one provider's namespaced fragment in raw_data.
// jsonb_set touches only the given provider key, so fragments written by other
// providers are preserved even when runs interleave.
func (s *pgStore) SetProjectFragment(ctx context.Context, projectID int64, provider domain.Provider, fragment map[string]interface{}) error {
	fragmentJSON, err := json.Marshal(fragment)
	if err != nil {
		return fmt.Errorf("failed to marshal fragment: %w", err)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"raw_data":   gorm.Expr("jsonb_set(COALESCE(raw_data, '{}'::jsonb), ARRAY[?::text], ?::jsonb)", string(provider), string(fragmentJSON)),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set project fragment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

// UpdateProjectTVL sets tvl_usd with provider attribution
func (s *pgStore) UpdateProjectTVL(ctx context.Context, projectID int64, tvlUSD float64, source domain.Provider) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"tvl_usd":    tvlUSD,
			"tvl_source": source,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update project tvl: %w", err)
	}
	return nil
}

// UpdateProjectGithubStats sets the repository aggregates
func (s *pgStore) UpdateProjectGithubStats(ctx context.Context, projectID int64, stars, forks int, language string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"github_stars":    stars,
			"github_forks":    forks,
			"github_language": language,
			"updated_at":      time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update project github stats: %w", err)
	}
	return nil
}

// UpdateProjectActivity sets the liveness signal with provider attribution
func (s *pgStore) UpdateProjectActivity(ctx context.Context, projectID int64, active bool, source domain.Provider) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"is_active":       active,
			"activity_source": source,
			"updated_at":      time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update project activity: %w", err)
	}
	return nil
}

// UpdateProjectCategory reassigns a project's category
func (s *pgStore) UpdateProjectCategory(ctx context.Context, projectID int64, categoryID *int64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"category_id": categoryID,
			"updated_at":  time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update project category: %w", err)
	}
	return nil
}

// UpsertCategory inserts or updates a catalog entry keyed by slug
func (s *pgStore) UpsertCategory(ctx context.Context, category schema.Category) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "icon", "is_strategic", "strategic_multiplier", "updated_at"}),
	}).Create(&category).Error
	if err != nil {
		return fmt.Errorf("failed to upsert category: %w", err)
	}
	return nil
}

// GetCategoryBySlug retrieves a category by its slug
func (s *pgStore) GetCategoryBySlug(ctx context.Context, slug string) (*schema.Category, error) {
	var category schema.Category
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// ListCategories retrieves all categories ordered by slug
func (s *pgStore) ListCategories(ctx context.Context) ([]schema.Category, error) {
	var categories []schema.Category
	err := s.db.WithContext(ctx).Order("slug ASC").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// RemoveCategory deletes an obsolete category in a single transaction:
// projects are orphaned, opportunity rows are deleted, then the category row itself.
// This is the explicit, intentional cascade for catalog cleanup.
func (s *pgStore) RemoveCategory(ctx context.Context, slug string) (bool, error) {
	removed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category schema.Category
		err := tx.Where("slug = ?", slug).First(&category).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get category: %w", err)
		}

		if err := tx.Model(&schema.Project{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to orphan projects: %w", err)
		}

		if err := tx.Where("category_id = ?", category.ID).
			Delete(&schema.Opportunity{}).Error; err != nil {
			return fmt.Errorf("failed to delete opportunities: %w", err)
		}

		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}

		removed = true
		return nil
	})
	return removed, err
}

// GetCategoryStats computes the per-category aggregates for scoring.
// Transaction counts and repository push recency are read out of the provider
// fragments so the query stays consistent with namespaced raw_data writes.
func (s *pgStore) GetCategoryStats(ctx context.Context) ([]CategoryStats, error) {
	var stats []CategoryStats
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			c.id AS category_id,
			c.slug,
			c.name,
			c.is_strategic,
			c.strategic_multiplier,
			COUNT(p.id) AS total_projects,
			COUNT(p.id) FILTER (WHERE p.is_active) AS active_projects,
			COALESCE(SUM(p.tvl_usd), 0) AS total_tvl,
			COALESCE(MAX(p.tvl_usd), 0) AS top_project_tvl,
			COALESCE(SUM(COALESCE((p.raw_data->'nearblocks'->>'txn_count')::bigint, 0)), 0) AS total_txns,
			COUNT(p.id) FILTER (
				WHERE (p.raw_data->'github'->>'pushed_at')::timestamptz > now() - interval '90 days'
			) AS recently_pushed_repos
		FROM categories c
		LEFT JOIN projects p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.slug ASC
	`).Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}
	return stats, nil
}

// UpsertOpportunity creates or refreshes the opportunity row for a category
func (s *pgStore) UpsertOpportunity(ctx context.Context, input UpsertOpportunityInput) (bool, error) {
	featuresJSON, err := json.Marshal(input.SuggestedFeatures)
	if err != nil {
		return false, fmt.Errorf("failed to marshal suggested features: %w", err)
	}

	var existing schema.Opportunity
	err = s.db.WithContext(ctx).Where("category_id = ?", input.CategoryID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("failed to get opportunity: %w", err)
		}

		opportunity := schema.Opportunity{
			CategoryID:        input.CategoryID,
			Title:             input.Title,
			Description:       input.Description,
			Reasoning:         input.Reasoning,
			GapScore:          input.GapScore,
			DemandScore:       input.DemandScore,
			CompetitionLevel:  input.CompetitionLevel,
			Difficulty:        input.Difficulty,
			SuggestedFeatures: featuresJSON,
		}
		if err := s.db.WithContext(ctx).Create(&opportunity).Error; err != nil {
			return false, fmt.Errorf("failed to create opportunity: %w", err)
		}
		return true, nil
	}

	updates := map[string]interface{}{
		"title":              input.Title,
		"description":        input.Description,
		"reasoning":          input.Reasoning,
		"gap_score":          input.GapScore,
		"demand_score":       input.DemandScore,
		"competition_level":  input.CompetitionLevel,
		"difficulty":         input.Difficulty,
		"suggested_features": featuresJSON,
		"updated_at":         time.Now(),
	}
	if err := s.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return false, fmt.Errorf("failed to update opportunity: %w", err)
	}

	return false, nil
}

// ListOpportunities retrieves the highest gap-score opportunities
func (s *pgStore) ListOpportunities(ctx context.Context, limit int) ([]schema.Opportunity, error) {
	var opportunities []schema.Opportunity
	err := s.db.WithContext(ctx).
		Order("gap_score DESC").
		Limit(limit).
		Find(&opportunities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	return opportunities, nil
}

// CreateSyncLog appends a started audit row for a new run
func (s *pgStore) CreateSyncLog(ctx context.Context, runID string, source domain.SyncSource, startedAt time.Time) error {
	syncLog := schema.SyncLog{
		RunID:     runID,
		Source:    source,
		Status:    schema.SyncStatusStarted,
		StartedAt: startedAt,
	}
	if err := s.db.WithContext(ctx).Create(&syncLog).Error; err != nil {
		return fmt.Errorf("failed to create sync log: %w", err)
	}
	return nil
}

// CompleteSyncLog transitions a run's audit row to completed
func (s *pgStore) CompleteSyncLog(ctx context.Context, runID string, recordsProcessed int, completedAt time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.SyncLog{}).
		Where("run_id = ? AND status = ?", runID, schema.SyncStatusStarted).
		Updates(map[string]interface{}{
			"status":            schema.SyncStatusCompleted,
			"records_processed": recordsProcessed,
			"completed_at":      completedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to complete sync log: %w", err)
	}
	return nil
}

// FailSyncLog transitions a run's audit row to failed
func (s *pgStore) FailSyncLog(ctx context.Context, runID string, errorMessage string, completedAt time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.SyncLog{}).
		Where("run_id = ? AND status = ?", runID, schema.SyncStatusStarted).
		Updates(map[string]interface{}{
			"status":        schema.SyncStatusFailed,
			"error_message": errorMessage,
			"completed_at":  completedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to fail sync log: %w", err)
	}
	return nil
}

// ListSyncLogs retrieves the most recent audit rows
func (s *pgStore) ListSyncLogs(ctx context.Context, limit int) ([]schema.SyncLog, error) {
	var logs []schema.SyncLog
	err := s.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sync logs: %w", err)
	}
	return logs, nil
}

// AcquireRunLock takes the advisory run lock. A lock row older than ttl is treated
// as abandoned (the holding process was likely killed mid-stage by the wall-clock
// budget) and stolen.
func (s *pgStore) AcquireRunLock(ctx context.Context, runID string, ttl time.Duration) (bool, error) {
	staleBefore := time.Now().Add(-ttl)

	result := s.db.WithContext(ctx).Exec(`
		INSERT INTO key_value_store (key, value, created_at, updated_at)
		VALUES (?, ?, now(), now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
		WHERE key_value_store.updated_at < ?
	`, runLockKey, runID, staleBefore)
	if result.Error != nil {
		return false, fmt.Errorf("failed to acquire run lock: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ReleaseRunLock releases the advisory run lock if runID still holds it
func (s *pgStore) ReleaseRunLock(ctx context.Context, runID string) error {
	err := s.db.WithContext(ctx).
		Where("key = ? AND value = ?", runLockKey, runID).
		Delete(&schema.KeyValueStore{}).Error
	if err != nil {
		return fmt.Errorf("failed to release run lock: %w", err)
	}
	return nil
}
