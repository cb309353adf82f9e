package rest

import (
	"encoding/json"
	"time"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/pipeline"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// syncResponse is the trigger endpoints' response envelope
type syncResponse struct {
	Success bool              `json:"success"`
	Results *pipeline.Results `json:"results"`
}

// opportunityDTO is the public shape of an opportunity row
type opportunityDTO struct {
	ID                int64                   `json:"id"`
	CategoryID        int64                   `json:"category_id"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	Reasoning         string                  `json:"reasoning"`
	GapScore          float64                 `json:"gap_score"`
	DemandScore       float64                 `json:"demand_score"`
	CompetitionLevel  domain.CompetitionLevel `json:"competition_level"`
	Difficulty        domain.Difficulty       `json:"difficulty"`
	SuggestedFeatures json.RawMessage         `json:"suggested_features"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

func toOpportunityDTO(o schema.Opportunity) opportunityDTO {
	return opportunityDTO{
		ID:                o.ID,
		CategoryID:        o.CategoryID,
		Title:             o.Title,
		Description:       o.Description,
		Reasoning:         o.Reasoning,
		GapScore:          o.GapScore,
		DemandScore:       o.DemandScore,
		CompetitionLevel:  o.CompetitionLevel,
		Difficulty:        o.Difficulty,
		SuggestedFeatures: json.RawMessage(o.SuggestedFeatures),
		UpdatedAt:         o.UpdatedAt,
	}
}

// categoryDTO is the public shape of a category row
type categoryDTO struct {
	ID                  int64   `json:"id"`
	Slug                string  `json:"slug"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Icon                string  `json:"icon"`
	IsStrategic         bool    `json:"is_strategic"`
	StrategicMultiplier float64 `json:"strategic_multiplier"`
}

func toCategoryDTO(c schema.Category) categoryDTO {
	return categoryDTO{
		ID:                  c.ID,
		Slug:                c.Slug,
		Name:                c.Name,
		Description:         c.Description,
		Icon:                c.Icon,
		IsStrategic:         c.IsStrategic,
		StrategicMultiplier: c.StrategicMultiplier,
	}
}

// projectDTO is the public shape of a project row including its raw provider
// fragments
type projectDTO struct {
	ID             int64                  `json:"id"`
	Slug           string                 `json:"slug"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	CategoryID     *int64                 `json:"category_id"`
	TVLUSD         float64                `json:"tvl_usd"`
	TVLSource      domain.Provider        `json:"tvl_source,omitempty"`
	GithubStars    int                    `json:"github_stars"`
	GithubForks    int                    `json:"github_forks"`
	GithubLanguage string                 `json:"github_language,omitempty"`
	IsActive       bool                   `json:"is_active"`
	ActivitySource domain.Provider        `json:"activity_source,omitempty"`
	RawData        map[string]interface{} `json:"raw_data,omitempty"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func toProjectDTO(p schema.Project) projectDTO {
	return projectDTO{
		ID:             p.ID,
		Slug:           p.Slug,
		Name:           p.Name,
		Description:    p.Description,
		CategoryID:     p.CategoryID,
		TVLUSD:         p.TVLUSD,
		TVLSource:      p.TVLSource,
		GithubStars:    p.GithubStars,
		GithubForks:    p.GithubForks,
		GithubLanguage: p.GithubLanguage,
		IsActive:       p.IsActive,
		ActivitySource: p.ActivitySource,
		RawData:        p.RawData,
		UpdatedAt:      p.UpdatedAt,
	}
}

// syncLogDTO is the public shape of a sync audit row
type syncLogDTO struct {
	RunID            string            `json:"run_id"`
	Source           domain.SyncSource `json:"source"`
	Status           schema.SyncStatus `json:"status"`
	RecordsProcessed int               `json:"records_processed"`
	ErrorMessage     *string           `json:"error_message,omitempty"`
	StartedAt        time.Time         `json:"started_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
}

func toSyncLogDTO(l schema.SyncLog) syncLogDTO {
	return syncLogDTO{
		RunID:            l.RunID,
		Source:           l.Source,
		Status:           l.Status,
		RecordsProcessed: l.RecordsProcessed,
		ErrorMessage:     l.ErrorMessage,
		StartedAt:        l.StartedAt,
		CompletedAt:      l.CompletedAt,
	}
}
