package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
)

// Project represents the projects table - the canonical record per ecosystem project.
// Exactly one row exists per slug; adapters enrich existing rows rather than creating
// duplicates for the same logical entity.
type Project struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Slug is the stable unique identifier, immutable once created
	Slug string `gorm:"column:slug;not null;uniqueIndex;type:text"`
	// Name is the project display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description is the project description from the registry
	Description string `gorm:"column:description;type:text"`
	// CategoryID references the project's category; nullable and may be reassigned by later runs
	CategoryID *int64 `gorm:"column:category_id;index"`
	// TVLUSD is the total value locked in USD reported by the TVL aggregator
	TVLUSD float64 `gorm:"column:tvl_usd;not null;default:0"`
	// TVLSource attributes the tvl_usd value to the provider that last set it
	TVLSource domain.Provider `gorm:"column:tvl_source;type:text"`
	// GithubStars is the star count of the project's primary repository
	GithubStars int `gorm:"column:github_stars;not null;default:0"`
	// GithubForks is the fork count of the project's primary repository
	GithubForks int `gorm:"column:github_forks;not null;default:0"`
	// GithubLanguage is the primary language of the project's repository
	GithubLanguage string `gorm:"column:github_language;type:text"`
	// IsActive is the provider-derived liveness signal
	IsActive bool `gorm:"column:is_active;not null;default:false"`
	// ActivitySource attributes the is_active value to the provider that last set it
	ActivitySource domain.Provider `gorm:"column:activity_source;type:text"`
	// RawData is an open map from provider key to that provider's fragment.
	// A fragment write fully replaces the previous fragment for that provider only;
	// fragments are never merged field by field.
	RawData datatypes.JSONMap `gorm:"column:raw_data;type:jsonb"`
	// CreatedAt is the timestamp when this project was first registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this project was last touched by any adapter
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
