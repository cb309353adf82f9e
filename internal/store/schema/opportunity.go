package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
)

// Opportunity represents the opportunities table - one row per detected category gap.
// Rows are upserted by category on every successful run and deleted only through
// the category removal cascade.
type Opportunity struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CategoryID references the category this opportunity belongs to
	CategoryID int64 `gorm:"column:category_id;not null;uniqueIndex"`
	// Title is the opportunity headline
	Title string `gorm:"column:title;not null;type:text"`
	// Description summarizes the gap
	Description string `gorm:"column:description;type:text"`
	// Reasoning is the human-readable explanation derived from the score breakdown
	Reasoning string `gorm:"column:reasoning;type:text"`
	// GapScore is the 0-100 void score from the gap score engine
	GapScore float64 `gorm:"column:gap_score;not null;index:idx_opportunities_gap_score,sort:desc"`
	// DemandScore is derived from capital and activity signals
	DemandScore float64 `gorm:"column:demand_score;not null;default:0"`
	// CompetitionLevel classifies the active-project count (low, medium, high)
	CompetitionLevel domain.CompetitionLevel `gorm:"column:competition_level;not null;type:text"`
	// Difficulty classifies the build difficulty (beginner, intermediate, advanced)
	Difficulty domain.Difficulty `gorm:"column:difficulty;not null;type:text"`
	// SuggestedFeatures is a JSON list of feature ideas for the category
	SuggestedFeatures datatypes.JSON `gorm:"column:suggested_features;type:jsonb"`
	// CreatedAt is the timestamp when this opportunity was first generated
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last run that refreshed this row
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Opportunity model
func (Opportunity) TableName() string {
	return "opportunities"
}
