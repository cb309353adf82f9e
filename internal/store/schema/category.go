package schema

import (
	"time"
)

// Category represents the categories table - the fixed topical catalog.
// Rows are declaratively reconciled (upserted by slug) at the start of every run.
type Category struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Slug is the stable key used for upsert
	Slug string `gorm:"column:slug;not null;uniqueIndex;type:text"`
	// Name is the category display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description explains the category scope
	Description string `gorm:"column:description;type:text"`
	// Icon is the presentation-layer icon identifier
	Icon string `gorm:"column:icon;type:text"`
	// IsStrategic marks categories prioritized by the ecosystem sponsor
	IsStrategic bool `gorm:"column:is_strategic;not null;default:false"`
	// StrategicMultiplier amplifies gap scores for strategic categories, always >= 1.0
	StrategicMultiplier float64 `gorm:"column:strategic_multiplier;not null;default:1.0"`
	// CreatedAt is the timestamp when this category was first reconciled
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last reconciliation that touched this row
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
