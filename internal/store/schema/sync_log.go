package schema

import (
	"time"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
)

// SyncStatus represents the lifecycle state of a pipeline run
type SyncStatus string

const (
	// SyncStatusStarted is set when a run begins
	SyncStatusStarted SyncStatus = "started"
	// SyncStatusCompleted is set when a run finishes, even with per-adapter failures
	SyncStatusCompleted SyncStatus = "completed"
	// SyncStatusFailed is set when an error escapes the whole stage sequence
	SyncStatusFailed SyncStatus = "failed"
)

// SyncLog represents the sync_logs table - the append-only audit trail, one row per run.
// A row is never updated except to transition started -> completed|failed.
type SyncLog struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RunID is the unique identifier correlating log lines and API responses for one run
	RunID string `gorm:"column:run_id;not null;uniqueIndex;type:uuid"`
	// Source identifies which trigger started the run (scheduler, manual, cli)
	Source domain.SyncSource `gorm:"column:source;not null;type:text"`
	// Status is the run lifecycle state
	Status SyncStatus `gorm:"column:status;not null;type:text"`
	// RecordsProcessed is the aggregate count of records enriched across all stages
	RecordsProcessed int `gorm:"column:records_processed;not null;default:0"`
	// ErrorMessage holds the pipeline-level error when status is failed
	ErrorMessage *string `gorm:"column:error_message;type:text"`
	// StartedAt is the timestamp when the run began
	StartedAt time.Time `gorm:"column:started_at;not null;type:timestamptz"`
	// CompletedAt is the timestamp when the run reached a terminal state
	CompletedAt *time.Time `gorm:"column:completed_at;type:timestamptz"`
}

// TableName specifies the table name for the SyncLog model
func (SyncLog) TableName() string {
	return "sync_logs"
}
