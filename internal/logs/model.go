package logs

import (
	"time"

	"gorm.io/datatypes"
)

const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// AuditLog records one mutation of the mapping catalog.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Level     string         `gorm:"size:20;not null;index" json:"level"`
	Service   string         `gorm:"size:100;not null" json:"service"`
	MappingID *int           `gorm:"index;column:mapping_id" json:"mapping_id,omitempty"`
	Action    string         `gorm:"size:255;not null;index" json:"action"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	RequestID *string        `gorm:"size:64;column:request_id" json:"request_id,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

type LogFilterInput struct {
	MappingID *int     `json:"mapping_id"`
	Level     *string  `json:"level"`
	Service   *string  `json:"service"`
	Actions   []string `json:"actions"`

	StartDate *string `json:"start_date"` // "YYYY-MM-DD" or RFC3339
	EndDate   *string `json:"end_date"`

	Search *string `json:"search"`
	Limit  int     `json:"limit"`
}

type AggItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type LogAggregates struct {
	ByAction []AggItem `json:"by_action"`
	ByLevel  []AggItem `json:"by_level"`
}
