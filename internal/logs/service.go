package logs

import (
	"encoding/json"
	"strings"
	"time"

	"sttm-catalog-api/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultLimit = 100
	maxLimit     = 500
	aggLimit     = 12
)

type LogService struct {
	DB *gorm.DB
}

func (ls *LogService) Migrate() error {
	return ls.DB.AutoMigrate(&AuditLog{})
}

func (ls *LogService) Log(entry AuditLog, metadata interface{}) error {
	var meta datatypes.JSON

	// Convert metadata (map/struct) to JSON if provided
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	newLog := AuditLog{
		Level:     entry.Level,
		Service:   entry.Service,
		MappingID: entry.MappingID,
		Action:    entry.Action,
		Message:   entry.Message,
		RequestID: entry.RequestID,
		Metadata:  meta,
		CreatedAt: time.Now().UTC(),
	}

	return ls.DB.Create(&newLog).Error
}

// GetLogs returns the newest matching entries (capped at Limit) together with
// per-action and per-level counts over the whole filtered set.
func (ls *LogService) GetLogs(input LogFilterInput) ([]AuditLog, LogAggregates, int64, error) {
	if input.Limit <= 0 {
		input.Limit = defaultLimit
	}
	if input.Limit > maxLimit {
		input.Limit = maxLimit
	}

	base := ls.DB.Model(&AuditLog{})

	if input.MappingID != nil {
		base = base.Where("mapping_id = ?", *input.MappingID)
	}
	if input.Level != nil && strings.TrimSpace(*input.Level) != "" {
		base = base.Where("level = ?", strings.ToUpper(strings.TrimSpace(*input.Level)))
	}
	if input.Service != nil && strings.TrimSpace(*input.Service) != "" {
		base = base.Where("service = ?", strings.TrimSpace(*input.Service))
	}
	if actions := util.ParseCommaSeparated(input.Actions); len(actions) > 0 {
		base = base.Where("action IN ?", actions)
	}

	start, hasStart, endExclusive, hasEnd, err := util.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, LogAggregates{}, 0, err
	}
	if hasStart {
		base = base.Where("created_at >= ?", start)
	}
	if hasEnd {
		base = base.Where("created_at < ?", endExclusive)
	}

	if input.Search != nil && strings.TrimSpace(*input.Search) != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(*input.Search)) + "%"
		base = base.Where("(LOWER(action) LIKE ? OR LOWER(message) LIKE ?)", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, LogAggregates{}, 0, err
	}

	var rows []AuditLog
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("id DESC").
		Limit(input.Limit).
		Find(&rows).Error; err != nil {
		return nil, LogAggregates{}, 0, err
	}

	aggs, err := aggregatesFromBase(base)
	if err != nil {
		return nil, LogAggregates{}, 0, err
	}

	return rows, aggs, total, nil
}

func aggregatesFromBase(base *gorm.DB) (LogAggregates, error) {
	byAction, err := countBy(base, "action")
	if err != nil {
		return LogAggregates{}, err
	}
	byLevel, err := countBy(base, "level")
	if err != nil {
		return LogAggregates{}, err
	}
	return LogAggregates{ByAction: byAction, ByLevel: byLevel}, nil
}

func countBy(base *gorm.DB, column string) ([]AggItem, error) {
	var out []AggItem
	if err := base.Session(&gorm.Session{}).
		Select(column + " AS label, COUNT(*) AS count").
		Group(column).
		Order("count DESC").
		Order("label ASC").
		Limit(aggLimit).
		Scan(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []AggItem{}
	}
	return out, nil
}
