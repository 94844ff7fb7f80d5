package catalog

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	sourceTablesTable  = "source_tables"
	sourceColumnsTable = "source_columns"
	targetTablesTable  = "target_tables"
	targetColumnsTable = "target_columns"
)

// GormStore keeps the reference data in five tables. Source and target share
// the Table/Column models and are told apart by table name.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Migrate() error {
	if err := s.DB.Table(sourceTablesTable).AutoMigrate(&Table{}); err != nil {
		return err
	}
	if err := s.DB.Table(sourceColumnsTable).AutoMigrate(&Column{}); err != nil {
		return err
	}
	if err := s.DB.Table(targetTablesTable).AutoMigrate(&Table{}); err != nil {
		return err
	}
	if err := s.DB.Table(targetColumnsTable).AutoMigrate(&Column{}); err != nil {
		return err
	}
	return s.DB.AutoMigrate(&Release{})
}

// Load upserts every seed row by primary key and removes rows the seed no
// longer carries, inside one transaction.
func (s *GormStore) Load(seed Seed) error {
	seed = sanitizeSeed(seed)

	upsert := clause.OnConflict{UpdateAll: true}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := prune(tx.Table(sourceColumnsTable), &Column{}, seed.SourceColumns, func(c Column) int { return c.ID }); err != nil {
			return fmt.Errorf("prune source columns: %w", err)
		}
		if err := prune(tx.Table(sourceTablesTable), &Table{}, seed.SourceTables, func(t Table) int { return t.ID }); err != nil {
			return fmt.Errorf("prune source tables: %w", err)
		}
		if err := prune(tx.Table(targetColumnsTable), &Column{}, seed.TargetColumns, func(c Column) int { return c.ID }); err != nil {
			return fmt.Errorf("prune target columns: %w", err)
		}
		if err := prune(tx.Table(targetTablesTable), &Table{}, seed.TargetTables, func(t Table) int { return t.ID }); err != nil {
			return fmt.Errorf("prune target tables: %w", err)
		}
		if err := prune(tx.Model(&Release{}), &Release{}, seed.Releases, func(r Release) int { return r.ID }); err != nil {
			return fmt.Errorf("prune releases: %w", err)
		}

		if len(seed.SourceTables) > 0 {
			if err := tx.Table(sourceTablesTable).Clauses(upsert).Create(&seed.SourceTables).Error; err != nil {
				return fmt.Errorf("load source tables: %w", err)
			}
		}
		if len(seed.SourceColumns) > 0 {
			if err := tx.Table(sourceColumnsTable).Clauses(upsert).Create(&seed.SourceColumns).Error; err != nil {
				return fmt.Errorf("load source columns: %w", err)
			}
		}
		if len(seed.TargetTables) > 0 {
			if err := tx.Table(targetTablesTable).Clauses(upsert).Create(&seed.TargetTables).Error; err != nil {
				return fmt.Errorf("load target tables: %w", err)
			}
		}
		if len(seed.TargetColumns) > 0 {
			if err := tx.Table(targetColumnsTable).Clauses(upsert).Create(&seed.TargetColumns).Error; err != nil {
				return fmt.Errorf("load target columns: %w", err)
			}
		}
		if len(seed.Releases) > 0 {
			if err := tx.Clauses(upsert).Create(&seed.Releases).Error; err != nil {
				return fmt.Errorf("load releases: %w", err)
			}
		}
		return nil
	})
}

// prune deletes every row of q whose id is not among keep.
func prune[T any](q *gorm.DB, model any, keep []T, id func(T) int) error {
	if len(keep) == 0 {
		return q.Where("1 = 1").Delete(model).Error
	}
	ids := make([]int, 0, len(keep))
	for _, k := range keep {
		ids = append(ids, id(k))
	}
	return q.Where("id NOT IN ?", ids).Delete(model).Error
}

func (s *GormStore) SourceTables() ([]Table, error) {
	return s.tables(sourceTablesTable)
}

func (s *GormStore) TargetTables() ([]Table, error) {
	return s.tables(targetTablesTable)
}

func (s *GormStore) tables(name string) ([]Table, error) {
	var out []Table
	if err := s.DB.Table(name).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) Columns(ns Namespace, tableID *int) ([]Column, error) {
	var name string
	switch ns {
	case Source:
		name = sourceColumnsTable
	case Target:
		name = targetColumnsTable
	default:
		_, err := ParseNamespace(string(ns))
		return nil, err
	}

	q := s.DB.Table(name)
	if tableID != nil {
		q = q.Where("table_id = ?", *tableID)
	}

	var out []Column
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) Releases() ([]Release, error) {
	var out []Release
	if err := s.DB.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
