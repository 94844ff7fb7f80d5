package mapping

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists mappings in the "mappings" table. The id column is an
// autoincrement key, so deleted ids are never handed out again.
type GormStore struct {
	DB  *gorm.DB
	Now func() time.Time
}

func (s *GormStore) Migrate() error {
	return s.DB.AutoMigrate(&Mapping{})
}

func (s *GormStore) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return defaultClock()
}

func (s *GormStore) Create(in NewMapping) (*Mapping, error) {
	m := in.record(0, s.clock())
	if err := s.DB.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) Get(id int) (*Mapping, error) {
	var m Mapping
	if err := s.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) Update(id int, patch Patch) (*Mapping, error) {
	var out Mapping
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var m Mapping
		if err := forUpdate(tx).First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		prevUpdated := m.UpdatedAt
		createdAt := m.CreatedAt
		patch.apply(&m)
		m.ID = id
		m.CreatedAt = createdAt
		m.UpdatedAt = nextTimestamp(s.clock(), prevUpdated)

		if err := overwrite(tx, &m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// forUpdate row-locks the read on databases that support SELECT ... FOR
// UPDATE. SQLite serializes writers on its own.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// overwrite writes every column of m onto the existing row and never inserts.
// A row deleted since it was read yields ErrNotFound.
func overwrite(tx *gorm.DB, m *Mapping) error {
	res := tx.Model(&Mapping{ID: m.ID}).Select("*").Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(id int) (bool, error) {
	res := s.DB.Delete(&Mapping{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) List() ([]Mapping, error) {
	var out []Mapping
	if err := s.DB.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
