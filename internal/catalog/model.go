package catalog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Namespace separates the source and target id spaces.
type Namespace string

const (
	Source Namespace = "source"
	Target Namespace = "target"
)

func ParseNamespace(s string) (Namespace, error) {
	switch Namespace(strings.ToLower(strings.TrimSpace(s))) {
	case Source:
		return Source, nil
	case Target:
		return Target, nil
	}
	return "", fmt.Errorf("unknown namespace %q (use source or target)", s)
}

type Table struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

type Column struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	TableID     int    `gorm:"not null;index;column:table_id" json:"table_id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	DataType    string `gorm:"size:64;column:data_type" json:"data_type"`
	Description string `gorm:"type:text" json:"description"`
}

type Release struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"size:64" json:"status"`
}

func (Release) TableName() string {
	return "releases"
}

// Seed is the full reference data set handed to EntityStore.Load.
type Seed struct {
	SourceTables  []Table
	SourceColumns []Column
	TargetTables  []Table
	TargetColumns []Column
	Releases      []Release
}

// Sanitize returns a copy of the seed without columns whose table_id has no
// table in the same namespace, plus a description of each dropped column.
func (s Seed) Sanitize() (Seed, []string) {
	var dropped []string
	s.SourceColumns, dropped = keepAttached(Source, s.SourceTables, s.SourceColumns, dropped)
	s.TargetColumns, dropped = keepAttached(Target, s.TargetTables, s.TargetColumns, dropped)
	return s, dropped
}

func keepAttached(ns Namespace, tables []Table, columns []Column, dropped []string) ([]Column, []string) {
	known := make(map[int]struct{}, len(tables))
	for _, t := range tables {
		known[t.ID] = struct{}{}
	}
	kept := make([]Column, 0, len(columns))
	for _, c := range columns {
		if _, ok := known[c.TableID]; !ok {
			dropped = append(dropped, fmt.Sprintf("%s column %d references unknown table %d", ns, c.ID, c.TableID))
			continue
		}
		kept = append(kept, c)
	}
	return kept, dropped
}

// sanitizeSeed drops dangling columns and logs one warning per dropped column.
func sanitizeSeed(seed Seed) Seed {
	clean, dropped := seed.Sanitize()
	for _, d := range dropped {
		log.Warn().Msgf("catalog: skipping %s", d)
	}
	return clean
}
