package catalog

import (
	"sort"
	"sync"
)

type MemoryStore struct {
	mu            sync.RWMutex
	sourceTables  []Table
	sourceColumns []Column
	targetTables  []Table
	targetColumns []Column
	releases      []Release
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(seed Seed) error {
	seed = sanitizeSeed(seed)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sourceTables = uniqueByID(seed.SourceTables, func(t Table) int { return t.ID })
	s.sourceColumns = uniqueByID(seed.SourceColumns, func(c Column) int { return c.ID })
	s.targetTables = uniqueByID(seed.TargetTables, func(t Table) int { return t.ID })
	s.targetColumns = uniqueByID(seed.TargetColumns, func(c Column) int { return c.ID })
	s.releases = uniqueByID(seed.Releases, func(r Release) int { return r.ID })
	return nil
}

func (s *MemoryStore) SourceTables() ([]Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Table{}, s.sourceTables...), nil
}

func (s *MemoryStore) TargetTables() ([]Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Table{}, s.targetTables...), nil
}

func (s *MemoryStore) Columns(ns Namespace, tableID *int) ([]Column, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []Column
	switch ns {
	case Source:
		all = s.sourceColumns
	case Target:
		all = s.targetColumns
	default:
		_, err := ParseNamespace(string(ns))
		return nil, err
	}

	out := make([]Column, 0, len(all))
	for _, c := range all {
		if tableID != nil && c.TableID != *tableID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *MemoryStore) Releases() ([]Release, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Release{}, s.releases...), nil
}

// uniqueByID copies items sorted by id; the last item wins on duplicate ids.
func uniqueByID[T any](items []T, id func(T) int) []T {
	byID := make(map[int]T, len(items))
	for _, it := range items {
		byID[id(it)] = it
	}
	out := make([]T, 0, len(byID))
	for _, it := range byID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}
