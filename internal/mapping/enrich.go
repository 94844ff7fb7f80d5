package mapping

import (
	"sttm-catalog-api/internal/catalog"
)

// Enricher attaches display names to mappings. Lookups are rebuilt on every
// call; references that do not resolve simply leave the name out.
type Enricher struct {
	Entities catalog.EntityStore
}

type nameLookups struct {
	sourceTables  map[int]string
	sourceColumns map[int]string
	targetTables  map[int]string
	targetColumns map[int]string
	releases      map[int]string
}

func (e *Enricher) Enrich(mappings []Mapping) ([]EnrichedMapping, error) {
	lk, err := e.lookups()
	if err != nil {
		return nil, err
	}

	out := make([]EnrichedMapping, 0, len(mappings))
	for _, m := range mappings {
		out = append(out, lk.enrich(m))
	}
	return out, nil
}

func (e *Enricher) lookups() (*nameLookups, error) {
	srcTables, err := e.Entities.SourceTables()
	if err != nil {
		return nil, err
	}
	tgtTables, err := e.Entities.TargetTables()
	if err != nil {
		return nil, err
	}
	srcCols, err := e.Entities.Columns(catalog.Source, nil)
	if err != nil {
		return nil, err
	}
	tgtCols, err := e.Entities.Columns(catalog.Target, nil)
	if err != nil {
		return nil, err
	}
	releases, err := e.Entities.Releases()
	if err != nil {
		return nil, err
	}

	lk := &nameLookups{
		sourceTables:  make(map[int]string, len(srcTables)),
		sourceColumns: make(map[int]string, len(srcCols)),
		targetTables:  make(map[int]string, len(tgtTables)),
		targetColumns: make(map[int]string, len(tgtCols)),
		releases:      make(map[int]string, len(releases)),
	}
	for _, t := range srcTables {
		lk.sourceTables[t.ID] = t.Name
	}
	for _, t := range tgtTables {
		lk.targetTables[t.ID] = t.Name
	}
	for _, c := range srcCols {
		lk.sourceColumns[c.ID] = c.Name
	}
	for _, c := range tgtCols {
		lk.targetColumns[c.ID] = c.Name
	}
	for _, r := range releases {
		lk.releases[r.ID] = r.Name
	}
	return lk, nil
}

func (lk *nameLookups) enrich(m Mapping) EnrichedMapping {
	em := EnrichedMapping{Mapping: m}
	em.SourceTableName = lookupName(lk.sourceTables, m.SourceTableID)
	em.SourceColumnName = lookupName(lk.sourceColumns, m.SourceColumnID)
	em.TargetTableName = lookupName(lk.targetTables, m.TargetTableID)
	em.TargetColumnName = lookupName(lk.targetColumns, m.TargetColumnID)
	if m.ReleaseID != nil {
		em.ReleaseName = lookupName(lk.releases, *m.ReleaseID)
	}
	return em
}

func lookupName(names map[int]string, id int) *string {
	name, ok := names[id]
	if !ok {
		return nil
	}
	return &name
}
