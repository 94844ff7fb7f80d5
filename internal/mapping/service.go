package mapping

import (
	"fmt"

	"sttm-catalog-api/internal/catalog"
)

type MappingService struct {
	Store    Store
	Enricher *Enricher
}

func NewMappingService(store Store, entities catalog.EntityStore) *MappingService {
	return &MappingService{Store: store, Enricher: &Enricher{Entities: entities}}
}

// ListMappings applies at most one filter. A release filter takes priority
// over a status filter, and filtered results come back without names. An
// empty status is still a filter. With no filter every mapping is returned
// enriched.
func (ms *MappingService) ListMappings(filter ListFilter) ([]EnrichedMapping, error) {
	switch {
	case filter.ReleaseID != nil:
		rid := *filter.ReleaseID
		return ms.filtered(func(m Mapping) bool {
			return m.ReleaseID != nil && *m.ReleaseID == rid
		})
	case filter.Status != nil:
		status := *filter.Status
		return ms.filtered(func(m Mapping) bool { return m.Status == status })
	}
	return ms.EnrichedMappings()
}

func (ms *MappingService) filtered(keep func(Mapping) bool) ([]EnrichedMapping, error) {
	all, err := ms.Store.List()
	if err != nil {
		return nil, err
	}
	out := make([]EnrichedMapping, 0, len(all))
	for _, m := range all {
		if keep(m) {
			out = append(out, EnrichedMapping{Mapping: m})
		}
	}
	return out, nil
}

func (ms *MappingService) EnrichedMappings() ([]EnrichedMapping, error) {
	all, err := ms.Store.List()
	if err != nil {
		return nil, err
	}
	return ms.Enricher.Enrich(all)
}

func (ms *MappingService) GetMapping(id int) (*Mapping, error) {
	return ms.Store.Get(id)
}

func (ms *MappingService) GetEnrichedMapping(id int) (*EnrichedMapping, error) {
	m, err := ms.Store.Get(id)
	if err != nil {
		return nil, err
	}
	out, err := ms.Enricher.Enrich([]Mapping{*m})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// CreateMapping checks the four foreign keys are present before inserting.
// Nothing is stored when validation fails.
func (ms *MappingService) CreateMapping(in MappingInput) (*Mapping, error) {
	fields, err := in.Validate()
	if err != nil {
		return nil, err
	}
	return ms.Store.Create(fields)
}

func (ms *MappingService) UpdateMapping(id int, patch Patch) (*Mapping, error) {
	return ms.Store.Update(id, patch)
}

func (ms *MappingService) DeleteMapping(id int) error {
	ok, err := ms.Store.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// SeedSamples inserts the sample mappings when the store is empty and
// reports how many were added.
func (ms *MappingService) SeedSamples() (int, error) {
	existing, err := ms.Store.List()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	samples := SampleMappings()
	for i, in := range samples {
		if _, err := ms.Store.Create(in); err != nil {
			return i, fmt.Errorf("seed mapping %d: %w", i+1, err)
		}
	}
	return len(samples), nil
}

// NotFoundMessage is the client-facing text for an unknown mapping id.
func NotFoundMessage(id int) string {
	return fmt.Sprintf("Mapping with ID %d not found", id)
}
