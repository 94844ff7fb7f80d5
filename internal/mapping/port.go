package mapping

import (
	"sttm-catalog-api/internal/logs"
)

// Store owns the mutable mapping collection. Get and Update return
// ErrNotFound for unknown ids; List returns insertion order.
type Store interface {
	Create(in NewMapping) (*Mapping, error)
	Get(id int) (*Mapping, error)
	Update(id int, patch Patch) (*Mapping, error)
	Delete(id int) (bool, error)
	List() ([]Mapping, error)
}

type MappingServiceAPI interface {
	ListMappings(filter ListFilter) ([]EnrichedMapping, error)
	EnrichedMappings() ([]EnrichedMapping, error)
	GetMapping(id int) (*Mapping, error)
	GetEnrichedMapping(id int) (*EnrichedMapping, error)
	CreateMapping(in MappingInput) (*Mapping, error)
	UpdateMapping(id int, patch Patch) (*Mapping, error)
	DeleteMapping(id int) error
}

type LogServicePort interface {
	Log(entry logs.AuditLog, payload interface{}) error
}

var (
	_ Store             = (*MemoryStore)(nil)
	_ Store             = (*GormStore)(nil)
	_ MappingServiceAPI = (*MappingService)(nil)
	_ LogServicePort    = (*logs.LogService)(nil)
)
