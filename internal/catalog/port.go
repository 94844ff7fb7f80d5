package catalog

// EntityStore holds the read-only reference collections. Load replaces the
// content and is idempotent for the same seed.
type EntityStore interface {
	Load(seed Seed) error
	SourceTables() ([]Table, error)
	TargetTables() ([]Table, error)
	Columns(ns Namespace, tableID *int) ([]Column, error)
	Releases() ([]Release, error)
}

type CatalogServiceAPI interface {
	GetTables(ns Namespace) ([]Table, error)
	GetColumns(ns Namespace, tableID *int) ([]Column, error)
	GetReleases() ([]Release, error)
}

var (
	_ EntityStore       = (*MemoryStore)(nil)
	_ EntityStore       = (*GormStore)(nil)
	_ CatalogServiceAPI = (*CatalogService)(nil)
)
