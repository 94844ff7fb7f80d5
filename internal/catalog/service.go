package catalog

type CatalogService struct {
	Store EntityStore
}

func NewCatalogService(store EntityStore) *CatalogService {
	return &CatalogService{Store: store}
}

func (cs *CatalogService) GetTables(ns Namespace) ([]Table, error) {
	switch ns {
	case Source:
		return cs.Store.SourceTables()
	case Target:
		return cs.Store.TargetTables()
	}
	_, err := ParseNamespace(string(ns))
	return nil, err
}

func (cs *CatalogService) GetColumns(ns Namespace, tableID *int) ([]Column, error) {
	return cs.Store.Columns(ns, tableID)
}

func (cs *CatalogService) GetReleases() ([]Release, error) {
	return cs.Store.Releases()
}
