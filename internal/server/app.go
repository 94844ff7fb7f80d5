package server

import (
	"fmt"

	"sttm-catalog-api/config"
	"sttm-catalog-api/internal/assist"
	"sttm-catalog-api/internal/catalog"
	"sttm-catalog-api/internal/export"
	"sttm-catalog-api/internal/logs"
	"sttm-catalog-api/internal/mapping"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
	"gorm.io/gorm"
)

// App holds the wired services for one process.
type App struct {
	Config   config.Config
	DB       *gorm.DB
	Catalog  *catalog.CatalogService
	Mappings *mapping.MappingService
	Logs     *logs.LogService
	Export   *export.ExportService
	Assist   *assist.AssistService
}

// NewApp selects the store backend, migrates, loads the reference catalog and
// seeds the sample mappings into an empty store. client may be nil.
func NewApp(cfg config.Config, db *gorm.DB, client *genai.Client) (*App, error) {
	var (
		entities catalog.EntityStore
		store    mapping.Store
	)

	switch cfg.Backend() {
	case config.BackendMemory:
		entities = catalog.NewMemoryStore()
		store = mapping.NewMemoryStore()
	case config.BackendSQLite, config.BackendPostgres:
		cs := &catalog.GormStore{DB: db}
		if err := cs.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate catalog: %w", err)
		}
		ms := &mapping.GormStore{DB: db}
		if err := ms.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate mappings: %w", err)
		}
		entities, store = cs, ms
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	logService := &logs.LogService{DB: db}
	if err := logService.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate audit logs: %w", err)
	}

	if err := entities.Load(catalog.DefaultSeed()); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	mappingService := mapping.NewMappingService(store, entities)
	if cfg.SeedMappings() {
		n, err := mappingService.SeedSamples()
		if err != nil {
			return nil, fmt.Errorf("seed mappings: %w", err)
		}
		if n > 0 {
			log.Info().Int("count", n).Msg("seeded sample mappings")
		}
	}

	catalogService := catalog.NewCatalogService(entities)

	return &App{
		Config:   cfg,
		DB:       db,
		Catalog:  catalogService,
		Mappings: mappingService,
		Logs:     logService,
		Export:   export.NewExportService(mappingService, cfg.GCSBucket),
		Assist: &assist.AssistService{
			Mappings: mappingService,
			Columns:  catalogService,
			Client:   client,
			Model:    cfg.Model(),
		},
	}, nil
}
