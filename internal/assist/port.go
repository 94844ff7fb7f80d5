package assist

import (
	"context"

	"sttm-catalog-api/internal/catalog"
	"sttm-catalog-api/internal/logs"
	"sttm-catalog-api/internal/mapping"
)

type AssistServiceAPI interface {
	SuggestDescription(ctx context.Context, id int, apply bool) (*Suggestion, error)
}

type MappingLookup interface {
	GetEnrichedMapping(id int) (*mapping.EnrichedMapping, error)
	UpdateMapping(id int, patch mapping.Patch) (*mapping.Mapping, error)
}

type ColumnLookup interface {
	GetColumns(ns catalog.Namespace, tableID *int) ([]catalog.Column, error)
}

type LogServicePort interface {
	Log(entry logs.AuditLog, metadata interface{}) error
}

var (
	_ LogServicePort   = (*logs.LogService)(nil)
	_ AssistServiceAPI = (*AssistService)(nil)
	_ MappingLookup    = (*mapping.MappingService)(nil)
	_ ColumnLookup     = (*catalog.CatalogService)(nil)
)
