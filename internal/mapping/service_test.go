package mapping

import (
	"errors"
	"testing"
)

func newSeededService(t *testing.T) *MappingService {
	t.Helper()
	svc := NewMappingService(NewMemoryStore(), loadedEntities(t))
	n, err := svc.SeedSamples()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 samples, got %d", n)
	}
	return svc
}

func TestMappingService_SeedSamples_OnlyWhenEmpty(t *testing.T) {
	svc := newSeededService(t)

	n, err := svc.SeedSamples()
	if err != nil {
		t.Fatalf("seed again: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no reseed, got %d", n)
	}
}

func TestMappingService_ListMappings_ByRelease(t *testing.T) {
	svc := newSeededService(t)

	got, err := svc.ListMappings(ListFilter{ReleaseID: intPtr(1)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 mappings in release 1, got %d", len(got))
	}
	for _, m := range got {
		if m.ReleaseID == nil || *m.ReleaseID != 1 {
			t.Fatalf("mapping %d not in release 1", m.ID)
		}
		if m.SourceTableName != nil || m.ReleaseName != nil {
			t.Fatalf("filtered results must not be enriched: %+v", m)
		}
	}
}

func TestMappingService_ListMappings_ByStatus(t *testing.T) {
	svc := newSeededService(t)

	got, err := svc.ListMappings(ListFilter{Status: strPtr("Released")})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 released mappings, got %d", len(got))
	}
	for _, m := range got {
		if m.Status != "Released" || m.TargetTableName != nil {
			t.Fatalf("unexpected mapping: %+v", m)
		}
	}
}

func TestMappingService_ListMappings_ReleaseWinsOverStatus(t *testing.T) {
	svc := newSeededService(t)

	got, err := svc.ListMappings(ListFilter{ReleaseID: intPtr(3), Status: strPtr("Released")})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Status != "Draft" {
		t.Fatalf("expected only the release filter applied, got %+v", got)
	}
}

func TestMappingService_ListMappings_NoFilterEnriches(t *testing.T) {
	svc := newSeededService(t)

	got, err := svc.ListMappings(ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 mappings, got %d", len(got))
	}
	for _, m := range got {
		if m.SourceTableName == nil || m.TargetTableName == nil {
			t.Fatalf("expected enriched mapping: %+v", m)
		}
	}
	if *got[3].ReleaseName != "R2.0" {
		t.Fatalf("unexpected release name %q", *got[3].ReleaseName)
	}
}

func TestMappingService_ListMappings_EmptyStatusFilters(t *testing.T) {
	svc := newSeededService(t)

	got, err := svc.ListMappings(ListFilter{Status: strPtr("")})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no mappings with empty status, got %d", len(got))
	}
}

func TestMappingService_CreateMapping_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input MappingInput
		field string
	}{
		{name: "empty", input: MappingInput{}, field: "source_table_id"},
		{name: "missing source column", input: MappingInput{SourceTableID: intPtr(1), TargetTableID: intPtr(1)}, field: "source_column_id"},
		{name: "missing target table", input: MappingInput{SourceTableID: intPtr(1), SourceColumnID: intPtr(1), TargetColumnID: intPtr(1)}, field: "target_table_id"},
		{name: "missing target column", input: MappingInput{SourceTableID: intPtr(1), SourceColumnID: intPtr(1), TargetTableID: intPtr(1)}, field: "target_column_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMappingService(NewMemoryStore(), loadedEntities(t))

			_, err := svc.CreateMapping(tt.input)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, vErr.Field)
			}
			if vErr.Error() != "Missing required field: "+tt.field {
				t.Fatalf("unexpected message %q", vErr.Error())
			}

			all, _ := svc.Store.List()
			if len(all) != 0 {
				t.Fatalf("nothing must be inserted on validation failure, got %d", len(all))
			}
		})
	}
}

func TestMappingService_CreateAndGetEnriched(t *testing.T) {
	svc := NewMappingService(NewMemoryStore(), loadedEntities(t))

	m, err := svc.CreateMapping(validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	em, err := svc.GetEnrichedMapping(m.ID)
	if err != nil {
		t.Fatalf("get enriched: %v", err)
	}
	if *em.SourceColumnName != "email" || *em.TargetColumnName != "email" || em.ReleaseName != nil {
		t.Fatalf("unexpected enrichment: %+v", em)
	}

	if _, err := svc.GetEnrichedMapping(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMappingService_UpdateAndDelete(t *testing.T) {
	svc := newSeededService(t)

	updated, err := svc.UpdateMapping(1, Patch{Status: Value("Updated")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != "Updated" || updated.SourceTableID != 1 {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if _, err := svc.UpdateMapping(9999, Patch{Status: Value("Updated")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := svc.DeleteMapping(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteMapping(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := svc.DeleteMapping(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, _ := svc.Store.List()
	if len(all) != 3 {
		t.Fatalf("expected 3 mappings left, got %d", len(all))
	}
}

func TestMappingService_GormBackend(t *testing.T) {
	svc := NewMappingService(newGormStore(t, nil), loadedEntities(t))
	if _, err := svc.SeedSamples(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := svc.ListMappings(ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 4 || *got[0].SourceColumnName != "customer_id" {
		t.Fatalf("unexpected enriched list: %+v", got)
	}

	byRelease, _ := svc.ListMappings(ListFilter{ReleaseID: intPtr(2)})
	if len(byRelease) != 1 || byRelease[0].SourceTableID != 2 {
		t.Fatalf("unexpected release filter result: %+v", byRelease)
	}
}
