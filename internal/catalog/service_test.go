package catalog

import "testing"

func TestCatalogService_GetTables(t *testing.T) {
	svc := NewCatalogService(loadedMemoryStore(t))

	src, err := svc.GetTables(Source)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if src[1].Name != "product" {
		t.Fatalf("unexpected source tables: %v", src)
	}

	tgt, err := svc.GetTables(Target)
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	if tgt[1].Name != "dim_product" {
		t.Fatalf("unexpected target tables: %v", tgt)
	}

	if _, err := svc.GetTables(Namespace("x")); err == nil {
		t.Fatal("expected error for unknown namespace")
	}
}

func TestCatalogService_GetColumnsAndReleases(t *testing.T) {
	svc := NewCatalogService(loadedMemoryStore(t))

	cols, err := svc.GetColumns(Target, intPtr(1))
	if err != nil {
		t.Fatalf("columns: %v", err)
	}
	if len(cols) != 3 || cols[0].Name != "customer_key" {
		t.Fatalf("unexpected columns: %v", cols)
	}

	rel, err := svc.GetReleases()
	if err != nil {
		t.Fatalf("releases: %v", err)
	}
	if len(rel) != 3 {
		t.Fatalf("expected 3 releases, got %d", len(rel))
	}
}
