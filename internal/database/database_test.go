package database

import (
	"path/filepath"
	"strings"
	"testing"

	"sttm-catalog-api/config"
)

func TestOpen_Memory(t *testing.T) {
	db, err := Open(config.Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer Close(db)

	if db.Dialector.Name() != "sqlite" {
		t.Fatalf("expected sqlite dialect, got %q", db.Dialector.Name())
	}
	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil || one != 1 {
		t.Fatalf("query: %v %d", err, one)
	}
}

func TestOpen_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sttm_test.db")

	db, err := Open(config.Config{StoreBackend: "sqlite", SQLitePath: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer Close(db)

	if err := db.Exec("CREATE TABLE probe (id INTEGER PRIMARY KEY)").Error; err != nil {
		t.Fatalf("exec: %v", err)
	}
	if !db.Migrator().HasTable("probe") {
		t.Fatal("expected probe table in file database")
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(config.Config{StoreBackend: "mongo"})
	if err == nil || !strings.Contains(err.Error(), `unknown store backend "mongo"`) {
		t.Fatalf("expected unknown backend error, got %v", err)
	}
}
