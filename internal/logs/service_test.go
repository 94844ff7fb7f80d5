package logs

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	cleanup := func() { _ = db.Close() }
	return gdb, mock, cleanup
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:logs%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := (&LogService{DB: db}).Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestLogService_Log_Inserts(t *testing.T) {
	t.Run("metadata nil", func(t *testing.T) {
		db, mock, cleanup := newMockGorm(t)
		defer cleanup()

		ls := &LogService{DB: db}

		mock.ExpectQuery(`INSERT INTO "audit_logs"`).
			WithArgs(
				sqlmock.AnyArg(), // level
				sqlmock.AnyArg(), // service
				sqlmock.AnyArg(), // mapping_id
				sqlmock.AnyArg(), // action
				sqlmock.AnyArg(), // message
				sqlmock.AnyArg(), // request_id
				sqlmock.AnyArg(), // metadata
				sqlmock.AnyArg(), // created_at
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := ls.Log(AuditLog{
			Level:     LevelInfo,
			Service:   "mapping",
			MappingID: intPtr(7),
			Action:    "CREATE_MAPPING",
			Message:   "ok",
		}, nil)
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("expectations: %v", err)
		}
	})

	t.Run("insert fails", func(t *testing.T) {
		db, mock, cleanup := newMockGorm(t)
		defer cleanup()

		ls := &LogService{DB: db}

		mock.ExpectQuery(`INSERT INTO "audit_logs"`).
			WillReturnError(errors.New("insert failed"))

		err := ls.Log(AuditLog{Level: LevelWarn, Service: "mapping", Action: "DELETE_MAPPING", Message: "x"}, map[string]any{"id": 1})
		if err == nil || err.Error() != "insert failed" {
			t.Fatalf("expected insert failed, got %v", err)
		}
	})
}

func TestLogService_GetLogs_CountError_ReturnsError(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()

	ls := &LogService{DB: db}

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnError(errors.New("count failed"))

	_, _, _, err := ls.GetLogs(LogFilterInput{})
	if err == nil || err.Error() != "count failed" {
		t.Fatalf("expected count failed, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLogService_GetLogs_InvalidDateRange_ReturnsError(t *testing.T) {
	db, _, cleanup := newMockGorm(t)
	defer cleanup()

	ls := &LogService{DB: db}

	_, _, _, err := ls.GetLogs(LogFilterInput{StartDate: strPtr("bad-date")})
	if err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func seedLogs(t *testing.T, db *gorm.DB) {
	t.Helper()

	rows := []AuditLog{
		{Level: LevelInfo, Service: "mapping", MappingID: intPtr(1), Action: "CREATE_MAPPING", Message: "Mapping created: 1", CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{Level: LevelInfo, Service: "mapping", MappingID: intPtr(1), Action: "UPDATE_MAPPING", Message: "Mapping updated: 1", CreatedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
		{Level: LevelInfo, Service: "mapping", MappingID: intPtr(2), Action: "CREATE_MAPPING", Message: "Mapping created: 2", CreatedAt: time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)},
		{Level: LevelWarn, Service: "mapping", MappingID: intPtr(2), Action: "DELETE_MAPPING", Message: "Mapping deleted: 2", CreatedAt: time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}
}

func TestLogService_GetLogs_NewestFirstWithAggregates(t *testing.T) {
	db := newTestDB(t)
	seedLogs(t, db)
	ls := &LogService{DB: db}

	rows, aggs, total, err := ls.GetLogs(LogFilterInput{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 4 || len(rows) != 4 {
		t.Fatalf("expected 4 rows, got total=%d len=%d", total, len(rows))
	}
	if rows[0].Action != "DELETE_MAPPING" {
		t.Fatalf("expected newest first, got %s", rows[0].Action)
	}
	if len(aggs.ByAction) == 0 || aggs.ByAction[0].Label != "CREATE_MAPPING" || aggs.ByAction[0].Count != 2 {
		t.Fatalf("unexpected ByAction: %#v", aggs.ByAction)
	}
	if len(aggs.ByLevel) != 2 || aggs.ByLevel[0].Label != LevelInfo || aggs.ByLevel[0].Count != 3 {
		t.Fatalf("unexpected ByLevel: %#v", aggs.ByLevel)
	}
}

func TestLogService_GetLogs_Filters(t *testing.T) {
	db := newTestDB(t)
	seedLogs(t, db)
	ls := &LogService{DB: db}

	tests := []struct {
		name  string
		input LogFilterInput
		want  int64
	}{
		{name: "mapping id", input: LogFilterInput{MappingID: intPtr(2)}, want: 2},
		{name: "level lowercase", input: LogFilterInput{Level: strPtr("warn")}, want: 1},
		{name: "actions comma list", input: LogFilterInput{Actions: []string{"UPDATE_MAPPING, DELETE_MAPPING"}}, want: 2},
		{name: "date range inclusive end day", input: LogFilterInput{StartDate: strPtr("2026-03-02"), EndDate: strPtr("2026-03-03")}, want: 2},
		{name: "search message", input: LogFilterInput{Search: strPtr("deleted")}, want: 1},
		{name: "combined", input: LogFilterInput{MappingID: intPtr(1), Actions: []string{"CREATE_MAPPING"}}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, _, total, err := ls.GetLogs(tt.input)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if total != tt.want || int64(len(rows)) != tt.want {
				t.Fatalf("expected %d rows, got total=%d len=%d", tt.want, total, len(rows))
			}
		})
	}
}

func TestLogService_GetLogs_LimitCapsRowsNotTotal(t *testing.T) {
	db := newTestDB(t)
	seedLogs(t, db)
	ls := &LogService{DB: db}

	rows, _, total, err := ls.GetLogs(LogFilterInput{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 4 || len(rows) != 2 {
		t.Fatalf("expected total=4 len=2, got total=%d len=%d", total, len(rows))
	}
}

func TestLogService_Log_StoresMetadata(t *testing.T) {
	db := newTestDB(t)
	ls := &LogService{DB: db}

	if err := ls.Log(AuditLog{Level: LevelInfo, Service: "mapping", Action: "CREATE_MAPPING", Message: "m"}, map[string]any{"status": "Draft"}); err != nil {
		t.Fatalf("log: %v", err)
	}

	var got AuditLog
	if err := db.First(&got).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got.Metadata) != `{"status":"Draft"}` {
		t.Fatalf("unexpected metadata: %s", got.Metadata)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected created_at set")
	}
}
