package export

import (
	"errors"
	"strings"
	"time"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"

	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeJSON = "application/json; charset=utf-8"

	exportBaseName = "sttm_mappings"
	sheetName      = "Mappings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrStorageDisabled   = errors.New("snapshot storage is not configured")
)

// Columns is the fixed export layout, one entry per mapping field.
var Columns = []string{
	"id",
	"source_table_id", "source_table_name",
	"source_column_id", "source_column_name",
	"target_table_id", "target_table_name",
	"target_column_id", "target_column_name",
	"release_id", "release_name",
	"jira_ticket", "status", "description",
	"created_at", "updated_at",
}

type Snapshot struct {
	Name      string    `json:"name"`
	Format    string    `json:"format"`
	Size      int64     `json:"size"`
	URL       string    `json:"url"`
	GSURL     string    `json:"gs_url"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeFormat maps user input onto a known format. "excel" is accepted
// for xlsx and an empty value means csv.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func contentTypeFor(format string) string {
	switch format {
	case FormatXLSX:
		return contentTypeXLSX
	case FormatJSON:
		return contentTypeJSON
	default:
		return contentTypeCSV
	}
}
