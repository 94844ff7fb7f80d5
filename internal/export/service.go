package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"sttm-catalog-api/internal/mapping"
	"sttm-catalog-api/internal/util"

	"github.com/iancoleman/orderedmap"
	"github.com/xuri/excelize/v2"
	"google.golang.org/api/iterator"
)

type ExportService struct {
	Mappings MappingSource
	Bucket   string
	Now      func() time.Time
}

func NewExportService(mappings MappingSource, bucket string) *ExportService {
	return &ExportService{Mappings: mappings, Bucket: strings.TrimSpace(bucket)}
}

func (es *ExportService) now() time.Time {
	if es.Now != nil {
		return es.Now()
	}
	return time.Now().UTC()
}

// Export renders every mapping, enriched with display names, in the requested
// format.
func (es *ExportService) Export(format string) (contentType, filename string, out []byte, err error) {
	format, err = NormalizeFormat(format)
	if err != nil {
		return "", "", nil, err
	}

	rows, err := es.Mappings.EnrichedMappings()
	if err != nil {
		return "", "", nil, err
	}

	switch format {
	case FormatXLSX:
		out, err = buildXLSX(rows)
	case FormatJSON:
		out, err = buildJSON(rows)
	default:
		out, err = buildCSV(rows)
	}
	if err != nil {
		return "", "", nil, err
	}

	return contentTypeFor(format), exportBaseName + "." + format, out, nil
}

// Publish uploads an export to the snapshot bucket under a timestamped name.
func (es *ExportService) Publish(ctx context.Context, format string) (*Snapshot, error) {
	if es.Bucket == "" {
		return nil, ErrStorageDisabled
	}

	contentType, _, data, err := es.Export(format)
	if err != nil {
		return nil, err
	}
	format, _ = NormalizeFormat(format)

	client, err := newGCSClientHook(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	at := es.now()
	objectName := util.SnapshotObjectName(exportBaseName, format, at)

	w := client.Bucket(es.Bucket).Object(objectName).NewWriter(ctx, contentType)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to upload snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	return &Snapshot{
		Name:      objectName,
		Format:    format,
		Size:      int64(len(data)),
		URL:       util.PublicGCSURL(es.Bucket, objectName),
		GSURL:     util.GSURL(es.Bucket, objectName),
		CreatedAt: at,
	}, nil
}

// ListSnapshots returns the published snapshots, newest first.
func (es *ExportService) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	if es.Bucket == "" {
		return nil, ErrStorageDisabled
	}

	client, err := newGCSClientHook(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	out := []Snapshot{}
	it := client.Bucket(es.Bucket).Objects(ctx, util.SnapshotPrefix)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		out = append(out, Snapshot{
			Name:      attrs.Name,
			Format:    strings.TrimPrefix(path.Ext(attrs.Name), "."),
			Size:      attrs.Size,
			URL:       util.PublicGCSURL(es.Bucket, attrs.Name),
			GSURL:     util.GSURL(es.Bucket, attrs.Name),
			CreatedAt: attrs.Created,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOrEmpty(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func record(m mapping.EnrichedMapping) []string {
	return []string{
		strconv.Itoa(m.ID),
		strconv.Itoa(m.SourceTableID), strOrEmpty(m.SourceTableName),
		strconv.Itoa(m.SourceColumnID), strOrEmpty(m.SourceColumnName),
		strconv.Itoa(m.TargetTableID), strOrEmpty(m.TargetTableName),
		strconv.Itoa(m.TargetColumnID), strOrEmpty(m.TargetColumnName),
		intOrEmpty(m.ReleaseID), strOrEmpty(m.ReleaseName),
		strOrEmpty(m.JiraTicket), m.Status, m.Description,
		formatTime(m.CreatedAt), formatTime(m.UpdatedAt),
	}
}

func buildCSV(rows []mapping.EnrichedMapping) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	for _, m := range rows {
		if err := w.Write(record(m)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func buildXLSX(rows []mapping.EnrichedMapping) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, 0, len(Columns))
	for _, c := range Columns {
		header = append(header, excelize.Cell{Value: c, StyleID: headerStyle})
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	for i, m := range rows {
		rec := record(m)
		values := make([]interface{}, 0, len(rec))
		for _, v := range rec {
			values = append(values, v)
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, values); err != nil {
			return nil, err
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildJSON keeps the keys in export column order.
func buildJSON(rows []mapping.EnrichedMapping) ([]byte, error) {
	out := make([]*orderedmap.OrderedMap, 0, len(rows))
	for _, m := range rows {
		o := orderedmap.New()
		o.Set("id", m.ID)
		o.Set("source_table_id", m.SourceTableID)
		o.Set("source_table_name", m.SourceTableName)
		o.Set("source_column_id", m.SourceColumnID)
		o.Set("source_column_name", m.SourceColumnName)
		o.Set("target_table_id", m.TargetTableID)
		o.Set("target_table_name", m.TargetTableName)
		o.Set("target_column_id", m.TargetColumnID)
		o.Set("target_column_name", m.TargetColumnName)
		o.Set("release_id", m.ReleaseID)
		o.Set("release_name", m.ReleaseName)
		o.Set("jira_ticket", m.JiraTicket)
		o.Set("status", m.Status)
		o.Set("description", m.Description)
		o.Set("created_at", m.CreatedAt)
		o.Set("updated_at", m.UpdatedAt)
		out = append(out, o)
	}

	return json.Marshal(out)
}
