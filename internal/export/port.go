package export

import (
	"context"
	"io"

	"sttm-catalog-api/internal/logs"
	"sttm-catalog-api/internal/mapping"

	"cloud.google.com/go/storage"
)

type ExportServiceAPI interface {
	Export(format string) (contentType, filename string, out []byte, err error)
	Publish(ctx context.Context, format string) (*Snapshot, error)
	ListSnapshots(ctx context.Context) ([]Snapshot, error)
}

// MappingSource is the slice of the mapping service the exporter reads from.
type MappingSource interface {
	EnrichedMappings() ([]mapping.EnrichedMapping, error)
}

type LogServicePort interface {
	Log(entry logs.AuditLog, metadata interface{}) error
}

var (
	_ ExportServiceAPI = (*ExportService)(nil)
	_ MappingSource    = (*mapping.MappingService)(nil)
	_ LogServicePort   = (*logs.LogService)(nil)
)

type gcsClient interface {
	Bucket(name string) gcsBucket
	Close() error
}
type gcsBucket interface {
	Object(name string) gcsObject
	Objects(ctx context.Context, prefix string) gcsObjectIterator
}
type gcsObject interface {
	NewWriter(ctx context.Context, contentType string) io.WriteCloser
}
type gcsObjectIterator interface {
	Next() (*storage.ObjectAttrs, error)
}

type realGCSClient struct{ c *storage.Client }
type realGCSBucket struct{ b *storage.BucketHandle }
type realGCSObject struct{ o *storage.ObjectHandle }

func (r realGCSClient) Bucket(name string) gcsBucket { return realGCSBucket{b: r.c.Bucket(name)} }
func (r realGCSClient) Close() error                 { return r.c.Close() }
func (b realGCSBucket) Object(name string) gcsObject { return realGCSObject{o: b.b.Object(name)} }
func (b realGCSBucket) Objects(ctx context.Context, prefix string) gcsObjectIterator {
	return b.b.Objects(ctx, &storage.Query{Prefix: prefix})
}
func (o realGCSObject) NewWriter(ctx context.Context, contentType string) io.WriteCloser {
	w := o.o.NewWriter(ctx)
	w.ContentType = contentType
	return w
}

var newGCSClientHook = func(ctx context.Context) (gcsClient, error) {
	c, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return realGCSClient{c: c}, nil
}
