package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const SnapshotPrefix = "snapshots/"

var unsafePart = regexp.MustCompile(`[^a-z0-9_\-]`)

func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafePart.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}

// SnapshotObjectName builds snapshots/<UTC timestamp>_<name>.<ext>.
func SnapshotObjectName(name, ext string, at time.Time) string {
	return fmt.Sprintf("%s%s_%s.%s",
		SnapshotPrefix,
		at.UTC().Format("20060102T150405Z"),
		SanitizePart(name),
		strings.TrimPrefix(strings.ToLower(ext), "."),
	)
}

func PublicGCSURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}

func GSURL(bucket, objectPath string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, objectPath)
}
