// Package storage defines the object-store client used for content images.
// The API mirrors a bucket-based managed storage service: upload by
// bucket+name, public URL per object, batch remove returning one result
// record per object.
package storage

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

// ObjectStore is the external blob-storage collaborator.
type ObjectStore interface {
	// Upload stores data under bucket/name. name must not contain path
	// separators; use MakeObjectName to derive one from a client filename.
	Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error

	// PublicURL returns the public address of bucket/name. It does not
	// check that the object exists.
	PublicURL(bucket, name string) string

	// Remove deletes the named objects and returns one result record per
	// object the backend chose to report on. An empty slice is a valid
	// response. Use RemoveOK to interpret the records.
	Remove(ctx context.Context, bucket string, names []string) ([]RemoveResult, error)
}

// RemoveResult is a per-object record from a batch remove. Error is nil on
// success; backends report partial failures here instead of failing the
// whole call.
type RemoveResult struct {
	Name  string  `json:"name"`
	Error *string `json:"error"`
}

// RemoveOK reports whether a batch remove fully succeeded. An empty result
// sequence counts as success (nothing to report); any record carrying an
// error marker fails the whole batch. Backends don't raise a hard error for
// partial failures, so callers must go through this check.
func RemoveOK(results []RemoveResult) bool {
	for _, r := range results {
		if r.Error != nil {
			return false
		}
	}
	return true
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename reduces a client-supplied filename to a safe object-name
// component: base name only, unsafe runs collapsed to "_", leading/trailing
// separators trimmed.
func SanitizeFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = unsafeNameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

// MakeObjectName derives a bucket-unique object name from the original
// client filename: "{unix_timestamp}_{sanitized_name}". Collisions within
// the same second and name are accepted as unlikely.
func MakeObjectName(filename string) string {
	return fmt.Sprintf("%d_%s", time.Now().Unix(), SanitizeFilename(filename))
}

// ObjectNameFromURL recovers the object name from a public URL by splitting
// on "/{bucket}/" and stripping any query string. Returns "" when the URL
// does not address the given bucket.
func ObjectNameFromURL(url, bucket string) string {
	parts := strings.SplitN(url, "/"+bucket+"/", 2)
	if len(parts) < 2 || parts[1] == "" {
		return ""
	}
	name := parts[1]
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	return name
}
