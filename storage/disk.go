package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore is a filesystem-backed ObjectStore. Each bucket is a directory
// under Root; public URLs are BaseURL + "/" + bucket + "/" + name, so the
// host app is expected to serve Root as static files under BaseURL.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates the root directory if needed.
func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		root = filepath.Join(os.TempDir(), "cms-objects")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create object root: %w (dir=%s)", err, root)
	}
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (d *DiskStore) objectPath(bucket, name string) (string, error) {
	if bucket == "" || name == "" {
		return "", fmt.Errorf("bucket and name are required")
	}
	// name comes from MakeObjectName, but never trust it with the path.
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	return filepath.Join(d.root, bucket, name), nil
}

func (d *DiskStore) Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error {
	p, err := d.objectPath(bucket, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create bucket dir: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	return nil
}

func (d *DiskStore) PublicURL(bucket, name string) string {
	return d.baseURL + "/" + bucket + "/" + name
}

// Remove deletes the named objects. A missing object produces no result
// record (there is nothing to report); a failed unlink produces a record
// with the error marker set. The call itself only errors on bad input.
func (d *DiskStore) Remove(ctx context.Context, bucket string, names []string) ([]RemoveResult, error) {
	results := make([]RemoveResult, 0, len(names))
	for _, name := range names {
		p, err := d.objectPath(bucket, name)
		if err != nil {
			return nil, err
		}
		err = os.Remove(p)
		switch {
		case err == nil:
			results = append(results, RemoveResult{Name: name})
		case os.IsNotExist(err):
			// already gone
		default:
			msg := err.Error()
			results = append(results, RemoveResult{Name: name, Error: &msg})
		}
	}
	return results, nil
}
