package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	d, err := NewDiskStore(t.TempDir(), "http://localhost:8080/static/")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := d.Upload(ctx, "bulletin-images", "1700_a.png", []byte("png-bytes"), "image/png"); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if got := d.PublicURL("bulletin-images", "1700_a.png"); got != "http://localhost:8080/static/bulletin-images/1700_a.png" {
		t.Errorf("PublicURL = %q", got)
	}

	results, err := d.Remove(ctx, "bulletin-images", []string{"1700_a.png"})
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !RemoveOK(results) {
		t.Errorf("results = %+v, want clean removal", results)
	}
	if len(results) != 1 || results[0].Name != "1700_a.png" {
		t.Errorf("results = %+v, want one record for the removed object", results)
	}
}

// Removing an object that is already gone produces no result record.
func TestDiskStoreRemoveMissing(t *testing.T) {
	d, err := NewDiskStore(t.TempDir(), "http://localhost/static")
	if err != nil {
		t.Fatal(err)
	}

	results, err := d.Remove(context.Background(), "bulletin-images", []string{"never_uploaded.png"})
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v, want none for missing object", results)
	}
	if !RemoveOK(results) {
		t.Error("missing object must still count as success")
	}
}

func TestDiskStoreRejectsPathTraversal(t *testing.T) {
	root := t.TempDir()
	d, err := NewDiskStore(root, "http://localhost/static")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := d.Upload(ctx, "bulletin-images", "../escape.png", []byte("x"), "image/png"); err == nil {
		t.Error("Upload with path traversal should fail")
	}
	if _, err := d.Remove(ctx, "bulletin-images", []string{"../../etc/passwd"}); err == nil {
		t.Error("Remove with path traversal should fail")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(root), "escape.png")); !os.IsNotExist(err) {
		t.Error("object escaped the store root")
	}
}
