// Package testutil provides test helpers for panel-inject tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// AssetsRel is the asset directory relative to a target root.
var AssetsRel = filepath.Join("dist", "control-ui", "assets")

// TempDir creates a temporary directory that is removed when the test ends.
func TempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "panel-inject-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Logf("warning: failed to remove temp dir %s: %v", dir, err)
		}
	})
	return dir
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of dir/name.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read file %s: %v", name, err)
	}
	return string(data)
}

// AssetTree creates a target root containing dist/control-ui/assets populated
// with files (name to content). It returns the root and the asset directory.
func AssetTree(t *testing.T, files map[string]string) (root, assets string) {
	t.Helper()
	root = TempDir(t)
	assets = filepath.Join(root, AssetsRel)
	if err := os.MkdirAll(assets, 0o755); err != nil {
		t.Fatalf("failed to create asset dir: %v", err)
	}
	for name, content := range files {
		WriteFile(t, assets, name, content)
	}
	return root, assets
}

// Snapshot returns name to content for every regular file directly in dir.
func Snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out[e.Name()] = ReadFile(t, dir, e.Name())
	}
	return out
}
