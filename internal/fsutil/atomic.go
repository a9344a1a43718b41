// Package fsutil provides filesystem helpers for rewriting build artifacts.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteError reports which step of an atomic write failed.
type WriteError struct {
	// Op is the failed step: "create", "write", "sync", "close", "chmod" or "rename".
	Op    string
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("atomic write %s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// WriteFileAtomic writes data to path using the temp-file-then-rename pattern.
// The temp file lives in the same directory as path so the rename stays on one
// filesystem. If any step fails the original file is left untouched and the
// temp file is removed.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".panel-inject-*")
	if err != nil {
		return &WriteError{Op: "create", Path: dir, Cause: err}
	}
	tmpPath := tmp.Name()
	needsCleanup := true

	defer func() {
		if tmp != nil {
			_ = tmp.Close()
		}
		if needsCleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return &WriteError{Op: "write", Path: tmpPath, Cause: err}
	}

	if err := tmp.Sync(); err != nil {
		return &WriteError{Op: "sync", Path: tmpPath, Cause: err}
	}

	// Close before rename; required on some platforms.
	err = tmp.Close()
	tmp = nil
	if err != nil {
		return &WriteError{Op: "close", Path: tmpPath, Cause: err}
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return &WriteError{Op: "chmod", Path: tmpPath, Cause: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return &WriteError{Op: "rename", Path: path, Cause: err}
	}
	needsCleanup = false

	return nil
}

// ReplaceFile rewrites an existing file atomically, keeping its permission bits.
func ReplaceFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data, info.Mode().Perm())
}
