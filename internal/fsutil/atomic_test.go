package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw-cn/panel-inject/internal/testutil"
)

func TestWriteFileAtomic_CreatesFile(t *testing.T) {
	dir := testutil.TempDir(t)
	path := filepath.Join(dir, "index-abc.js")

	require.NoError(t, WriteFileAtomic(path, []byte("console.log(1)"), 0o644))

	assert.Equal(t, "console.log(1)", testutil.ReadFile(t, dir, "index-abc.js"))
	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_OverwritesFile(t *testing.T) {
	dir := testutil.TempDir(t)
	path := testutil.WriteFile(t, dir, "app.css", "old")

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o644))

	assert.Equal(t, "new", testutil.ReadFile(t, dir, "app.css"))
	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	dir := testutil.TempDir(t)
	path := filepath.Join(dir, "missing", "x.js")

	err := WriteFileAtomic(path, []byte("x"), 0o644)
	require.Error(t, err)

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "create", werr.Op)
}

func TestReplaceFile_PreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	dir := testutil.TempDir(t)
	path := testutil.WriteFile(t, dir, "index.js", "a")
	require.NoError(t, os.Chmod(path, 0o640))

	require.NoError(t, ReplaceFile(path, []byte("b")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	assert.Equal(t, "b", testutil.ReadFile(t, dir, "index.js"))
}

func TestReplaceFile_MissingFile(t *testing.T) {
	dir := testutil.TempDir(t)
	err := ReplaceFile(filepath.Join(dir, "nope.js"), []byte("x"))
	assert.True(t, os.IsNotExist(err))
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".panel-inject-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
