// Package assets locates the dashboard's compiled asset directory and the
// files inside it that receive the panel.
package assets

import (
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/openclaw-cn/panel-inject/internal/errors"
	"github.com/openclaw-cn/panel-inject/internal/output"
)

// Layout below the target root.
const (
	DistDir      = "dist"
	ControlUIDir = "control-ui"
	AssetsDir    = "assets"
)

// Directory is a confirmed compiled-asset directory and its candidate files.
type Directory struct {
	// Root is the target root the directory was resolved from.
	Root string

	// UIDir is <root>/dist/control-ui; manifests and index.html live here.
	UIDir string

	// Path is <root>/dist/control-ui/assets.
	Path string

	// Stylesheets are the *.css base names in lexical order.
	Stylesheets []string

	// Scripts are the *.js base names in lexical order, excluding source maps.
	Scripts []string
}

// File returns the absolute path of a file in the directory.
func (d *Directory) File(name string) string {
	return filepath.Join(d.Path, name)
}

// AssetPath returns the asset directory for a target root.
func AssetPath(root string) string {
	return filepath.Join(root, DistDir, ControlUIDir, AssetsDir)
}

// Locate resolves and enumerates the asset directory under root.
// It returns a MissingAssetDirectory error when the directory does not exist.
// Nothing is written.
func Locate(root string) (*Directory, error) {
	if strings.TrimSpace(root) == "" {
		return nil, oerrors.NewMissingAssetDirectoryError("(empty target root)")
	}

	path := AssetPath(root)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		output.Debug("asset directory check failed", "path", path, "error", err)
		return nil, oerrors.NewMissingAssetDirectoryError(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	dir := &Directory{
		Root:  root,
		UIDir: filepath.Dir(path),
		Path:  path,
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".css"):
			dir.Stylesheets = append(dir.Stylesheets, name)
		case strings.HasSuffix(name, ".js") && !strings.HasSuffix(name, ".map"):
			dir.Scripts = append(dir.Scripts, name)
		}
	}

	output.Debug("asset directory located",
		"path", path,
		"stylesheets", len(dir.Stylesheets),
		"scripts", len(dir.Scripts),
	)

	return dir, nil
}
