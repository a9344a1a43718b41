// Package panel loads the feature panel sources and prepares the script
// payload that is injected into the dashboard bundle.
package panel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/openclaw-cn/panel-inject/internal/errors"
	"github.com/openclaw-cn/panel-inject/internal/output"
)

// Source file names inside the panel directory.
const (
	ScriptFile = "feature-panel.js"
	StyleFile  = "feature-panel.css"
	DataFile   = "panel-data.json"
)

// Bundle is the externally authored panel payload.
type Bundle struct {
	// Script is the panel script text.
	Script string

	// Style is the panel stylesheet text. Empty when the stylesheet is absent.
	Style string

	// Data is the compacted panel-data.json value, or nil when absent.
	Data json.RawMessage
}

// HasData reports whether a data payload was loaded.
func (b *Bundle) HasData() bool {
	return len(b.Data) > 0
}

// Load reads the panel bundle from dir.
//
// feature-panel.js is required. feature-panel.css is optional and loads as an
// empty stylesheet when absent. panel-data.json is optional; when present it
// must hold a single valid JSON value, otherwise a MalformedPanelData error is
// returned.
func Load(dir string) (*Bundle, error) {
	scriptPath := filepath.Join(dir, ScriptFile)
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				"panel script is missing", scriptPath,
				"Pass --panel-dir pointing at the directory holding "+ScriptFile+".")
		}
		return nil, fmt.Errorf("reading panel script: %w", err)
	}

	b := &Bundle{Script: string(script)}

	stylePath := filepath.Join(dir, StyleFile)
	style, err := os.ReadFile(stylePath)
	switch {
	case err == nil:
		b.Style = string(style)
	case os.IsNotExist(err):
		output.Debug("panel stylesheet absent", "path", stylePath)
	default:
		return nil, fmt.Errorf("reading panel stylesheet: %w", err)
	}

	dataPath := filepath.Join(dir, DataFile)
	raw, err := os.ReadFile(dataPath)
	switch {
	case err == nil:
		data, err := compactJSON(raw)
		if err != nil {
			return nil, oerrors.NewMalformedPanelDataError(dataPath, err)
		}
		b.Data = data
	case os.IsNotExist(err):
		output.Debug("panel data absent", "path", dataPath)
	default:
		return nil, oerrors.NewMalformedPanelDataError(dataPath, err)
	}

	output.Debug("panel loaded",
		"dir", dir,
		"script_bytes", len(b.Script),
		"style_bytes", len(b.Style),
		"data_bytes", len(b.Data),
	)

	return b, nil
}

// compactJSON validates raw as one JSON value and strips insignificant
// whitespace. Object key order is preserved.
func compactJSON(raw []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, bytes.TrimSpace(raw)); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("empty document")
	}
	return json.RawMessage(buf.Bytes()), nil
}
