package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/openclaw-cn/panel-inject/internal/errors"
	"github.com/openclaw-cn/panel-inject/internal/inject"
	"github.com/openclaw-cn/panel-inject/internal/panel"
	"github.com/openclaw-cn/panel-inject/internal/testutil"
)

// isolate points HOME and the env overrides at a fresh directory so the
// developer's own configuration never leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := testutil.TempDir(t)
	t.Setenv("HOME", home)
	t.Setenv("PANEL_INJECT_CONFIG", "")
	t.Setenv("PANEL_INJECT_PANEL_DIR", "")
	t.Setenv("PANEL_INJECT_OUTPUT", "")
	return home
}

func panelSource(t *testing.T) string {
	t.Helper()
	dir := testutil.TempDir(t)
	testutil.WriteFile(t, dir, panel.ScriptFile, "var D="+panel.DataStart+"{}"+panel.DataEnd+";mount(D);")
	testutil.WriteFile(t, dir, panel.StyleFile, ".oc{color:red}")
	testutil.WriteFile(t, dir, panel.DataFile, `{ "features": [1, 2] }`)
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "panel-inject <target-root>", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
	for _, name := range []string{"panel-dir", "dry-run"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	for _, name := range []string{"config", "output", "verbose", "timestamps"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRoot_RequiresOneArgument(t *testing.T) {
	isolate(t)

	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, "a", "b")
	assert.Error(t, err)
}

func TestRoot_InjectsAndIsIdempotent(t *testing.T) {
	isolate(t)
	panelDir := panelSource(t)
	root, assetDir := testutil.AssetTree(t, map[string]string{
		"index-abc.js":  "app();",
		"index-abc.css": "body{}",
	})

	out, err := execute(t, root, "--panel-dir", panelDir, "-o", "json")
	require.NoError(t, err)

	var report inject.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "index-abc.js", report.MainBundle.Name)
	assert.True(t, report.DataEmbedded)
	require.Len(t, report.Files, 2)
	for _, f := range report.Files {
		assert.Equal(t, inject.OutcomeInjected, f.Outcome)
	}

	js := testutil.ReadFile(t, assetDir, "index-abc.js")
	assert.Contains(t, js, panel.DataStart+`{"features":[1,2]}`+panel.DataEnd)
	first := testutil.Snapshot(t, assetDir)

	out, err = execute(t, root, "--panel-dir", panelDir, "-o", "json")
	require.NoError(t, err)
	report = inject.Report{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Changed())
	if diff := cmp.Diff(first, testutil.Snapshot(t, assetDir)); diff != "" {
		t.Errorf("second run changed files (-first +second):\n%s", diff)
	}
}

func TestRoot_TextReport(t *testing.T) {
	isolate(t)
	panelDir := panelSource(t)
	root, _ := testutil.AssetTree(t, map[string]string{"main.js": "app();"})

	out, err := execute(t, root, "--panel-dir", panelDir)
	require.NoError(t, err)

	assert.Contains(t, out, "main.js")
	assert.Contains(t, out, "style-inlined")
	assert.Contains(t, out, "panel injected")
}

func TestRoot_PanelDirFromEnvAndConfig(t *testing.T) {
	home := isolate(t)
	panelDir := panelSource(t)
	root, assetDir := testutil.AssetTree(t, map[string]string{"index.js": ""})

	t.Run("config file", func(t *testing.T) {
		cfg := testutil.WriteFile(t, home, "cfg.yaml", "panelDir: "+panelDir+"\noutput: yaml\n")
		out, err := execute(t, root, "--config", cfg)
		require.NoError(t, err)
		assert.Contains(t, out, "mainBundle:")
		assert.Contains(t, testutil.ReadFile(t, assetDir, "index.js"), "mount(D)")
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("PANEL_INJECT_PANEL_DIR", panelDir)
		_, err := execute(t, root, "--dry-run")
		require.NoError(t, err)
	})
}

func TestRoot_MissingAssetDirectory(t *testing.T) {
	isolate(t)
	panelDir := panelSource(t)
	root := testutil.TempDir(t)

	_, err := execute(t, root, "--panel-dir", panelDir)
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitGeneralError, exitErr.Code)
	assert.True(t, exitErr.Printed)
	assert.ErrorIs(t, err, oerrors.ErrMissingAssetDirectory)
}

func TestRoot_MainBundleNotFound(t *testing.T) {
	isolate(t)
	panelDir := panelSource(t)
	root, _ := testutil.AssetTree(t, map[string]string{"chunk-1.js": ""})

	_, err := execute(t, root, "--panel-dir", panelDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrMainBundleNotFound)
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}

func TestRoot_MalformedPanelData(t *testing.T) {
	isolate(t)
	panelDir := panelSource(t)
	testutil.WriteFile(t, panelDir, panel.DataFile, "{not json")
	root, assetDir := testutil.AssetTree(t, map[string]string{"index.js": "app();"})

	_, err := execute(t, root, "--panel-dir", panelDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrMalformedPanelData)
	assert.Equal(t, "app();", testutil.ReadFile(t, assetDir, "index.js"))
}

func TestRoot_InvalidOutputFormat(t *testing.T) {
	isolate(t)
	panelDir := panelSource(t)
	root, _ := testutil.AssetTree(t, map[string]string{"index.js": ""})

	_, err := execute(t, root, "--panel-dir", panelDir, "-o", "xml")
	assert.Error(t, err)
}

func TestConfigInitAndVet(t *testing.T) {
	home := isolate(t)
	cfgPath := filepath.Join(home, "nested", "config.yaml")

	_, err := execute(t, "config", "vet", "--config", cfgPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	_, err = execute(t, "config", "init", "--config", cfgPath)
	require.NoError(t, err)

	info, err := os.Stat(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	assert.Contains(t, testutil.ReadFile(t, filepath.Dir(cfgPath), "config.yaml"), "panelDir: translations/panel")

	_, err = execute(t, "config", "vet", "--config", cfgPath)
	assert.NoError(t, err)

	_, err = execute(t, "config", "init", "--config", cfgPath)
	assert.Error(t, err, "existing config without --force")

	_, err = execute(t, "config", "init", "--config", cfgPath, "--force")
	assert.NoError(t, err)
}

func TestConfigVet_InvalidFile(t *testing.T) {
	home := isolate(t)
	cfg := testutil.WriteFile(t, home, "config.yaml", "output: xml\n")

	_, err := execute(t, "config", "vet", "--config", cfg)
	assert.Error(t, err)
}

func TestPatchesCmd(t *testing.T) {
	isolate(t)

	out, err := execute(t, "patches")
	require.NoError(t, err)
	assert.Contains(t, out, "i18n-initial-locale-load")
	assert.Contains(t, out, "v1")
}
