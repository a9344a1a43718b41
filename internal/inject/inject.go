// Package inject sequences a panel injection run against a compiled dashboard.
package inject

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openclaw-cn/panel-inject/internal/assets"
	oerrors "github.com/openclaw-cn/panel-inject/internal/errors"
	"github.com/openclaw-cn/panel-inject/internal/fsutil"
	"github.com/openclaw-cn/panel-inject/internal/marker"
	"github.com/openclaw-cn/panel-inject/internal/output"
	"github.com/openclaw-cn/panel-inject/internal/panel"
	"github.com/openclaw-cn/panel-inject/internal/patch"
)

// Block markers. These strings are matched literally and must stay
// byte-identical so that previously patched files are recognized.
const (
	ScriptMarker = "/* === OpenClaw 功能面板 === */"
	StyleMarker  = "/* === OpenClaw 功能面板样式 === */"
)

// Options configures a run.
type Options struct {
	// TargetRoot contains dist/control-ui/assets.
	TargetRoot string

	// Panel is the loaded panel bundle.
	Panel *panel.Bundle

	// Patches are applied to the main bundle in order, before block injection.
	Patches []patch.Descriptor

	// DryRun computes outcomes without writing.
	DryRun bool
}

// Run injects the panel into the asset directory under opts.TargetRoot.
//
// MissingAssetDirectory is returned before any write. MainBundleNotFound is
// returned after the stylesheet phase; stylesheet writes already performed
// are not rolled back. Missing stylesheets, a missing placeholder and
// inapplicable patches are recorded in the report and do not fail the run.
func Run(opts Options) (*Report, error) {
	if opts.Panel == nil {
		return nil, fmt.Errorf("inject: no panel bundle")
	}

	dir, err := assets.Locate(opts.TargetRoot)
	if err != nil {
		return nil, err
	}

	report := &Report{AssetDir: dir.Path, DryRun: opts.DryRun}

	script := opts.Panel.Script
	if opts.Panel.HasData() {
		var embedded bool
		script, embedded = panel.EmbedData(script, opts.Panel.Data)
		report.DataEmbedded = embedded
		if !embedded {
			output.Warn("panel data not embedded: placeholder missing in " + panel.ScriptFile)
			report.notice(NoticePlaceholderNotFound, oerrors.ErrPlaceholderNotFound,
				"panel script has no "+panel.DataStart+" region; panel data not embedded")
		}
	}

	for _, name := range dir.Stylesheets {
		res, err := upsertFile(dir.File(name), KindStylesheet, StyleMarker, opts.Panel.Style, nil, opts.DryRun)
		if err != nil {
			return report, fmt.Errorf("injecting stylesheet %s: %w", name, err)
		}
		res.Name = name
		report.Files = append(report.Files, res.FileResult)
	}

	if len(dir.Stylesheets) == 0 {
		report.StyleInlined = true
		report.notice(NoticeStyleInlined, nil, "no stylesheet found; panel CSS inlined into the script payload")
		output.Debug("no stylesheet in asset directory, inlining panel CSS")
	}
	payload := panel.ScriptPayload(script, opts.Panel.Style, report.StyleInlined)

	entry, err := assets.ResolveEntry(dir)
	if err != nil {
		return report, err
	}
	report.MainBundle = entry
	output.Debug("main bundle selected", "file", entry.Name, "source", entry.Source)

	res, err := upsertFile(dir.File(entry.Name), KindScript, ScriptMarker, payload, opts.Patches, opts.DryRun)
	if err != nil {
		return report, fmt.Errorf("injecting script %s: %w", entry.Name, err)
	}
	res.Name = entry.Name
	report.Files = append(report.Files, res.FileResult)
	report.Patches = res.patches

	for _, p := range res.patches {
		if p.Status == patch.StatusNotApplicable {
			report.notice(NoticePatchTargetNotFound, oerrors.ErrPatchTargetNotFound,
				fmt.Sprintf("patch %s@v%d not applied: target text not found in %s", p.ID, p.Version, entry.Name))
		}
	}

	return report, nil
}

type upsertResult struct {
	FileResult
	patches []patch.Result
}

// upsertFile applies patches then the marked block to one file, writing only
// when the content changes.
func upsertFile(path string, kind FileKind, mark, block string, patches []patch.Descriptor, dryRun bool) (upsertResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return upsertResult{}, err
	}
	before := string(raw)

	content, results := patch.ApplyAll(before, patches)
	next, replaced := marker.Upsert(content, mark, block)

	res := upsertResult{
		FileResult: FileResult{Kind: kind, Bytes: len(next)},
		patches:    results,
	}
	switch {
	case next == before:
		res.Outcome = OutcomeUnchanged
	case replaced:
		res.Outcome = OutcomeUpdated
	default:
		res.Outcome = OutcomeInjected
	}

	output.FileLogger(filepath.Base(path)).Debug("block computed",
		"outcome", res.Outcome,
		"bytes_before", len(before),
		"bytes_after", len(next),
	)

	if res.Outcome != OutcomeUnchanged && !dryRun {
		if err := fsutil.ReplaceFile(path, []byte(next)); err != nil {
			return res, err
		}
	}
	return res, nil
}
