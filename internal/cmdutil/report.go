package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/openclaw-cn/panel-inject/internal/inject"
	"github.com/openclaw-cn/panel-inject/internal/output"
)

// WriteReport renders a run report to w in the given format.
func WriteReport(w io.Writer, r *inject.Report, format output.OutputFormat) error {
	switch format {
	case output.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, r)
	}
}

func writeText(w io.Writer, r *inject.Report) error {
	for _, f := range r.Files {
		if _, err := fmt.Fprintln(w, output.FormatFileLine(string(f.Kind), f.Name, string(f.Outcome), r.DryRun)); err != nil {
			return err
		}
	}
	for _, p := range r.Patches {
		if _, err := fmt.Fprintln(w, output.FormatPatchLine(p.ID, p.Version, string(p.Status))); err != nil {
			return err
		}
	}
	for _, n := range r.Notices {
		if _, err := fmt.Fprintln(w, output.FormatNotice(string(n.Code), n.Message)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, output.FormatCheckmark(Summary(r)))
	return err
}

// Summary returns the one-line completion message for a report.
func Summary(r *inject.Report) string {
	switch {
	case r.DryRun:
		return fmt.Sprintf("dry run: %d of %d file(s) would change", r.ChangedFiles(), len(r.Files))
	case !r.Changed():
		return "panel already up to date"
	default:
		return fmt.Sprintf("panel injected: %d of %d file(s) changed", r.ChangedFiles(), len(r.Files))
	}
}
