// Package cmdutil provides shared command utilities: flag groups, report
// rendering and fatal error printing.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// InjectFlags holds the flags of the injection command.
type InjectFlags struct {
	PanelDir string
	DryRun   bool
	Watch    bool
}

// AddTo registers the injection flags on the given cobra command.
func (f *InjectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.PanelDir, "panel-dir", "",
		"Panel source directory (env: PANEL_INJECT_PANEL_DIR, default: translations/panel)")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Compute and report changes without writing any file")
	cmd.Flags().BoolVar(&f.Watch, "watch", false,
		"Keep running and re-inject whenever the panel sources change")
}
