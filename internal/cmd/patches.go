package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openclaw-cn/panel-inject/internal/cmdutil"
	"github.com/openclaw-cn/panel-inject/internal/output"
	"github.com/openclaw-cn/panel-inject/internal/patch"
)

// NewPatchesCmd creates the patches command.
func NewPatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patches",
		Short: "List built-in bundle patches",
		Long: `List the patches applied to the main script bundle, in application order.

A patch is applied only when its target text is found verbatim in the bundle.`,
		Args: cobra.NoArgs,
		RunE: runPatches,
	}
}

func runPatches(cmd *cobra.Command, args []string) error {
	patches, err := patch.Registry()
	if err != nil {
		return cmdutil.PrintFatal("loading patch registry", err)
	}

	rows := make([]output.PatchRow, 0, len(patches))
	for _, p := range patches {
		rows = append(rows, output.PatchRow{ID: p.ID, Version: p.Version, Description: p.Description})
	}

	_, err = cmd.OutOrStdout().Write([]byte(output.RenderPatchTable(rows) + "\n"))
	return err
}
