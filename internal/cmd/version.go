package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openclaw-cn/panel-inject/internal/output"
	"github.com/openclaw-cn/panel-inject/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show panel-inject version information.

Displays:
  - panel-inject version, commit, and build date
  - Go and CUE SDK versions`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	output.Println(version.Get().String())
	return nil
}
