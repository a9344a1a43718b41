// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/panel-inject/internal/cmdutil"
	"github.com/openclaw-cn/panel-inject/internal/config"
	oerrors "github.com/openclaw-cn/panel-inject/internal/errors"
	"github.com/openclaw-cn/panel-inject/internal/inject"
	"github.com/openclaw-cn/panel-inject/internal/output"
	"github.com/openclaw-cn/panel-inject/internal/panel"
	"github.com/openclaw-cn/panel-inject/internal/patch"
	"github.com/openclaw-cn/panel-inject/internal/watch"
)

var (
	// Global flags
	configFlag       string
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool

	injectFlags cmdutil.InjectFlags

	// Loaded during PersistentPreRunE
	fileConfig    *config.Config
	configPath    config.ResolvedValue
	configLoadErr error
)

// NewRootCmd creates the root command. The root command itself performs the
// injection; subcommands cover configuration and build information.
func NewRootCmd() *cobra.Command {
	injectFlags = cmdutil.InjectFlags{}

	rootCmd := &cobra.Command{
		Use:   "panel-inject <target-root>",
		Short: "Inject the feature panel into a built dashboard",
		Long: `Inject the feature panel into an already-built dashboard.

The panel script, stylesheet and optional data file are read from the panel
directory and merged into <target-root>/dist/control-ui/assets:

  - every stylesheet receives the panel CSS in a marked block
  - the main script bundle receives the panel script in a marked block,
    with the CSS inlined when the build has no stylesheet
  - known defects in the main bundle are patched first

Runs are idempotent: a second run with the same panel changes nothing.

Examples:
  # Inject into a checkout with a built dashboard
  panel-inject /srv/openclaw

  # Show what would change
  panel-inject /srv/openclaw --dry-run -o yaml

  # Re-inject on every save while developing the panel
  panel-inject /srv/openclaw --panel-dir ./panel --watch`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runInject,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: PANEL_INJECT_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Report format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	injectFlags.AddTo(rootCmd)

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewPatchesCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	fileConfig = &config.Config{}
	configLoadErr = nil

	resolved, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}
	configPath = resolved

	loader := config.NewLoader()
	if _, err := loader.Load(configPath.Value); err != nil {
		// Commands that do not need config still work; runInject reports it.
		configLoadErr = err
	} else {
		fileConfig = loader.FileConfig()
	}

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if fileConfig.Log.Timestamps != nil {
		logCfg.Timestamps = fileConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if configLoadErr != nil {
		output.Debug("config load error", "path", configPath.Value, "error", configLoadErr)
	}

	return nil
}

func runInject(cmd *cobra.Command, args []string) error {
	if configLoadErr != nil {
		return cmdutil.PrintFatal("loading configuration", &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  configLoadErr.Error(),
			Location: configPath.Value,
			Hint:     "Run 'panel-inject config vet' to check the file.",
			Cause:    configLoadErr,
		})
	}

	panelDir := config.ResolvePanelDir(injectFlags.PanelDir, fileConfig)
	outputRes := config.ResolveOutput(outputFormatFlag, fileConfig)
	config.LogResolvedValues([]config.ResolvedValue{configPath, panelDir, outputRes})

	format, ok := output.ParseFormat(outputRes.Value)
	if !ok {
		return cmdutil.PrintFatal("invalid output format", &oerrors.ExitError{
			Err:  fmt.Errorf("unsupported output format %q (valid: %v)", outputRes.Value, output.ValidFormats()),
			Code: oerrors.ExitGeneralError,
		})
	}

	report, err := injectOnce(args[0], panelDir.Value)
	if err != nil {
		if report != nil && len(report.Files) > 0 && !report.DryRun {
			output.Warn("run stopped after writing stylesheets", "files", len(report.Files))
		}
		return cmdutil.PrintFatal("injection failed", err)
	}

	if err := cmdutil.WriteReport(cmd.OutOrStdout(), report, format); err != nil {
		return cmdutil.PrintFatal("writing report", err)
	}

	if !injectFlags.Watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = watch.Run(ctx, watch.Options{
		Dir:   panelDir.Value,
		Names: []string{panel.ScriptFile, panel.StyleFile, panel.DataFile},
		OnChange: func() error {
			report, err := injectOnce(args[0], panelDir.Value)
			if err != nil {
				return err
			}
			return cmdutil.WriteReport(cmd.OutOrStdout(), report, format)
		},
	})
	if err != nil {
		return cmdutil.PrintFatal("watching panel sources", err)
	}
	return nil
}

// injectOnce loads the panel and the patch registry and performs one run.
func injectOnce(targetRoot, panelDir string) (*inject.Report, error) {
	bundle, err := panel.Load(panelDir)
	if err != nil {
		return nil, err
	}

	patches, err := patch.Registry()
	if err != nil {
		return nil, fmt.Errorf("loading patch registry: %w", err)
	}

	return inject.Run(inject.Options{
		TargetRoot: targetRoot,
		Panel:      bundle,
		Patches:    patches,
		DryRun:     injectFlags.DryRun,
	})
}
