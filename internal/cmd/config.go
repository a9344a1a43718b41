package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openclaw-cn/panel-inject/internal/cmdutil"
	"github.com/openclaw-cn/panel-inject/internal/config"
	oerrors "github.com/openclaw-cn/panel-inject/internal/errors"
	"github.com/openclaw-cn/panel-inject/internal/fsutil"
	"github.com/openclaw-cn/panel-inject/internal/output"
)

var configInitForce bool

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for panel-inject.`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a configuration file holding the default values.

The file is written to the resolved config path:
  --config flag > PANEL_INJECT_CONFIG env > ~/.panel-inject/config.yaml

Examples:
  # Initialize configuration
  panel-inject config init

  # Overwrite existing configuration
  panel-inject config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.ExpandPath(configPath.Value)
	if err != nil {
		return cmdutil.PrintFatal("resolving config path", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.PrintFatal("checking config file", err)
	}
	if exists && !configInitForce {
		return cmdutil.PrintFatal("config init", &oerrors.DetailError{
			Type:     "already exists",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
		})
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return cmdutil.PrintFatal("encoding default configuration", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return cmdutil.PrintFatal("creating config directory", err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o600); err != nil {
		return cmdutil.PrintFatal("writing configuration", err)
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + path))
	return nil
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the panel-inject configuration file against its schema.

Unknown keys, unsupported output formats and blank paths are reported.

The config path is resolved using precedence:
  --config flag > PANEL_INJECT_CONFIG env > ~/.panel-inject/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	path, err := config.ExpandPath(configPath.Value)
	if err != nil {
		return cmdutil.PrintFatal("resolving config path", err)
	}

	output.Debug("validating config", "path", path, "source", configPath.Source)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cmdutil.PrintFatal("config vet", oerrors.NewNotFoundError(
			"configuration file not found", path,
			"Run 'panel-inject config init' to create default configuration."))
	}

	validator, err := config.NewValidator()
	if err != nil {
		return cmdutil.PrintFatal("loading config schema", err)
	}
	if err := validator.ValidateFile(path); err != nil {
		return cmdutil.PrintFatal("config vet", &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  err.Error(),
			Location: path,
			Cause:    err,
		})
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + path))
	return nil
}
