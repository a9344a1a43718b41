package config

import (
	"os"

	"github.com/openclaw-cn/panel-inject/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one setting after precedence has been applied.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions holds the candidate values for one setting.
type ResolveOptions struct {
	Key         string
	FlagValue   string
	EnvVar      string
	ConfigValue string
	Default     string
}

// Resolve applies the precedence flag > env > config > default.
// Empty candidates are treated as unset.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue string
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.Default},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) PANEL_INJECT_CONFIG env, (3) ~/.panel-inject/config.yaml
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return Resolve(ResolveOptions{
		Key:       "config",
		FlagValue: flagValue,
		EnvVar:    EnvConfig,
		Default:   paths.ConfigFile,
	}), nil
}

// ResolvePanelDir resolves the panel source directory using precedence:
// (1) --panel-dir flag, (2) PANEL_INJECT_PANEL_DIR env, (3) config.panelDir,
// (4) translations/panel
func ResolvePanelDir(flagValue string, file *Config) ResolvedValue {
	return Resolve(ResolveOptions{
		Key:         "panelDir",
		FlagValue:   flagValue,
		EnvVar:      EnvPanelDir,
		ConfigValue: fileValue(file, func(c *Config) string { return c.PanelDir }),
		Default:     DefaultPanelDir,
	})
}

// ResolveOutput resolves the report format using precedence:
// (1) --output flag, (2) PANEL_INJECT_OUTPUT env, (3) config.output, (4) text
func ResolveOutput(flagValue string, file *Config) ResolvedValue {
	return Resolve(ResolveOptions{
		Key:         "output",
		FlagValue:   flagValue,
		EnvVar:      EnvOutput,
		ConfigValue: fileValue(file, func(c *Config) string { return c.Output }),
		Default:     DefaultOutput,
	})
}

func fileValue(file *Config, get func(*Config) string) string {
	if file == nil {
		return ""
	}
	return get(file)
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
