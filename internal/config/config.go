// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the panel-inject configuration.
// Loaded from ~/.panel-inject/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// PanelDir is the directory holding feature-panel.js, feature-panel.css
	// and the optional panel-data.json.
	// Env: PANEL_INJECT_PANEL_DIR, Default: translations/panel
	PanelDir string `json:"panelDir,omitempty" yaml:"panelDir,omitempty" mapstructure:"panelDir"`

	// Output is the report format: text, json or yaml.
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultPanelDir is the panel source directory relative to the working directory.
const DefaultPanelDir = "translations/panel"

// DefaultOutput is the default report format.
const DefaultOutput = "text"

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		PanelDir: DefaultPanelDir,
		Output:   DefaultOutput,
	}
}

// WithDefaults returns a copy of c with unset fields taken from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.PanelDir == "" {
		out.PanelDir = def.PanelDir
	}
	if out.Output == "" {
		out.Output = def.Output
	}
	return &out
}
