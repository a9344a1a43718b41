package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("flag wins and shadows the rest", func(t *testing.T) {
		t.Setenv("PANEL_INJECT_TEST_VALUE", "from-env")

		got := Resolve(ResolveOptions{
			Key:         "k",
			FlagValue:   "from-flag",
			EnvVar:      "PANEL_INJECT_TEST_VALUE",
			ConfigValue: "from-config",
			Default:     "from-default",
		})

		assert.Equal(t, "from-flag", got.Value)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, map[ConfigSource]string{
			SourceEnv:     "from-env",
			SourceConfig:  "from-config",
			SourceDefault: "from-default",
		}, got.Shadowed)
	})

	t.Run("env over config", func(t *testing.T) {
		t.Setenv("PANEL_INJECT_TEST_VALUE", "from-env")

		got := Resolve(ResolveOptions{
			EnvVar:      "PANEL_INJECT_TEST_VALUE",
			ConfigValue: "from-config",
		})

		assert.Equal(t, "from-env", got.Value)
		assert.Equal(t, SourceEnv, got.Source)
		assert.Equal(t, "from-config", got.Shadowed[SourceConfig])
	})

	t.Run("config over default", func(t *testing.T) {
		got := Resolve(ResolveOptions{ConfigValue: "c", Default: "d"})
		assert.Equal(t, "c", got.Value)
		assert.Equal(t, SourceConfig, got.Source)
	})

	t.Run("default when nothing set", func(t *testing.T) {
		got := Resolve(ResolveOptions{Default: "d"})
		assert.Equal(t, "d", got.Value)
		assert.Equal(t, SourceDefault, got.Source)
		assert.Empty(t, got.Shadowed)
	})

	t.Run("nothing at all", func(t *testing.T) {
		got := Resolve(ResolveOptions{})
		assert.Empty(t, got.Value)
		assert.Empty(t, got.Source)
	})
}

func TestResolvePanelDir(t *testing.T) {
	t.Setenv(EnvPanelDir, "")

	got := ResolvePanelDir("", nil)
	assert.Equal(t, DefaultPanelDir, got.Value)
	assert.Equal(t, SourceDefault, got.Source)

	got = ResolvePanelDir("", &Config{PanelDir: "/cfg"})
	assert.Equal(t, "/cfg", got.Value)
	assert.Equal(t, SourceConfig, got.Source)

	t.Setenv(EnvPanelDir, "/env")
	got = ResolvePanelDir("", &Config{PanelDir: "/cfg"})
	assert.Equal(t, "/env", got.Value)

	got = ResolvePanelDir("/flag", &Config{PanelDir: "/cfg"})
	assert.Equal(t, "/flag", got.Value)
	assert.Equal(t, SourceFlag, got.Source)
}

func TestResolveOutput(t *testing.T) {
	t.Setenv(EnvOutput, "")

	got := ResolveOutput("", &Config{Output: "yaml"})
	assert.Equal(t, "yaml", got.Value)
	assert.Equal(t, SourceConfig, got.Source)

	got = ResolveOutput("json", &Config{Output: "yaml"})
	assert.Equal(t, "json", got.Value)
	assert.Equal(t, "yaml", got.Shadowed[SourceConfig])
	assert.Equal(t, DefaultOutput, got.Shadowed[SourceDefault])
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(EnvConfig, "")

	got, err := ResolveConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, got.Source)

	t.Setenv(EnvConfig, "/env/config.yaml")
	got, err = ResolveConfigPath("/flag/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/flag/config.yaml", got.Value)
	assert.Equal(t, SourceFlag, got.Source)
	assert.Equal(t, "/env/config.yaml", got.Shadowed[SourceEnv])
}
