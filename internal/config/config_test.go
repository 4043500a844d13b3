package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	d := Defaults()

	require.True(t, d.UI.ShowLineNumbers)
	require.True(t, d.UI.ShowStatusBar)
	require.True(t, d.UI.ShowHelp)
	require.Empty(t, d.UI.FileName)
	require.Equal(t, "default", d.Theme.Preset)
	require.False(t, d.Debug)
	require.Equal(t, DefaultLogFile, d.LogFile)
	require.NoError(t, Validate(d))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"dark mode", func(c *Config) { c.Theme.Mode = "dark" }, ""},
		{"light mode", func(c *Config) { c.Theme.Mode = "light" }, ""},
		{"bad mode", func(c *Config) { c.Theme.Mode = "dim" }, `theme.mode must be "light", "dark" or empty, got "dim"`},
		{"nested string colors", func(c *Config) {
			c.Theme.Colors = map[string]any{"gutter": map[string]any{"number": "#FFFFFF"}}
		}, ""},
		{"non string color", func(c *Config) {
			c.Theme.Colors = map[string]any{"status": map[string]any{"bg": 42}, "cursor": true}
		}, "theme.colors: values must be strings: cursor, status.bg"},
		{"debug without log file", func(c *Config) {
			c.Debug = true
			c.LogFile = " "
		}, "log_file is required when debug is enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_JoinsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.Theme.Mode = "sepia"
	cfg.Debug = true
	cfg.LogFile = ""

	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "theme.mode")
	require.Contains(t, err.Error(), "log_file")
}

func TestFlattenedColors(t *testing.T) {
	theme := ThemeConfig{Colors: map[string]any{
		"gutter": map[string]any{
			"number": "#111111",
			"sep":    "#222222",
		},
		"mode.insert.bg": "#333333",
		"legacy":         map[any]any{"key": "#444444"},
		"ignored":        12,
	}}

	require.Equal(t, map[string]string{
		"gutter.number":  "#111111",
		"gutter.sep":     "#222222",
		"mode.insert.bg": "#333333",
		"legacy.key":     "#444444",
	}, theme.FlattenedColors())
}

func TestLoad_AppliesDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
ui:
  show_help: false
theme:
  preset: mono
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.False(t, cfg.UI.ShowHelp)
	require.True(t, cfg.UI.ShowLineNumbers)
	require.True(t, cfg.UI.ShowStatusBar)
	require.Equal(t, "mono", cfg.Theme.Preset)
	require.Equal(t, DefaultLogFile, cfg.LogFile)
}

func TestLoad_ColorOverrides(t *testing.T) {
	path := writeConfig(t, `
theme:
  colors:
    gutter:
      number: "#5C6370"
    mode:
      insert:
        bg: "#61AFEF"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, map[string]string{
		"gutter.number":  "#5C6370",
		"mode.insert.bg": "#61AFEF",
	}, cfg.Theme.FlattenedColors())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "reading config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "ui: [unterminated"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "reading config")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "theme:\n  mode: neon\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid config")
		require.Contains(t, err.Error(), "theme.mode")
	})
}

func TestWriteDefaultConfig_LoadsAsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".quill", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestWriteDefaultConfig_FailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := WriteDefaultConfig(filepath.Join(blocker, "config.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "creating config directory")
}
