package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/quill/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		cfgFile = ""
		themeMode = ""
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// ============================================================================
// Config loading
// ============================================================================

func TestInitConfig_ReadsFile(t *testing.T) {
	cfgFile = writeConfig(t, "ui:\n  show_help: false\n  file_name: notes.txt\ntheme:\n  preset: mono\n")
	t.Cleanup(func() { cfgFile = "" })

	initConfig()

	require.NoError(t, cfgErr)
	require.False(t, cfg.UI.ShowHelp)
	require.True(t, cfg.UI.ShowLineNumbers)
	require.Equal(t, "notes.txt", cfg.UI.FileName)
	require.Equal(t, "mono", cfg.Theme.Preset)
	require.Equal(t, config.DefaultLogFile, cfg.LogFile)
	require.Equal(t, cfgFile, configPath())
}

func TestInitConfig_DebugFromEnv(t *testing.T) {
	cfgFile = writeConfig(t, "debug: false\n")
	t.Cleanup(func() { cfgFile = "" })
	t.Setenv("QUILL_DEBUG", "true")

	initConfig()

	require.NoError(t, cfgErr)
	require.True(t, cfg.Debug)
}

func TestInitConfig_BrokenFileIsReported(t *testing.T) {
	cfgFile = writeConfig(t, "ui: [unclosed\n")
	t.Cleanup(func() { cfgFile = "" })

	initConfig()

	require.Error(t, cfgErr)
	require.ErrorContains(t, runApp(rootCmd, nil), "reading config")
}

func TestRunApp_RejectsInvalidConfig(t *testing.T) {
	cfgFile = writeConfig(t, "theme:\n  mode: sepia\n")
	t.Cleanup(func() { cfgFile = "" })

	initConfig()

	require.ErrorContains(t, runApp(rootCmd, nil), "invalid configuration")
}

func TestRunApp_RejectsUnknownPreset(t *testing.T) {
	cfgFile = writeConfig(t, "theme:\n  preset: nope\n")
	t.Cleanup(func() { cfgFile = "" })

	initConfig()

	err := runApp(rootCmd, nil)
	require.ErrorContains(t, err, "invalid theme")
	require.ErrorContains(t, err, "unknown theme preset: nope")
}

// ============================================================================
// theme command
// ============================================================================

func TestThemeList_MarksActivePreset(t *testing.T) {
	path := writeConfig(t, "theme:\n  preset: mono\n")

	out, err := execute(t, "theme", "list", "--config", path)

	require.NoError(t, err)
	require.Contains(t, out, "* mono")
	require.Contains(t, out, "  default")
	require.Contains(t, out, "  solarized")
}

func TestThemeSet_SavesPreset(t *testing.T) {
	path := writeConfig(t, "# keep me\ntheme:\n  preset: default\n")

	out, err := execute(t, "theme", "set", "solarized", "--config", path)

	require.NoError(t, err)
	require.Contains(t, out, `Saved theme "solarized"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# keep me")

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "solarized", loaded.Theme.Preset)
}

func TestThemeSet_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown preset", []string{"theme", "set", "bogus"}, "unknown theme preset: bogus"},
		{"bad mode", []string{"theme", "set", "mono", "--mode", "sepia"}, "theme.mode"},
		{"missing preset", []string{"theme", "set"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "theme:\n  preset: default\n")

			_, err := execute(t, append(tt.args, "--config", path)...)

			require.ErrorContains(t, err, tt.want)

			loaded, loadErr := config.Load(path)
			require.NoError(t, loadErr)
			require.Equal(t, "default", loaded.Theme.Preset)
		})
	}
}

func TestKeys_PrintsReference(t *testing.T) {
	path := writeConfig(t, "debug: false\n")

	out, err := execute(t, "keys", "--style", "notty", "--config", path)

	require.NoError(t, err)
	require.Contains(t, out, "NORMAL mode")
	require.Contains(t, out, "insert.split_line")
}

// ============================================================================
// Flags
// ============================================================================

func TestSeedLines_KeepsCommas(t *testing.T) {
	t.Cleanup(func() {
		seed := rootCmd.Flags().Lookup("seed")
		_ = seed.Value.(pflag.SliceValue).Replace(nil)
		seed.Changed = false
	})

	require.NoError(t, rootCmd.ParseFlags([]string{"--seed", "a, b", "--seed", "c"}))

	require.Equal(t, []string{"a, b", "c"}, seedLines(rootCmd))
}
