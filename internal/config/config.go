// Package config provides configuration types and defaults for quill.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/quill/internal/log"
)

// DefaultConfigPath is where a fresh config is written when none is found.
const DefaultConfigPath = ".quill/config.yaml"

// DefaultLogFile is the debug log written when --debug is set.
const DefaultLogFile = "quill-debug.log"

// Config holds all configuration options for quill.
type Config struct {
	UI      UIConfig    `mapstructure:"ui"`
	Theme   ThemeConfig `mapstructure:"theme"`
	Debug   bool        `mapstructure:"debug"`
	LogFile string      `mapstructure:"log_file"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowLineNumbers bool   `mapstructure:"show_line_numbers"`
	ShowStatusBar   bool   `mapstructure:"show_status_bar"`
	ShowHelp        bool   `mapstructure:"show_help"`
	FileName        string `mapstructure:"file_name"` // display only, nothing is read or written
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base.
	// Valid values: "default", "mono", "solarized"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark rendering. Empty uses terminal detection.
	Mode string `mapstructure:"mode"`

	// Colors overrides individual color tokens, either nested
	//   colors:
	//     status:
	//       bg: "#333333"
	// or as quoted dot keys
	//   colors:
	//     "status.bg": "#333333"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns Colors flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if s, ok := mk.(string); ok {
					converted[s] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// nonStringColors lists override keys whose values are not strings.
func nonStringColors(prefix string, m map[string]any) []string {
	var bad []string
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
		case map[string]any:
			bad = append(bad, nonStringColors(key, val)...)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				converted[fmt.Sprint(mk)] = mv
			}
			bad = append(bad, nonStringColors(key, converted)...)
		default:
			bad = append(bad, key)
		}
	}
	return bad
}

// Defaults returns the configuration used when no file overrides a key.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			ShowLineNumbers: true,
			ShowStatusBar:   true,
			ShowHelp:        true,
			FileName:        "",
		},
		Theme: ThemeConfig{
			Preset: "default",
		},
		Debug:   false,
		LogFile: DefaultLogFile,
	}
}

// SetDefaults registers Defaults on v so unset keys unmarshal sensibly.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("ui.show_line_numbers", d.UI.ShowLineNumbers)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
	v.SetDefault("ui.file_name", d.UI.FileName)
	v.SetDefault("theme.preset", d.Theme.Preset)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
}

// Validate checks the configuration for values quill cannot use.
// Preset names and color tokens are checked when the theme is applied.
func Validate(cfg Config) error {
	var errs []error

	switch cfg.Theme.Mode {
	case "", "light", "dark":
	default:
		errs = append(errs, fmt.Errorf("theme.mode must be \"light\", \"dark\" or empty, got %q", cfg.Theme.Mode))
	}

	if bad := nonStringColors("", cfg.Theme.Colors); len(bad) > 0 {
		sort.Strings(bad)
		errs = append(errs, fmt.Errorf("theme.colors: values must be strings: %s", strings.Join(bad, ", ")))
	}

	if cfg.Debug && strings.TrimSpace(cfg.LogFile) == "" {
		errs = append(errs, errors.New("log_file is required when debug is enabled"))
	}

	return errors.Join(errs...)
}

// Load reads and validates the config file at path using a private viper
// instance, leaving the global one untouched.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Debug(log.CatConfig, "Loaded config", "path", path, "preset", cfg.Theme.Preset)
	return cfg, nil
}

// DefaultConfigTemplate returns the commented config written on first run.
func DefaultConfigTemplate() string {
	return `# Quill Configuration

# UI settings
ui:
  show_line_numbers: true  # Line number gutter on the left
  show_status_bar: true    # File name, position and mode at the bottom
  show_help: true          # Key hints under the status bar
  # file_name: notes.txt   # Name shown in the status bar (default: [No Name])

# Theme configuration
theme:
  # Available presets (run 'quill theme list'):
  #   default    - Dark gutter, blue insert / green normal badges
  #   mono       - No colour, reverse video only
  #   solarized  - Solarized dark palette
  preset: default
  #
  # Force light or dark rendering instead of terminal detection:
  # mode: dark
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   gutter.number: "#5C6370"
  #   mode.insert.bg: "#61AFEF"

# Write a debug log (same as --debug)
debug: false
log_file: quill-debug.log
`
}

// WriteDefaultConfig creates a config file with default settings.
// Creates parent directories if they don't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
