package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/quill/internal/app"
	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the buffer.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
	// cfgErr holds a config read/decode failure for runApp to report.
	cfgErr error
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "A minimal modal text editor for the terminal",
	Long: `A minimal modal text editor for the terminal.

Starts in NORMAL mode: h/j/k/l or the arrow keys move, i enters INSERT mode,
ctrl+q quits. In INSERT mode printable keys are inserted, enter splits the
line, backspace deletes or joins lines and esc returns to NORMAL mode.

The buffer lives in memory only. Nothing is read from or written to disk.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .quill/config.yaml, then ~/.config/quill/config.yaml)")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log and enable the ctrl+x log overlay (env: QUILL_DEBUG)")
	rootCmd.Flags().String("log-file", config.DefaultLogFile,
		"debug log path")
	rootCmd.Flags().StringArray("seed", nil,
		"pre-fill the buffer with this line (repeatable, one line per flag)")
	rootCmd.Flags().Bool("no-watch", false,
		"do not reload the config file when it changes")
}

// seedLines returns the --seed values verbatim; commas do not split lines.
func seedLines(cmd *cobra.Command) []string {
	lines, _ := cmd.Flags().GetStringArray("seed")
	return lines
}

func initConfig() {
	viper.Reset()
	config.SetDefaults(viper.GetViper())

	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
	_ = viper.BindPFlag("log_file", rootCmd.Flags().Lookup("log-file"))
	_ = viper.BindEnv("debug", "QUILL_DEBUG")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .quill/config.yaml (current directory)
		// 2. ~/.config/quill/config.yaml (user config)
		if _, err := os.Stat(config.DefaultConfigPath); err == nil {
			viper.SetConfigFile(config.DefaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "quill"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	cfgErr = nil
	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .quill/config.yaml
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(config.DefaultConfigPath); writeErr == nil {
				viper.SetConfigFile(config.DefaultConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		} else {
			cfgErr = fmt.Errorf("reading config: %w", err)
		}
	}

	cfg = config.Config{}
	if err := viper.Unmarshal(&cfg); err != nil && cfgErr == nil {
		cfgErr = fmt.Errorf("decoding config: %w", err)
	}
}

// configPath is the file theme changes are saved to and reloads are read from.
func configPath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return config.DefaultConfigPath
}

func runApp(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		cleanup, err := log.InitWithTeaLog(cfg.LogFile, "quill")
		if err != nil {
			return err
		}
		defer cleanup()
		log.Info(log.CatConfig, "Starting", "version", version, "config", viper.ConfigFileUsed())
	}

	if err := applyTheme(cfg.Theme); err != nil {
		return err
	}

	noWatch, _ := cmd.Flags().GetBool("no-watch")

	model := app.New(app.Options{
		Config:      cfg,
		ConfigPath:  viper.ConfigFileUsed(),
		WatchConfig: !noWatch,
		Lines:       seedLines(cmd),
		Debug:       cfg.Debug,
	})
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func applyTheme(theme config.ThemeConfig) error {
	err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: theme.Preset,
		Mode:   theme.Mode,
		Colors: theme.FlattenedColors(),
	})
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
