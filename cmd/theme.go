package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/ui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List or select color themes",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in theme presets",
	Long: `List the built-in theme presets. The active preset is marked with *.

Examples:
  quill theme list
  quill theme list --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range styles.PresetNames() {
			marker := " "
			if name == cfg.Theme.Preset {
				marker = "*"
			}
			if _, err := fmt.Fprintf(out, "%s %-10s %s\n", marker, name, styles.Presets[name].Description); err != nil {
				return err
			}
		}
		return nil
	},
}

var themeMode string

var themeSetCmd = &cobra.Command{
	Use:   "set <preset>",
	Short: "Save a theme preset to the config file",
	Long: `Save a theme preset to the config file. Comments and other keys in the
file are kept. A running editor picks the change up without restarting.

Examples:
  quill theme set solarized
  quill theme set mono --mode light`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: styles.PresetNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset := args[0]
		if _, ok := styles.Presets[preset]; !ok {
			return fmt.Errorf("unknown theme preset: %s (available: %s)",
				preset, strings.Join(styles.PresetNames(), ", "))
		}

		theme := config.ThemeConfig{Preset: preset, Mode: themeMode}
		if err := config.Validate(config.Config{Theme: theme}); err != nil {
			return err
		}

		path := configPath()
		if err := config.SaveTheme(path, theme); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Saved theme %q to %s\n", preset, path)
		return err
	},
}

func init() {
	themeSetCmd.Flags().StringVar(&themeMode, "mode", "", `force "light" or "dark" rendering`)
	themeCmd.AddCommand(themeListCmd, themeSetCmd)
	rootCmd.AddCommand(themeCmd)
}
