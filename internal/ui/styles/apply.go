package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig with colors already flattened.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
//
// Nothing changes when an error is returned.
func ApplyTheme(cfg ThemeConfig) error {
	dark := maps.Clone(DefaultPreset.Colors)
	light := maps.Clone(DefaultPreset.Light)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s (available: %s)",
				cfg.Preset, strings.Join(PresetNames(), ", "))
		}
		maps.Copy(dark, preset.Colors)
		// A preset without light values looks the same on both backgrounds.
		light = maps.Clone(preset.Colors)
		maps.Copy(light, preset.Light)
	}

	// Overrides apply to both backgrounds.
	for _, key := range slices.Sorted(maps.Keys(cfg.Colors)) {
		value := cfg.Colors[key]
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		dark[token] = value
		light[token] = value
	}

	switch cfg.Mode {
	case "":
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	default:
		return fmt.Errorf("invalid theme mode: %s", cfg.Mode)
	}

	applyColors(dark, light)
	rebuildStyles()
	return nil
}

func applyColors(dark, light map[ColorToken]string) {
	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:     &TextPrimaryColor,
		TokenTextMuted:       &TextMutedColor,
		TokenGutterNumber:    &GutterNumberColor,
		TokenGutterCurrent:   &GutterCurrentColor,
		TokenGutterSeparator: &GutterSeparatorColor,
		TokenStatusFg:        &StatusFgColor,
		TokenStatusBg:        &StatusBgColor,
		TokenModeNormalFg:    &ModeNormalFgColor,
		TokenModeNormalBg:    &ModeNormalBgColor,
		TokenModeInsertFg:    &ModeInsertFgColor,
		TokenModeInsertBg:    &ModeInsertBgColor,
		TokenHelpKey:         &HelpKeyColor,
		TokenHelpDesc:        &HelpDescColor,
		TokenHelpSeparator:   &HelpSeparatorColor,
		TokenOverlayTitle:    &OverlayTitleColor,
		TokenOverlayBorder:   &OverlayBorderColor,
		TokenLogDebug:        &LogDebugColor,
		TokenLogInfo:         &LogInfoColor,
		TokenLogWarn:         &LogWarnColor,
		TokenLogError:        &LogErrorColor,
	}

	for token, target := range targets {
		d, ok := dark[token]
		if !ok {
			continue
		}
		l, ok := light[token]
		if !ok {
			l = d
		}
		*target = lipgloss.AdaptiveColor{Light: l, Dark: d}
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
