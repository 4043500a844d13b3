package styles

import (
	"maps"
	"slices"
)

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	// Colors are used on dark terminals, and on light ones unless Light
	// overrides the token.
	Colors map[ColorToken]string
	Light  map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":   DefaultPreset,
	"mono":      MonoPreset,
	"solarized": SolarizedPreset,
}

// PresetNames returns the preset names sorted alphabetically.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

// DefaultPreset is the stock quill palette.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Dark gutter, blue insert / green normal badges",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextMuted:       "#696969",
		TokenGutterNumber:    "#5C6370",
		TokenGutterCurrent:   "#E5C07B",
		TokenGutterSeparator: "#3E4451",
		TokenStatusFg:        "#ABB2BF",
		TokenStatusBg:        "#2C313A",
		TokenModeNormalFg:    "#282C34",
		TokenModeNormalBg:    "#98C379",
		TokenModeInsertFg:    "#282C34",
		TokenModeInsertBg:    "#61AFEF",
		TokenHelpKey:         "#ABB2BF",
		TokenHelpDesc:        "#696969",
		TokenHelpSeparator:   "#3E4451",
		TokenOverlayTitle:    "#C9C9C9",
		TokenOverlayBorder:   "#8C8C8C",
		TokenLogDebug:        "#696969",
		TokenLogInfo:         "#54A0FF",
		TokenLogWarn:         "#FECA57",
		TokenLogError:        "#FF8787",
	},
	Light: map[ColorToken]string{
		TokenTextPrimary:     "#1F2328",
		TokenTextMuted:       "#8C959F",
		TokenGutterNumber:    "#8C959F",
		TokenGutterCurrent:   "#1F2328",
		TokenGutterSeparator: "#D0D7DE",
		TokenStatusFg:        "#1F2328",
		TokenStatusBg:        "#EAEEF2",
		TokenModeNormalFg:    "#FFFFFF",
		TokenModeNormalBg:    "#1A7F37",
		TokenModeInsertFg:    "#FFFFFF",
		TokenModeInsertBg:    "#0969DA",
		TokenHelpKey:         "#57606A",
		TokenHelpDesc:        "#8C959F",
		TokenHelpSeparator:   "#D0D7DE",
		TokenOverlayTitle:    "#1F2328",
		TokenOverlayBorder:   "#8C959F",
		TokenLogDebug:        "#8C959F",
		TokenLogInfo:         "#0969DA",
		TokenLogWarn:         "#9A6700",
		TokenLogError:        "#CF222E",
	},
}

// MonoPreset uses only greys; the mode badges differ by shade.
var MonoPreset = Preset{
	Name:        "mono",
	Description: "No colour, reverse video only",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#D0D0D0",
		TokenTextMuted:       "#808080",
		TokenGutterNumber:    "#808080",
		TokenGutterCurrent:   "#FFFFFF",
		TokenGutterSeparator: "#585858",
		TokenStatusFg:        "#000000",
		TokenStatusBg:        "#D0D0D0",
		TokenModeNormalFg:    "#FFFFFF",
		TokenModeNormalBg:    "#444444",
		TokenModeInsertFg:    "#000000",
		TokenModeInsertBg:    "#FFFFFF",
		TokenHelpKey:         "#D0D0D0",
		TokenHelpDesc:        "#808080",
		TokenHelpSeparator:   "#585858",
		TokenOverlayTitle:    "#FFFFFF",
		TokenOverlayBorder:   "#808080",
		TokenLogDebug:        "#808080",
		TokenLogInfo:         "#D0D0D0",
		TokenLogWarn:         "#FFFFFF",
		TokenLogError:        "#FFFFFF",
	},
}

// SolarizedPreset follows the Solarized dark palette.
var SolarizedPreset = Preset{
	Name:        "solarized",
	Description: "Solarized dark palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#839496",
		TokenTextMuted:       "#586E75",
		TokenGutterNumber:    "#586E75",
		TokenGutterCurrent:   "#B58900",
		TokenGutterSeparator: "#073642",
		TokenStatusFg:        "#93A1A1",
		TokenStatusBg:        "#073642",
		TokenModeNormalFg:    "#002B36",
		TokenModeNormalBg:    "#859900",
		TokenModeInsertFg:    "#002B36",
		TokenModeInsertBg:    "#268BD2",
		TokenHelpKey:         "#93A1A1",
		TokenHelpDesc:        "#586E75",
		TokenHelpSeparator:   "#073642",
		TokenOverlayTitle:    "#EEE8D5",
		TokenOverlayBorder:   "#586E75",
		TokenLogDebug:        "#586E75",
		TokenLogInfo:         "#268BD2",
		TokenLogWarn:         "#B58900",
		TokenLogError:        "#DC322F",
	},
	Light: map[ColorToken]string{
		TokenTextPrimary:     "#657B83",
		TokenTextMuted:       "#93A1A1",
		TokenGutterNumber:    "#93A1A1",
		TokenGutterSeparator: "#EEE8D5",
		TokenStatusFg:        "#586E75",
		TokenStatusBg:        "#EEE8D5",
		TokenModeNormalFg:    "#FDF6E3",
		TokenModeInsertFg:    "#FDF6E3",
		TokenHelpKey:         "#586E75",
		TokenHelpDesc:        "#93A1A1",
		TokenHelpSeparator:   "#EEE8D5",
		TokenOverlayTitle:    "#073642",
		TokenOverlayBorder:   "#93A1A1",
		TokenLogDebug:        "#93A1A1",
	},
}
