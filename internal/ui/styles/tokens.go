// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens users can override under theme.colors in their config.
const (
	// Text
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"

	// Line number gutter
	TokenGutterNumber    ColorToken = "gutter.number"
	TokenGutterCurrent   ColorToken = "gutter.current"
	TokenGutterSeparator ColorToken = "gutter.separator"

	// Status bar
	TokenStatusFg ColorToken = "status.fg"
	TokenStatusBg ColorToken = "status.bg"

	// Mode badges
	TokenModeNormalFg ColorToken = "mode.normal.fg"
	TokenModeNormalBg ColorToken = "mode.normal.bg"
	TokenModeInsertFg ColorToken = "mode.insert.fg"
	TokenModeInsertBg ColorToken = "mode.insert.bg"

	// Help line
	TokenHelpKey       ColorToken = "help.key"
	TokenHelpDesc      ColorToken = "help.desc"
	TokenHelpSeparator ColorToken = "help.separator"

	// Overlays
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Log levels in the log overlay
	TokenLogDebug ColorToken = "log.debug"
	TokenLogInfo  ColorToken = "log.info"
	TokenLogWarn  ColorToken = "log.warn"
	TokenLogError ColorToken = "log.error"
)

// AllTokens returns every token in display order.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextMuted,
		TokenGutterNumber,
		TokenGutterCurrent,
		TokenGutterSeparator,
		TokenStatusFg,
		TokenStatusBg,
		TokenModeNormalFg,
		TokenModeNormalBg,
		TokenModeInsertFg,
		TokenModeInsertBg,
		TokenHelpKey,
		TokenHelpDesc,
		TokenHelpSeparator,
		TokenOverlayTitle,
		TokenOverlayBorder,
		TokenLogDebug,
		TokenLogInfo,
		TokenLogWarn,
		TokenLogError,
	}
}
