package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#CCCCCC"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"}

	GutterNumberColor    = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#5C6370"}
	GutterCurrentColor   = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#E5C07B"}
	GutterSeparatorColor = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#3E4451"}

	StatusFgColor = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#ABB2BF"}
	StatusBgColor = lipgloss.AdaptiveColor{Light: "#EAEEF2", Dark: "#2C313A"}

	ModeNormalFgColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282C34"}
	ModeNormalBgColor = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#98C379"}
	ModeInsertFgColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282C34"}
	ModeInsertBgColor = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#61AFEF"}

	HelpKeyColor       = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#ABB2BF"}
	HelpDescColor      = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"}
	HelpSeparatorColor = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#3E4451"}

	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#8C8C8C"}

	LogDebugColor = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"}
	LogInfoColor  = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}
	LogWarnColor  = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#FECA57"}
	LogErrorColor = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}
)

var (
	TextStyle            lipgloss.Style
	GutterStyle          lipgloss.Style
	GutterCurrentStyle   lipgloss.Style
	GutterSeparatorStyle lipgloss.Style
	StatusBarStyle       lipgloss.Style
	ModeNormalStyle      lipgloss.Style
	ModeInsertStyle      lipgloss.Style

	// CursorStyle draws the cursor cell in reverse video.
	CursorStyle lipgloss.Style

	// HelpStyles feeds bubbles/help for the key hint line.
	HelpStyles help.Styles
)

func init() {
	rebuildStyles()
}

// rebuildStyles recreates all Style objects from the current colors.
// lipgloss.Style captures colors when it is built.
func rebuildStyles() {
	TextStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)

	GutterStyle = lipgloss.NewStyle().Foreground(GutterNumberColor)
	GutterCurrentStyle = lipgloss.NewStyle().Foreground(GutterCurrentColor).Bold(true)
	GutterSeparatorStyle = lipgloss.NewStyle().Foreground(GutterSeparatorColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(StatusFgColor).
		Background(StatusBgColor)

	ModeNormalStyle = lipgloss.NewStyle().
		Foreground(ModeNormalFgColor).
		Background(ModeNormalBgColor).
		Bold(true)
	ModeInsertStyle = lipgloss.NewStyle().
		Foreground(ModeInsertFgColor).
		Background(ModeInsertBgColor).
		Bold(true)

	CursorStyle = lipgloss.NewStyle().Reverse(true)

	keyStyle := lipgloss.NewStyle().Foreground(HelpKeyColor)
	descStyle := lipgloss.NewStyle().Foreground(HelpDescColor)
	sepStyle := lipgloss.NewStyle().Foreground(HelpSeparatorColor)
	HelpStyles = help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}
