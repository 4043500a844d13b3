// Package markdown renders markdown for terminal output, such as the key
// reference printed by `quill keys`.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/zjrosen/quill/internal/editor"
)

// noMarginStyle is a JSON style that removes document margins.
// It inherits from the base style but overrides margin to 0.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with quill-specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer with the given width. style is a glamour
// standard style name ("dark", "light", "notty", ...); empty means detect
// from the terminal.
func New(width int, style string) (*Renderer, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}

var keyNames = map[string]string{
	"<left>":      "←",
	"<right>":     "→",
	"<up>":        "↑",
	"<down>":      "↓",
	"<escape>":    "esc",
	"<enter>":     "enter",
	"<backspace>": "backspace",
	"<ctrl+q>":    "ctrl+q",
}

// KeyReference builds the markdown key reference from the editor's
// transition table.
func KeyReference(bindings []editor.Binding) string {
	var sb strings.Builder
	sb.WriteString("# Keys\n")

	for _, mode := range []editor.Mode{editor.ModeNormal, editor.ModeInsert} {
		fmt.Fprintf(&sb, "\n## %s mode\n\n", mode)
		sb.WriteString("| Key | Action | Then |\n|-----|--------|------|\n")
		for _, b := range bindings {
			if b.Mode != mode {
				continue
			}
			name := b.Key
			if pretty, ok := keyNames[b.Key]; ok {
				name = pretty
			}
			fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", name, b.Action.ID(), b.Next)
		}
		if mode == editor.ModeInsert {
			sb.WriteString("| any printable character | insert.char | INSERT |\n")
		}
	}

	sb.WriteString("\nOther keys are ignored.\n")
	return sb.String()
}
