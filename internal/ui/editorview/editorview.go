// Package editorview renders an editor.View snapshot into a terminal frame:
// line number gutter, text rows, status bar and key help line.
package editorview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/keys"
	"github.com/zjrosen/quill/internal/ui/styles"
)

// NoName is shown in the status bar when no file name is configured.
const NoName = "[No Name]"

// gutterSeparator sits between the line numbers and the text.
const gutterSeparator = " │ "

// Options controls which parts of the frame are drawn.
type Options struct {
	ShowLineNumbers bool
	ShowStatusBar   bool
	ShowHelp        bool
	FileName        string
}

// Frame is one rendered screen.
type Frame struct {
	Content string
	// CursorX and CursorY locate the cursor cell on screen, in cells. CursorVisible is
	// false when the cursor row is scrolled out or the frame has no text rows.
	CursorX       int
	CursorY       int
	CursorVisible bool
}

// Model holds the renderer's layout state between frames.
type Model struct {
	opts   Options
	keys   keys.KeyMap
	help   help.Model
	width  int
	height int
	scroll int
}

// New creates a renderer with the given options.
func New(opts Options, km keys.KeyMap) Model {
	h := help.New()
	h.Styles = styles.HelpStyles
	return Model{opts: opts, keys: km, help: h}
}

// SetSize sets the frame size in cells.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// SetOptions replaces the display options, e.g. after a config reload.
func (m *Model) SetOptions(opts Options) {
	m.opts = opts
}

// RefreshStyles picks up colors changed by styles.ApplyTheme.
func (m *Model) RefreshStyles() {
	m.help.Styles = styles.HelpStyles
}

// GutterWidth is the number of decimal digits in lineCount, at least 1.
func GutterWidth(lineCount int) int {
	return max(len(fmt.Sprint(lineCount)), 1)
}

// GutterColumns is the full gutter: digits plus the separator.
func GutterColumns(lineCount int) int {
	return GutterWidth(lineCount) + len([]rune(gutterSeparator))
}

// TextHeight is how many buffer rows fit once the bars are drawn.
func (m Model) TextHeight() int {
	h := m.height
	if m.opts.ShowStatusBar {
		h--
	}
	if m.opts.ShowHelp {
		h--
	}
	return max(h, 0)
}

// Scroll returns the new first visible row so that cursorRow is on screen,
// moving as little as possible from prev.
func Scroll(prev, cursorRow, textHeight int) int {
	if textHeight <= 0 {
		return 0
	}
	switch {
	case cursorRow < prev:
		return cursorRow
	case cursorRow >= prev+textHeight:
		return cursorRow - textHeight + 1
	default:
		return prev
	}
}

// Render draws v, scrolling first so the cursor row is visible.
func (m *Model) Render(v editor.View) Frame {
	if m.width <= 0 || m.height <= 0 {
		return Frame{}
	}

	textHeight := m.TextHeight()
	m.scroll = Scroll(m.scroll, v.Cursor.Row, textHeight)

	gutter := 0
	if m.opts.ShowLineNumbers {
		gutter = GutterColumns(v.LineCount)
	}

	rows := make([]string, 0, m.height)
	for i := range textHeight {
		row := m.scroll + i
		if row >= len(v.Lines) {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, m.renderRow(v, row, gutter))
	}
	if m.opts.ShowStatusBar {
		rows = append(rows, m.statusLine(v))
	}
	if m.opts.ShowHelp {
		rows = append(rows, m.helpLine())
	}

	frame := Frame{
		Content: strings.Join(rows, "\n"),
		CursorX: gutter + cellColumn(v.CurrentLine(), v.Cursor.Col),
		CursorY: v.Cursor.Row - m.scroll,
	}
	frame.CursorVisible = textHeight > 0 && frame.CursorX < m.width
	return frame
}

// cellColumn converts a rune column into a screen column. Wide runes such
// as CJK take two cells.
func cellColumn(line string, col int) int {
	runes := []rune(line)
	return runewidth.StringWidth(string(runes[:min(col, len(runes))]))
}

func (m Model) renderRow(v editor.View, row, gutter int) string {
	var b strings.Builder

	if m.opts.ShowLineNumbers {
		num := fmt.Sprintf("%*d", GutterWidth(v.LineCount), row+1)
		if row == v.Cursor.Row {
			b.WriteString(styles.GutterCurrentStyle.Render(num))
		} else {
			b.WriteString(styles.GutterStyle.Render(num))
		}
		b.WriteString(styles.GutterSeparatorStyle.Render(gutterSeparator))
	}

	line := []rune(v.Lines[row])
	if row != v.Cursor.Row {
		b.WriteString(styles.TextStyle.Render(string(line)))
	} else {
		col := min(v.Cursor.Col, len(line))
		under := " "
		var after string
		if col < len(line) {
			under = string(line[col])
			after = string(line[col+1:])
		}
		b.WriteString(styles.TextStyle.Render(string(line[:col])))
		b.WriteString(styles.CursorStyle.Render(under))
		b.WriteString(styles.TextStyle.Render(after))
	}

	return ansi.Truncate(b.String(), m.width, "")
}

// statusLine renders " name - Line y/N, Col x " on the left and the mode
// badge on the right. The left part is truncated first when space is short.
func (m Model) statusLine(v editor.View) string {
	name := m.opts.FileName
	if name == "" {
		name = NoName
	}
	left := fmt.Sprintf(" %s - Line %d/%d, Col %d ", name, v.Cursor.Row+1, v.LineCount, v.Cursor.Col+1)

	badgeStyle := styles.ModeNormalStyle
	if v.Mode == editor.ModeInsert {
		badgeStyle = styles.ModeInsertStyle
	}
	badge := badgeStyle.Render(fmt.Sprintf(" %s MODE ", v.Mode))

	room := max(m.width-lipgloss.Width(badge), 0)
	left = ansi.Truncate(left, room, "…")
	fill := strings.Repeat(" ", room-ansi.StringWidth(left))

	return ansi.Truncate(styles.StatusBarStyle.Render(left+fill)+badge, m.width, "")
}

func (m Model) helpLine() string {
	return ansi.Truncate(" "+m.help.ShortHelpView(m.keys.ShortHelp()), m.width, "…")
}
