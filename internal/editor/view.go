package editor

import "github.com/zjrosen/quill/internal/cursor"

// View is a read-only snapshot of a Session taken between key events.
// Everything a renderer needs to draw a frame is here.
type View struct {
	Lines     []string
	Cursor    cursor.Position
	Mode      Mode
	LineCount int
}

// CurrentLine returns the line under the cursor.
func (v View) CurrentLine() string {
	if v.Cursor.Row < 0 || v.Cursor.Row >= len(v.Lines) {
		return ""
	}
	return v.Lines[v.Cursor.Row]
}
