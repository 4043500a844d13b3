// Package overlay draws a foreground block over an already rendered
// background frame without clearing it.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position is where the foreground block goes.
type Position int

const (
	// Center places the block in the middle of the frame.
	Center Position = iota
	// Bottom centres the block horizontally, PadY rows above the last line.
	Bottom
)

// Config describes the frame being drawn over and where to draw.
type Config struct {
	Width    int
	Height   int
	Position Position
	PadY     int
}

// Place renders fg on bg at cfg.Position. Both may carry ANSI styling; cells of bg
// outside the foreground keep theirs. The result always has at least
// cfg.Height lines.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], fgLine, x)
	}

	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of line starting at column x with insert.
func splice(line, insert string, x int) string {
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	var right string
	end := x + ansi.StringWidth(insert)
	if end < ansi.StringWidth(line) {
		right = ansi.TruncateLeft(line, end, "")
	}

	return left + insert + right
}

// origin returns the top-left cell for a w by h block, clamped to the frame.
func origin(cfg Config, w, h int) (x, y int) {
	x = max((cfg.Width-w)/2, 0)
	switch cfg.Position {
	case Bottom:
		y = max(cfg.Height-h-cfg.PadY, 0)
	default:
		y = max((cfg.Height-h)/2, 0)
	}
	return x, y
}
