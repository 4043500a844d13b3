// Package buffer provides the line-oriented text buffer behind the editor.
//
// A Buffer is an ordered sequence of lines, each an ordered sequence of
// runes. It is never empty: a fresh buffer holds a single empty line, and
// no operation can remove the last line. The buffer knows nothing about
// cursors or modes; callers pass positions they have already validated.
package buffer

import (
	"fmt"
	"strings"
)

// DeletionKind describes what DeleteCharBefore did.
type DeletionKind int

const (
	// NoDeletion means the position was the start of the document.
	NoDeletion DeletionKind = iota
	// DeletedChar means a single character was removed from the line.
	DeletedChar
	// JoinedLines means the line was merged into the previous one.
	JoinedLines
)

// String returns the string representation of the kind.
func (k DeletionKind) String() string {
	switch k {
	case NoDeletion:
		return "none"
	case DeletedChar:
		return "char"
	case JoinedLines:
		return "join"
	default:
		return "unknown"
	}
}

// Deletion is the outcome of DeleteCharBefore.
type Deletion struct {
	Kind DeletionKind
	// JoinCol is the original length of the line merged into.
	// Only meaningful when Kind is JoinedLines.
	JoinCol int
}

// InvariantError reports a position outside the buffer.
// It is only ever raised through panic: reaching it is a programming error.
type InvariantError struct {
	Op       string
	Row, Col int
	Lines    int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("buffer: %s at (%d,%d) outside buffer of %d lines", e.Op, e.Row, e.Col, e.Lines)
}

// Buffer holds the document lines.
type Buffer struct {
	lines [][]rune
}

// New returns a buffer containing a single empty line.
func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// FromLines returns a buffer seeded with the given lines.
// Embedded newlines split a line further. No lines yields an empty buffer.
func FromLines(lines ...string) *Buffer {
	if len(lines) == 0 {
		return New()
	}
	b := &Buffer{lines: make([][]rune, 0, len(lines))}
	for _, line := range lines {
		for _, part := range strings.Split(line, "\n") {
			b.lines = append(b.lines, []rune(part))
		}
	}
	return b
}

// LineCount returns the number of lines (always at least 1).
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the number of characters on the given row.
func (b *Buffer) LineLen(row int) int {
	b.checkRow("line_len", row)
	return len(b.lines[row])
}

// Line returns the content of the given row.
func (b *Buffer) Line(row int) string {
	b.checkRow("line", row)
	return string(b.lines[row])
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

// Text returns the whole document joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// InsertChar inserts c at col on row, shifting the rest of the line right.
func (b *Buffer) InsertChar(row, col int, c rune) {
	b.checkPos("insert_char", row, col)
	line := b.lines[row]
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = c
	b.lines[row] = line
}

// DeleteCharBefore removes the character before (row, col).
// At the start of a line the line is joined onto the previous one.
// At the start of the document it does nothing.
func (b *Buffer) DeleteCharBefore(row, col int) Deletion {
	b.checkPos("delete_char_before", row, col)
	switch {
	case col > 0:
		line := b.lines[row]
		b.lines[row] = append(line[:col-1], line[col:]...)
		return Deletion{Kind: DeletedChar}
	case row > 0:
		return Deletion{Kind: JoinedLines, JoinCol: b.JoinWithPrevious(row)}
	default:
		return Deletion{Kind: NoDeletion}
	}
}

// SplitLine breaks row at col. The tail becomes a new line directly below.
func (b *Buffer) SplitLine(row, col int) {
	b.checkPos("split_line", row, col)
	line := b.lines[row]

	tail := make([]rune, len(line)-col)
	copy(tail, line[col:])
	b.lines[row] = line[:col:col]

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = tail
}

// JoinWithPrevious appends row onto row-1 and removes row.
// Returns the length row-1 had before the join.
func (b *Buffer) JoinWithPrevious(row int) int {
	b.checkRow("join_with_previous", row)
	if row == 0 {
		panic(&InvariantError{Op: "join_with_previous", Row: row, Lines: len(b.lines)})
	}

	prev := b.lines[row-1]
	joinCol := len(prev)
	b.lines[row-1] = append(prev, b.lines[row]...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return joinCol
}

func (b *Buffer) checkRow(op string, row int) {
	if row < 0 || row >= len(b.lines) {
		panic(&InvariantError{Op: op, Row: row, Lines: len(b.lines)})
	}
}

func (b *Buffer) checkPos(op string, row, col int) {
	b.checkRow(op, row)
	if col < 0 || col > len(b.lines[row]) {
		panic(&InvariantError{Op: op, Row: row, Col: col, Lines: len(b.lines)})
	}
}
