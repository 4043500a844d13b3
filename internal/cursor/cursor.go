// Package cursor tracks the editing position within a buffer.
//
// Every movement is clamped against the current line lengths so the
// position invariant holds after each call:
//
//	0 <= Row < LineCount()
//	0 <= Col <= LineLen(Row)
//
// Col may equal the line length; that is the insertion point past the
// last character.
package cursor

import "fmt"

// LineLengths is the read-only view of a buffer the cursor needs.
type LineLengths interface {
	LineCount() int
	LineLen(row int) int
}

// Position is a (row, column) location. Both are 0-indexed character counts.
type Position struct {
	Row int
	Col int
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cursor is the current editing position.
type Cursor struct {
	pos Position
}

// New returns a cursor at (0,0).
func New() *Cursor {
	return &Cursor{}
}

// Position returns the current position.
func (c *Cursor) Position() Position {
	return c.pos
}

// SetPosition moves the cursor to p, clamped into b.
func (c *Cursor) SetPosition(p Position, b LineLengths) {
	c.pos = p
	c.Clamp(b)
}

// Clamp pulls the cursor back inside b.
func (c *Cursor) Clamp(b LineLengths) {
	c.pos.Row = max(min(c.pos.Row, b.LineCount()-1), 0)
	c.pos.Col = max(min(c.pos.Col, b.LineLen(c.pos.Row)), 0)
}

// Valid reports whether the cursor satisfies the position invariant for b.
func (c *Cursor) Valid(b LineLengths) bool {
	if c.pos.Row < 0 || c.pos.Row >= b.LineCount() {
		return false
	}
	return c.pos.Col >= 0 && c.pos.Col <= b.LineLen(c.pos.Row)
}

// MoveLeft moves one character left. Does not wrap to the previous line.
func (c *Cursor) MoveLeft() {
	if c.pos.Col > 0 {
		c.pos.Col--
	}
}

// MoveRight moves one character right, stopping at the end of the line.
func (c *Cursor) MoveRight(b LineLengths) {
	if c.pos.Col < b.LineLen(c.pos.Row) {
		c.pos.Col++
	}
}

// MoveUp moves to the previous line, clamping the column to its length.
func (c *Cursor) MoveUp(b LineLengths) {
	if c.pos.Row > 0 {
		c.pos.Row--
		c.pos.Col = min(c.pos.Col, b.LineLen(c.pos.Row))
	}
}

// MoveDown moves to the next line, clamping the column to its length.
func (c *Cursor) MoveDown(b LineLengths) {
	if c.pos.Row < b.LineCount()-1 {
		c.pos.Row++
		c.pos.Col = min(c.pos.Col, b.LineLen(c.pos.Row))
	}
}

// AdvanceAfterInsert follows a character inserted at the cursor.
func (c *Cursor) AdvanceAfterInsert() {
	c.pos.Col++
}

// AdvanceAfterSplit moves to the start of the line created by a split.
func (c *Cursor) AdvanceAfterSplit() {
	c.pos.Row++
	c.pos.Col = 0
}

// RetreatAfterJoin lands on the join point after the current line was
// merged into the previous one. prevLen is the previous line's length
// before the merge.
func (c *Cursor) RetreatAfterJoin(prevLen int) {
	c.pos.Row--
	c.pos.Col = prevLen
}
