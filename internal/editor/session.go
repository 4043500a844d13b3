package editor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/cursor"
	"github.com/zjrosen/quill/internal/log"
)

// Result tells the host what to do after a key was handled.
type Result int

const (
	// Continue means keep reading keys.
	Continue Result = iota
	// Quit means the user asked to end the session.
	Quit
)

// String returns the string representation of the result.
func (r Result) String() string {
	if r == Quit {
		return "quit"
	}
	return "continue"
}

// Config seeds a new Session. The zero value gives an empty buffer,
// the cursor at (0,0) and Normal mode.
type Config struct {
	// Lines pre-fills the buffer. Nil or empty means a single empty line.
	Lines []string

	// Cursor is the starting position, clamped into the buffer.
	Cursor cursor.Position

	// Mode is the starting mode. Anything other than ModeNormal or
	// ModeInsert falls back to ModeNormal.
	Mode Mode

	// OnModeChange is called after a key switches the mode.
	OnModeChange func(mode Mode, previous Mode)
}

// Session owns the single authoritative buffer, cursor and mode.
// All mutation goes through HandleKey.
type Session struct {
	id     string
	buf    *buffer.Buffer
	cur    *cursor.Cursor
	mode   Mode
	config Config
}

// New creates a session from cfg.
func New(cfg Config) *Session {
	if !cfg.Mode.Valid() {
		log.Warn(log.CatEditor, "Invalid starting mode, using NORMAL", "mode", int(cfg.Mode))
		cfg.Mode = ModeNormal
	}

	s := &Session{
		id:     uuid.NewString(),
		buf:    buffer.FromLines(cfg.Lines...),
		cur:    cursor.New(),
		mode:   cfg.Mode,
		config: cfg,
	}
	s.cur.SetPosition(cfg.Cursor, s.buf)

	log.Debug(log.CatEditor, "Session created",
		"session", s.id,
		"lines", s.buf.LineCount(),
		"cursor", s.cur.Position())
	return s
}

// ID returns the session identifier used to correlate log lines.
func (s *Session) ID() string {
	return s.id
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() cursor.Position {
	return s.cur.Position()
}

// HandleKey applies one key event. It returns Quit when the quit chord is
// pressed in Normal mode; the buffer and cursor are left untouched then.
func (s *Session) HandleKey(ev KeyEvent) Result {
	previous := s.mode
	next, action := Transition(s.mode, ev)

	s.dispatch(action, ev)
	s.mode = next
	s.checkInvariants(action)

	if action != ActionNone {
		log.Debug(log.CatEditor, "Dispatched",
			"session", s.id,
			"key", ev.String(),
			"action", action.ID(),
			"mode", s.mode,
			"cursor", s.cur.Position())
	}

	if next != previous && s.config.OnModeChange != nil {
		s.config.OnModeChange(next, previous)
	}

	if action == ActionQuit {
		return Quit
	}
	return Continue
}

// dispatch runs action against the cursor and buffer.
func (s *Session) dispatch(action Action, ev KeyEvent) {
	pos := s.cur.Position()

	switch action {
	case ActionMoveLeft:
		s.cur.MoveLeft()
	case ActionMoveRight:
		s.cur.MoveRight(s.buf)
	case ActionMoveUp:
		s.cur.MoveUp(s.buf)
	case ActionMoveDown:
		s.cur.MoveDown(s.buf)
	case ActionInsertChar:
		s.buf.InsertChar(pos.Row, pos.Col, ev.Rune)
		s.cur.AdvanceAfterInsert()
	case ActionSplitLine:
		s.buf.SplitLine(pos.Row, pos.Col)
		s.cur.AdvanceAfterSplit()
	case ActionBackspace:
		del := s.buf.DeleteCharBefore(pos.Row, pos.Col)
		switch del.Kind {
		case buffer.JoinedLines:
			s.cur.RetreatAfterJoin(del.JoinCol)
		case buffer.DeletedChar:
			s.cur.MoveLeft()
		}
	case ActionNone, ActionEnterInsert, ActionEnterNormal, ActionQuit:
		// Mode and control actions leave buffer and cursor alone.
	}
}

// checkInvariants panics if the cursor escaped the buffer. That can only
// happen through a bug in this package.
func (s *Session) checkInvariants(action Action) {
	if s.buf.LineCount() >= 1 && s.cur.Valid(s.buf) {
		return
	}
	pos := s.cur.Position()
	err := &buffer.InvariantError{
		Op:    action.ID(),
		Row:   pos.Row,
		Col:   pos.Col,
		Lines: s.buf.LineCount(),
	}
	log.ErrorErr(log.CatEditor, "Invariant violated", err, "session", s.id)
	panic(fmt.Errorf("editor: %w", err))
}

// View returns a snapshot of the session for rendering.
// The snapshot shares no memory with the session.
func (s *Session) View() View {
	return View{
		Lines:     s.buf.Lines(),
		Cursor:    s.cur.Position(),
		Mode:      s.mode,
		LineCount: s.buf.LineCount(),
	}
}

// Text returns the whole buffer joined with newlines.
func (s *Session) Text() string {
	return s.buf.Text()
}
