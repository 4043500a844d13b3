package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/quill/internal/cursor"
)

func at(row, col int) cursor.Position {
	return cursor.Position{Row: row, Col: col}
}

// press feeds keys to s and returns the last result.
func press(s *Session, evs ...KeyEvent) Result {
	r := Continue
	for _, ev := range evs {
		r = s.HandleKey(ev)
	}
	return r
}

func typeText(text string) []KeyEvent {
	evs := make([]KeyEvent, 0, len(text))
	for _, r := range text {
		evs = append(evs, Rune(r))
	}
	return evs
}

// ============================================================================
// Construction
// ============================================================================

func TestNew_Defaults(t *testing.T) {
	s := New(Config{})

	v := s.View()
	assert.Equal(t, []string{""}, v.Lines)
	assert.Equal(t, at(0, 0), v.Cursor)
	assert.Equal(t, ModeNormal, v.Mode)
	assert.Equal(t, 1, v.LineCount)
	assert.NotEmpty(t, s.ID())
}

func TestNew_SeededCursorIsClamped(t *testing.T) {
	s := New(Config{Lines: []string{"ab", "c"}, Cursor: at(7, 9)})
	require.Equal(t, at(1, 1), s.Cursor())
}

func TestNew_InvalidModeFallsBackToNormal(t *testing.T) {
	s := New(Config{Mode: Mode(7)})
	require.Equal(t, ModeNormal, s.Mode())

	require.Equal(t, Quit, press(s, Ctrl('q')))

	s = New(Config{Mode: Mode(-2)})
	press(s, Rune('i'))
	require.Equal(t, ModeInsert, s.Mode())
}

func TestNew_KeepsInsertMode(t *testing.T) {
	s := New(Config{Mode: ModeInsert})
	require.Equal(t, ModeInsert, s.Mode())
}

func TestNew_UniqueIDs(t *testing.T) {
	require.NotEqual(t, New(Config{}).ID(), New(Config{}).ID())
}

// ============================================================================
// Scenarios
// ============================================================================

func TestScenario_TypeIntoEmptyBuffer(t *testing.T) {
	s := New(Config{})

	press(s, Rune('i'))
	press(s, typeText("hi")...)

	v := s.View()
	require.Equal(t, []string{"hi"}, v.Lines)
	require.Equal(t, at(0, 2), v.Cursor)
	require.Equal(t, ModeInsert, v.Mode)
}

func TestScenario_EnterAtEndOfLine(t *testing.T) {
	s := New(Config{Lines: []string{"hi"}, Cursor: at(0, 2), Mode: ModeInsert})

	press(s, Special(KeyEnter))

	v := s.View()
	require.Equal(t, []string{"hi", ""}, v.Lines)
	require.Equal(t, at(1, 0), v.Cursor)
}

func TestScenario_BackspaceJoinsLines(t *testing.T) {
	s := New(Config{Lines: []string{"ab", "cd"}, Cursor: at(1, 0), Mode: ModeInsert})

	press(s, Special(KeyBackspace))

	v := s.View()
	require.Equal(t, []string{"abcd"}, v.Lines)
	require.Equal(t, at(0, 2), v.Cursor)
}

func TestScenario_EscapeThenMoveLeft(t *testing.T) {
	s := New(Config{Lines: []string{"abc"}, Cursor: at(0, 1), Mode: ModeInsert})

	press(s, Special(KeyEscape), Rune('h'))

	require.Equal(t, at(0, 0), s.Cursor())
	require.Equal(t, ModeNormal, s.Mode())
}

func TestScenario_MoveDownClampsColumn(t *testing.T) {
	s := New(Config{Lines: []string{"ab", "c"}, Cursor: at(0, 1)})

	press(s, Rune('j'))
	require.Equal(t, at(1, 1), s.Cursor())

	s = New(Config{Lines: []string{"abc", "d"}, Cursor: at(0, 3)})
	press(s, Rune('j'))
	require.Equal(t, at(1, 1), s.Cursor())
}

func TestScenario_CtrlQQuitsWithoutMutating(t *testing.T) {
	s := New(Config{Lines: []string{"abc", "de"}, Cursor: at(1, 1)})
	before := s.View()

	result := s.HandleKey(Ctrl('q'))

	require.Equal(t, Quit, result)
	require.Equal(t, before, s.View())
}

func TestCtrlQ_InInsertModeDoesNotQuit(t *testing.T) {
	s := New(Config{Mode: ModeInsert})

	require.Equal(t, Continue, s.HandleKey(Ctrl('q')))
	require.Equal(t, []string{""}, s.View().Lines)
	require.Equal(t, ModeInsert, s.Mode())
}

// ============================================================================
// Behaviour
// ============================================================================

func TestNormalMode_CharactersAreCommands(t *testing.T) {
	s := New(Config{Lines: []string{"abc"}})

	press(s, typeText("xyz")...)

	require.Equal(t, []string{"abc"}, s.View().Lines)
	require.Equal(t, ModeNormal, s.Mode())
}

func TestInsertMode_ArrowsNavigate(t *testing.T) {
	s := New(Config{Lines: []string{"abc", "de"}, Mode: ModeInsert})

	press(s, Special(KeyRight), Special(KeyRight), Special(KeyDown))
	require.Equal(t, at(1, 2), s.Cursor())

	press(s, Special(KeyUp), Special(KeyLeft))
	require.Equal(t, at(0, 1), s.Cursor())
	require.Equal(t, ModeInsert, s.Mode())
}

func TestArrowsWithModifiersNavigate(t *testing.T) {
	s := New(Config{Lines: []string{"abc"}, Cursor: at(0, 2)})

	press(s, KeyEvent{Key: KeyLeft, Mods: ModAlt})
	require.Equal(t, at(0, 1), s.Cursor())

	press(s, Rune('i'), KeyEvent{Key: KeyRight, Mods: ModAlt})
	require.Equal(t, at(0, 2), s.Cursor())
	require.Equal(t, "abc", s.Text())
}

func TestBackspace_AtDocumentStartIsNoOp(t *testing.T) {
	s := New(Config{Lines: []string{"abc"}, Mode: ModeInsert})

	press(s, Special(KeyBackspace))

	require.Equal(t, []string{"abc"}, s.View().Lines)
	require.Equal(t, at(0, 0), s.Cursor())
}

func TestBackspace_MidLineDeletesAndMovesLeft(t *testing.T) {
	s := New(Config{Lines: []string{"abc"}, Cursor: at(0, 2), Mode: ModeInsert})

	press(s, Special(KeyBackspace))

	require.Equal(t, []string{"ac"}, s.View().Lines)
	require.Equal(t, at(0, 1), s.Cursor())
}

func TestEnter_MidLineSplits(t *testing.T) {
	s := New(Config{Lines: []string{"hello"}, Cursor: at(0, 2), Mode: ModeInsert})

	press(s, Special(KeyEnter))

	require.Equal(t, []string{"he", "llo"}, s.View().Lines)
	require.Equal(t, at(1, 0), s.Cursor())
}

func TestIdempotentMovesAtEdges(t *testing.T) {
	tests := []struct {
		name  string
		start cursor.Position
		key   KeyEvent
	}{
		{"left at col 0", at(0, 0), Rune('h')},
		{"right at end of line", at(0, 3), Rune('l')},
		{"up at row 0", at(0, 2), Rune('k')},
		{"down at last row", at(1, 1), Rune('j')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Config{Lines: []string{"abc", "de"}, Cursor: tt.start})
			before := s.View()

			press(s, tt.key)

			require.Equal(t, before, s.View())
		})
	}
}

func TestOnModeChange(t *testing.T) {
	type change struct{ mode, previous Mode }
	var got []change

	s := New(Config{OnModeChange: func(mode, previous Mode) {
		got = append(got, change{mode, previous})
	}})

	press(s, Rune('i'), Rune('a'), Special(KeyEscape), Rune('h'))

	require.Equal(t, []change{
		{ModeInsert, ModeNormal},
		{ModeNormal, ModeInsert},
	}, got)
}

func TestView_DoesNotAliasSession(t *testing.T) {
	s := New(Config{Lines: []string{"abc"}, Mode: ModeInsert})

	v := s.View()
	v.Lines[0] = "mutated"
	require.Equal(t, []string{"abc"}, s.View().Lines)

	snapshot := s.View()
	press(s, Rune('x'))

	require.Equal(t, []string{"abc"}, snapshot.Lines)
	require.Equal(t, at(0, 0), snapshot.Cursor)
	require.Equal(t, "xabc", s.View().CurrentLine())
}

func TestView_CurrentLine(t *testing.T) {
	v := View{Lines: []string{"a", "b"}, Cursor: at(1, 0)}
	assert.Equal(t, "b", v.CurrentLine())
	assert.Equal(t, "", View{Cursor: at(3, 0)}.CurrentLine())
}

func TestText(t *testing.T) {
	s := New(Config{})
	press(s, Rune('i'))
	press(s, typeText("ab")...)
	press(s, Special(KeyEnter))
	press(s, typeText("cd")...)

	require.Equal(t, "ab\ncd", s.Text())
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "quit", Quit.String())
}

// ============================================================================
// Properties
// ============================================================================

var propertyKeys = []KeyEvent{
	Rune('i'), Rune('h'), Rune('j'), Rune('k'), Rune('l'),
	Rune('a'), Rune('é'), Rune(' '),
	Special(KeyEscape), Special(KeyEnter), Special(KeyBackspace),
	Special(KeyLeft), Special(KeyRight), Special(KeyUp), Special(KeyDown),
	Special(KeyUnknown), Ctrl('x'),
}

// TestProperty_CursorAlwaysInsideBuffer drives random key sequences and
// checks the position bounds after every key.
func TestProperty_CursorAlwaysInsideBuffer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,8}`), 1, 4).Draw(t, "lines")
		s := New(Config{Lines: lines})

		keys := rapid.SliceOfN(rapid.SampledFrom(propertyKeys), 0, 60).Draw(t, "keys")
		for _, ev := range keys {
			require.Equal(t, Continue, s.HandleKey(ev))

			v := s.View()
			require.GreaterOrEqual(t, v.LineCount, 1)
			require.Len(t, v.Lines, v.LineCount)
			require.GreaterOrEqual(t, v.Cursor.Row, 0)
			require.Less(t, v.Cursor.Row, v.LineCount)
			require.GreaterOrEqual(t, v.Cursor.Col, 0)
			require.LessOrEqual(t, v.Cursor.Col, len([]rune(v.Lines[v.Cursor.Row])))
		}
	})
}

// TestProperty_InsertThenBackspaceRestores verifies typing a character and
// deleting it is a round trip anywhere in the buffer.
func TestProperty_InsertThenBackspaceRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,8}`), 1, 4).Draw(t, "lines")
		row := rapid.IntRange(0, len(lines)-1).Draw(t, "row")
		col := rapid.IntRange(0, len(lines[row])).Draw(t, "col")
		c := rapid.RuneFrom([]rune("xyzé!")).Draw(t, "char")

		s := New(Config{Lines: lines, Cursor: at(row, col), Mode: ModeInsert})
		before := s.View()

		press(s, Rune(c), Special(KeyBackspace))

		require.Equal(t, before, s.View())
	})
}

// TestProperty_SplitThenBackspaceRestores verifies Enter followed by
// Backspace rejoins the line and returns the cursor to the split point.
func TestProperty_SplitThenBackspaceRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,8}`), 1, 4).Draw(t, "lines")
		row := rapid.IntRange(0, len(lines)-1).Draw(t, "row")
		col := rapid.IntRange(0, len(lines[row])).Draw(t, "col")

		s := New(Config{Lines: lines, Cursor: at(row, col), Mode: ModeInsert})
		before := s.View()

		press(s, Special(KeyEnter))
		require.Equal(t, before.LineCount+1, s.View().LineCount)

		press(s, Special(KeyBackspace))
		require.Equal(t, before, s.View())
	})
}
