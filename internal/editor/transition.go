package editor

import "unicode"

// Action is what a key press asks the session to do.
type Action int

const (
	ActionNone Action = iota
	ActionEnterInsert
	ActionEnterNormal
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionInsertChar
	ActionSplitLine
	ActionBackspace
	ActionQuit
)

var actionIDs = map[Action]string{
	ActionNone:        "none",
	ActionEnterInsert: "mode.insert",
	ActionEnterNormal: "mode.normal",
	ActionMoveLeft:    "move.left",
	ActionMoveRight:   "move.right",
	ActionMoveUp:      "move.up",
	ActionMoveDown:    "move.down",
	ActionInsertChar:  "insert.char",
	ActionSplitLine:   "insert.split_line",
	ActionBackspace:   "delete.backspace",
	ActionQuit:        "session.quit",
}

// ID returns the hierarchical identifier used in logs.
func (a Action) ID() string {
	if id, ok := actionIDs[a]; ok {
		return id
	}
	return "unknown"
}

// String implements fmt.Stringer.
func (a Action) String() string {
	return a.ID()
}

// binding is one row of the transition table.
type binding struct {
	action Action
	next   Mode
	keys   []string
}

// stay marks a binding that leaves the mode unchanged.
const stay Mode = -1

// navigation is shared by both modes: arrows always move the cursor.
var navigation = []binding{
	{ActionMoveLeft, stay, []string{"<left>"}},
	{ActionMoveDown, stay, []string{"<down>"}},
	{ActionMoveUp, stay, []string{"<up>"}},
	{ActionMoveRight, stay, []string{"<right>"}},
}

var normalBindings = []binding{
	{ActionEnterInsert, ModeInsert, []string{"i"}},
	{ActionMoveLeft, ModeNormal, []string{"h"}},
	{ActionMoveDown, ModeNormal, []string{"j"}},
	{ActionMoveUp, ModeNormal, []string{"k"}},
	{ActionMoveRight, ModeNormal, []string{"l"}},
	{ActionQuit, ModeNormal, []string{"<ctrl+q>"}},
}

var insertBindings = []binding{
	{ActionEnterNormal, ModeNormal, []string{"<escape>"}},
	{ActionSplitLine, ModeInsert, []string{"<enter>"}},
	{ActionBackspace, ModeInsert, []string{"<backspace>"}},
}

type transition struct {
	action Action
	next   Mode
}

// transitions maps Mode -> key string -> outcome.
var transitions = buildTransitions()

func buildTransitions() map[Mode]map[string]transition {
	table := map[Mode]map[string]transition{
		ModeNormal: {},
		ModeInsert: {},
	}
	register := func(mode Mode, bs []binding) {
		for _, b := range bs {
			next := b.next
			if next == stay {
				next = mode
			}
			for _, k := range b.keys {
				table[mode][k] = transition{action: b.action, next: next}
			}
		}
	}

	register(ModeNormal, navigation)
	register(ModeNormal, normalBindings)
	register(ModeInsert, navigation)
	register(ModeInsert, insertBindings)
	return table
}

// Transition maps the current mode and a key event to the action to run
// and the mode to end up in. It is pure: the same inputs always give the
// same outputs and nothing is mutated.
func Transition(mode Mode, ev KeyEvent) (Mode, Action) {
	modeTable, ok := transitions[mode]
	if !ok {
		return mode, ActionNone
	}

	if isArrow(ev.Key) {
		// Arrows navigate whatever modifiers are held.
		ev.Mods = 0
	}

	if t, ok := modeTable[ev.String()]; ok {
		return t.next, t.action
	}

	// Fallback: character input in Insert mode.
	if mode == ModeInsert && IsPrintable(ev) {
		return ModeInsert, ActionInsertChar
	}
	return mode, ActionNone
}

func isArrow(k Key) bool {
	return k == KeyLeft || k == KeyRight || k == KeyUp || k == KeyDown
}

// IsPrintable reports whether ev types a printable character.
// Control and alt chords are never printable.
func IsPrintable(ev KeyEvent) bool {
	if ev.Key != KeyRune || ev.Mods != 0 {
		return false
	}
	return unicode.IsPrint(ev.Rune)
}

// Binding describes one key of the transition table for documentation.
type Binding struct {
	Mode   Mode
	Key    string
	Action Action
	Next   Mode
}

// Bindings lists every explicit table entry, Normal mode first, in
// declaration order. Printable input in Insert mode is not listed.
func Bindings() []Binding {
	var out []Binding
	add := func(mode Mode, bs []binding) {
		for _, b := range bs {
			next := b.next
			if next == stay {
				next = mode
			}
			for _, k := range b.keys {
				out = append(out, Binding{Mode: mode, Key: k, Action: b.action, Next: next})
			}
		}
	}
	add(ModeNormal, normalBindings)
	add(ModeNormal, navigation)
	add(ModeInsert, insertBindings)
	add(ModeInsert, navigation)
	return out
}
