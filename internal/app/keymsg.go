package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/quill/internal/editor"
)

var specialKeys = map[tea.KeyType]editor.Key{
	tea.KeyEnter:     editor.KeyEnter,
	tea.KeyBackspace: editor.KeyBackspace,
	tea.KeyEsc:       editor.KeyEscape,
	tea.KeyLeft:      editor.KeyLeft,
	tea.KeyRight:     editor.KeyRight,
	tea.KeyUp:        editor.KeyUp,
	tea.KeyDown:      editor.KeyDown,
}

// KeyEventFromMsg translates a Bubble Tea key press into an editor key event.
// Multi-rune messages (pastes) keep only the first rune; use KeyEventsFromMsg
// to get all of them.
func KeyEventFromMsg(msg tea.KeyMsg) editor.KeyEvent {
	evs := KeyEventsFromMsg(msg)
	if len(evs) == 0 {
		return editor.Special(editor.KeyUnknown)
	}
	return evs[0]
}

// KeyEventsFromMsg translates a key press into one editor event per rune.
func KeyEventsFromMsg(msg tea.KeyMsg) []editor.KeyEvent {
	var mods editor.Modifiers
	if msg.Alt {
		mods |= editor.ModAlt
	}

	// Enter and Tab share codes with ctrl+m and ctrl+i, so check them first.
	if k, ok := specialKeys[msg.Type]; ok {
		return []editor.KeyEvent{{Key: k, Mods: mods}}
	}

	switch {
	case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace:
		runes := msg.Runes
		if msg.Type == tea.KeySpace && len(runes) == 0 {
			runes = []rune{' '}
		}
		evs := make([]editor.KeyEvent, 0, len(runes))
		for _, r := range runes {
			evs = append(evs, editor.KeyEvent{Key: editor.KeyRune, Rune: r, Mods: mods})
		}
		return evs

	case msg.Type == tea.KeyTab:
		return []editor.KeyEvent{{Key: editor.KeyUnknown, Mods: mods}}

	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return []editor.KeyEvent{{Key: editor.KeyRune, Rune: r, Mods: mods | editor.ModCtrl}}
	}

	return []editor.KeyEvent{{Key: editor.KeyUnknown, Mods: mods}}
}
