package editor

import "strings"

// Key is the logical identity of a key press.
type Key int

const (
	// KeyUnknown is any key the editor does not model (tab, function keys...).
	KeyUnknown Key = iota
	// KeyRune is a character key; the character is in KeyEvent.Rune.
	KeyRune
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
)

// Has reports whether all of mods are held.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods == mods
}

// KeyEvent is a single discrete key press delivered by the host.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mods Modifiers
}

// Rune returns the event for typing r.
func Rune(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Ctrl returns the event for r pressed with control held.
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Mods: ModCtrl}
}

// Special returns the event for a non-character key.
func Special(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

var specialNames = map[Key]string{
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyEscape:    "escape",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
}

// String converts the event to the key string used by the transition table.
// Plain characters are themselves ("h"); everything else is bracketed with
// its modifiers ("<ctrl+q>", "<enter>", "<alt+left>"). Unknown keys yield "".
func (e KeyEvent) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		if e.Mods == 0 {
			return string(e.Rune)
		}
		name = string(e.Rune)
	case KeyUnknown:
		return ""
	default:
		name = specialNames[e.Key]
	}

	var sb strings.Builder
	sb.WriteByte('<')
	if e.Mods.Has(ModCtrl) {
		sb.WriteString("ctrl+")
	}
	if e.Mods.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	sb.WriteString(name)
	sb.WriteByte('>')
	return sb.String()
}
