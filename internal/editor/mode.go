// Package editor provides the modal editing session: key events, the
// Normal/Insert state machine and the Session that owns buffer, cursor and
// mode.
package editor

// Mode represents the current editing mode.
type Mode int

const (
	// ModeNormal is the default mode; typed characters are commands.
	ModeNormal Mode = iota
	// ModeInsert is the mode where typed characters become content.
	ModeInsert
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == ModeNormal || m == ModeInsert
}
