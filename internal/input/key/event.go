package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Action discriminates key presses from releases. Terminal backends only
// report presses, but the event model keeps the distinction so routing
// code can state its "press only" rule explicitly.
type Action uint8

const (
	// ActionPress is a key-down event.
	ActionPress Action = iota

	// ActionRelease is a key-up event.
	ActionRelease
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Event represents a single normalized keyboard event.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Action is press or release.
	Action Action
}

// NewRuneEvent creates a press event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a press event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsPress returns true for key-down events.
func (e Event) IsPress() bool {
	return e.Action == ActionPress
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if a non-shift modifier is pressed.
// For character events Shift is part of the character itself.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt) != 0
	}
	return e.Modifiers != ModNone
}

// IsPlainRune returns true for an unmodified character key.
func (e Event) IsPlainRune(r rune) bool {
	return e.IsRune() && !e.IsModified() && e.Rune == r
}

// IsCtrlRune returns true for Ctrl plus an unmodified character key.
func (e Event) IsCtrlRune(r rune) bool {
	return e.IsRune() && e.Modifiers.HasCtrl() && !e.Modifiers.HasAlt() && e.Rune == r
}

// IsEscape returns true if this is the Escape key with no modifiers.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// IsEnter returns true if this is the Enter key with no modifiers.
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter && e.Modifiers == ModNone
}

// IsBackspace returns true if this is Backspace, modified or not.
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace
}

// IsNone returns true for the zero event.
func (e Event) IsNone() bool {
	return e.Key == KeyNone
}

// Equals returns true if two events represent the same key press.
// The press/release action is not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// String returns a canonical representation such as "a", "C-x" or "Enter".
func (e Event) String() string {
	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	case KeyEscape:
		keyName = "Esc"
	case KeyEnter:
		keyName = "Enter"
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	case KeyPageUp:
		keyName = "PgUp"
	case KeyPageDown:
		keyName = "PgDn"
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)
	return strings.Join(parts, "-")
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s, Action: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String(), e.Action.String())
}
