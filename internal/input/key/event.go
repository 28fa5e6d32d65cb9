package key

import "unicode"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() || e.Key == KeySpace {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Binding returns the canonical form of e used as a keymap lookup key.
func (e Event) Binding() Event {
	out := Event{Key: e.Key, Modifiers: e.Modifiers}
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		out.Key = KeySpace
	case e.Key == KeyRune:
		out.Rune = e.Rune
		if e.Modifiers.HasCtrl() {
			out.Rune = unicode.ToLower(e.Rune)
		}
		if unicode.IsLetter(e.Rune) || !unicode.IsPrint(e.Rune) {
			out.Modifiers = out.Modifiers.Without(ModShift)
		}
	}
	if out.Key == KeySpace {
		out.Modifiers = out.Modifiers.Without(ModShift)
	}
	return out
}

// Text returns the text a printable, unmodified event would type.
// It returns "" for everything else.
func (e Event) Text() string {
	if e.Key == KeySpace && !e.IsModified() {
		return " "
	}
	if e.IsChar() && !e.IsModified() {
		return string(e.Rune)
	}
	return ""
}

// String returns a canonical string representation that Parse accepts.
// Examples: "a", "A", "Ctrl+Q", "Enter", "Space", "Comma".
func (e Event) String() string {
	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune && e.Rune == ',':
		name = "Comma"
	case e.Key == KeyRune && e.Rune == '+':
		name = "Plus"
	case e.Key == KeyRune:
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}
	if mods.IsEmpty() {
		return name
	}
	return mods.String() + "+" + name
}
