package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// runeNameMap names characters that cannot appear bare in a spec or a
// sequence.
var runeNameMap = map[string]rune{
	"comma": ',',
	"plus":  '+',
}

// Parse parses a key specification into an Event. It accepts a single
// character ("a", "A", "@"), a key name ("Enter", "Space", "Comma"),
// modifiers joined with "+" ("Ctrl+Q", "Alt+Left") and angle-bracket
// notation ("<C-q>", "<CR>", "<Esc>").
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "":
		return Event{}, ErrEmptySpec
	case len(spec) > 2 && spec[0] == '<' && spec[len(spec)-1] == '>':
		return parseModified(strings.TrimSpace(spec[1:len(spec)-1]), "-")
	case len(spec) > 1 && strings.Contains(spec, "+"):
		return parseModified(spec, "+")
	default:
		return parseKeyWithModifiers(spec, ModNone)
	}
}

// parseModified splits spec on sep; every part but the last names a modifier.
func parseModified(spec, sep string) (Event, error) {
	parts := strings.Split(spec, sep)
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.ToLower(strings.TrimSpace(p)))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseKeyWithModifiers parses a key name or single character with
// already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		} else if unicode.IsUpper(r) {
			// Uppercase letters have implicit Shift
			mods = mods.With(ModShift)
		}
		return NewRuneEvent(r, mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if r, ok := runeNameMap[strings.ToLower(keyPart)]; ok {
		return NewRuneEvent(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse is Parse for specs known to be valid, such as default keymaps.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(fmt.Sprintf("key.MustParse(%q): %v", spec, err))
	}
	return ev
}

// ParseSequence parses whitespace- or comma-separated key specifications,
// e.g. "Down Right Space h i Escape".
func ParseSequence(s string) ([]Event, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	events := make([]Event, 0, len(fields))
	for _, f := range fields {
		ev, err := Parse(f)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
