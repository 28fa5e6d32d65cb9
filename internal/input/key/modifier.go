package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

// Modifier bits.
const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModMeta // Cmd on macOS
)

// modifierOrder is the order modifiers are written in key specs.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// modifierAliases maps lowercase names accepted in key specs.
var modifierAliases = map[string]Modifier{
	"ctrl": ModCtrl, "control": ModCtrl, "c": ModCtrl,
	"alt": ModAlt, "option": ModAlt, "opt": ModAlt, "a": ModAlt,
	"shift": ModShift, "s": ModShift,
	"meta": ModMeta, "cmd": ModMeta, "command": ModMeta, "super": ModMeta, "m": ModMeta,
}

// Has reports whether every bit of mod is set in m.
func (m Modifier) Has(mod Modifier) bool { return mod != ModNone && m&mod == mod }

func (m Modifier) HasShift() bool { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool  { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool   { return m.Has(ModAlt) }
func (m Modifier) HasMeta() bool  { return m.Has(ModMeta) }

// With adds mod to the set.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without removes mod from the set.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// IsEmpty reports whether no modifier is held.
func (m Modifier) IsEmpty() bool { return m == ModNone }

// String formats the set as it is written in key specs, e.g. "Ctrl+Alt".
func (m Modifier) String() string {
	var parts []string
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			parts = append(parts, o.name)
		}
	}
	return strings.Join(parts, "+")
}

// ModifierFromName returns the modifier for a lowercase name, or ModNone.
func ModifierFromName(name string) Modifier {
	return modifierAliases[name]
}
