package key

import (
	"fmt"
	"strings"
)

// Key is a logical key. Printable characters are KeyRune with the
// character in Event.Rune.
type Key uint16

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	// KeySpace is the space bar. Typed spaces arrive as KeyRune ' ' and are
	// normalized to KeySpace by Event.Binding.
	KeySpace
	KeyRune
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeySpace:     "Space",
	KeyRune:      "Rune",
}

// String returns the key's canonical name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial reports whether k is a named key rather than a character.
func (k Key) IsSpecial() bool { return k != KeyNone && k != KeyRune }

// IsArrowKey reports whether k is one of the four arrows.
func (k Key) IsArrowKey() bool { return k >= KeyUp && k <= KeyRight }

// keyAliases maps lowercase names accepted in key specs; canonical names
// are added in init.
var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"return": KeyEnter,
	"cr":     KeyEnter,
	"bs":     KeyBackspace,
	"del":    KeyDelete,
}

func init() {
	for k := KeyEscape; k < KeyRune; k++ {
		keyAliases[strings.ToLower(keyNames[k])] = k
	}
}

// KeyFromName returns the key named name, ignoring case and surrounding
// space, or KeyNone.
func KeyFromName(name string) Key {
	return keyAliases[strings.ToLower(strings.TrimSpace(name))]
}
