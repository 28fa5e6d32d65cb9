package dispatcher

import (
	"fmt"
	"sort"

	"github.com/dshills/arbor/internal/input/key"
	"github.com/dshills/arbor/internal/input/mode"
)

// Keymap binds normalized key events to action names.
type Keymap struct {
	bindings map[key.Event]string
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[key.Event]string)}
}

// Bind parses spec and binds it to action. An empty action removes the binding.
func (k *Keymap) Bind(spec, action string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("bind %q: %w", spec, err)
	}
	k.BindEvent(ev, action)
	return nil
}

// BindEvent binds an already decoded event.
func (k *Keymap) BindEvent(ev key.Event, action string) {
	b := ev.Binding()
	if action == "" {
		delete(k.bindings, b)
		return
	}
	k.bindings[b] = action
}

// Lookup returns the action bound to ev.
func (k *Keymap) Lookup(ev key.Event) (string, bool) {
	action, ok := k.bindings[ev.Binding()]
	return action, ok
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Describe returns "key action" pairs sorted by key, with keys written
// as key specs.
func (k *Keymap) Describe() []string {
	out := make([]string, 0, len(k.bindings))
	for ev, action := range k.bindings {
		out = append(out, ev.String()+" "+action)
	}
	sort.Strings(out)
	return out
}

func mustBind(k *Keymap, pairs ...string) *Keymap {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := k.Bind(pairs[i], pairs[i+1]); err != nil {
			panic(err)
		}
	}
	return k
}

// DefaultNavigateKeymap returns the navigate mode bindings.
// Backspace deletes as well as Delete.
func DefaultNavigateKeymap() *Keymap {
	return mustBind(NewKeymap(),
		"Left", ActionGoLeft,
		"Up", ActionGoUp,
		"Right", ActionGoRight,
		"Down", ActionGoDown,
		"Delete", ActionDelete,
		"Backspace", ActionDelete,
		"Enter", ActionEdit,
		"Space", ActionInsert,
		"Ctrl+q", ActionQuit,
		"Ctrl+c", ActionQuit,
	)
}

// DefaultEditKeymap returns the edit mode bindings.
func DefaultEditKeymap() *Keymap {
	return mustBind(NewKeymap(),
		"Enter", ActionExitEdit,
		"Escape", ActionExitEdit,
		"Up", ActionExitEdit,
		"Tab", ActionEditNext,
		"Ctrl+q", ActionQuit,
		"Ctrl+c", ActionQuit,
	)
}

// DefaultKeymaps returns the built-in keymaps by mode name.
func DefaultKeymaps() map[string]*Keymap {
	return map[string]*Keymap{
		mode.ModeNavigate: DefaultNavigateKeymap(),
		mode.ModeEdit:     DefaultEditKeymap(),
	}
}
