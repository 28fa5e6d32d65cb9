package dispatcher

import (
	"sort"

	"github.com/dshills/arbor/internal/session"
)

// Action names.
const (
	ActionGoLeft    = "go-left"
	ActionGoUp      = "go-up"
	ActionGoRight   = "go-right"
	ActionGoDown    = "go-down"
	ActionWalkRight = "walk-right"
	ActionWalkDown  = "walk-down"
	ActionDelete    = "delete"
	ActionEdit      = "edit"
	ActionInsert    = "insert"
	ActionExitEdit  = "exit-edit"
	ActionEditNext  = "edit-next"
	ActionQuit      = "quit"
)

// HandlerFunc runs an action against a session.
type HandlerFunc func(s *session.Session) error

// Action is a named, registered editor operation.
type Action struct {
	// Name is the identifier used in keymaps.
	Name string

	// Suppress reports that the platform's default handling of the key
	// must not run (e.g. the key is not typed into the text surface).
	Suppress bool

	// Handle performs the operation.
	Handle HandlerFunc
}

// Registry manages actions by exact name.
type Registry struct {
	actions map[string]Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

// DefaultRegistry creates a registry holding the built-in actions.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, a := range builtinActions() {
		r.Register(a)
	}
	return r
}

// Register adds an action, replacing any action with the same name.
func (r *Registry) Register(a Action) {
	r.actions[a.Name] = a
}

// Unregister removes an action.
func (r *Registry) Unregister(name string) {
	delete(r.actions, name)
}

// Get returns the action registered under name.
func (r *Registry) Get(name string) (Action, bool) {
	a, ok := r.actions[name]
	return a, ok
}

// Names returns the sorted names of all registered actions.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
