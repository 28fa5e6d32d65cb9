package mode

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownMode is returned when switching to a mode that was never registered.
var ErrUnknownMode = errors.New("unknown mode")

// ModeChangeCallback is called after a successful switch.
type ModeChangeCallback func(from, to Mode)

// Manager holds the registered modes and the active one. It is driven from
// the single input loop and is not safe for concurrent use.
type Manager struct {
	modes     map[string]Mode
	current   Mode
	previous  Mode
	callbacks map[int]ModeChangeCallback
	nextID    int
}

// NewManager creates a manager with no modes registered.
func NewManager() *Manager {
	return &Manager{
		modes:     make(map[string]Mode),
		callbacks: make(map[int]ModeChangeCallback),
	}
}

// NewDefaultManager creates a manager with navigate and edit registered
// and navigate active.
func NewDefaultManager() *Manager {
	m := NewManager()
	m.Register(NewNavigateMode())
	m.Register(NewEditMode())
	_ = m.SetInitialMode(ModeNavigate)
	return m
}

// Register adds mode, replacing any mode of the same name.
func (m *Manager) Register(mode Mode) { m.modes[mode.Name()] = mode }

// Get returns the mode called name, or nil.
func (m *Manager) Get(name string) Mode { return m.modes[name] }

// Current returns the active mode, or nil before SetInitialMode.
func (m *Manager) Current() Mode { return m.current }

// Previous returns the mode active before the last switch.
func (m *Manager) Previous() Mode { return m.previous }

// CurrentName returns the active mode's name, or "".
func (m *Manager) CurrentName() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// IsMode reports whether the active mode is called name.
func (m *Manager) IsMode(name string) bool { return m.CurrentName() == name }

// Modes returns the registered mode names in sorted order.
func (m *Manager) Modes() []string {
	return slices.Sorted(maps.Keys(m.modes))
}

// Switch changes to the named mode with an empty transition context.
func (m *Manager) Switch(name string) error {
	return m.SwitchWithContext(name, nil)
}

// SwitchWithContext exits the active mode and enters the named one.
// When the new mode refuses to enter, the old mode is re-entered and stays
// active, and no callback runs.
func (m *Manager) SwitchWithContext(name string, ctx *Context) error {
	next, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
	if ctx == nil {
		ctx = &Context{}
	}

	from := m.current
	ctx.PreviousMode = ""
	if from != nil {
		ctx.NextMode = next.Name()
		if err := from.Exit(ctx); err != nil {
			return fmt.Errorf("exit %s: %w", from.Name(), err)
		}
		ctx.PreviousMode = from.Name()
	}
	ctx.NextMode = ""

	if err := next.Enter(ctx); err != nil {
		if from != nil {
			_ = from.Enter(&Context{Node: ctx.Node, PreviousMode: next.Name()})
		}
		return fmt.Errorf("enter %s: %w", next.Name(), err)
	}

	m.previous, m.current = from, next
	for _, id := range slices.Sorted(maps.Keys(m.callbacks)) {
		m.callbacks[id](from, next)
	}
	return nil
}

// OnChange registers cb and returns a function that unregisters it.
func (m *Manager) OnChange(cb ModeChangeCallback) func() {
	if cb == nil {
		return func() {}
	}
	id := m.nextID
	m.nextID++
	m.callbacks[id] = cb
	return func() { delete(m.callbacks, id) }
}

// SetInitialMode activates the named mode without running callbacks.
func (m *Manager) SetInitialMode(name string) error {
	mode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
	m.current = mode
	return mode.Enter(&Context{})
}
