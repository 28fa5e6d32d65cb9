package dispatcher

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/dshills/arbor/internal/input/key"
	"github.com/dshills/arbor/internal/session"
)

// Result describes the outcome of dispatching one key event.
type Result struct {
	// Action is the name of the action that ran, or "" when none did.
	Action string

	// Handled reports whether a binding matched the event.
	Handled bool

	// Suppress reports that the key must not reach the text-input surface.
	Suppress bool

	// Err is the error returned by the action, if any.
	Err error
}

// Config configures a Dispatcher.
type Config struct {
	// RecoverFromPanic runs handlers with panic recovery.
	RecoverFromPanic bool

	// EnableMetrics collects dispatch metrics.
	EnableMetrics bool

	// Logger receives dispatch diagnostics. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
		EnableMetrics:    true,
	}
}

// Dispatcher routes key events to actions through per-mode keymaps.
type Dispatcher struct {
	registry *Registry
	keymaps  map[string]*Keymap
	metrics  *Metrics
	logger   *slog.Logger
	config   Config
}

// New creates a dispatcher with the built-in actions and keymaps.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		registry: DefaultRegistry(),
		keymaps:  DefaultKeymaps(),
		config:   config,
		logger:   config.Logger,
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d.logger = d.logger.With("component", "dispatcher")
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a dispatcher with the default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// Registry returns the action registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the metrics collector, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Keymap returns the keymap for a mode, or nil.
func (d *Dispatcher) Keymap(modeName string) *Keymap {
	return d.keymaps[modeName]
}

// SetKeymap installs the keymap for a mode.
func (d *Dispatcher) SetKeymap(modeName string, k *Keymap) {
	d.keymaps[modeName] = k
}

// LoadBindings applies key spec to action overrides onto a mode's keymap.
// Every named action must be registered. An empty action unbinds the key.
// No binding is applied if any entry is invalid.
func (d *Dispatcher) LoadBindings(modeName string, bindings map[string]string) error {
	km := d.keymaps[modeName]
	if km == nil {
		return fmt.Errorf("%w: %q", ErrUnknownMode, modeName)
	}

	type pending struct {
		ev     key.Event
		action string
	}
	var staged []pending
	var errs []error
	for spec, action := range bindings {
		ev, err := key.Parse(spec)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s binding %q: %w", modeName, spec, err))
			continue
		}
		if action != "" {
			if _, ok := d.registry.Get(action); !ok {
				errs = append(errs, fmt.Errorf("%s binding %q: %w: %q", modeName, spec, ErrNoHandler, action))
				continue
			}
		}
		staged = append(staged, pending{ev: ev, action: action})
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	for _, p := range staged {
		km.BindEvent(p.ev, p.action)
	}
	return nil
}

// Dispatch runs the action bound to ev in the session's current mode.
func (d *Dispatcher) Dispatch(s *session.Session, ev key.Event) Result {
	modeName := s.Modes().CurrentName()
	km := d.keymaps[modeName]
	if km == nil {
		return d.unhandled()
	}
	name, ok := km.Lookup(ev)
	if !ok {
		return d.unhandled()
	}

	action, ok := d.registry.Get(name)
	if !ok {
		d.logger.Warn("binding names unknown action", "mode", modeName, "key", ev.String(), "action", name)
		return Result{Action: name, Err: fmt.Errorf("%w: %q", ErrNoHandler, name)}
	}

	start := time.Now()
	var err error
	if d.config.RecoverFromPanic {
		err = d.executeWithRecovery(action, s)
	} else {
		err = action.Handle(s)
	}
	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, time.Since(start), err)
	}

	if err != nil && !errors.Is(err, ErrQuit) {
		d.logger.Debug("action failed", "action", action.Name, "error", err)
	}
	return Result{
		Action:   action.Name,
		Handled:  true,
		Suppress: action.Suppress,
		Err:      err,
	}
}

func (d *Dispatcher) unhandled() Result {
	if d.metrics != nil {
		d.metrics.RecordUnhandled()
	}
	return Result{}
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(action Action, s *session.Session) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			err = fmt.Errorf("%w in %s: %v", ErrPanic, action.Name, r)
			d.logger.Error("handler panic", "action", action.Name, "panic", r, "stack", string(stack[:n]))

			if d.metrics != nil {
				d.metrics.RecordPanic()
			}
		}
	}()

	return action.Handle(s)
}
