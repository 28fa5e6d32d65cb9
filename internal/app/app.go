package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/dshills/arbor/internal/config"
	"github.com/dshills/arbor/internal/dispatcher"
	"github.com/dshills/arbor/internal/document"
	"github.com/dshills/arbor/internal/input/macro"
	"github.com/dshills/arbor/internal/input/mode"
	"github.com/dshills/arbor/internal/input/textinput"
	"github.com/dshills/arbor/internal/renderer"
	"github.com/dshills/arbor/internal/renderer/backend"
	"github.com/dshills/arbor/internal/session"
)

// Application is the central coordinator for all arbor components.
// It owns the session and drives it from backend events.
//
// Application is not safe for concurrent use. Quit is the only method
// another goroutine may call.
type Application struct {
	config *config.Config
	logger *slog.Logger

	session    *session.Session
	field      *textinput.Field
	dispatcher *dispatcher.Dispatcher
	renderer   *renderer.Renderer
	backend    backend.Backend
	metrics    *Metrics
	recorder   *macro.Recorder

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Config is the loaded configuration. Nil uses defaults.
	Config *config.Config

	// Backend is the display. It may be nil for headless use.
	Backend backend.Backend

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger

	// Recorder, when set, receives every key the application handles.
	Recorder *macro.Recorder
}

// New creates an Application and loads its seed document.
func New(ctx context.Context, opts Options) (*Application, error) {
	app := &Application{
		config:   opts.Config,
		logger:   opts.Logger,
		backend:  opts.Backend,
		metrics:  NewMetrics(),
		recorder: opts.Recorder,
	}
	if app.config == nil {
		app.config = &config.Config{Log: config.LogConfig{Level: config.DefaultLogLevel}}
	}
	if app.logger == nil {
		app.logger = DiscardLogger()
	}

	if err := app.bootstrap(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap(ctx context.Context) error {
	// 1. Document
	tr, err := LoadDocument(ctx, app.config.Document, app.logger.With("component", "document"))
	if err != nil {
		return &InitError{Component: "document", Err: err}
	}

	// 2. Session with its text-input field
	app.field = textinput.NewField()
	app.session = session.New(tr,
		session.WithSurface(app.field),
		session.WithLogger(app.logger),
	)

	// 3. Dispatcher and configured bindings
	dcfg := dispatcher.DefaultConfig()
	dcfg.Logger = app.logger
	app.dispatcher = dispatcher.New(dcfg)
	if err := app.loadBindings(); err != nil {
		return &InitError{Component: "dispatcher", Err: err}
	}

	// 4. Renderer
	theme, err := renderer.ThemeFromHex(
		app.config.Theme.Selected,
		app.config.Theme.Token,
		app.config.Theme.Collection,
		app.config.Theme.Top,
	)
	if err != nil {
		return &InitError{Component: "renderer", Err: err}
	}
	if app.backend != nil {
		ropts := renderer.DefaultOptions()
		ropts.Theme = theme
		app.renderer = renderer.New(app.backend, ropts)
	}

	app.logger.Info("application ready",
		"document", app.config.Document,
		"nodes", tr.Count(),
	)
	return nil
}

func (app *Application) loadBindings() error {
	var errs []error
	overrides := []struct {
		mode     string
		bindings map[string]string
	}{
		{mode.ModeNavigate, app.config.Keymap.Navigate},
		{mode.ModeEdit, app.config.Keymap.Edit},
	}
	for _, o := range overrides {
		if len(o.bindings) == 0 {
			continue
		}
		if err := app.dispatcher.LoadBindings(o.mode, o.bindings); err != nil {
			errs = append(errs, NewOperationError("bind", o.mode, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	for _, o := range overrides {
		if km := app.dispatcher.Keymap(o.mode); km != nil {
			app.logger.Debug("keymap", "mode", o.mode, "bindings", km.Describe())
		}
	}
	return nil
}

// Session returns the editing session.
func (app *Application) Session() *session.Session {
	return app.session
}

// Dispatcher returns the input dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Renderer returns the renderer, or nil without a backend.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// Metrics returns the event loop metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application's logger.
func (app *Application) Logger() *slog.Logger {
	return app.logger
}

// Outline returns the one-line rendering of the current tree.
func (app *Application) Outline() string {
	return document.Outline(app.session.Tree())
}

// Running reports whether Run is active.
func (app *Application) Running() bool {
	return app.running.Load()
}

// Run initializes the backend and processes events until quit.
// Blocks until shutdown is requested.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	err := app.eventLoop()
	app.logSummary()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Quit asks a running event loop to stop. It is safe to call from
// another goroutine, such as a signal handler.
func (app *Application) Quit() {
	if app.backend != nil {
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

func (app *Application) logSummary() {
	snap := app.metrics.Snapshot()
	attrs := []any{
		"keys", snap.Keys,
		"typed", snap.Typed,
		"frames", snap.Frames,
		"avg_frame", snap.AvgFrameTime,
		"uptime", snap.Uptime,
	}
	if dm := app.dispatcher.Metrics(); dm != nil {
		attrs = append(attrs,
			"dispatches", dm.TotalDispatches(),
			"errors", dm.TotalErrors(),
			"top_actions", topActionNames(dm.TopActions(3)),
		)
	}
	app.logger.Debug("session ended", attrs...)
}

func topActionNames(top []dispatcher.ActionMetrics) string {
	names := make([]string, len(top))
	for i, am := range top {
		names[i] = fmt.Sprintf("%s=%d", am.Name, am.DispatchCount)
	}
	return strings.Join(names, " ")
}
