package app

import (
	"errors"
	"time"

	"github.com/dshills/arbor/internal/dispatcher"
	"github.com/dshills/arbor/internal/input/key"
	"github.com/dshills/arbor/internal/renderer/backend"
)

// eventLoop renders, then handles one event at a time until quit.
func (app *Application) eventLoop() error {
	app.render()
	for {
		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			return err
		}
		app.render()
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.HandleKey(ev.Key)
	case backend.EventResize:
		app.metrics.RecordResize()
		app.logger.Debug("resize", "width", ev.Width, "height", ev.Height)
		return nil
	case backend.EventInterrupt:
		return ErrQuit
	default:
		return nil
	}
}

// HandleKey runs one key through the dispatcher. Keys no action claims
// fall through to the text-input field while editing. Action errors are
// shown in the status line and never stop the loop; ErrQuit does.
func (app *Application) HandleKey(ev key.Event) error {
	start := time.Now()
	defer func() { app.metrics.RecordKey(time.Since(start)) }()

	if app.recorder != nil && ev.Key != key.KeyNone {
		app.recorder.Record(ev)
	}

	res := app.dispatcher.Dispatch(app.session, ev)
	if errors.Is(res.Err, dispatcher.ErrQuit) {
		return ErrQuit
	}

	switch {
	case res.Err != nil:
		app.logger.Debug("action failed", "action", res.Action, "key", ev.String(), "error", res.Err)
		app.setMessage(res.Err.Error())
	case res.Handled:
		app.setMessage("")
	}

	if res.Handled || res.Suppress {
		return nil
	}
	if app.session.Editing() && app.field.HandleKey(ev) {
		app.metrics.RecordTyped()
		return nil
	}
	app.metrics.RecordIgnored()
	return nil
}

// Feed handles a sequence of keys, stopping early on quit.
// It reports whether a quit was requested.
func (app *Application) Feed(events []key.Event) (quit bool) {
	for _, ev := range events {
		if errors.Is(app.HandleKey(ev), ErrQuit) {
			return true
		}
	}
	return false
}

func (app *Application) setMessage(msg string) {
	if app.renderer != nil {
		app.renderer.SetMessage(msg)
	}
}

func (app *Application) render() {
	if app.renderer == nil {
		return
	}
	start := time.Now()
	app.renderer.Render(app.session)
	app.metrics.RecordFrame(time.Since(start))
}
