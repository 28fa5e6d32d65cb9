package app

import (
	"context"

	"github.com/dshills/arbor/internal/input/key"
	"github.com/dshills/arbor/internal/renderer/backend"
)

// Default screen size for headless replays.
const (
	ReplayWidth  = 80
	ReplayHeight = 24
)

// ReplayResult is the state left behind by a headless key replay.
type ReplayResult struct {
	// Outline is the tree with the selection marked.
	Outline string
	// Mode is the mode the session ended in.
	Mode string
	// Quit reports that a quit key stopped the replay early.
	Quit bool
	// Screen is the final frame, one string per row.
	Screen []string
}

// Replay runs keys, written as a key sequence such as
// "Down Right Space x Esc", against a fresh application backed by an
// in-memory screen.
func Replay(ctx context.Context, opts Options, keys string) (*ReplayResult, error) {
	events, err := key.ParseSequence(keys)
	if err != nil {
		return nil, NewOperationError("replay", keys, err)
	}
	return ReplayEvents(ctx, opts, events)
}

// ReplayEvents is Replay for already decoded keys.
func ReplayEvents(ctx context.Context, opts Options, events []key.Event) (*ReplayResult, error) {
	mem := backend.NewMemory(ReplayWidth, ReplayHeight)
	opts.Backend = mem
	app, err := New(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := mem.Init(); err != nil {
		return nil, &InitError{Component: "backend", Err: err}
	}
	defer mem.Shutdown()

	quit := app.Feed(events)
	app.render()
	app.logSummary()

	return &ReplayResult{
		Outline: app.Outline(),
		Mode:    app.session.Modes().CurrentName(),
		Quit:    quit,
		Screen:  mem.Lines(),
	}, nil
}
