package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNoHandler indicates a keymap names an action nobody registered.
	ErrNoHandler = errors.New("dispatcher: no handler for action")

	// ErrUnknownMode indicates bindings were supplied for a mode without a keymap.
	ErrUnknownMode = errors.New("dispatcher: unknown mode")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrQuit is returned by the quit action.
	ErrQuit = errors.New("dispatcher: quit requested")
)
