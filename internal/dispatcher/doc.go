// Package dispatcher maps decoded key events to editor actions.
//
// The dispatcher keeps one keymap per mode. On each key event it picks the
// keymap for the session's current mode, resolves the bound action name
// through the Registry and runs that action against the session. At most
// one action runs per event.
//
// # Default bindings
//
// Navigate mode:
//
//	Left  go-left      Up     go-up
//	Right go-right     Down   go-down
//	Delete, Backspace  delete      (suppresses default)
//	Enter              edit        (suppresses default)
//	Space              insert      (suppresses default)
//
// Edit mode:
//
//	Enter, Escape, Up  exit-edit   (suppresses default)
//	Tab                edit-next   (suppresses default)
//
// Ctrl+Q and Ctrl+C are bound to quit in both modes.
//
// Keys without a binding are reported as unhandled and not suppressed;
// in edit mode the caller forwards them to the text-input surface.
//
// # Handler Execution
//
// Handlers run with panic recovery. A panicking handler is reported as
// ErrPanic in the Result and counted in Metrics; the session stays usable.
package dispatcher
