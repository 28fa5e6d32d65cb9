// Package macro records key events so a live session can be replayed.
//
// A Recorder captures every key the event loop handles while recording is
// on. The captured events are written as a key sequence, the same text
// format `arbor replay --keys` accepts:
//
//	Down Right Space x Esc
//
// # Persistence
//
// Save writes a sequence file atomically and Load reads one back. Lines
// starting with '#' are comments.
//
// # Thread Safety
//
// Recorder is safe for concurrent use.
package macro
