// Package backend draws cells to a display and delivers input events.
//
// Terminal drives a real terminal through tcell. Memory keeps cells in a
// grid and events in a queue, for tests and headless replay.
package backend

import (
	"github.com/dshills/arbor/internal/input/key"
	"github.com/dshills/arbor/internal/renderer/core"
)

// CursorStyle is the shape of the visible caret.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

// EventType tells which fields of an Event are set.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt asks the event loop to stop.
	EventInterrupt
)

// Event is one input or lifecycle event.
type Event struct {
	Type          EventType
	Key           key.Event
	Width, Height int
}

// KeyEvent wraps a decoded key in a backend event.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// Backend is a cell display with an event queue. Init must succeed before
// any other call; out-of-range coordinates are ignored.
type Backend interface {
	Init() error
	Shutdown()

	Size() (width, height int)
	SetCell(x, y int, cell core.Cell)
	GetCell(x, y int) core.Cell
	Fill(rect core.ScreenRect, cell core.Cell)
	Clear()

	// Show makes pending cell changes visible.
	Show()

	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event.
	PollEvent() Event
	// PostEvent queues an event; safe to call from any goroutine.
	PostEvent(event Event)
}
