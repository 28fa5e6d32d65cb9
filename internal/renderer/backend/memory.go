package backend

import (
	"strings"

	"github.com/dshills/arbor/internal/renderer/core"
)

// Memory is an in-memory backend used for tests and headless replay.
type Memory struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	shows         int
	events        chan Event
}

// NewMemory creates a memory backend with the given dimensions.
func NewMemory(width, height int) *Memory {
	return &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
}

func (b *Memory) Init() error {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
	}
	b.Clear()
	return nil
}

func (b *Memory) Shutdown() {}

func (b *Memory) Size() (int, int) {
	return b.width, b.height
}

func (b *Memory) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *Memory) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *Memory) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := max(0, rect.Top); y < rect.Bottom && y < b.height; y++ {
		for x := max(0, rect.Left); x < rect.Right && x < b.width; x++ {
			b.cells[y][x] = cell
		}
	}
}

func (b *Memory) Clear() {
	b.Fill(core.RectFromSize(0, 0, b.height, b.width), core.EmptyCell())
}

func (b *Memory) Show() {
	b.shows++
}

func (b *Memory) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *Memory) HideCursor() {
	b.cursorVisible = false
}

func (b *Memory) SetCursorStyle(style CursorStyle) {
	b.cursorStyle = style
}

// PollEvent returns the next posted event. It blocks until one is posted.
func (b *Memory) PollEvent() Event {
	return <-b.events
}

// PostEvent queues an event. Events are dropped when the queue is full.
func (b *Memory) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

// CursorPosition returns the current cursor position.
func (b *Memory) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style.
func (b *Memory) CursorStyleValue() CursorStyle {
	return b.cursorStyle
}

// ShowCount returns how many times Show was called.
func (b *Memory) ShowCount() int {
	return b.shows
}

// Line returns row y as text with trailing spaces trimmed.
func (b *Memory) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return strings.TrimRight(core.StringFromCells(b.cells[y]), " ")
}

// Lines returns every row as text, dropping trailing empty rows.
func (b *Memory) Lines() []string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Resize changes the dimensions and clears the screen.
func (b *Memory) Resize(width, height int) {
	b.width = width
	b.height = height
	_ = b.Init()
}
