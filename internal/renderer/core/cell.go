package core

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Cell represents a single terminal cell.
type Cell struct {
	// Text is one grapheme cluster, or "" for the trailing half of a
	// wide cluster.
	Text string

	// Width is the display width of this cell.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns an empty cell with default style.
func EmptyCell() Cell {
	return Cell{
		Text:  " ",
		Width: 1,
		Style: DefaultStyle(),
	}
}

// ContinuationCell returns the trailing cell of a wide cluster.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// IsContinuation returns true if this is a continuation cell.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Text == ""
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Text == other.Text &&
		c.Width == other.Width &&
		c.Style.Equals(other.Style)
}

// StringWidth returns the display width of s in terminal columns.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// CellsFromString splits s into grapheme clusters. Wide clusters are
// followed by a continuation cell; zero-width clusters are dropped.
func CellsFromString(s string, style Style) []Cell {
	cells := make([]Cell, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width <= 0 {
			continue
		}
		cells = append(cells, Cell{Text: cluster, Width: width, Style: style})
		for i := 1; i < width; i++ {
			cells = append(cells, ContinuationCell(style))
		}
	}
	return cells
}

// StringFromCells converts cells back to a string.
func StringFromCells(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		if !c.IsContinuation() {
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}

// ScreenRect is a half-open rectangle: Top/Left inclusive, Bottom/Right
// exclusive.
type ScreenRect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// RectFromSize creates a rectangle from its origin and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the rectangle width.
func (r ScreenRect) Width() int {
	return max(0, r.Right-r.Left)
}

// Height returns the rectangle height.
func (r ScreenRect) Height() int {
	return max(0, r.Bottom-r.Top)
}

// IsEmpty returns true if the rectangle has no area.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}
