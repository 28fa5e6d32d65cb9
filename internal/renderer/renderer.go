package renderer

import (
	"strconv"
	"strings"

	"github.com/dshills/arbor/internal/input/mode"
	"github.com/dshills/arbor/internal/renderer/backend"
	"github.com/dshills/arbor/internal/renderer/core"
	"github.com/dshills/arbor/internal/session"
)

// Options configures the renderer.
type Options struct {
	Theme Theme

	// IndentWidth is the number of columns per tree level.
	IndentWidth int

	// ScrollMargin is the number of rows kept visible around the selection.
	ScrollMargin int

	// ShowStatus draws the status line on the last row.
	ShowStatus bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Theme:        DefaultTheme(),
		IndentWidth:  2,
		ScrollMargin: 3,
		ShowStatus:   true,
	}
}

// caretReporter is implemented by surfaces that track a caret.
type caretReporter interface {
	Caret() int
}

// Renderer draws sessions onto a backend.
type Renderer struct {
	backend backend.Backend
	opts    Options
	styles  styles

	top        int
	message    string
	frameCount uint64
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 2
	}
	if opts.ScrollMargin < 0 {
		opts.ScrollMargin = 0
	}
	return &Renderer{
		backend: b,
		opts:    opts,
		styles:  opts.Theme.styles(),
	}
}

// SetTheme replaces the theme.
func (r *Renderer) SetTheme(t Theme) {
	r.opts.Theme = t
	r.styles = t.styles()
}

// SetMessage shows msg in the status line until it is replaced or cleared.
func (r *Renderer) SetMessage(msg string) {
	r.message = msg
}

// Message returns the current status message.
func (r *Renderer) Message() string {
	return r.message
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Render draws the session and flushes the backend.
func (r *Renderer) Render(s *session.Session) {
	width, height := r.backend.Size()
	r.backend.Clear()
	if width <= 0 || height <= 0 {
		r.backend.Show()
		return
	}

	bodyHeight := height
	if r.opts.ShowStatus {
		bodyHeight--
	}

	rows := Layout(s.Tree())
	selected := 0
	for i, row := range rows {
		if row.Node == s.Current() {
			selected = i
			break
		}
	}
	r.scrollTo(selected, len(rows), bodyHeight)

	editing := s.Editing()
	caretX, caretY := -1, -1
	for y := 0; y < bodyHeight && r.top+y < len(rows); y++ {
		row := rows[r.top+y]
		x := row.Depth * r.opts.IndentWidth
		style := r.rowStyle(row)
		if row.Node == s.Current() {
			if editing {
				style = r.styles.editing
				caretX, caretY = x+r.caretColumn(s, row), y
			} else {
				style = r.styles.selected
			}
		}
		text := row.Label
		if editing && row.Node == s.Current() {
			text = row.Node.Text()
		}
		r.drawText(x, y, width, text, style)
	}

	if r.opts.ShowStatus && height > 0 {
		r.drawStatus(s, width, height-1, selected, len(rows))
	}

	if caretX >= 0 && caretX < width {
		r.backend.SetCursorStyle(CursorStyleFor(s.Modes().Current().CursorStyle()))
		r.backend.ShowCursor(caretX, caretY)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
	r.frameCount++
}

// scrollTo adjusts the first visible row so that row sel stays visible
// with the configured margin.
func (r *Renderer) scrollTo(sel, total, visible int) {
	if visible <= 0 {
		r.top = 0
		return
	}
	margin := min(r.opts.ScrollMargin, (visible-1)/2)
	if sel-margin < r.top {
		r.top = sel - margin
	}
	if sel+margin >= r.top+visible {
		r.top = sel + margin - visible + 1
	}
	r.top = min(r.top, total-visible)
	r.top = max(r.top, 0)
}

func (r *Renderer) rowStyle(row Row) core.Style {
	switch {
	case row.Node.IsTop():
		return r.styles.top
	case row.Node.IsCollection():
		return r.styles.collection
	case row.Node.Text() == "":
		return r.styles.empty
	default:
		return r.styles.token
	}
}

// caretColumn returns the display column of the caret within the token.
func (r *Renderer) caretColumn(s *session.Session, row Row) int {
	text := row.Node.Text()
	runes := []rune(text)
	caret := len(runes)
	if cr, ok := s.Surface().(caretReporter); ok {
		caret = min(max(cr.Caret(), 0), len(runes))
	}
	return core.StringWidth(string(runes[:caret]))
}

// drawText draws text at (x, y), clipped to width. It returns the column
// after the last cell drawn.
func (r *Renderer) drawText(x, y, width int, text string, style core.Style) int {
	for _, cell := range core.CellsFromString(text, style) {
		if x >= width {
			break
		}
		r.backend.SetCell(x, y, cell)
		x++
	}
	return x
}

func (r *Renderer) drawStatus(s *session.Session, width, y, selected, total int) {
	style := r.styles.statusNav
	if s.Editing() {
		style = r.styles.statusEdit
	}
	r.backend.Fill(core.RectFromSize(y, 0, 1, width), core.Cell{Text: " ", Width: 1, Style: style})

	name := strings.ToUpper(s.Modes().CurrentName())
	if m := s.Modes().Current(); m != nil {
		name = m.DisplayName()
	}
	x := r.drawText(0, y, width, " "+name+" ", style)

	cur := s.Current()
	info := " " + cur.Kind().String()
	if p := Path(cur); p != "" {
		info += " " + p
	}
	info += "  " + strconv.Itoa(selected+1) + "/" + strconv.Itoa(total)
	x = r.drawText(x, y, width, info, style)

	if r.message != "" {
		r.drawText(x+2, y, width, r.message, style.WithForeground(r.styles.message.Foreground))
	}
}

// CursorStyleFor maps a mode cursor style to a backend cursor style.
func CursorStyleFor(cs mode.CursorStyle) backend.CursorStyle {
	switch cs {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorBlock:
		return backend.CursorBlock
	default:
		return backend.CursorHidden
	}
}
