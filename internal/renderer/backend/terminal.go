package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/arbor/internal/input/key"
	"github.com/dshills/arbor/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.setContent(x, y, cell)
}

func (t *Terminal) setContent(x, y int, cell core.Cell) {
	if cell.IsContinuation() {
		return
	}
	runes := []rune(cell.Text)
	if len(runes) == 0 {
		runes = []rune{' '}
	}
	t.screen.SetContent(x, y, runes[0], runes[1:], convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, combc, style, width := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{
		Text:  string(append([]rune{mainc}, combc...)),
		Width: width,
		Style: convertTcellStyle(style),
	}
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	for y := max(0, rect.Top); y < rect.Bottom && y < height; y++ {
		for x := max(0, rect.Left); x < rect.Right && x < width; x++ {
			t.setContent(x, y, cell)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case CursorHidden:
		t.screen.HideCursor()
		return
	}
	t.screen.SetCursorStyle(tcellStyle)
}

func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

// PostEvent posts a key or interrupt event. Other event types are ignored.
func (t *Terminal) PostEvent(event Event) {
	switch event.Type {
	case EventKey:
		k, ch, mod := convertToTcell(event.Key)
		_ = t.screen.PostEvent(tcell.NewEventKey(k, ch, mod)) // best-effort; event queue may be full
	case EventInterrupt:
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// attrPairs maps cell attributes to tcell attributes.
var attrPairs = []struct {
	core  core.Attribute
	tcell tcell.AttrMask
}{
	{core.AttrBold, tcell.AttrBold},
	{core.AttrDim, tcell.AttrDim},
	{core.AttrItalic, tcell.AttrItalic},
	{core.AttrUnderline, tcell.AttrUnderline},
	{core.AttrReverse, tcell.AttrReverse},
}

func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}
	var mask tcell.AttrMask
	for _, p := range attrPairs {
		if s.Attributes.Has(p.core) {
			mask |= p.tcell
		}
	}
	return style.Attributes(mask)
}

func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, mask := ts.Decompose()
	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	for _, p := range attrPairs {
		if mask&p.tcell != 0 {
			s.Attributes |= p.core
		}
	}
	return s
}

// convertTcellColor converts tcell.Color to our Color.
func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.ColorDefault
	}
	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return KeyEvent(ConvertKey(e.Key(), e.Rune(), e.Modifiers()))
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}
	default:
		return Event{Type: EventNone}
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// ConvertKey maps a tcell key to a logical key event. Control-letter
// codes become the letter rune with ModCtrl. Keys arbor does not use
// map to KeyNone.
func ConvertKey(k tcell.Key, ch rune, m tcell.ModMask) key.Event {
	mods := convertMod(m)

	// Tab, Enter, Escape and Backspace share codes with Ctrl+I, Ctrl+M,
	// Ctrl+[ and Ctrl+H; they win.
	if sk, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(sk, mods.Without(key.ModCtrl))
	}
	switch {
	case k == tcell.KeyRune:
		if ch == ' ' && mods.IsEmpty() {
			return key.NewSpecialEvent(key.KeySpace, mods)
		}
		return key.NewRuneEvent(ch, mods)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl))
	case k == tcell.KeyCtrlSpace:
		return key.NewSpecialEvent(key.KeySpace, mods.With(key.ModCtrl))
	default:
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
}

// convertToTcell maps a logical key event back to tcell's encoding.
func convertToTcell(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	mod := convertToTcellMod(ev.Modifiers)
	if ev.IsRune() {
		r := ev.Rune
		if ev.Modifiers.HasCtrl() && r >= 'a' && r <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(r-'a'), 0, mod
		}
		return tcell.KeyRune, r, mod
	}
	if ev.Key == key.KeySpace {
		return tcell.KeyRune, ' ', mod
	}
	for tk, k := range specialKeys {
		if k == ev.Key && tk != tcell.KeyBackspace {
			return tk, 0, mod
		}
	}
	return tcell.KeyRune, 0, mod
}

// convertMod converts tcell modifier mask to our Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}

// convertToTcellMod converts our Modifier to tcell.ModMask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.HasShift() {
		result |= tcell.ModShift
	}
	if m.HasCtrl() {
		result |= tcell.ModCtrl
	}
	if m.HasAlt() {
		result |= tcell.ModAlt
	}
	if m.HasMeta() {
		result |= tcell.ModMeta
	}
	return result
}
