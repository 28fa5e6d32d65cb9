package renderer

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/arbor/internal/engine/tree"
	"github.com/dshills/arbor/internal/input/key"
	"github.com/dshills/arbor/internal/input/mode"
	"github.com/dshills/arbor/internal/input/textinput"
	"github.com/dshills/arbor/internal/renderer/backend"
	"github.com/dshills/arbor/internal/renderer/core"
	"github.com/dshills/arbor/internal/session"
)

func setup(t *testing.T, width, height int, root *tree.Node) (*Renderer, *backend.Memory, *session.Session, *textinput.Field) {
	t.Helper()
	mem := backend.NewMemory(width, height)
	require.NoError(t, mem.Init())
	tr, err := tree.New(root)
	require.NoError(t, err)
	field := textinput.NewField()
	s := session.New(tr, session.WithSurface(field))
	return New(mem, DefaultOptions()), mem, s, field
}

func TestLayout(t *testing.T) {
	a := tree.NewToken("a")
	tr, err := tree.New(tree.NewCollection(tree.NewCollection(a, tree.NewToken("")), tree.NewCollection()))
	require.NoError(t, err)

	rows := Layout(tr)

	require.Len(t, rows, 5)
	var labels []string
	var depths []int
	for _, row := range rows {
		labels = append(labels, row.Label)
		depths = append(depths, row.Depth)
	}
	assert.Equal(t, []string{"(2)", "(2)", "a", `""`, "()"}, labels)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)
	assert.Equal(t, "0.0", Path(a))
	assert.Equal(t, "", Path(tr.Root()))
}

func TestRenderOutline(t *testing.T) {
	a, b := tree.NewToken("a"), tree.NewToken("bee")
	r, mem, s, _ := setup(t, 30, 6, tree.NewCollection(tree.NewCollection(a), b))
	s.Select(a)

	r.Render(s)

	lines := mem.Lines()
	require.Len(t, lines, 6)
	assert.Equal(t, "(2)", lines[0])
	assert.Equal(t, "  (1)", lines[1])
	assert.Equal(t, "    a", lines[2])
	assert.Equal(t, "  bee", lines[3])
	assert.True(t, strings.HasPrefix(lines[5], " NAVIGATE  token 0.0  3/4"), lines[5])

	theme := DefaultTheme()
	assert.Equal(t, theme.Selected, mem.GetCell(4, 2).Style.Background)
	assert.Equal(t, theme.Token, mem.GetCell(2, 3).Style.Foreground)
	assert.Equal(t, theme.Collection, mem.GetCell(2, 1).Style.Foreground)
	assert.Equal(t, theme.Top, mem.GetCell(0, 0).Style.Foreground)

	_, _, visible := mem.CursorPosition()
	assert.False(t, visible, "no caret in navigate mode")
	assert.Equal(t, uint64(1), r.FrameCount())
	assert.Equal(t, 1, mem.ShowCount())
}

func TestRenderEditCaret(t *testing.T) {
	tok := tree.NewToken("日本")
	r, mem, s, field := setup(t, 30, 4, tree.NewCollection(tok))
	s.Select(tok)
	require.True(t, s.EnableEditMode())

	r.Render(s)

	x, y, visible := mem.CursorPosition()
	assert.True(t, visible)
	assert.Equal(t, 1, y)
	assert.Equal(t, 2+4, x, "caret after two wide runes")
	assert.Equal(t, backend.CursorBar, mem.CursorStyleValue())
	assert.Equal(t, DefaultTheme().EditHighlight(), mem.GetCell(2, 1).Style.Background)
	assert.True(t, strings.HasPrefix(mem.Line(3), " EDIT "))

	field.HandleKey(key.NewSpecialEvent(key.KeyHome, key.ModNone))
	r.Render(s)
	x, _, _ = mem.CursorPosition()
	assert.Equal(t, 2, x)
}

func TestRenderEmptyTokenWhileEditing(t *testing.T) {
	anchor := tree.NewToken("x")
	r, mem, s, _ := setup(t, 20, 4, tree.NewCollection(anchor))
	s.Select(anchor)
	tok := s.InsertToken()
	require.NotNil(t, tok)

	r.Render(s)

	assert.Equal(t, "", mem.Line(2), "empty token is drawn without placeholder while editing")
	x, y, visible := mem.CursorPosition()
	assert.True(t, visible)
	assert.Equal(t, []int{2, 2}, []int{x, y})
}

func TestEditHighlightDiffersFromSelection(t *testing.T) {
	theme := DefaultTheme()
	assert.False(t, theme.Selected.Equals(theme.EditHighlight()))
}

func TestThemeFromHex(t *testing.T) {
	theme, err := ThemeFromHex("#ff0000", "", "", "#00ff00")
	require.NoError(t, err)
	assert.Equal(t, core.ColorFromRGB(255, 0, 0), theme.Selected)
	assert.Equal(t, DefaultTheme().Token, theme.Token)
	assert.Equal(t, core.ColorFromRGB(0, 255, 0), theme.Top)

	_, err = ThemeFromHex("", "blue", "", "")
	assert.ErrorContains(t, err, "theme.token")
}

func TestScrollKeepsSelectionVisible(t *testing.T) {
	var toks []*tree.Node
	for i := 0; i < 40; i++ {
		toks = append(toks, tree.NewToken("t"+strconv.Itoa(i)))
	}
	r, mem, s, _ := setup(t, 20, 11, tree.NewCollection(toks...))

	s.Select(toks[30])
	r.Render(s)

	found := -1
	for y := 0; y < 10; y++ {
		if mem.Line(y) == "  t30" {
			found = y
		}
	}
	require.NotEqual(t, -1, found, "selected row is on screen")
	assert.GreaterOrEqual(t, found, 3)
	assert.LessOrEqual(t, found, 6)

	s.Select(s.Tree().Root())
	r.Render(s)
	assert.Equal(t, "(40)", mem.Line(0))
}

func TestStatusMessage(t *testing.T) {
	r, mem, s, _ := setup(t, 80, 3, tree.NewCollection(tree.NewToken("a")))
	r.SetMessage("cannot delete the only remaining node")

	r.Render(s)

	assert.Contains(t, mem.Line(2), "cannot delete the only remaining node")
	assert.Equal(t, "cannot delete the only remaining node", r.Message())
}

func TestCursorStyleFor(t *testing.T) {
	assert.Equal(t, backend.CursorBar, CursorStyleFor(mode.CursorBar))
	assert.Equal(t, backend.CursorBlock, CursorStyleFor(mode.CursorBlock))
	assert.Equal(t, backend.CursorHidden, CursorStyleFor(mode.CursorHidden))
}
