package renderer

import (
	"fmt"

	"github.com/dshills/arbor/internal/renderer/core"
)

// Theme holds the base colors of the outline.
type Theme struct {
	Selected   core.Color
	Token      core.Color
	Collection core.Color
	Top        core.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Selected:   core.MustColorFromHex("#3465a4"),
		Token:      core.MustColorFromHex("#d3d7cf"),
		Collection: core.MustColorFromHex("#729fcf"),
		Top:        core.MustColorFromHex("#ad7fa8"),
	}
}

// ThemeFromHex builds a theme from hex strings. Empty strings keep the
// default color.
func ThemeFromHex(selected, token, collection, top string) (Theme, error) {
	t := DefaultTheme()
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"selected", selected, &t.Selected},
		{"token", token, &t.Token},
		{"collection", collection, &t.Collection},
		{"top", top, &t.Top},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := core.ColorFromHex(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return t, nil
}

// EditHighlight is the selection background while editing: the selection
// color rotated toward green and lightened.
func (t Theme) EditHighlight() core.Color {
	return t.Selected.Rotate(-100).Lighten(0.1)
}

// styles resolves the theme into cell styles.
type styles struct {
	token      core.Style
	empty      core.Style
	collection core.Style
	top        core.Style
	selected   core.Style
	editing    core.Style
	statusNav  core.Style
	statusEdit core.Style
	message    core.Style
}

func (t Theme) styles() styles {
	edit := t.EditHighlight()
	return styles{
		token:      core.NewStyle(t.Token),
		empty:      core.NewStyle(t.Token.Darken(0.3)).Italic(),
		collection: core.NewStyle(t.Collection),
		top:        core.NewStyle(t.Top).Bold(),
		selected:   core.NewStyle(t.Selected.Contrast()).WithBackground(t.Selected).Bold(),
		editing:    core.NewStyle(edit.Contrast()).WithBackground(edit),
		statusNav:  core.NewStyle(t.Selected.Contrast()).WithBackground(t.Selected).Bold(),
		statusEdit: core.NewStyle(edit.Contrast()).WithBackground(edit).Bold(),
		message:    core.NewStyle(t.Token.Blend(t.Top, 0.5)),
	}
}
