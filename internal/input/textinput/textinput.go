// Package textinput provides the text-input surface a token is bound to
// while it is being edited.
//
// The session asks the surface to focus a token when edit mode starts and
// to blur it when edit mode ends, and reads the token text back to decide
// whether an abandoned empty token should be pruned. Character-level
// editing happens entirely inside the surface.
package textinput

import (
	"unicode/utf8"

	"github.com/dshills/arbor/internal/engine/tree"
	"github.com/dshills/arbor/internal/input/key"
)

// Surface is the text-input collaborator of the editor session.
type Surface interface {
	// Focus makes tok editable and gives it input focus.
	Focus(tok *tree.Node)

	// Blur makes tok non-editable and releases input focus.
	Blur(tok *tree.Node)

	// Text returns the current text content of tok.
	Text(tok *tree.Node) string
}

// Field is a single-line editor bound to at most one token at a time.
// Edits are written through to the token immediately.
type Field struct {
	token *tree.Node
	caret int // rune offset into the token text
}

// NewField creates an unfocused field.
func NewField() *Field {
	return &Field{}
}

// Focus binds the field to tok and places the caret at the end.
func (f *Field) Focus(tok *tree.Node) {
	if !tok.IsToken() {
		return
	}
	f.token = tok
	f.caret = utf8.RuneCountInString(tok.Text())
}

// Blur releases tok if it is the focused token.
func (f *Field) Blur(tok *tree.Node) {
	if f.token == tok {
		f.token = nil
		f.caret = 0
	}
}

// Text returns the text of tok.
func (f *Field) Text(tok *tree.Node) string {
	if tok == nil {
		return ""
	}
	return tok.Text()
}

// Focused returns the focused token, or nil.
func (f *Field) Focused() *tree.Node {
	return f.token
}

// Caret returns the caret position in runes.
func (f *Field) Caret() int {
	return f.caret
}

// HandleKey applies ev to the focused token.
// It reports whether the key was consumed.
func (f *Field) HandleKey(ev key.Event) bool {
	if f.token == nil {
		return false
	}

	runes := []rune(f.token.Text())
	if f.caret > len(runes) {
		f.caret = len(runes)
	}

	if text := ev.Text(); text != "" {
		r, _ := utf8.DecodeRuneInString(text)
		runes = append(runes[:f.caret], append([]rune{r}, runes[f.caret:]...)...)
		f.caret++
		f.token.SetText(string(runes))
		return true
	}

	if ev.IsModified() {
		return false
	}

	switch ev.Key {
	case key.KeyBackspace:
		if f.caret > 0 {
			runes = append(runes[:f.caret-1], runes[f.caret:]...)
			f.caret--
			f.token.SetText(string(runes))
		}
	case key.KeyDelete:
		if f.caret < len(runes) {
			runes = append(runes[:f.caret], runes[f.caret+1:]...)
			f.token.SetText(string(runes))
		}
	case key.KeyLeft:
		if f.caret > 0 {
			f.caret--
		}
	case key.KeyRight:
		if f.caret < len(runes) {
			f.caret++
		}
	case key.KeyHome:
		f.caret = 0
	case key.KeyEnd:
		f.caret = len(runes)
	default:
		return false
	}
	return true
}
