package mode

import (
	"fmt"

	"github.com/dshills/arbor/internal/engine/tree"
)

// EditMode binds the selected token to the text-input surface.
type EditMode struct {
	// token is the token being edited, nil outside edit mode.
	token *tree.Node
}

// NewEditMode creates a new edit mode instance.
func NewEditMode() *EditMode {
	return &EditMode{}
}

// Name returns the mode identifier.
func (m *EditMode) Name() string {
	return ModeEdit
}

// DisplayName returns the human-readable mode name.
func (m *EditMode) DisplayName() string {
	return "EDIT"
}

// CursorStyle returns the cursor style for edit mode.
func (m *EditMode) CursorStyle() CursorStyle {
	return CursorBar
}

// Enter records the token being edited. The context must carry a token.
func (m *EditMode) Enter(ctx *Context) error {
	if ctx == nil || !ctx.Node.IsToken() {
		return fmt.Errorf("enter %s: %w", ModeEdit, ErrNotToken)
	}
	m.token = ctx.Node
	return nil
}

// Exit forgets the edited token.
func (m *EditMode) Exit(_ *Context) error {
	m.token = nil
	return nil
}

// Token returns the token being edited, or nil.
func (m *EditMode) Token() *tree.Node {
	return m.token
}
