package mode

import (
	"errors"

	"github.com/dshills/arbor/internal/engine/tree"
)

// Mode names.
const (
	ModeNavigate = "navigate"
	ModeEdit     = "edit"
)

// ErrNotToken is returned when edit mode is entered without a token.
var ErrNotToken = errors.New("edit mode requires a token")

// Mode is one editor mode. Enter may refuse the transition by returning
// an error; the manager then keeps the old mode.
type Mode interface {
	Name() string
	// DisplayName is shown in the status line.
	DisplayName() string
	CursorStyle() CursorStyle
	Enter(ctx *Context) error
	Exit(ctx *Context) error
}

// Context describes a transition. PreviousMode is set for Enter and
// NextMode for Exit; Node is the selection at the time of the switch.
type Context struct {
	PreviousMode string
	NextMode     string
	Node         *tree.Node
}

// NewContext returns a transition context for node.
func NewContext(node *tree.Node) *Context {
	return &Context{Node: node}
}

// CursorStyle is the terminal caret shape a mode asks for.
type CursorStyle uint8

const (
	CursorHidden CursorStyle = iota // navigate highlights whole rows
	CursorBar
	CursorBlock
)

var cursorStyleNames = [...]string{"hidden", "bar", "block"}

func (c CursorStyle) String() string {
	if int(c) < len(cursorStyleNames) {
		return cursorStyleNames[c]
	}
	return "unknown"
}
