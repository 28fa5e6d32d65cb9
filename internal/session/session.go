package session

import (
	"io"
	"log/slog"

	"github.com/dshills/arbor/internal/engine/cursor"
	"github.com/dshills/arbor/internal/engine/navigator"
	"github.com/dshills/arbor/internal/engine/tree"
	"github.com/dshills/arbor/internal/input/mode"
	"github.com/dshills/arbor/internal/input/textinput"
)

// Session is the state one input loop operates on.
type Session struct {
	tree    *tree.Tree
	cursor  *cursor.Cursor
	nav     *navigator.Navigator
	modes   *mode.Manager
	surface textinput.Surface
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithSurface sets the text-input surface. Defaults to a textinput.Field.
func WithSurface(s textinput.Surface) Option {
	return func(sess *Session) {
		sess.surface = s
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(sess *Session) {
		sess.logger = l
	}
}

// WithModeManager sets the mode manager. Defaults to mode.NewDefaultManager.
func WithModeManager(m *mode.Manager) Option {
	return func(sess *Session) {
		sess.modes = m
	}
}

// New creates a session over tr in navigate mode with the root selected.
func New(tr *tree.Tree, opts ...Option) *Session {
	s := &Session{tree: tr}
	for _, opt := range opts {
		opt(s)
	}
	if s.surface == nil {
		s.surface = textinput.NewField()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.modes == nil {
		s.modes = mode.NewDefaultManager()
	}
	s.logger = s.logger.With("component", "session")

	s.cursor = cursor.New(tr)
	s.nav = navigator.New(s.cursor)
	return s
}

// Tree returns the document tree.
func (s *Session) Tree() *tree.Tree { return s.tree }

// Cursor returns the selection cursor.
func (s *Session) Cursor() *cursor.Cursor { return s.cursor }

// Navigator returns the navigator driving the cursor.
func (s *Session) Navigator() *navigator.Navigator { return s.nav }

// Modes returns the mode manager.
func (s *Session) Modes() *mode.Manager { return s.modes }

// Surface returns the text-input surface.
func (s *Session) Surface() textinput.Surface { return s.surface }

// Current returns the selected node.
func (s *Session) Current() *tree.Node {
	return s.cursor.Current()
}

// Select moves the selection to n. It is used by bootstrap code to place
// the initial cursor; see cursor.Cursor.Select.
func (s *Session) Select(n *tree.Node) bool {
	return s.cursor.Select(n)
}

// Editing reports whether the session is in edit mode.
func (s *Session) Editing() bool {
	return s.modes.IsMode(mode.ModeEdit)
}
