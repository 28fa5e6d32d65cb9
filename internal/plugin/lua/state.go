package lua

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/arbor/internal/engine/tree"
)

// DefaultExecutionTimeout bounds a single script run.
const DefaultExecutionTimeout = 5 * time.Second

// State wraps gopher-lua for building documents.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes calls
// from Go.
type State struct {
	L *lua.LState

	mu sync.Mutex

	executionTimeout time.Duration
	logger           *slog.Logger
	sandbox          *Sandbox

	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the timeout for one script run.
// Zero disables the timeout.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.executionTimeout = d
	}
}

// WithLogger sets the logger that receives print output.
func WithLogger(l *slog.Logger) StateOption {
	return func(s *State) {
		s.logger = l
	}
}

// NewState creates a new sandboxed Lua state with the document
// constructors installed.
func NewState(opts ...StateOption) (*State, error) {
	state := &State{
		executionTimeout: DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(state)
	}
	if state.logger == nil {
		state.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	state.logger = state.logger.With("component", "lua")

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	state.L = L

	openSafeLibraries(L)

	state.sandbox = NewSandbox(L, state.logger)
	state.sandbox.Install()
	installConstructors(L)

	return state, nil
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// Build runs script and returns the root node it produces.
func (s *State) Build(ctx context.Context, script string) (*tree.Node, error) {
	return s.build(ctx, func() error { return s.L.DoString(script) })
}

// BuildFile runs the script at path and returns the root node it produces.
func (s *State) BuildFile(ctx context.Context, path string) (*tree.Node, error) {
	return s.build(ctx, func() error { return s.L.DoFile(path) })
}

func (s *State) build(ctx context.Context, run func() error) (*tree.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStateClosed
	}

	if s.executionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.executionTimeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	top := s.L.GetTop()
	if err := s.doWithRecovery(run); err != nil {
		s.L.SetTop(top)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
		}
		return nil, err
	}

	if s.L.GetTop() == top {
		return nil, ErrNoDocument
	}
	ret := s.L.Get(top + 1)
	s.L.SetTop(top)

	root, err := toNode(ret, 0)
	if err != nil {
		return nil, err
	}
	if root.Parent() != nil {
		return nil, ErrAttachedRoot
	}
	s.logger.Debug("document built", "nodes", countNodes(root))
	return root, nil
}

// doWithRecovery executes a function with panic recovery.
func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Sandbox returns the state's sandbox.
func (s *State) Sandbox() *Sandbox {
	return s.sandbox
}

// IsClosed returns true if the state has been closed.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases all resources associated with the Lua state.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}

// BuildDocument runs script in a fresh state and returns its root node.
func BuildDocument(ctx context.Context, script string, opts ...StateOption) (*tree.Node, error) {
	state, err := NewState(opts...)
	if err != nil {
		return nil, err
	}
	defer state.Close()
	return state.Build(ctx, script)
}

// BuildDocumentFile runs the script at path in a fresh state.
func BuildDocumentFile(ctx context.Context, path string, opts ...StateOption) (*tree.Node, error) {
	state, err := NewState(opts...)
	if err != nil {
		return nil, err
	}
	defer state.Close()

	root, err := state.BuildFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func countNodes(n *tree.Node) int {
	count := 1
	for _, child := range n.Children() {
		count += countNodes(child)
	}
	return count
}
