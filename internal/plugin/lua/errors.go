package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs past its timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNoDocument is returned when a script does not return a node.
	ErrNoDocument = errors.New("lua script did not return a document")

	// ErrAttachedRoot is returned when a script returns a node that
	// already belongs to a collection.
	ErrAttachedRoot = errors.New("lua script returned a nested node")
)
