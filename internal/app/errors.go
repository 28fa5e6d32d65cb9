// Package app wires arbor together: configuration, the seed document, the
// session, the dispatcher and the renderer, plus the event loop that drives
// them.
package app

import (
	"errors"
	"strings"
)

var (
	// ErrQuit ends the event loop normally; Run returns nil for it.
	ErrQuit                = errors.New("quit requested")
	ErrAlreadyRunning      = errors.New("application already running")
	ErrNoBackend           = errors.New("no backend")
	ErrUnsupportedDocument = errors.New("unsupported document type")
)

// OperationError wraps a failure with the operation and what it acted on,
// e.g. "load seed.yaml: ..." or "bind navigate (key j): ...".
type OperationError struct {
	Op      string
	Target  string
	Context string
	Err     error
}

// NewOperationError creates an OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

// WithContext attaches a short note shown in parentheses. It is nil-safe.
func (e *OperationError) WithContext(ctx string) *OperationError {
	if e != nil {
		e.Context = ctx
	}
	return e
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Target != "" {
		b.WriteString(" " + e.Target)
	}
	if e.Context != "" {
		b.WriteString(" (" + e.Context + ")")
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
