package tree

import (
	"errors"
	"fmt"
)

// Structural edit errors.
var (
	ErrNilNode       = errors.New("nil node")
	ErrNotInTree     = errors.New("node is not part of the tree")
	ErrIsRoot        = errors.New("operation not allowed on the root node")
	ErrNotCollection = errors.New("node is not a collection")
	ErrAttached      = errors.New("node is already attached to a parent")
)

// Tree is a document with exactly one root node.
type Tree struct {
	root *Node
}

// New creates a tree rooted at root. The root must be detached.
func New(root *Node) (*Tree, error) {
	if root == nil {
		return nil, ErrNilNode
	}
	if root.parent != nil {
		return nil, fmt.Errorf("new tree: %w", ErrAttached)
	}
	root.top = true
	return &Tree{root: root}, nil
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Contains reports whether n is reachable from the root.
func (t *Tree) Contains(n *Node) bool {
	if n == nil {
		return false
	}
	for cur := n; cur != nil; cur = cur.parent {
		if cur == t.root {
			return true
		}
	}
	return false
}

// Walk visits every node in document order (pre-order), passing its depth
// relative to the root. Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.children {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the tree.
func (t *Tree) Count() int {
	count := 0
	t.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Height returns the height of the root.
func (t *Tree) Height() int {
	return t.root.Height()
}

// InsertAfter places n immediately after anchor in anchor's parent.
func (t *Tree) InsertAfter(anchor, n *Node) error {
	if anchor == nil || n == nil {
		return ErrNilNode
	}
	if !t.Contains(anchor) {
		return fmt.Errorf("insert after: %w", ErrNotInTree)
	}
	if anchor.parent == nil {
		return fmt.Errorf("insert after: %w", ErrIsRoot)
	}
	if n.parent != nil || n.top {
		return fmt.Errorf("insert after: %w", ErrAttached)
	}
	anchor.parent.insertAt(anchor.Index()+1, n)
	return nil
}

// Append adds n as the last child of parent.
func (t *Tree) Append(parent, n *Node) error {
	if parent == nil || n == nil {
		return ErrNilNode
	}
	if !t.Contains(parent) {
		return fmt.Errorf("append: %w", ErrNotInTree)
	}
	if !parent.IsCollection() {
		return fmt.Errorf("append: %w", ErrNotCollection)
	}
	if n.parent != nil || n.top {
		return fmt.Errorf("append: %w", ErrAttached)
	}
	parent.insertAt(len(parent.children), n)
	return nil
}

// Remove detaches n and its subtree from the tree.
func (t *Tree) Remove(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if !t.Contains(n) {
		return fmt.Errorf("remove: %w", ErrNotInTree)
	}
	if n == t.root {
		return fmt.Errorf("remove: %w", ErrIsRoot)
	}
	n.detach()
	n.selected = false
	return nil
}
