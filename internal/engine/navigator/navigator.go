// Package navigator implements structural cursor movement over a document
// tree: parent/child/sibling moves and the depth-first walk used for
// tab-order editing.
//
// Every operation is total. It either moves the cursor through
// cursor.Select or leaves it where it is, and reports which happened.
package navigator

import (
	"github.com/dshills/arbor/internal/engine/cursor"
	"github.com/dshills/arbor/internal/engine/tree"
)

// Navigator moves a cursor around its tree.
type Navigator struct {
	cur *cursor.Cursor
}

// New creates a navigator driving c.
func New(c *cursor.Cursor) *Navigator {
	return &Navigator{cur: c}
}

// Cursor returns the driven cursor.
func (n *Navigator) Cursor() *cursor.Cursor {
	return n.cur
}

// move selects target if it differs from the current node.
func (n *Navigator) move(target *tree.Node) bool {
	if target == nil || target == n.cur.Current() {
		return false
	}
	return n.cur.Select(target)
}

// GoDown selects the first child of the current collection.
// No-op on tokens and empty collections.
func (n *Navigator) GoDown() bool {
	cur := n.cur.Current()
	if !cur.IsCollection() {
		return false
	}
	return n.move(cur.FirstChild())
}

// GoUp selects the parent of the current node. No-op on the root.
func (n *Navigator) GoUp() bool {
	return n.move(n.cur.Current().Parent())
}

// GoLeft selects the previous sibling, wrapping around to the last one.
// No-op on the root and on an only child.
func (n *Navigator) GoLeft() bool {
	cur := n.cur.Current()
	if cur.IsTop() {
		return false
	}
	if prev := cur.PrevSibling(); prev != nil {
		return n.move(prev)
	}
	return n.move(cur.Parent().LastChild())
}

// GoRight selects the next sibling, wrapping around to the first one.
// No-op on the root and on an only child.
func (n *Navigator) GoRight() bool {
	cur := n.cur.Current()
	if cur.IsTop() {
		return false
	}
	if next := cur.NextSibling(); next != nil {
		return n.move(next)
	}
	return n.move(cur.Parent().FirstChild())
}

// WalkDown descends through first children until it reaches a token or an
// empty collection.
func (n *Navigator) WalkDown() bool {
	moved := false
	for n.cur.Current().IsCollection() && n.cur.Current().Len() > 0 {
		if !n.GoDown() {
			break
		}
		moved = true
	}
	return moved
}

// WalkRight moves to the next node in document order.
//
// With a next sibling it simply selects it. Otherwise it runs GoUp, GoRight
// and WalkDown in sequence, each from wherever the previous step left the
// cursor. When GoUp lands on the root, GoRight does nothing and WalkDown
// wraps the walk back to the first leaf of the document.
func (n *Navigator) WalkRight() bool {
	cur := n.cur.Current()
	if cur.IsTop() {
		return false
	}
	if next := cur.NextSibling(); next != nil {
		return n.move(next)
	}
	up := n.GoUp()
	right := n.GoRight()
	down := n.WalkDown()
	return (up || right || down) && n.cur.Current() != cur
}
