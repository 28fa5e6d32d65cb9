package cursor

import (
	"github.com/dshills/arbor/internal/engine/tree"
)

// ChangeCallback is called after the selection moves.
// from is nil for the first selection.
type ChangeCallback func(from, to *tree.Node)

// Cursor references exactly one node of a tree.
type Cursor struct {
	tree      *tree.Tree
	selected  *tree.Node
	callbacks []ChangeCallback
}

// New creates a cursor over tr with the root selected.
func New(tr *tree.Tree) *Cursor {
	c := &Cursor{tree: tr}
	c.Select(tr.Root())
	return c
}

// Tree returns the tree the cursor moves over.
func (c *Cursor) Tree() *tree.Tree {
	return c.tree
}

// Current returns the selected node.
func (c *Cursor) Current() *tree.Node {
	return c.selected
}

// Select makes n the selected node.
//
// n must belong to the cursor's tree. A nil node or a node outside the
// tree leaves the selection unchanged and Select returns false.
// Selecting the already selected node is allowed and still notifies
// callbacks.
func (c *Cursor) Select(n *tree.Node) bool {
	if n == nil || !c.tree.Contains(n) {
		return false
	}

	prev := c.selected
	prev.SetSelected(false)
	c.selected = n
	n.SetSelected(true)

	for _, cb := range c.callbacks {
		if cb != nil {
			cb(prev, n)
		}
	}
	return true
}

// OnChange registers a callback invoked after every successful Select.
func (c *Cursor) OnChange(cb ChangeCallback) {
	c.callbacks = append(c.callbacks, cb)
}

// Valid reports whether the selected node is still part of the tree.
func (c *Cursor) Valid() bool {
	return c.tree.Contains(c.selected)
}
