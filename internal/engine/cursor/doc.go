// Package cursor tracks the single selected node of a document tree.
//
// The Cursor is the only place allowed to change which node is selected.
// Select clears the mark on the previously selected node, marks the new
// one and notifies change callbacks, so renderers can follow the
// selection without polling:
//
//	c := cursor.New(tr)
//	c.OnChange(func(from, to *tree.Node) { redraw() })
//	c.Select(tr.Root().FirstChild())
//
// Thread Safety:
//
// Cursor is not thread-safe. It is owned by one editor session and driven
// from the input loop.
package cursor
