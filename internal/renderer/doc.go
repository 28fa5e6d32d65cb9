// Package renderer draws a session's tree on a backend.
//
// The tree is laid out as an indented outline with one node per row:
// tokens show their text and collections show their child count. The
// selected row is highlighted, with a different color while editing, and
// the terminal cursor marks the caret of the token being edited. The last
// row is a status line with the mode name.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(sess)
package renderer
