// Package mode provides the two editing modes of arbor and the manager
// that switches between them.
//
//   - Navigate: keys move the cursor and edit the tree structure.
//   - Edit: the selected token's text is bound to the text-input surface;
//     keys not claimed by the edit keymap are typed into it.
//
// # Mode Lifecycle
//
// When switching modes:
// 1. Current mode's Exit() is called
// 2. New mode's Enter() is called
// 3. Mode change callbacks are notified
//
// The edit mode refuses to be entered unless the transition context
// carries a token, so the manager can never report Edit while the cursor
// rests on a collection.
package mode
