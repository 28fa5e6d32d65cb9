// Package session holds the editor session: the document tree, its cursor,
// the current mode and the text-input surface, all owned by one value
// instead of process-wide globals.
//
// The session implements the structural mutations and the edit-mode
// controller on top of the navigator:
//
//   - InsertToken adds an empty token after the selection and starts
//     editing it.
//   - DeleteSelected moves the cursor off the selection (right, else up)
//     and removes it with its subtree.
//   - EnableEditMode descends to the first token under the selection and
//     binds it to the text-input surface.
//   - DisableEditMode releases the token and prunes it when it was left
//     empty.
//
// Deleting the root is refused with ErrDeleteRoot so the cursor never
// refers to a node outside the tree.
package session
