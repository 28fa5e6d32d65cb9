// Package tree provides the document model edited by arbor.
//
// A document is a tree of two node kinds:
//
//   - Collection: an interior node owning an ordered list of children.
//     An empty collection is valid; it simply cannot be descended into.
//   - Token: a leaf holding a mutable text buffer.
//
// Exactly one node, the root, is marked top. Every other node has exactly
// one parent, which is always a collection. The parent link is a direct
// back-reference; ownership flows downward through the child lists, so
// removing a node discards its whole subtree.
//
// Queries on Node (Parent, FirstChild, NextSibling, Siblings, ...) are pure.
// Structural edits go through Tree (InsertAfter, Append, Remove), which
// validate their inputs and keep the parent links consistent.
package tree
