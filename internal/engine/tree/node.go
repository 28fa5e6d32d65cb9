package tree

import (
	"github.com/google/uuid"
)

// Kind identifies the variant of a Node.
type Kind uint8

const (
	// KindCollection is an interior node owning an ordered list of children.
	KindCollection Kind = iota

	// KindToken is a leaf node holding editable text.
	KindToken
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindCollection:
		return "collection"
	case KindToken:
		return "token"
	default:
		return "unknown"
	}
}

// Node is a single element of the document tree.
//
// A Node is either a Collection or a Token. Collections own their children;
// the parent pointer is a plain back-reference used for upward movement.
// Nodes are not safe for concurrent use.
type Node struct {
	id       string
	kind     Kind
	text     string
	parent   *Node
	children []*Node
	top      bool
	selected bool
}

// NewCollection creates a collection owning the given children.
// Children that are still attached elsewhere are detached first. Nil
// children and roots of existing trees are skipped.
func NewCollection(children ...*Node) *Node {
	n := &Node{
		id:   uuid.NewString(),
		kind: KindCollection,
	}
	for _, child := range children {
		if child == nil || child.top {
			continue
		}
		child.detach()
		child.parent = n
		n.children = append(n.children, child)
	}
	return n
}

// NewToken creates a detached token with the given text.
func NewToken(text string) *Node {
	return &Node{
		id:   uuid.NewString(),
		kind: KindToken,
		text: text,
	}
}

// ID returns the node's stable identity.
func (n *Node) ID() string {
	return n.id
}

// Kind returns the node variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsCollection reports whether n is a collection.
func (n *Node) IsCollection() bool {
	return n != nil && n.kind == KindCollection
}

// IsToken reports whether n is a token.
func (n *Node) IsToken() bool {
	return n != nil && n.kind == KindToken
}

// IsTop reports whether n is the root of its tree.
func (n *Node) IsTop() bool {
	return n != nil && n.top
}

// Selected reports whether the cursor currently rests on n.
func (n *Node) Selected() bool {
	return n != nil && n.selected
}

// SetSelected sets the selection mark. Only the cursor should call this.
func (n *Node) SetSelected(selected bool) {
	if n != nil {
		n.selected = selected
	}
}

// Text returns the token text. Collections have no text.
func (n *Node) Text() string {
	if n.kind != KindToken {
		return ""
	}
	return n.text
}

// SetText replaces the token text. It is ignored for collections.
func (n *Node) SetText(text string) {
	if n.kind == KindToken {
		n.text = text
	}
}

// Parent returns the owning collection, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the child at index i, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	return n.Child(0)
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	return n.Child(len(n.children) - 1)
}

// Index returns the position of n among its siblings, or -1 without a parent.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, sib := range n.parent.children {
		if sib == n {
			return i
		}
	}
	return -1
}

// PrevSibling returns the sibling immediately before n, or nil.
func (n *Node) PrevSibling() *Node {
	i := n.Index()
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

// NextSibling returns the sibling immediately after n, or nil.
func (n *Node) NextSibling() *Node {
	i := n.Index()
	if i < 0 {
		return nil
	}
	return n.parent.Child(i + 1)
}

// Siblings returns all children of n's parent, n included.
// A node without a parent has no siblings.
func (n *Node) Siblings() []*Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.Children()
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Height returns the length of the longest downward path from n.
// A leaf has height 0.
func (n *Node) Height() int {
	h := 0
	for _, child := range n.children {
		if ch := child.Height() + 1; ch > h {
			h = ch
		}
	}
	return h
}

// detach removes n from its parent's child list.
func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	i := n.Index()
	if i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
}

// insertAt places child at position i of n's child list.
func (n *Node) insertAt(i int, child *Node) {
	if i < 0 {
		i = 0
	}
	if i > len(n.children) {
		i = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	child.parent = n
}
