package renderer

import (
	"strconv"

	"github.com/dshills/arbor/internal/engine/tree"
)

// Row is one laid-out node.
type Row struct {
	Node  *tree.Node
	Depth int
	Label string
}

// Layout flattens tr into rows in document order.
func Layout(tr *tree.Tree) []Row {
	rows := make([]Row, 0, tr.Count())
	tr.Walk(func(n *tree.Node, depth int) bool {
		rows = append(rows, Row{Node: n, Depth: depth, Label: label(n)})
		return true
	})
	return rows
}

func label(n *tree.Node) string {
	if n.IsCollection() {
		if n.Len() == 0 {
			return "()"
		}
		return "(" + strconv.Itoa(n.Len()) + ")"
	}
	if n.Text() == "" {
		return `""`
	}
	return n.Text()
}

// Path returns the child indices from the root to n, e.g. "0.2.1".
// The root's path is "".
func Path(n *tree.Node) string {
	var idx []int
	for p := n; p != nil && p.Parent() != nil; p = p.Parent() {
		idx = append(idx, p.Index())
	}
	b := make([]byte, 0, 2*len(idx))
	for i := len(idx) - 1; i >= 0; i-- {
		b = strconv.AppendInt(b, int64(idx[i]), 10)
		if i > 0 {
			b = append(b, '.')
		}
	}
	return string(b)
}
