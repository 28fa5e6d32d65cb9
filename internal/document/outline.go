package document

import (
	"strconv"
	"strings"

	"github.com/dshills/arbor/internal/engine/tree"
)

// Outline renders a tree on one line: collections in parentheses,
// tokens as their text. The selected node is wrapped in brackets.
// Tokens that are empty or contain spaces or delimiters are quoted.
//
//	(defn [greet] (name))
func Outline(tr *tree.Tree) string {
	var sb strings.Builder
	writeNode(&sb, tr.Root())
	return sb.String()
}

func writeNode(sb *strings.Builder, n *tree.Node) {
	if n.Selected() {
		sb.WriteByte('[')
	}
	if n.IsCollection() {
		sb.WriteByte('(')
		for i, child := range n.Children() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeNode(sb, child)
		}
		sb.WriteByte(')')
	} else {
		sb.WriteString(tokenText(n.Text()))
	}
	if n.Selected() {
		sb.WriteByte(']')
	}
}

func tokenText(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n()[]") {
		return strconv.Quote(s)
	}
	return s
}
