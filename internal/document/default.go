package document

import "github.com/dshills/arbor/internal/engine/tree"

// Default returns the built-in seed document:
//
//	(defn greet (name) (str "hello, " name))
//
// The root holds at least one child so an insertion point always exists.
func Default() *tree.Node {
	return tree.NewCollection(
		tree.NewCollection(
			tree.NewToken("defn"),
			tree.NewToken("greet"),
			tree.NewCollection(tree.NewToken("name")),
			tree.NewCollection(
				tree.NewToken("str"),
				tree.NewToken(`"hello, "`),
				tree.NewToken("name"),
			),
		),
	)
}
