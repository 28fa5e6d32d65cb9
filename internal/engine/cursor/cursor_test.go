package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/arbor/internal/engine/tree"
)

func newTree(t *testing.T) (*tree.Tree, *tree.Node, *tree.Node) {
	t.Helper()
	a := tree.NewToken("a")
	b := tree.NewToken("b")
	tr, err := tree.New(tree.NewCollection(a, b))
	require.NoError(t, err)
	return tr, a, b
}

func TestNewSelectsRoot(t *testing.T) {
	tr, _, _ := newTree(t)
	c := New(tr)

	assert.Equal(t, tr.Root(), c.Current())
	assert.True(t, tr.Root().Selected())
	assert.True(t, c.Valid())
}

func TestSelectMovesMark(t *testing.T) {
	tr, a, b := newTree(t)
	c := New(tr)

	require.True(t, c.Select(a))
	assert.True(t, a.Selected())
	assert.False(t, tr.Root().Selected())

	require.True(t, c.Select(b))
	assert.True(t, b.Selected())
	assert.False(t, a.Selected())
	assert.Equal(t, b, c.Current())
}

func TestSelectRejectsForeignNode(t *testing.T) {
	tr, a, _ := newTree(t)
	c := New(tr)
	c.Select(a)

	stray := tree.NewToken("stray")
	assert.False(t, c.Select(stray))
	assert.False(t, c.Select(nil))
	assert.Equal(t, a, c.Current())
	assert.False(t, stray.Selected())
}

func TestOnChange(t *testing.T) {
	tr, a, b := newTree(t)
	c := New(tr)

	var moves [][2]*tree.Node
	c.OnChange(func(from, to *tree.Node) {
		moves = append(moves, [2]*tree.Node{from, to})
	})

	c.Select(a)
	c.Select(b)
	c.Select(tree.NewToken("ignored"))

	require.Len(t, moves, 2)
	assert.Equal(t, [2]*tree.Node{tr.Root(), a}, moves[0])
	assert.Equal(t, [2]*tree.Node{a, b}, moves[1])
}

func TestValidAfterRemoval(t *testing.T) {
	tr, a, _ := newTree(t)
	c := New(tr)
	c.Select(a)

	require.NoError(t, tr.Remove(a))
	assert.False(t, c.Valid())
}
