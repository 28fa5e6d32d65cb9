package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample builds top[ coll[a, b], c ].
func sample(t *testing.T) (tr *Tree, coll, a, b, c *Node) {
	t.Helper()
	a = NewToken("a")
	b = NewToken("b")
	c = NewToken("c")
	coll = NewCollection(a, b)
	tr, err := New(NewCollection(coll, c))
	require.NoError(t, err)
	return tr, coll, a, b, c
}

func TestNewMarksRootTop(t *testing.T) {
	tr, coll, a, _, _ := sample(t)

	assert.True(t, tr.Root().IsTop())
	assert.False(t, coll.IsTop())
	assert.False(t, a.IsTop())
	assert.Nil(t, tr.Root().Parent())
}

func TestNewRejectsAttachedRoot(t *testing.T) {
	_, coll, _, _, _ := sample(t)

	_, err := New(coll)
	assert.ErrorIs(t, err, ErrAttached)

	_, err = New(nil)
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestSingleTokenRoot(t *testing.T) {
	tok := NewToken("solo")
	tr, err := New(tok)
	require.NoError(t, err)

	assert.True(t, tok.IsTop())
	assert.True(t, tok.IsToken())
	assert.Nil(t, tok.Siblings())
	assert.Equal(t, 1, tr.Count())
}

func TestRelations(t *testing.T) {
	tr, coll, a, b, c := sample(t)
	root := tr.Root()

	assert.Equal(t, []*Node{coll, c}, root.Children())
	assert.Equal(t, coll, root.FirstChild())
	assert.Equal(t, c, root.LastChild())
	assert.Equal(t, coll, a.Parent())
	assert.Equal(t, root, coll.Parent())

	assert.Nil(t, a.PrevSibling())
	assert.Equal(t, b, a.NextSibling())
	assert.Equal(t, a, b.PrevSibling())
	assert.Nil(t, b.NextSibling())
	assert.Equal(t, []*Node{a, b}, b.Siblings())

	assert.Equal(t, 0, a.Index())
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, -1, root.Index())
	assert.Equal(t, 2, a.Depth())
	assert.Equal(t, 2, tr.Height())
	assert.Equal(t, 0, c.Height())
}

func TestEmptyCollection(t *testing.T) {
	empty := NewCollection()

	assert.True(t, empty.IsCollection())
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.FirstChild())
	assert.Nil(t, empty.LastChild())
	assert.Nil(t, empty.Children())
}

func TestChildrenReturnsCopy(t *testing.T) {
	tr, coll, _, _, c := sample(t)

	kids := tr.Root().Children()
	kids[0] = c

	assert.Equal(t, coll, tr.Root().FirstChild())
}

func TestTextOnlyForTokens(t *testing.T) {
	tok := NewToken("x")
	tok.SetText("y")
	assert.Equal(t, "y", tok.Text())

	coll := NewCollection()
	coll.SetText("ignored")
	assert.Equal(t, "", coll.Text())
}

func TestContains(t *testing.T) {
	tr, _, a, _, _ := sample(t)

	assert.True(t, tr.Contains(a))
	assert.True(t, tr.Contains(tr.Root()))
	assert.False(t, tr.Contains(NewToken("stray")))
	assert.False(t, tr.Contains(nil))
}

func TestWalkDocumentOrder(t *testing.T) {
	tr, _, _, _, _ := sample(t)

	var texts []string
	var depths []int
	tr.Walk(func(n *Node, depth int) bool {
		if n.IsToken() {
			texts = append(texts, n.Text())
			depths = append(depths, depth)
		}
		return true
	})

	assert.Equal(t, []string{"a", "b", "c"}, texts)
	assert.Equal(t, []int{2, 2, 1}, depths)
	assert.Equal(t, 5, tr.Count())
}

func TestWalkStops(t *testing.T) {
	tr, _, _, _, _ := sample(t)

	visited := 0
	tr.Walk(func(*Node, int) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestInsertAfter(t *testing.T) {
	tr, coll, a, b, _ := sample(t)
	n := NewToken("new")

	require.NoError(t, tr.InsertAfter(a, n))

	assert.Equal(t, []*Node{a, n, b}, coll.Children())
	assert.Equal(t, coll, n.Parent())
	assert.True(t, tr.Contains(n))
}

func TestInsertAfterLast(t *testing.T) {
	tr, coll, a, b, _ := sample(t)
	n := NewToken("new")

	require.NoError(t, tr.InsertAfter(b, n))
	assert.Equal(t, []*Node{a, b, n}, coll.Children())
}

func TestInsertAfterErrors(t *testing.T) {
	tr, _, a, b, _ := sample(t)

	assert.ErrorIs(t, tr.InsertAfter(tr.Root(), NewToken("x")), ErrIsRoot)
	assert.ErrorIs(t, tr.InsertAfter(NewToken("stray"), NewToken("x")), ErrNotInTree)
	assert.ErrorIs(t, tr.InsertAfter(a, b), ErrAttached)
	assert.ErrorIs(t, tr.InsertAfter(a, nil), ErrNilNode)
}

func TestAppend(t *testing.T) {
	tr, _, a, _, c := sample(t)
	empty := NewCollection()
	require.NoError(t, tr.Append(tr.Root(), empty))

	tok := NewToken("z")
	require.NoError(t, tr.Append(empty, tok))
	assert.Equal(t, []*Node{tok}, empty.Children())
	assert.Equal(t, empty, c.NextSibling())

	assert.ErrorIs(t, tr.Append(a, NewToken("x")), ErrNotCollection)
	assert.ErrorIs(t, tr.Append(NewCollection(), NewToken("x")), ErrNotInTree)
}

func TestRemoveDiscardsSubtree(t *testing.T) {
	tr, coll, a, _, c := sample(t)
	a.SetSelected(true)

	require.NoError(t, tr.Remove(coll))

	assert.Equal(t, []*Node{c}, tr.Root().Children())
	assert.Nil(t, coll.Parent())
	assert.False(t, tr.Contains(a))
	assert.Equal(t, 2, tr.Count())
}

func TestRemoveErrors(t *testing.T) {
	tr, _, _, _, _ := sample(t)

	assert.ErrorIs(t, tr.Remove(tr.Root()), ErrIsRoot)
	assert.ErrorIs(t, tr.Remove(NewToken("stray")), ErrNotInTree)
	assert.ErrorIs(t, tr.Remove(nil), ErrNilNode)
}

func TestNewCollectionAdoptsAttachedChild(t *testing.T) {
	tr, coll, a, b, _ := sample(t)

	moved := NewCollection(a)

	assert.Equal(t, []*Node{b}, coll.Children())
	assert.Equal(t, moved, a.Parent())
	assert.False(t, tr.Contains(a))
}

func TestNewCollectionSkipsOtherRoot(t *testing.T) {
	tr, _, _, _, _ := sample(t)
	root := tr.Root()

	coll := NewCollection(root, NewToken("x"))

	assert.Equal(t, 1, coll.Len())
	assert.True(t, root.IsTop())
	assert.Nil(t, root.Parent())
	assert.True(t, tr.Contains(root))
}

func TestIDsAreUnique(t *testing.T) {
	a := NewToken("a")
	b := NewToken("a")

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "collection", KindCollection.String())
	assert.Equal(t, "token", KindToken.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
