package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafNode(labels ...string) *Node {
	n := newNode()
	for _, label := range labels {
		n.AddLeaf(label)
	}
	return n
}

func TestAddLeaf(t *testing.T) {
	n := leafNode("b", "a")
	assert.Equal(t, []string{"b", "a"}, n.Local, "insertion order is kept")
	assert.Equal(t, []string{"a", "b"}, n.Leaves())
}

func TestIsSupersetOf(t *testing.T) {
	n := leafNode("a", "b", "c")
	assert.True(t, n.IsSupersetOf(leafNode("b")))
	assert.True(t, n.IsSupersetOf(leafNode("c", "a")))
	assert.False(t, n.IsSupersetOf(leafNode("a", "d")))
	assert.True(t, n.IsSupersetOf(newNode()), "an empty candidate is covered")
}

func TestInsert(t *testing.T) {
	t.Run("attaches at the deepest covering node", func(t *testing.T) {
		root := leafNode("a", "b", "c", "d")
		inner := leafNode("a", "b")
		root.Insert(inner)
		require.Equal(t, []*Node{inner}, root.Children)
		assert.Equal(t, []string{"c", "d"}, root.Local)

		leaf := leafNode("b")
		root.Insert(leaf)
		require.Len(t, root.Children, 1, "leaf b belongs under the inner node")
		require.Equal(t, []*Node{leaf}, inner.Children)
		assert.Equal(t, []string{"a"}, inner.Local)
		assert.Equal(t, []string{"c", "d"}, root.Local)
	})

	t.Run("disjoint candidates become siblings", func(t *testing.T) {
		root := leafNode("a", "b", "c", "d")
		ab := leafNode("a", "b")
		cd := leafNode("c", "d")
		root.Insert(ab)
		root.Insert(cd)
		assert.Equal(t, []*Node{ab, cd}, root.Children)
		assert.Empty(t, root.Local)
	})

	t.Run("reinserting a placed candidate is a no-op", func(t *testing.T) {
		root := leafNode("a", "b", "c")
		leaf := leafNode("b")
		root.Insert(leaf)
		root.Insert(leaf)

		require.Len(t, root.Children, 1)
		assert.Empty(t, leaf.Children)
		assert.Equal(t, []string{"a", "c"}, root.Local)
	})

	t.Run("removal is idempotent along the path", func(t *testing.T) {
		// Once b has been delegated, inserting a finer candidate that
		// also names b must not disturb the receiver's remaining leaves.
		root := leafNode("a", "b", "c")
		root.Insert(leafNode("b"))
		assert.Equal(t, []string{"a", "c"}, root.Local)
		root.dropLocal([]string{"b"})
		assert.Equal(t, []string{"a", "c"}, root.Local)
	})
}

func TestNodeString(t *testing.T) {
	root := leafNode("a", "b", "c")
	root.Insert(leafNode("b"))
	root.Insert(leafNode("c"))

	assert.Equal(t, "a\n  b\n  c\n", root.String())

	empty := newNode()
	assert.Equal(t, "N/A\n", empty.String())
}
