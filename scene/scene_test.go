package scene

import (
	"testing"

	"github.com/mstarongithub/wlmaker/gfxbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertChildren(t *testing.T, parent Tree, want ...Node) {
	t.Helper()
	got := parent.Children()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Same(t, want[i], got[i], "child %d", i)
	}
}

func TestTreeStructure(t *testing.T) {
	s := New()
	sub := s.Root().NewTree()
	a := sub.NewBuffer(nil)
	b := sub.NewBuffer(nil)

	assert.Same(t, s.Root(), sub.Parent())
	assertChildren(t, sub, a, b)

	a.RaiseToTop()
	assertChildren(t, sub, b, a)

	b.PlaceAbove(a)
	assertChildren(t, sub, a, b)

	b.LowerToBottom()
	assertChildren(t, sub, b, a)
	b.PlaceAbove(a)

	other := s.Root().NewTree()
	a.Reparent(other)
	assertChildren(t, sub, b)
	assertChildren(t, other, a)
	assert.Same(t, other, a.Parent())
}

func TestDestroyIsRecursive(t *testing.T) {
	s := New()
	sub := s.Root().NewTree()
	leaf := sub.NewTree().NewBuffer(nil)

	var order []string
	leaf.OnDestroy(func() { order = append(order, "leaf") })
	sub.OnDestroy(func() { order = append(order, "sub") })

	sub.Destroy()
	assert.Equal(t, []string{"leaf", "sub"}, order)
	assert.Empty(t, s.Root().Children())

	// Listeners run only once
	sub.Destroy()
	assert.Len(t, order, 2)
}

func TestNodeAt(t *testing.T) {
	s := New()
	low, err := gfxbuf.New(10, 10)
	require.NoError(t, err)
	high, err := gfxbuf.New(4, 4)
	require.NoError(t, err)

	sub := s.Root().NewTree()
	sub.SetPosition(100, 100)
	lowNode := sub.NewBuffer(low)
	highNode := sub.NewBuffer(high)
	highNode.SetPosition(2, 2)

	n, x, y := s.NodeAt(103, 104)
	assert.Same(t, highNode, n)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)

	n, _, _ = s.NodeAt(108, 108)
	assert.Same(t, lowNode, n)

	highNode.SetEnabled(false)
	n, _, _ = s.NodeAt(103, 104)
	assert.Same(t, lowNode, n)

	n, _, _ = s.NodeAt(5, 5)
	assert.Nil(t, n)
}
