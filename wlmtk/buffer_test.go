package wlmtk

import (
	"image"
	"testing"

	"github.com/mstarongithub/wlmaker/gfxbuf"
	"github.com/mstarongithub/wlmaker/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBuffer creates a buffer whose drops are counted in *drops
func newTestBuffer(t *testing.T, width, height int, drops *int) *gfxbuf.Buffer {
	t.Helper()
	b, err := gfxbuf.New(width, height)
	require.NoError(t, err)
	b.OnDrop(func(*gfxbuf.Buffer) { *drops++ })
	return b
}

func TestBufferSetSetDestroy(t *testing.T) {
	var drops1, drops2 int
	buf1 := newTestBuffer(t, 2, 3, &drops1)
	buf2 := newTestBuffer(t, 4, 5, &drops2)

	b := NewBuffer(buf1)
	buf1.Unlock()
	assert.Equal(t, 1, buf1.Refs())

	b.SetBuffer(buf2)
	buf2.Unlock()
	assert.Equal(t, 1, drops1)
	assert.Zero(t, drops2)
	assert.Same(t, buf2, b.CurrentBuffer())

	b.Destroy()
	assert.Equal(t, 1, drops1)
	assert.Equal(t, 1, drops2)
	assert.Nil(t, b.CurrentBuffer())
}

func TestBufferSetSameIsNoop(t *testing.T) {
	var drops int
	buf := newTestBuffer(t, 1, 1, &drops)
	b := NewBuffer(buf)
	b.SetBuffer(buf)
	assert.Equal(t, 2, buf.Refs())
	buf.Unlock()
	b.Destroy()
	assert.Equal(t, 1, drops)
}

func TestBufferDimensions(t *testing.T) {
	b := NewBuffer(nil)
	_, ok := b.Dimensions()
	assert.False(t, ok)
	w, h := b.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	var drops int
	buf := newTestBuffer(t, 7, 3, &drops)
	b.SetBuffer(buf)
	buf.Unlock()
	dims, ok := b.Dimensions()
	assert.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 7, 3), dims)

	b.SetBuffer(nil)
	_, ok = b.Dimensions()
	assert.False(t, ok)
	b.Destroy()
}

func TestEmptyBufferNotHit(t *testing.T) {
	c := NewContainer("c")
	defer c.Destroy()
	b := NewBuffer(nil)
	b.SetVisible(true)
	require.NoError(t, c.AddElement(&b.Element))

	assert.False(t, c.PointerMotion(0, 0, 0))
	assert.Nil(t, c.PointerFocus())
	_, ok := c.Dimensions()
	assert.False(t, ok)
}

func TestBufferSceneNode(t *testing.T) {
	s := scene.New()
	root := NewRoot(s.Root(), nil)

	var drops1, drops2 int
	buf1 := newTestBuffer(t, 2, 2, &drops1)
	buf2 := newTestBuffer(t, 2, 2, &drops2)
	b := NewBuffer(buf1)
	buf1.Unlock()
	b.SetVisible(true)
	b.SetPosition(5, 5)
	require.NoError(t, root.AddElement(&b.Element))

	node, x, y := s.NodeAt(6, 6)
	require.NotNil(t, node)
	assert.Same(t, buf1, node.Buffer())
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	b.SetBuffer(buf2)
	buf2.Unlock()
	assert.Same(t, buf2, node.Buffer())

	b.SetVisible(false)
	node, _, _ = s.NodeAt(6, 6)
	assert.Nil(t, node)

	b.Destroy()
	assert.Empty(t, s.Root().Children())
	assert.Equal(t, 1, drops2)
}
