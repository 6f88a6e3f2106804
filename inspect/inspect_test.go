package inspect

import (
	"testing"

	"github.com/mstarongithub/wlmaker/gfxbuf"
	"github.com/mstarongithub/wlmaker/scene"
	"github.com/mstarongithub/wlmaker/wlmtk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRootWithWindow(t *testing.T) (*wlmtk.Root, *wlmtk.Window) {
	t.Helper()
	root := wlmtk.NewRoot(scene.New().Root(), nil)
	content, err := wlmtk.NewFill(120, 80, gfxbuf.SolidFill(0xff000000))
	require.NoError(t, err)
	w, err := wlmtk.NewWindow(nil, content, wlmtk.DefaultStyle().Window)
	require.NoError(t, err)
	require.NoError(t, w.SetTitle("foot"))
	w.SetPosition(10, 20)
	require.NoError(t, root.MapWindow(w))
	return root, w
}

func TestElementTree(t *testing.T) {
	root, _ := newRootWithWindow(t)
	defer root.Destroy()

	out := ElementTree(root.AsElement())
	assert.Contains(t, out, "root @0,0")
	assert.Contains(t, out, "window @10,20")
	assert.Contains(t, out, "titlebar-title")
	assert.Contains(t, out, "resizebar-center")
	assert.Contains(t, out, "fill @0,")
}

func TestWindows(t *testing.T) {
	root, w := newRootWithWindow(t)
	defer root.Destroy()

	res := Windows(root)
	require.Len(t, res.Windows, 1)
	info := res.Windows[0]
	assert.Equal(t, "foot", info.Title)
	assert.Equal(t, 10, info.X)
	assert.Equal(t, 20, info.Y)
	assert.Equal(t, 120, info.Width)
	_, height := w.Size()
	assert.Equal(t, height, info.Height)
	assert.True(t, info.Activated)
	assert.True(t, info.Visible)

	root.UnmapWindow(w)
	assert.Empty(t, Windows(root).Windows)
}
