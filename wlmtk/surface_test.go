package wlmtk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pendingClient struct {
	requests [][2]int
}

func (c *pendingClient) RequestSize(width, height int) error {
	c.requests = append(c.requests, [2]int{width, height})
	return nil
}

func TestSurfaceInWindow(t *testing.T) {
	client := &pendingClient{}
	surface := NewSurface(client)
	surface.Commit(100, 50)

	r, _ := newTestRoot(t)
	defer r.Destroy()
	w, err := NewWindow(r.Env(), surface, DefaultStyle().Window)
	require.NoError(t, err)
	require.NoError(t, r.MapWindow(w))
	assert.Equal(t, 100, w.Titlebar().Width())

	// Events over the surface are left to the client
	_, y := surface.Position()
	assert.False(t, r.PointerMotion(10, float64(y)+10, 0))
	assert.Same(t, &w.Element, r.PointerFocus())
	assert.False(t, r.PointerButton(leftDown()))
	assert.False(t, r.Keyboard(&KeyEvent{Pressed: true}))

	// Resizing waits for the client
	require.NoError(t, w.RequestSize(200, 80))
	assert.Equal(t, [][2]int{{200, 80}}, client.requests)
	assert.Equal(t, 100, w.Titlebar().Width())

	surface.Commit(200, 80)
	assert.Equal(t, 200, w.Titlebar().Width())
	assert.Equal(t, 200, w.Resizebar().Width())
}

func TestSurfaceWithoutClient(t *testing.T) {
	surface := NewSurface(nil)
	require.NoError(t, surface.RequestSize(30, 40))
	w, h := surface.Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 40, h)
}
