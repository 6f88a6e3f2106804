package wlmtk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	closes, minimizes int
}

func (h *recordingHandler) Close()    { h.closes++ }
func (h *recordingHandler) Minimize() { h.minimizes++ }

func newTestWindow(t *testing.T, env *Env, width, height int) (*Window, *fakeElement, *eventLog) {
	t.Helper()
	log := &eventLog{}
	content := newFakeElement("content", width, height, log)
	w, err := NewWindow(env, content, DefaultStyle().Window)
	require.NoError(t, err)
	require.NoError(t, w.SetTitle("test"))
	return w, content, log
}

func TestWindowLayout(t *testing.T) {
	style := DefaultStyle().Window
	w, content, _ := newTestWindow(t, nil, 100, 50)
	defer w.Destroy()

	th, rh, sp := style.Titlebar.Height, style.Resizebar.Height, style.Spacing
	_, y := content.Position()
	assert.Equal(t, th+sp, y)
	_, y = w.Resizebar().Position()
	assert.Equal(t, th+sp+50+sp, y)

	width, height := w.Size()
	assert.Equal(t, 100, width)
	assert.Equal(t, th+sp+50+sp+rh, height)
	assert.Equal(t, 100, w.Titlebar().Width())
	assert.Equal(t, 100, w.Resizebar().Width())
}

func TestWindowRequestSize(t *testing.T) {
	w, content, _ := newTestWindow(t, nil, 100, 50)
	defer w.Destroy()

	require.NoError(t, w.RequestSize(240, 80))
	assert.Equal(t, 240, content.width)
	assert.Equal(t, 240, w.Titlebar().Width())
	assert.Equal(t, 240, w.Resizebar().Width())
	width, _ := w.Size()
	assert.Equal(t, 240, width)
}

func TestWindowDestroyKeepsContent(t *testing.T) {
	w, content, _ := newTestWindow(t, nil, 100, 50)
	w.Destroy()
	assert.Zero(t, content.destroyCount)
	assert.Nil(t, content.Parent())
	content.Destroy()
	assert.Equal(t, 1, content.destroyCount)
}

func TestWindowRequestsReachHandler(t *testing.T) {
	w, _, _ := newTestWindow(t, nil, 100, 50)
	defer w.Destroy()
	// Without handler or root these are dropped
	w.RequestClose()
	w.RequestMinimize()
	w.RequestMove()
	w.RequestResize(EdgeBottom)

	h := &recordingHandler{}
	w.SetHandler(h)
	w.RequestClose()
	w.RequestMinimize()
	assert.Equal(t, 1, h.closes)
	assert.Equal(t, 1, h.minimizes)
}

func TestWindowKeyboardGoesToContent(t *testing.T) {
	w, _, log := newTestWindow(t, nil, 100, 50)
	defer w.Destroy()
	assert.True(t, w.Keyboard(&KeyEvent{Keycode: 38, Pressed: true}))
	assert.Equal(t, eventLog{"content:key"}, *log)
}

func TestWindowContentAlreadyParented(t *testing.T) {
	var log eventLog
	content := newFakeElement("content", 10, 10, &log)
	c := NewContainer("other")
	require.NoError(t, c.AddElement(&content.Element))

	_, err := NewWindow(nil, content, DefaultStyle().Window)
	assert.ErrorIs(t, err, ErrAlreadyParented)
	assert.Same(t, c, content.Parent())
	assert.Zero(t, content.destroyCount)
}
