package wlmtk

import (
	"testing"

	"github.com/mstarongithub/wlmaker/gfxbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTitlebar(t *testing.T, requester WindowRequester) (*Titlebar, TitlebarStyle) {
	t.Helper()
	style := DefaultStyle().Window.Titlebar
	tb, err := NewTitlebar(requester, style)
	require.NoError(t, err)
	require.NoError(t, tb.SetTitle("xterm"))
	return tb, style
}

func TestTitlebarSetWidthTwice(t *testing.T) {
	tb, style := newTestTitlebar(t, nil)
	defer tb.Destroy()

	require.NoError(t, tb.SetWidth(200))
	tb.SetActivated(true)
	require.NoError(t, tb.SetWidth(300))

	w, h := tb.Size()
	assert.Equal(t, 300, w)
	assert.Equal(t, style.Height, h)
	assert.Equal(t, 300, tb.Width())

	title := tb.titleElem.CurrentBuffer()
	require.NotNil(t, title)
	assert.Equal(t, 300-2*style.Height, title.Width())
	assert.Equal(t, style.Height, title.Height())
	// Drawn for the state active at the second call
	assert.Same(t, tb.titleElem.focused, title)

	x, _ := tb.close.Position()
	assert.Equal(t, 300-style.Height, x)
	assert.True(t, tb.minimize.Visible())
	assert.True(t, tb.close.Visible())
	assert.Same(t, tb.close.textures.focusedReleased, tb.close.CurrentBuffer())
}

func TestTitlebarActivation(t *testing.T) {
	tb, _ := newTestTitlebar(t, nil)
	defer tb.Destroy()
	require.NoError(t, tb.SetWidth(200))

	assert.False(t, tb.Activated())
	assert.Same(t, tb.titleElem.blurred, tb.titleElem.CurrentBuffer())
	assert.Same(t, tb.minimize.textures.blurredReleased, tb.minimize.CurrentBuffer())

	tb.SetActivated(true)
	assert.Same(t, tb.titleElem.focused, tb.titleElem.CurrentBuffer())
	assert.Same(t, tb.minimize.textures.focusedReleased, tb.minimize.CurrentBuffer())
}

func TestTitlebarNarrowHidesButtons(t *testing.T) {
	tb, style := newTestTitlebar(t, nil)
	defer tb.Destroy()

	require.NoError(t, tb.SetWidth(2*style.Height))
	assert.False(t, tb.minimize.Visible())
	assert.False(t, tb.close.Visible())
	w, _ := tb.Size()
	assert.Equal(t, 2*style.Height, w)

	require.NoError(t, tb.SetWidth(5*style.Height))
	assert.True(t, tb.minimize.Visible())
	assert.True(t, tb.close.Visible())
}

func TestTitlebarFailedSetWidthKeepsTextures(t *testing.T) {
	tb, _ := newTestTitlebar(t, nil)
	defer tb.Destroy()
	require.NoError(t, tb.SetWidth(200))
	title := tb.titleElem.CurrentBuffer()

	assert.ErrorIs(t, tb.SetWidth(0), gfxbuf.ErrInvalidSize)
	assert.Same(t, title, tb.titleElem.CurrentBuffer())
	assert.Equal(t, 200, tb.Width())

	broken := DefaultStyle().Window.Titlebar
	broken.FocusedFill.Type = "checkerboard"
	tb.style = broken
	assert.Error(t, tb.SetWidth(300))
	assert.Same(t, title, tb.titleElem.CurrentBuffer())
	assert.False(t, title.Released())
}

func TestTitlebarButtons(t *testing.T) {
	req := &recordingRequester{}
	tb, style := newTestTitlebar(t, req)
	defer tb.Destroy()
	tb.SetVisible(true)
	require.NoError(t, tb.SetWidth(200))
	c := NewContainer("c")
	require.NoError(t, c.AddElement(&tb.Element))

	click := func(x float64) {
		c.PointerMotion(x, 1, 0)
		c.PointerButton(leftDown())
		c.PointerButton(leftUp())
	}
	click(1)
	assert.Equal(t, 1, req.minimizes)
	click(199)
	assert.Equal(t, 1, req.closes)
	click(float64(style.Height) + 10)
	assert.Equal(t, 1, req.moves)
	c.RemoveElement(&tb.Element)
}

func TestTitlebarSetTitle(t *testing.T) {
	tb, _ := newTestTitlebar(t, nil)
	defer tb.Destroy()
	require.NoError(t, tb.SetWidth(200))
	before := tb.titleElem.CurrentBuffer()
	require.NoError(t, tb.SetTitle("emacs"))
	assert.Equal(t, "emacs", tb.Title())
	assert.NotSame(t, before, tb.titleElem.CurrentBuffer())
	assert.Equal(t, before.Width(), tb.titleElem.CurrentBuffer().Width())
}

func TestTitlebarFailedSetTitleKeepsTitle(t *testing.T) {
	tb, _ := newTestTitlebar(t, nil)
	defer tb.Destroy()
	require.NoError(t, tb.SetWidth(200))
	focused, blurred := tb.titleElem.focused, tb.titleElem.blurred

	tb.style.Font.Size = 0
	assert.Error(t, tb.SetTitle("emacs"))
	assert.Equal(t, "xterm", tb.Title())
	assert.Same(t, focused, tb.titleElem.focused)
	assert.Same(t, blurred, tb.titleElem.blurred)
	assert.False(t, focused.Released())
}

func TestResizebarSetWidthTwice(t *testing.T) {
	style := DefaultStyle().Window.Resizebar
	rb, err := NewResizebar(nil, nil, style)
	require.NoError(t, err)
	defer rb.Destroy()

	require.NoError(t, rb.SetWidth(100))
	left := rb.left
	left.PointerEnter()
	left.PointerButton(leftDown())
	require.True(t, left.Pressed())
	require.NoError(t, rb.SetWidth(250))

	w, h := rb.Size()
	assert.Equal(t, 250, w)
	assert.Equal(t, style.Height, h)
	assert.Equal(t, style.CornerWidth, left.CurrentBuffer().Width())
	assert.Equal(t, 250-2*style.CornerWidth, rb.center.CurrentBuffer().Width())
	x, _ := rb.right.Position()
	assert.Equal(t, 250-style.CornerWidth, x)
	// Still pressed, drawn pressed
	assert.Same(t, left.pressed, left.CurrentBuffer())

	left.PointerButton(leftUp())
	assert.Same(t, left.released, left.CurrentBuffer())
}

func TestResizebarNarrow(t *testing.T) {
	style := DefaultStyle().Window.Resizebar
	rb, err := NewResizebar(nil, nil, style)
	require.NoError(t, err)
	defer rb.Destroy()

	require.NoError(t, rb.SetWidth(40))
	assert.Equal(t, 20, rb.left.CurrentBuffer().Width())
	assert.False(t, rb.center.Visible())
	w, _ := rb.Size()
	assert.Equal(t, 40, w)
}

func TestResizebarFailedSetWidthKeepsTextures(t *testing.T) {
	rb, err := NewResizebar(nil, nil, DefaultStyle().Window.Resizebar)
	require.NoError(t, err)
	defer rb.Destroy()
	require.NoError(t, rb.SetWidth(100))
	areas := rb.Areas()
	released := make([]*gfxbuf.Buffer, len(areas))
	for i, a := range areas {
		released[i] = a.CurrentBuffer()
	}
	check := func() {
		t.Helper()
		for i, a := range areas {
			assert.Same(t, released[i], a.CurrentBuffer())
			assert.False(t, released[i].Released())
		}
		assert.Equal(t, 100, rb.Width())
	}

	rb.style.Fill.Type = "checkerboard"
	assert.Error(t, rb.SetWidth(200))
	check()

	// Fails drawing the center after the corners were skipped
	rb.style = DefaultStyle().Window.Resizebar
	rb.style.CornerWidth = -10
	assert.ErrorIs(t, rb.SetWidth(200), gfxbuf.ErrInvalidSize)
	check()
}

func TestResizebarAreas(t *testing.T) {
	req := &recordingRequester{}
	cursor := &recordingCursor{}
	rb, err := NewResizebar(NewEnv(cursor), req, DefaultStyle().Window.Resizebar)
	require.NoError(t, err)
	defer rb.Destroy()
	require.NoError(t, rb.SetWidth(200))

	right := rb.right
	right.PointerEnter()
	assert.Equal(t, CursorResizeSE, cursor.last)
	assert.True(t, right.PointerButton(leftDown()))
	assert.Equal(t, []Edges{EdgeBottom | EdgeRight}, req.resizes)
	right.PointerLeave()
	assert.False(t, right.Pressed())
	assert.Equal(t, CursorDefault, cursor.last)

	assert.Equal(t, "sw-resize", CursorResizeSW.XCursorName())
}
