package wlmtk

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/mstarongithub/wlmaker/gfxbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxLayout(t *testing.T) {
	var log eventLog
	for _, tc := range []struct {
		name        string
		orientation Orientation
		want        [][2]int
		width       int
		height      int
	}{
		{"horizontal", Horizontal, [][2]int{{0, 0}, {12, 0}}, 16, 5},
		{"vertical", Vertical, [][2]int{{0, 0}, {0, 7}}, 10, 11},
	} {
		t.Run(tc.name, func(t *testing.T) {
			box := NewBox(tc.orientation, 2)
			a := newFakeElement("a", 10, 5, &log)
			hidden := newFakeElement("hidden", 50, 50, &log)
			hidden.SetVisible(false)
			b := newFakeElement("b", 4, 4, &log)
			for _, f := range []*fakeElement{a, hidden, b} {
				require.NoError(t, box.AddElementBefore(nil, &f.Element))
			}
			box.UpdateLayout()

			for i, f := range []*fakeElement{a, b} {
				x, y := f.Position()
				assert.Equal(t, tc.want[i], [2]int{x, y}, f.Name())
			}
			w, h := box.Size()
			assert.Equal(t, tc.width, w)
			assert.Equal(t, tc.height, h)
			assert.Equal(t, tc.orientation, box.Orientation())
		})
	}
}

func TestFillResize(t *testing.T) {
	fill, err := NewFill(10, 10, gfxbuf.SolidFill(0xff336699))
	require.NoError(t, err)
	defer fill.Destroy()

	first := fill.CurrentBuffer()
	assert.Equal(t, color.NRGBA{0x33, 0x66, 0x99, 0xff}, first.Image().NRGBAAt(3, 3))

	require.NoError(t, fill.RequestSize(30, 20))
	w, h := fill.Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 20, h)

	assert.ErrorIs(t, fill.SetSize(0, 20), gfxbuf.ErrInvalidSize)
	w, _ = fill.Size()
	assert.Equal(t, 30, w)

	_, err = NewFill(-1, 1, gfxbuf.SolidFill(0))
	assert.ErrorIs(t, err, gfxbuf.ErrInvalidSize)
}

func TestImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, imaging.Save(imaging.New(8, 8, color.NRGBA{0, 0xff, 0, 0xff}), path))

	img, err := NewImage(path, 16, 16)
	require.NoError(t, err)
	assert.Equal(t, path, img.Path())
	w, h := img.Size()
	assert.Equal(t, 16, w)
	assert.Equal(t, 16, h)

	buf := img.CurrentBuffer().Lock()
	img.Destroy()
	assert.Equal(t, 1, buf.Refs())
	buf.Unlock()

	_, err = NewImage(filepath.Join(t.TempDir(), "missing.png"), 16, 16)
	assert.Error(t, err)
}

func TestEnvWithoutCursor(t *testing.T) {
	var env *Env
	assert.NotPanics(t, func() { env.SetCursor(CursorMove) })
	assert.NotPanics(t, func() { NewEnv(nil).SetCursor(CursorMove) })

	cursor := &recordingCursor{}
	NewEnv(cursor).SetCursor(CursorResizeS)
	assert.Equal(t, CursorResizeS, cursor.last)
	assert.Equal(t, "s-resize", cursor.last.XCursorName())
	assert.Equal(t, "default", CursorDefault.XCursorName())
}
