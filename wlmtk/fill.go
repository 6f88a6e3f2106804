package wlmtk

import (
	"github.com/mstarongithub/wlmaker/gfxbuf"
)

// Fill is an area of explicit size painted with a fill. It serves as
// placeholder window content and as background.
type Fill struct {
	Buffer
	fill          gfxbuf.Fill
	width, height int
}

func NewFill(width, height int, fill gfxbuf.Fill) (*Fill, error) {
	f := &Fill{fill: fill}
	f.init("fill")
	if err := f.SetSize(width, height); err != nil {
		f.Destroy()
		return nil, err
	}
	return f, nil
}

// SetSize redraws the fill at the new size. On failure the previous content
// stays in place.
func (f *Fill) SetSize(width, height int) error {
	buf, err := gfxbuf.New(width, height)
	if err != nil {
		return err
	}
	defer buf.Unlock()
	if err := gfxbuf.FillBuffer(buf, f.fill); err != nil {
		return err
	}
	f.width, f.height = width, height
	f.SetBuffer(buf)
	return nil
}

// RequestSize lets a Fill serve as window content
func (f *Fill) RequestSize(width, height int) error {
	return f.SetSize(width, height)
}
