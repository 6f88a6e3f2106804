// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wlmtk

import (
	"fmt"

	"github.com/mstarongithub/wlmaker/gfxbuf"
)

// Resizebar is the bottom decoration of a window: two corner areas resizing
// diagonally and a center area resizing vertically
type Resizebar struct {
	Box
	style ResizebarStyle
	width int

	left   *ResizebarArea
	center *ResizebarArea
	right  *ResizebarArea
}

func NewResizebar(env *Env, requester WindowRequester, style ResizebarStyle) (*Resizebar, error) {
	if style.Height <= 0 {
		return nil, fmt.Errorf("resizebar: %w: height %d", gfxbuf.ErrInvalidSize, style.Height)
	}
	r := &Resizebar{style: style}
	r.Box.init("resizebar", Horizontal, 0)
	r.left = newResizebarArea("resizebar-left", env, requester, EdgeBottom|EdgeLeft, CursorResizeSW)
	r.center = newResizebarArea("resizebar-center", env, requester, EdgeBottom, CursorResizeS)
	r.right = newResizebarArea("resizebar-right", env, requester, EdgeBottom|EdgeRight, CursorResizeSE)
	for _, a := range r.Areas() {
		if err := r.AddElementBefore(nil, &a.Element); err != nil {
			r.Destroy()
			return nil, err
		}
	}
	return r, nil
}

// Areas returns the left, center and right areas
func (r *Resizebar) Areas() []*ResizebarArea {
	return []*ResizebarArea{r.left, r.center, r.right}
}

// SetWidth redraws all areas for the new width, then shows the textures for
// their current press state. On error the previous textures stay in place.
// The caller updates the layout of the containing window.
func (r *Resizebar) SetWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("resizebar: %w: width %d", gfxbuf.ErrInvalidSize, width)
	}
	background, err := renderBackground(width, r.style.Height, r.style.Fill)
	if err != nil {
		return err
	}
	defer background.Unlock()

	corner := min(r.style.CornerWidth, width/2)
	type section struct {
		area              *ResizebarArea
		x, width          int
		released, pressed *gfxbuf.Buffer
	}
	sections := []*section{
		{area: r.left, x: 0, width: corner},
		{area: r.center, x: corner, width: width - 2*corner},
		{area: r.right, x: width - corner, width: corner},
	}
	for _, s := range sections {
		if s.width <= 0 {
			continue
		}
		if s.released, s.pressed, err = s.area.render(background, s.x, s.width, r.style.BezelWidth); err != nil {
			for _, done := range sections {
				unlockAll(done.released, done.pressed)
			}
			return err
		}
	}

	for _, s := range sections {
		if s.width > 0 {
			s.area.setTextures(s.released, s.pressed)
			unlockAll(s.released, s.pressed)
			s.area.SetPosition(s.x, 0)
		}
		s.area.SetVisible(s.width > 0)
	}
	r.width = width
	return nil
}

func (r *Resizebar) Width() int {
	return r.width
}

func (r *Resizebar) Height() int {
	return r.style.Height
}
