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

// Titlebar is the top decoration of a window: a minimize button, the title
// and a close button, left to right
type Titlebar struct {
	Box
	orig  ElementVmt
	style TitlebarStyle

	title     string
	activated bool
	width     int

	// Full-width backgrounds, the parts are sliced out of them
	focusedBackground *gfxbuf.Buffer
	blurredBackground *gfxbuf.Buffer

	titleElem *TitlebarTitle
	minimize  *TitlebarButton
	close     *TitlebarButton
}

// NewTitlebar creates a titlebar. It has no extents until SetWidth is
// called.
func NewTitlebar(requester WindowRequester, style TitlebarStyle) (*Titlebar, error) {
	if style.Height <= 0 {
		return nil, fmt.Errorf("titlebar: %w: height %d", gfxbuf.ErrInvalidSize, style.Height)
	}
	t := &Titlebar{style: style}
	t.Box.init("titlebar", Horizontal, 0)
	t.orig = t.Element.Extend(ElementVmt{
		Destroy: t.destroy,
	})

	var minimizeAction, closeAction func()
	if requester != nil {
		minimizeAction, closeAction = requester.RequestMinimize, requester.RequestClose
	}
	t.minimize = newTitlebarButton("titlebar-minimize", gfxbuf.DrawMinimizeIcon, minimizeAction)
	t.titleElem = newTitlebarTitle(requester)
	t.close = newTitlebarButton("titlebar-close", gfxbuf.DrawCloseIcon, closeAction)
	for _, e := range []*Element{&t.minimize.Element, &t.titleElem.Element, &t.close.Element} {
		if err := t.AddElementBefore(nil, e); err != nil {
			t.Destroy()
			return nil, err
		}
	}
	t.titleElem.SetVisible(true)
	return t, nil
}

// SetWidth redraws all textures for the new width, then shows the ones for
// the current activation. On error the previous textures stay in place.
// The caller updates the layout of the containing window.
func (t *Titlebar) SetWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("titlebar: %w: width %d", gfxbuf.ErrInvalidSize, width)
	}
	focusedBg, err := renderBackground(width, t.style.Height, t.style.FocusedFill)
	if err != nil {
		return err
	}
	blurredBg, err := renderBackground(width, t.style.Height, t.style.BlurredFill)
	if err != nil {
		focusedBg.Unlock()
		return err
	}

	h := t.style.Height
	showButtons := width >= 3*h
	titleX, titleWidth := 0, width
	if showButtons {
		titleX, titleWidth = h, width-2*h
	}

	focusedTitle, blurredTitle, err := t.renderTitles(focusedBg, blurredBg, titleX, titleWidth, t.title)
	if err != nil {
		unlockAll(focusedBg, blurredBg)
		return err
	}
	var minimizeTex, closeTex *titlebarButtonTextures
	if showButtons {
		minimizeTex, err = t.minimize.render(focusedBg, blurredBg, 0, &t.style)
		if err == nil {
			closeTex, err = t.close.render(focusedBg, blurredBg, width-h, &t.style)
		}
		if err != nil {
			minimizeTex.unlock()
			unlockAll(focusedBg, blurredBg, focusedTitle, blurredTitle)
			return err
		}
	}

	// Everything is drawn, commit.
	t.titleElem.setTextures(focusedTitle, blurredTitle)
	unlockAll(focusedTitle, blurredTitle)
	t.titleElem.SetPosition(titleX, 0)
	if showButtons {
		t.minimize.setTextures(minimizeTex)
		t.close.setTextures(closeTex)
		t.minimize.SetPosition(0, 0)
		t.close.SetPosition(width-h, 0)
	}
	t.minimize.SetVisible(showButtons)
	t.close.SetVisible(showButtons)

	oldFocused, oldBlurred := t.focusedBackground, t.blurredBackground
	t.focusedBackground, t.blurredBackground = focusedBg, blurredBg
	unlockAll(oldFocused, oldBlurred)
	t.width = width
	return nil
}

// SetTitle changes the title text, redrawing it if the titlebar has a width
func (t *Titlebar) SetTitle(title string) error {
	if title == t.title {
		return nil
	}
	if t.focusedBackground == nil {
		t.title = title
		return nil
	}
	x, _ := t.titleElem.Position()
	focused, blurred, err := t.renderTitles(t.focusedBackground, t.blurredBackground, x, t.titleElem.focused.Width(), title)
	if err != nil {
		return err
	}
	t.title = title
	t.titleElem.setTextures(focused, blurred)
	unlockAll(focused, blurred)
	return nil
}

func (t *Titlebar) Title() string {
	return t.title
}

// SetActivated switches between the focused and the blurred textures
func (t *Titlebar) SetActivated(activated bool) {
	if t.activated == activated {
		return
	}
	t.activated = activated
	t.titleElem.setActivated(activated)
	t.minimize.setActivated(activated)
	t.close.setActivated(activated)
}

func (t *Titlebar) Activated() bool {
	return t.activated
}

func (t *Titlebar) Width() int {
	return t.width
}

func (t *Titlebar) Height() int {
	return t.style.Height
}

func (t *Titlebar) renderTitles(focusedBg, blurredBg *gfxbuf.Buffer, x, width int, title string) (focused, blurred *gfxbuf.Buffer, err error) {
	focused, err = renderTitle(focusedBg, x, width, title, &t.style, t.style.FocusedTextColor)
	if err != nil {
		return nil, nil, err
	}
	blurred, err = renderTitle(blurredBg, x, width, title, &t.style, t.style.BlurredTextColor)
	if err != nil {
		focused.Unlock()
		return nil, nil, err
	}
	return focused, blurred, nil
}

func (t *Titlebar) destroy() {
	t.orig.Destroy()
	unlockAll(t.focusedBackground, t.blurredBackground)
	t.focusedBackground, t.blurredBackground = nil, nil
}

func renderBackground(width, height int, fill gfxbuf.Fill) (*gfxbuf.Buffer, error) {
	buf, err := gfxbuf.New(width, height)
	if err != nil {
		return nil, err
	}
	if err = gfxbuf.FillBuffer(buf, fill); err != nil {
		buf.Unlock()
		return nil, err
	}
	return buf, nil
}
