package wlmtk

import (
	"github.com/mstarongithub/wlmaker/gfxbuf"
)

type iconDrawer func(b *gfxbuf.Buffer, x, y, size int, c gfxbuf.Color) error

// titlebarButtonTextures holds one texture per activation and press state
type titlebarButtonTextures struct {
	focusedReleased *gfxbuf.Buffer
	focusedPressed  *gfxbuf.Buffer
	blurredReleased *gfxbuf.Buffer
	blurredPressed  *gfxbuf.Buffer
}

func (tt *titlebarButtonTextures) unlock() {
	if tt == nil {
		return
	}
	unlockAll(tt.focusedReleased, tt.focusedPressed, tt.blurredReleased, tt.blurredPressed)
}

// TitlebarButton is a Button with an icon, drawn on a slice of the titlebar
// background
type TitlebarButton struct {
	Button
	orig     ElementVmt
	drawIcon iconDrawer
	action   func()

	textures  *titlebarButtonTextures
	activated bool
}

func newTitlebarButton(name string, drawIcon iconDrawer, action func()) *TitlebarButton {
	tb := &TitlebarButton{drawIcon: drawIcon, action: action}
	tb.Button.init(name)
	tb.orig = tb.Element.Extend(ElementVmt{
		Destroy: tb.destroy,
	})
	tb.ExtendButton(ButtonVmt{
		Clicked: tb.clicked,
	})
	return tb
}

func (tb *TitlebarButton) render(
	focusedBackground, blurredBackground *gfxbuf.Buffer,
	x int,
	style *TitlebarStyle,
) (*titlebarButtonTextures, error) {
	tt := &titlebarButtonTextures{}
	var err error
	size := style.Height
	if tt.focusedReleased, err = tb.renderOne(focusedBackground, x, size, true, style.FocusedTextColor, style); err != nil {
		tt.unlock()
		return nil, err
	}
	if tt.focusedPressed, err = tb.renderOne(focusedBackground, x, size, false, style.FocusedTextColor, style); err != nil {
		tt.unlock()
		return nil, err
	}
	if tt.blurredReleased, err = tb.renderOne(blurredBackground, x, size, true, style.BlurredTextColor, style); err != nil {
		tt.unlock()
		return nil, err
	}
	if tt.blurredPressed, err = tb.renderOne(blurredBackground, x, size, false, style.BlurredTextColor, style); err != nil {
		tt.unlock()
		return nil, err
	}
	return tt, nil
}

func (tb *TitlebarButton) renderOne(
	background *gfxbuf.Buffer,
	x, size int,
	raised bool,
	iconColor gfxbuf.Color,
	style *TitlebarStyle,
) (*gfxbuf.Buffer, error) {
	buf, err := gfxbuf.CopyArea(background, x, 0, size, size)
	if err != nil {
		return nil, err
	}
	if err = gfxbuf.DrawBezel(buf, style.BezelWidth, raised); err == nil {
		err = tb.drawIcon(buf, 0, 0, size, iconColor)
	}
	if err != nil {
		buf.Unlock()
		return nil, err
	}
	return buf, nil
}

// setTextures takes over the references held by tt
func (tb *TitlebarButton) setTextures(tt *titlebarButtonTextures) {
	old := tb.textures
	tb.textures = tt
	tb.applyActivation()
	old.unlock()
}

func (tb *TitlebarButton) setActivated(activated bool) {
	tb.activated = activated
	tb.applyActivation()
}

func (tb *TitlebarButton) applyActivation() {
	if tb.textures == nil {
		return
	}
	if tb.activated {
		tb.SetTextures(tb.textures.focusedReleased, tb.textures.focusedPressed)
	} else {
		tb.SetTextures(tb.textures.blurredReleased, tb.textures.blurredPressed)
	}
}

func (tb *TitlebarButton) clicked() {
	if tb.action != nil {
		tb.action()
	}
}

func (tb *TitlebarButton) destroy() {
	tb.orig.Destroy()
	tb.textures.unlock()
	tb.textures = nil
}

func unlockAll(bufs ...*gfxbuf.Buffer) {
	for _, b := range bufs {
		b.Unlock()
	}
}
