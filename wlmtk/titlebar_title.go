package wlmtk

import (
	"github.com/mstarongithub/wlmaker/gfxbuf"
)

// WindowRequester receives the requests decorations issue for their window
type WindowRequester interface {
	RequestMove()
	RequestResize(edges Edges)
	RequestClose()
	RequestMinimize()
}

// TitlebarTitle shows the window title. Pressing it starts a window move.
type TitlebarTitle struct {
	Buffer
	orig      ElementVmt
	requester WindowRequester

	focused   *gfxbuf.Buffer
	blurred   *gfxbuf.Buffer
	activated bool
}

func newTitlebarTitle(requester WindowRequester) *TitlebarTitle {
	t := &TitlebarTitle{requester: requester}
	t.Buffer.init("titlebar-title")
	t.orig = t.Element.Extend(ElementVmt{
		Destroy:       t.destroy,
		PointerButton: t.pointerButton,
	})
	return t
}

// renderTitle draws the title onto a copy of the background's [x, x+width)
// columns
func renderTitle(
	background *gfxbuf.Buffer,
	x, width int,
	title string,
	style *TitlebarStyle,
	textColor gfxbuf.Color,
) (*gfxbuf.Buffer, error) {
	buf, err := gfxbuf.CopyArea(background, x, 0, width, background.Height())
	if err != nil {
		return nil, err
	}
	if err = gfxbuf.DrawBezel(buf, style.BezelWidth, true); err != nil {
		buf.Unlock()
		return nil, err
	}
	if title != "" {
		textWidth, _, err := gfxbuf.TextExtents(style.Font, title)
		if err != nil {
			buf.Unlock()
			return nil, err
		}
		textX := max((width-textWidth)/2, style.BezelWidth+2)
		if err = gfxbuf.DrawTextCentered(buf, textX, title, style.Font, textColor); err != nil {
			buf.Unlock()
			return nil, err
		}
	}
	return buf, nil
}

func (t *TitlebarTitle) setTextures(focused, blurred *gfxbuf.Buffer) {
	oldFocused, oldBlurred := t.focused, t.blurred
	t.focused, t.blurred = focused.Lock(), blurred.Lock()
	t.applyState()
	oldFocused.Unlock()
	oldBlurred.Unlock()
}

func (t *TitlebarTitle) setActivated(activated bool) {
	t.activated = activated
	t.applyState()
}

func (t *TitlebarTitle) applyState() {
	if t.activated {
		t.SetBuffer(t.focused)
	} else {
		t.SetBuffer(t.blurred)
	}
}

func (t *TitlebarTitle) destroy() {
	t.orig.Destroy()
	t.focused.Unlock()
	t.blurred.Unlock()
	t.focused, t.blurred = nil, nil
}

func (t *TitlebarTitle) pointerButton(ev *ButtonEvent) bool {
	if ev.Button != BtnLeft {
		return false
	}
	if ev.Type == ButtonDown && t.requester != nil {
		t.requester.RequestMove()
	}
	return true
}
