package wlmtk

import (
	"github.com/mstarongithub/wlmaker/gfxbuf"
)

// ResizebarArea is one section of the resizebar. Pressing it starts a resize
// along its edges.
type ResizebarArea struct {
	Buffer
	orig      ElementVmt
	env       *Env
	requester WindowRequester
	edges     Edges
	cursor    CursorType

	released  *gfxbuf.Buffer
	pressed   *gfxbuf.Buffer
	isPressed bool
}

func newResizebarArea(name string, env *Env, requester WindowRequester, edges Edges, cursor CursorType) *ResizebarArea {
	a := &ResizebarArea{
		env:       env,
		requester: requester,
		edges:     edges,
		cursor:    cursor,
	}
	a.Buffer.init(name)
	a.orig = a.Element.Extend(ElementVmt{
		Destroy:       a.destroy,
		PointerEnter:  a.pointerEnter,
		PointerLeave:  a.pointerLeave,
		PointerButton: a.pointerButton,
	})
	return a
}

func (a *ResizebarArea) Edges() Edges {
	return a.edges
}

func (a *ResizebarArea) Pressed() bool {
	return a.isPressed
}

// render draws the released and pressed textures from the [x, x+width)
// columns of background
func (a *ResizebarArea) render(background *gfxbuf.Buffer, x, width, bezelWidth int) (released, pressed *gfxbuf.Buffer, err error) {
	if released, err = renderArea(background, x, width, bezelWidth, true); err != nil {
		return nil, nil, err
	}
	if pressed, err = renderArea(background, x, width, bezelWidth, false); err != nil {
		released.Unlock()
		return nil, nil, err
	}
	return released, pressed, nil
}

func renderArea(background *gfxbuf.Buffer, x, width, bezelWidth int, raised bool) (*gfxbuf.Buffer, error) {
	buf, err := gfxbuf.CopyArea(background, x, 0, width, background.Height())
	if err != nil {
		return nil, err
	}
	if err = gfxbuf.DrawBezel(buf, bezelWidth, raised); err != nil {
		buf.Unlock()
		return nil, err
	}
	return buf, nil
}

func (a *ResizebarArea) setTextures(released, pressed *gfxbuf.Buffer) {
	oldReleased, oldPressed := a.released, a.pressed
	a.released, a.pressed = released.Lock(), pressed.Lock()
	a.applyState()
	unlockAll(oldReleased, oldPressed)
}

func (a *ResizebarArea) applyState() {
	if a.isPressed {
		a.SetBuffer(a.pressed)
	} else {
		a.SetBuffer(a.released)
	}
}

func (a *ResizebarArea) destroy() {
	a.orig.Destroy()
	unlockAll(a.released, a.pressed)
	a.released, a.pressed = nil, nil
}

func (a *ResizebarArea) pointerEnter() {
	a.env.SetCursor(a.cursor)
	a.orig.PointerEnter()
}

func (a *ResizebarArea) pointerLeave() {
	if a.isPressed {
		a.isPressed = false
		a.applyState()
	}
	a.env.SetCursor(CursorDefault)
	a.orig.PointerLeave()
}

func (a *ResizebarArea) pointerButton(ev *ButtonEvent) bool {
	if ev.Button != BtnLeft {
		return false
	}
	switch ev.Type {
	case ButtonDown:
		a.isPressed = true
		a.applyState()
		if a.requester != nil {
			a.requester.RequestResize(a.edges)
		}
	case ButtonUp:
		if a.isPressed {
			a.isPressed = false
			a.applyState()
		}
	}
	return true
}
