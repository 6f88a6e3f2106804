// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wlmtk

import (
	"slices"

	"github.com/mstarongithub/wlmaker/scene"
	"github.com/sirupsen/logrus"
	"gitlab.com/mstarongitlab/goutils/sliceutils"
)

type grabMode int

const (
	grabNone = grabMode(iota)
	grabMove
	grabResize
)

// grab tracks an interactive move or resize. While a grab is active, pointer
// motion goes to the grab instead of the elements.
type grab struct {
	mode   grabMode
	window *Window
	edges  Edges
	// Pointer position when the grab started
	pointerX, pointerY float64
	// Window position and content size when the grab started
	x, y          int
	width, height int
}

// Root is the top of the toolkit's element tree. It holds the mapped windows
// and the root menu, and runs interactive moves and resizes.
type Root struct {
	Container
	orig  ElementVmt
	corig ContainerVmt
	env   *Env

	// Mapped windows, in mapping order
	windows []*Window
	active  *Window
	grab    grab

	menu      *Menu
	menuShown bool

	lastX, lastY float64
}

// NewRoot creates a root attaching its elements to tree. tree may be nil to
// run the toolkit without a scene.
func NewRoot(tree scene.Tree, env *Env) *Root {
	r := &Root{env: env}
	r.Container.init("root")
	r.orig = r.Element.Extend(ElementVmt{
		Destroy:       r.destroy,
		PointerMotion: r.pointerMotion,
		PointerButton: r.pointerButton,
	})
	r.corig = r.ExtendContainer(ContainerVmt{
		UpdateLayout: r.updateLayout,
	})
	r.SetVisible(true)
	if tree != nil {
		r.setSceneTree(tree)
	}
	return r
}

func (r *Root) Env() *Env {
	return r.env
}

// MapWindow shows w on top of all other windows and activates it
func (r *Root) MapWindow(w *Window) error {
	if err := r.AddElement(&w.Element); err != nil {
		return err
	}
	w.root = r
	r.windows = append(r.windows, w)
	w.SetVisible(true)
	r.ActivateWindow(w)
	r.UpdateLayout()
	return nil
}

// UnmapWindow removes w from the root. The window is not destroyed. If w
// was active, the top-most remaining window is activated.
func (r *Root) UnmapWindow(w *Window) {
	if w.root != r {
		logrus.WithField("title", w.Title()).Errorln("Unmapping a window not mapped to this root")
		return
	}
	if r.grab.window == w {
		r.endGrab()
	}
	if r.active == w {
		r.ActivateWindow(nil)
	}
	// A window being destroyed has already left the container
	if w.parent == &r.Container {
		r.RemoveElement(&w.Element)
	}
	w.root = nil
	r.windows = slices.DeleteFunc(r.windows, func(other *Window) bool { return other == w })

	if r.active == nil {
		r.ActivateTopmost()
	}
	r.UpdateLayout()
}

// ActivateTopmost activates the top-most visible window, or nothing if no
// window is visible
func (r *Root) ActivateTopmost() {
	for _, e := range r.elements {
		if next := r.windowFor(e); next != nil && next.Visible() {
			r.ActivateWindow(next)
			return
		}
	}
	r.ActivateWindow(nil)
}

// ActivateWindow raises w, draws it focused and gives it the keyboard.
// nil deactivates the active window.
func (r *Root) ActivateWindow(w *Window) {
	if w != nil && w.root != r {
		logrus.WithField("title", w.Title()).Errorln("Activating a window not mapped to this root")
		return
	}
	if r.active != nil && r.active != w {
		r.active.SetActivated(false)
	}
	r.active = w
	if w == nil {
		_ = r.SetKeyboardFocus(nil)
		return
	}
	w.SetActivated(true)
	r.RaiseElement(&w.Element)
	_ = r.SetKeyboardFocus(&w.Element)
	if r.menuShown {
		r.RaiseElement(&r.menu.Element)
	}
}

func (r *Root) ActiveWindow() *Window {
	return r.active
}

// Windows returns the mapped windows in mapping order
func (r *Root) Windows() []*Window {
	return slices.Clone(r.windows)
}

// VisibleWindows returns the mapped windows that are not hidden
func (r *Root) VisibleWindows() []*Window {
	return sliceutils.Filter(r.windows, func(w *Window) bool {
		return w.Visible()
	})
}

// SetRootMenu sets the menu a right click on the background opens. The root
// takes ownership, a previous menu is destroyed.
func (r *Root) SetRootMenu(menu *Menu) {
	if r.menu == menu {
		return
	}
	r.HideRootMenu()
	if r.menu != nil {
		r.menu.Destroy()
	}
	r.menu = menu
}

func (r *Root) RootMenu() *Menu {
	return r.menu
}

func (r *Root) RootMenuShown() bool {
	return r.menuShown
}

// ShowRootMenu opens the root menu at (x, y)
func (r *Root) ShowRootMenu(x, y int) {
	if r.menu == nil || r.menuShown {
		return
	}
	if err := r.AddElement(&r.menu.Element); err != nil {
		logrus.WithError(err).Errorln("Failed to show root menu")
		return
	}
	r.menuShown = true
	r.menu.SetPosition(x, y)
	r.menu.SetVisible(true)
	r.UpdateLayout()
}

func (r *Root) HideRootMenu() {
	if !r.menuShown {
		return
	}
	r.menuShown = false
	r.menu.SetVisible(false)
	r.RemoveElement(&r.menu.Element)
	r.UpdateLayout()
}

// Grabbing reports whether an interactive move or resize is running
func (r *Root) Grabbing() bool {
	return r.grab.mode != grabNone
}

func (r *Root) windowFor(e *Element) *Window {
	for _, w := range r.windows {
		if &w.Element == e {
			return w
		}
	}
	return nil
}

func (r *Root) beginMove(w *Window) {
	if r.grab.mode != grabNone {
		return
	}
	x, y := w.Position()
	r.grab = grab{
		mode:     grabMove,
		window:   w,
		pointerX: r.lastX,
		pointerY: r.lastY,
		x:        x,
		y:        y,
	}
	r.env.SetCursor(CursorMove)
}

func (r *Root) beginResize(w *Window, edges Edges) {
	if r.grab.mode != grabNone || edges == EdgeNone {
		return
	}
	x, y := w.Position()
	width, height := w.content.AsElement().Size()
	r.grab = grab{
		mode:     grabResize,
		window:   w,
		edges:    edges,
		pointerX: r.lastX,
		pointerY: r.lastY,
		x:        x,
		y:        y,
		width:    width,
		height:   height,
	}
}

func (r *Root) endGrab() {
	mode := r.grab.mode
	r.grab = grab{}
	// Resize areas reset the cursor themselves when the pointer leaves
	if mode == grabMove {
		r.env.SetCursor(CursorDefault)
	}
}

func (r *Root) updateMove(x, y float64) {
	g := &r.grab
	g.window.SetPosition(g.x+int(x-g.pointerX), g.y+int(y-g.pointerY))
}

func (r *Root) updateResize(x, y float64) {
	g := &r.grab
	dx, dy := int(x-g.pointerX), int(y-g.pointerY)
	width, height := g.width, g.height
	if g.edges&EdgeLeft != 0 {
		width -= dx
	}
	if g.edges&EdgeRight != 0 {
		width += dx
	}
	if g.edges&EdgeTop != 0 {
		height -= dy
	}
	if g.edges&EdgeBottom != 0 {
		height += dy
	}
	width, height = max(width, 1), max(height, 1)

	if err := g.window.RequestSize(width, height); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"width":  width,
			"height": height,
		}).Debugln("Window refused resize")
		return
	}
	// Keep the opposite edge in place
	newWidth, newHeight := g.window.content.AsElement().Size()
	wx, wy := g.window.Position()
	if g.edges&EdgeLeft != 0 {
		wx = g.x + g.width - newWidth
	}
	if g.edges&EdgeTop != 0 {
		wy = g.y + g.height - newHeight
	}
	g.window.SetPosition(wx, wy)
}

// The pointer is re-evaluated only once the grab ends
func (r *Root) updateLayout() {
	if r.grab.mode != grabNone {
		return
	}
	r.corig.UpdateLayout()
}

func (r *Root) pointerMotion(x, y float64, timeMsec uint32) bool {
	r.lastX, r.lastY = x, y
	switch r.grab.mode {
	case grabMove:
		r.updateMove(x, y)
		return true
	case grabResize:
		r.updateResize(x, y)
		return true
	}
	return r.orig.PointerMotion(x, y, timeMsec)
}

func (r *Root) pointerButton(ev *ButtonEvent) bool {
	if r.grab.mode != grabNone {
		if ev.Type == ButtonUp && ev.Button == BtnLeft {
			r.endGrab()
			// Let the element that started the grab see the release, then
			// find out what the pointer is over now
			r.orig.PointerButton(ev)
			r.orig.PointerMotion(r.lastX, r.lastY, ev.TimeMsec)
		}
		return true
	}

	if r.menuShown {
		if r.pointerFocus == &r.menu.Element {
			consumed := r.orig.PointerButton(ev)
			if ev.Type == ButtonUp && ev.Button == BtnLeft {
				r.HideRootMenu()
			}
			return consumed
		}
		if ev.Type == ButtonDown {
			r.HideRootMenu()
		}
	}

	if ev.Type == ButtonDown {
		if w := r.windowFor(r.pointerFocus); w != nil && w != r.active {
			r.ActivateWindow(w)
		}
	}
	consumed := r.orig.PointerButton(ev)
	if !consumed && r.pointerFocus == nil && ev.Type == ButtonDown && ev.Button == BtnRight && r.menu != nil {
		r.ShowRootMenu(int(r.lastX), int(r.lastY))
		return true
	}
	return consumed
}

func (r *Root) destroy() {
	for len(r.windows) > 0 {
		r.UnmapWindow(r.windows[len(r.windows)-1])
	}
	r.HideRootMenu()
	if r.menu != nil {
		r.menu.Destroy()
		r.menu = nil
	}
	r.orig.Destroy()
}
