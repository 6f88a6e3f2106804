// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wlmtk

import (
	"github.com/sirupsen/logrus"
)

// WindowContent is what a window decorates. The content is owned by the
// caller, destroying the window leaves it intact.
type WindowContent interface {
	AsElement() *Element
	// RequestSize asks the content to resize itself
	RequestSize(width, height int) error
}

// WindowHandler receives the requests a window's decorations make that the
// toolkit can't handle itself
type WindowHandler interface {
	Close()
	Minimize()
}

// Window stacks a titlebar, the content and a resizebar
type Window struct {
	Box
	orig  ElementVmt
	corig ContainerVmt
	style WindowStyle

	content   WindowContent
	handler   WindowHandler
	titlebar  *Titlebar
	resizebar *Resizebar
	// Root the window is mapped to, nil while unmapped
	root *Root
	// Content width the decorations were last drawn for
	decoratedWidth int
}

func NewWindow(env *Env, content WindowContent, style WindowStyle) (*Window, error) {
	w := &Window{style: style, content: content}
	w.Box.init("window", Vertical, style.Spacing)
	w.orig = w.Element.Extend(ElementVmt{
		Destroy: w.destroy,
	})
	w.corig = w.ExtendContainer(ContainerVmt{
		UpdateLayout: w.updateLayout,
	})

	var err error
	if w.titlebar, err = NewTitlebar(w, style.Titlebar); err != nil {
		w.Destroy()
		return nil, err
	}
	if err = w.AddElementBefore(nil, &w.titlebar.Element); err != nil {
		w.titlebar.Destroy()
		w.Destroy()
		return nil, err
	}
	if err = w.AddElementBefore(nil, content.AsElement()); err != nil {
		w.content = nil
		w.Destroy()
		return nil, err
	}
	if w.resizebar, err = NewResizebar(env, w, style.Resizebar); err != nil {
		w.Destroy()
		return nil, err
	}
	if err = w.AddElementBefore(nil, &w.resizebar.Element); err != nil {
		w.resizebar.Destroy()
		w.Destroy()
		return nil, err
	}
	if err = w.SetKeyboardFocus(content.AsElement()); err != nil {
		w.Destroy()
		return nil, err
	}
	w.titlebar.SetVisible(true)
	content.AsElement().SetVisible(true)
	w.resizebar.SetVisible(true)
	w.UpdateLayout()
	return w, nil
}

// SetHandler sets who receives close and minimize requests
func (w *Window) SetHandler(handler WindowHandler) {
	w.handler = handler
}

func (w *Window) Content() WindowContent {
	return w.content
}

func (w *Window) Titlebar() *Titlebar {
	return w.titlebar
}

func (w *Window) Resizebar() *Resizebar {
	return w.resizebar
}

func (w *Window) SetTitle(title string) error {
	return w.titlebar.SetTitle(title)
}

func (w *Window) Title() string {
	return w.titlebar.Title()
}

// SetActivated redraws the decorations as focused or blurred. Use
// Root.ActivateWindow to move the keyboard focus as well.
func (w *Window) SetActivated(activated bool) {
	w.titlebar.SetActivated(activated)
}

func (w *Window) Activated() bool {
	return w.titlebar.Activated()
}

// Root returns the root the window is mapped to, or nil
func (w *Window) Root() *Root {
	return w.root
}

// RequestSize resizes the content and lays out the decorations around it
func (w *Window) RequestSize(width, height int) error {
	if err := w.content.RequestSize(width, height); err != nil {
		return err
	}
	w.UpdateLayout()
	return nil
}

// RequestMove starts an interactive move, if the window is mapped
func (w *Window) RequestMove() {
	if w.root == nil {
		return
	}
	w.root.beginMove(w)
}

// RequestResize starts an interactive resize along edges, if the window is
// mapped
func (w *Window) RequestResize(edges Edges) {
	if w.root == nil {
		return
	}
	w.root.beginResize(w, edges)
}

func (w *Window) RequestClose() {
	if w.handler == nil {
		logrus.WithField("title", w.Title()).Debugln("Close requested, window has no handler")
		return
	}
	w.handler.Close()
}

func (w *Window) RequestMinimize() {
	if w.handler == nil {
		logrus.WithField("title", w.Title()).Debugln("Minimize requested, window has no handler")
		return
	}
	w.handler.Minimize()
}

func (w *Window) updateLayout() {
	if w.content != nil {
		width, _ := w.content.AsElement().Size()
		if width > 0 && width != w.decoratedWidth {
			w.redecorate(width)
		}
	}
	w.corig.UpdateLayout()
}

func (w *Window) redecorate(width int) {
	if w.titlebar != nil {
		if err := w.titlebar.SetWidth(width); err != nil {
			logrus.WithError(err).WithField("width", width).Errorln("Failed to redraw titlebar")
			return
		}
	}
	if w.resizebar != nil {
		if err := w.resizebar.SetWidth(width); err != nil {
			logrus.WithError(err).WithField("width", width).Errorln("Failed to redraw resizebar")
			return
		}
	}
	w.decoratedWidth = width
}

func (w *Window) destroy() {
	if w.root != nil {
		w.root.UnmapWindow(w)
	}
	if w.content != nil {
		if e := w.content.AsElement(); e.parent == &w.Container {
			w.RemoveElement(e)
		}
		w.content = nil
	}
	w.orig.Destroy()
}
